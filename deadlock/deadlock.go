package deadlock

import "github.com/ares-adventure/sokosolver/board"

// Check reports whether the given stone configuration on b is provably
// unrecoverable. It examines s.Stones in the order given (the
// Successor Function passes the canonical, sorted order); the first stone found
// already resting on a switch short-circuits the whole check and Check
// returns false without examining any stone after it.
func Check(b *board.Board, s board.State) bool {
	occupied := make(map[board.Coord]struct{}, len(s.Stones))
	for _, st := range s.Stones {
		occupied[st] = struct{}{}
	}

	for _, st := range s.Stones {
		if b.IsSwitch(st) {
			return false
		}
		if cornered(b, st) {
			return true
		}
		if wallBraced(b, st, occupied) {
			return true
		}
	}
	return false
}

// cornered reports whether the stone at st is boxed in by two
// orthogonally-adjacent walls forming an L: {(N,W),(N,E),(S,W),(S,E)}.
func cornered(b *board.Board, st board.Coord) bool {
	n := board.Coord{R: st.R - 1, C: st.C}
	s := board.Coord{R: st.R + 1, C: st.C}
	w := board.Coord{R: st.R, C: st.C - 1}
	e := board.Coord{R: st.R, C: st.C + 1}

	corners := [4][2]board.Coord{
		{n, w}, {n, e}, {s, w}, {s, e},
	}
	for _, pair := range corners {
		if b.At(pair[0]) == board.Wall && b.At(pair[1]) == board.Wall {
			return true
		}
	}
	return false
}

// wallBraced reports whether the stone at st is pinned against a wall on
// one axis while a neighboring stone on the other axis is wall-braced on
// the same side, making the pair inseparable.
func wallBraced(b *board.Board, st board.Coord, occupied map[board.Coord]struct{}) bool {
	w := board.Coord{R: st.R, C: st.C - 1}
	e := board.Coord{R: st.R, C: st.C + 1}
	n := board.Coord{R: st.R - 1, C: st.C}
	s := board.Coord{R: st.R + 1, C: st.C}

	if b.At(w) == board.Wall || b.At(e) == board.Wall {
		above := board.Coord{R: st.R - 1, C: st.C}
		below := board.Coord{R: st.R + 1, C: st.C}
		if _, ok := occupied[above]; ok {
			aw := board.Coord{R: above.R, C: above.C - 1}
			ae := board.Coord{R: above.R, C: above.C + 1}
			if b.At(aw) == board.Wall || b.At(ae) == board.Wall {
				return true
			}
		}
		if _, ok := occupied[below]; ok {
			bw := board.Coord{R: below.R, C: below.C - 1}
			be := board.Coord{R: below.R, C: below.C + 1}
			if b.At(bw) == board.Wall || b.At(be) == board.Wall {
				return true
			}
		}
	}

	if b.At(n) == board.Wall || b.At(s) == board.Wall {
		left := board.Coord{R: st.R, C: st.C - 1}
		right := board.Coord{R: st.R, C: st.C + 1}
		if _, ok := occupied[left]; ok {
			ln := board.Coord{R: left.R - 1, C: left.C}
			ls := board.Coord{R: left.R + 1, C: left.C}
			if b.At(ln) == board.Wall || b.At(ls) == board.Wall {
				return true
			}
		}
		if _, ok := occupied[right]; ok {
			rn := board.Coord{R: right.R - 1, C: right.C}
			rs := board.Coord{R: right.R + 1, C: right.C}
			if b.At(rn) == board.Wall || b.At(rs) == board.Wall {
				return true
			}
		}
	}

	return false
}
