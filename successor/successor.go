package successor

import (
	"github.com/ares-adventure/sokosolver/board"
	"github.com/ares-adventure/sokosolver/deadlock"
)

// Transition is one legal move or push from a given State.
type Transition struct {
	State  board.State
	Action byte // one of u,d,l,r (walk) or U,D,L,R (push)
	Cost   int  // 1 for a walk, 1+weight for a push
}

type direction struct {
	vec         board.Coord
	lower, upper byte
}

// directions lists the four cardinal moves in the fixed U,L,D,R
// emission order the specification requires for deterministic DFS
// pop order and stable priority-queue tie-breaking.
var directions = [4]direction{
	{board.Up, 'u', 'U'},
	{board.Left, 'l', 'L'},
	{board.Down, 'd', 'D'},
	{board.Right, 'r', 'R'},
}

// Successors returns every legal transition from s on board b, in fixed
// U,L,D,R order. A push that would produce a deadlocked configuration
// (per the deadlock package, checked in canonical sorted stone order) is
// omitted.
func Successors(b *board.Board, s board.State) []Transition {
	out := make([]Transition, 0, 4)

	for _, d := range directions {
		tgt := s.Agent.Add(d.vec)
		if !b.InBounds(tgt) || b.At(tgt) == board.Wall {
			continue
		}

		idx, hasStone := s.StoneAt(tgt)
		if !hasStone {
			out = append(out, Transition{
				State:  board.State{Agent: tgt, Stones: s.Stones},
				Action: d.lower,
				Cost:   1,
			})
			continue
		}

		beyond := tgt.Add(d.vec)
		if !b.InBounds(beyond) || b.At(beyond) == board.Wall {
			continue
		}
		if _, blocked := s.StoneAt(beyond); blocked {
			continue
		}

		next := s.WithStone(idx, beyond, tgt)
		if deadlock.Check(b, board.State{Agent: next.Agent, Stones: next.SortedStones()}) {
			continue
		}

		weight := 1
		if idx < len(b.Weights) {
			weight = b.Weights[idx]
		}
		out = append(out, Transition{
			State:  next,
			Action: d.upper,
			Cost:   1 + weight,
		})
	}

	return out
}
