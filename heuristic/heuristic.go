package heuristic

import "github.com/ares-adventure/sokosolver/board"

// Estimate computes h(s) = Σ_i weight_i · manhattan(stone_i, nearest switch)
// + min_i manhattan(agent, stone_i).
//
// b.Switches must be non-empty and s.Stones must be non-empty for the
// minima to be defined; Estimate returns 0 for either empty case.
func Estimate(b *board.Board, s board.State) int {
	if len(s.Stones) == 0 || len(b.Switches) == 0 {
		return 0
	}

	total := 0
	for i, st := range s.Stones {
		best := -1
		for sw := range b.Switches {
			d := manhattan(st, sw)
			if best == -1 || d < best {
				best = d
			}
		}
		weight := 1
		if i < len(b.Weights) {
			weight = b.Weights[i]
		}
		total += best * weight
	}

	nearestStone := -1
	for _, st := range s.Stones {
		d := manhattan(s.Agent, st)
		if nearestStone == -1 || d < nearestStone {
			nearestStone = d
		}
	}
	total += nearestStone

	return total
}

func manhattan(a, b board.Coord) int {
	dr := a.R - b.R
	if dr < 0 {
		dr = -dr
	}
	dc := a.C - b.C
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
