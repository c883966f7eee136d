package result

import (
	"fmt"

	"github.com/ares-adventure/sokosolver/board"
)

var directionByLabel = map[byte]board.Coord{
	'u': board.Up, 'U': board.Up,
	'l': board.Left, 'L': board.Left,
	'd': board.Down, 'D': board.Down,
	'r': board.Right, 'R': board.Right,
}

// Replay executes actions against the initial (board, state) pair and
// returns the cumulative cost after each prefix, per the empty-sequence
// convention: an empty action string yields an empty CostSteps slice,
// not [0].
//
// This is the single source of truth for cost accounting. The search
// engines accumulate cost on their search nodes, but only UCS and A* use
// it, to order their own frontiers; Replay recomputes cost from
// scratch by walking the initial stone layout forward, so every
// algorithm's reported TotalCost is computed identically regardless of
// what (if anything) the engine itself accumulated.
func Replay(b *board.Board, start board.State, actions string) ([]int, error) {
	if len(actions) == 0 {
		return nil, nil
	}

	agent := start.Agent
	stones := make([]board.Coord, len(start.Stones))
	copy(stones, start.Stones)

	steps := make([]int, 0, len(actions))
	total := 0

	for i := 0; i < len(actions); i++ {
		label := actions[i]
		dir, ok := directionByLabel[label]
		if !ok {
			return nil, fmt.Errorf("%w: unrecognized action %q at position %d", ErrUnreplayable, label, i)
		}

		isPush := label >= 'A' && label <= 'Z'
		tgt := agent.Add(dir)

		if !isPush {
			agent = tgt
			total++
			steps = append(steps, total)
			continue
		}

		idx := -1
		for si, st := range stones {
			if st == tgt {
				idx = si
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: push action %q at position %d has no stone to push", ErrUnreplayable, label, i)
		}

		weight := 1
		if idx < len(b.Weights) {
			weight = b.Weights[idx]
		}
		stones[idx] = tgt.Add(dir)
		agent = tgt
		total += 1 + weight
		steps = append(steps, total)
	}

	return steps, nil
}
