package result

import (
	"time"

	"github.com/ares-adventure/sokosolver/board"
)

// Assemble packages a search engine's raw outcome into a Result,
// replaying actionSequence against the initial (board, state) to
// compute CostSteps and TotalCost. elapsed and peakMemoryMB are
// measured by the caller around the search call; Assemble does not
// time anything itself.
func Assemble(
	algo Algorithm,
	b *board.Board,
	start board.State,
	actionSequence string,
	nodesExpanded int,
	elapsed time.Duration,
	peakMemoryMB float64,
) (*Result, error) {
	costSteps, err := Replay(b, start, actionSequence)
	if err != nil {
		return nil, err
	}

	total := 0
	if n := len(costSteps); n > 0 {
		total = costSteps[n-1]
	}

	return &Result{
		Algorithm:      algo,
		Steps:          len(actionSequence),
		TotalCost:      total,
		NodesExpanded:  nodesExpanded,
		ElapsedMs:      float64(elapsed) / float64(time.Millisecond),
		PeakMemoryMB:   peakMemoryMB,
		ActionSequence: actionSequence,
		CostSteps:      costSteps,
	}, nil
}
