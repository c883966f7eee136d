package sokosolver_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	sokosolver "github.com/ares-adventure/sokosolver"
	"github.com/ares-adventure/sokosolver/board"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input-01.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// TestSolve_ScenarioOne is spec scenario 1: a single weighted stone
// pushed directly onto an adjacent switch.
func TestSolve_ScenarioOne(t *testing.T) {
	path := writeInput(t, "3\n#####\n#@$.#\n#####\n")
	r, err := sokosolver.Solve(path, sokosolver.BFS)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if r.ActionSequence != "R" {
		t.Fatalf("expected action sequence %q, got %q", "R", r.ActionSequence)
	}
	if r.TotalCost != 4 {
		t.Fatalf("expected total cost 4, got %d", r.TotalCost)
	}
	if r.Steps != 1 {
		t.Fatalf("expected 1 step, got %d", r.Steps)
	}
	if len(r.CostSteps) != 1 || r.CostSteps[0] != 4 {
		t.Fatalf("expected cost_steps [4], got %v", r.CostSteps)
	}
}

// TestSolve_ScenarioTwo is spec scenario 2: a walk followed by a push.
func TestSolve_ScenarioTwo(t *testing.T) {
	path := writeInput(t, "2\n######\n#@ $.#\n######\n")
	r, err := sokosolver.Solve(path, sokosolver.BFS)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if r.ActionSequence != "rR" {
		t.Fatalf("expected action sequence %q, got %q", "rR", r.ActionSequence)
	}
	if r.TotalCost != 4 {
		t.Fatalf("expected total cost 4, got %d", r.TotalCost)
	}
	want := []int{1, 4}
	if len(r.CostSteps) != 2 || r.CostSteps[0] != want[0] || r.CostSteps[1] != want[1] {
		t.Fatalf("expected cost_steps %v, got %v", want, r.CostSteps)
	}
}

// TestSolve_ScenarioFour is spec scenario 4: corner-deadlock pruning
// leaves the puzzle unsolvable.
func TestSolve_ScenarioFour(t *testing.T) {
	path := writeInput(t, "5\n#####\n#@  #\n#  $#\n# . #\n#####\n")
	_, err := sokosolver.Solve(path, sokosolver.BFS)
	if err != sokosolver.ErrNoSolution {
		t.Fatalf("expected ErrNoSolution, got %v", err)
	}
}

// TestSolve_ScenarioFive is spec scenario 5: a stone already on its
// switch at start yields an empty action sequence and zero cost under
// the empty-sequence convention.
func TestSolve_ScenarioFive(t *testing.T) {
	path := writeInput(t, "1\n#####\n#@ *#\n#####\n")
	r, err := sokosolver.Solve(path, sokosolver.DFS)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if r.ActionSequence != "" {
		t.Fatalf("expected empty action sequence, got %q", r.ActionSequence)
	}
	if r.TotalCost != 0 {
		t.Fatalf("expected total cost 0, got %d", r.TotalCost)
	}
	if len(r.CostSteps) != 0 {
		t.Fatalf("expected empty cost_steps, got %v", r.CostSteps)
	}
}

// TestSolve_InvalidInputSurfacesBoardError confirms a loader failure
// propagates as *board.InvalidInputError rather than a facade sentinel.
func TestSolve_InvalidInputSurfacesBoardError(t *testing.T) {
	_, err := sokosolver.Solve(filepath.Join(t.TempDir(), "missing.txt"), sokosolver.BFS)
	var invalid *board.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *board.InvalidInputError, got %v (%T)", err, err)
	}
}

// TestSolve_UnknownAlgorithm confirms Solve rejects an out-of-range
// Algorithm value without attempting a search.
func TestSolve_UnknownAlgorithm(t *testing.T) {
	path := writeInput(t, "3\n#####\n#@$.#\n#####\n")
	_, err := sokosolver.Solve(path, sokosolver.Algorithm(99))
	if err != sokosolver.ErrUnknownAlgorithm {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

// twoStoneDivergence is a small room with two parallel bypass corridors
// flanking the main row. A light stone (weight 1) sits left of a heavy
// stone (weight 10); the near switch is left of both, the far switch is
// right of both. The order-preserving pairing (light to the near switch,
// heavy to the far one) needs the fewest pushes but drags the heavy
// stone the long way; the swapped pairing routes the light stone around
// the heavy one via the flanking corridor to reach the far switch,
// trading more total pushes for a cheaper one since only the light
// stone pays the detour.
const twoStoneDivergence = "1 10\n" +
	"##############\n" +
	"#            #\n" +
	"#            #\n" +
	"#. $ $   @  .#\n" +
	"#            #\n" +
	"##############\n"

// TestSolve_UCSAndAstarAgreeOnCost is spec scenario 6: on a solvable
// instance, A*'s total cost matches UCS's.
func TestSolve_UCSAndAstarAgreeOnCost(t *testing.T) {
	path := writeInput(t, twoStoneDivergence)
	rUCS, err := sokosolver.Solve(path, sokosolver.UCS)
	if err != nil {
		t.Fatalf("UCS Solve: %v", err)
	}
	rAstar, err := sokosolver.Solve(path, sokosolver.ASTAR)
	if err != nil {
		t.Fatalf("A* Solve: %v", err)
	}
	if rUCS.TotalCost != rAstar.TotalCost {
		t.Fatalf("expected UCS cost == A* cost, got %d != %d", rUCS.TotalCost, rAstar.TotalCost)
	}
}

// TestSolve_BFSStepsNeverExceedOthers is spec scenario 3: BFS minimizes
// action count, not cost, so on twoStoneDivergence it finds the
// fewer-step solution that pushes the heavy stone the long way, costing
// strictly more than UCS's pricier-looking-but-cheaper detour.
func TestSolve_BFSStepsNeverExceedOthers(t *testing.T) {
	path := writeInput(t, twoStoneDivergence)
	rBFS, err := sokosolver.Solve(path, sokosolver.BFS)
	if err != nil {
		t.Fatalf("BFS Solve: %v", err)
	}
	rUCS, err := sokosolver.Solve(path, sokosolver.UCS)
	if err != nil {
		t.Fatalf("UCS Solve: %v", err)
	}
	if rBFS.Steps > rUCS.Steps {
		t.Fatalf("expected BFS steps (%d) <= UCS steps (%d)", rBFS.Steps, rUCS.Steps)
	}
	if rBFS.TotalCost <= rUCS.TotalCost {
		t.Fatalf("expected BFS cost (%d) > UCS cost (%d)", rBFS.TotalCost, rUCS.TotalCost)
	}
}
