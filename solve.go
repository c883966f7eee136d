package sokosolver

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/ares-adventure/sokosolver/astar"
	"github.com/ares-adventure/sokosolver/bfs"
	"github.com/ares-adventure/sokosolver/board"
	"github.com/ares-adventure/sokosolver/dfs"
	"github.com/ares-adventure/sokosolver/internal/engine"
	"github.com/ares-adventure/sokosolver/result"
	"github.com/ares-adventure/sokosolver/ucs"
)

// Algorithm selects which search engine Solve dispatches to.
type Algorithm = result.Algorithm

// Re-exported Algorithm values so callers need not import package
// result just to name one.
const (
	BFS   = result.BFS
	DFS   = result.DFS
	UCS   = result.UCS
	ASTAR = result.ASTAR
)

// SolveOptions configures a single Solve call. The zero value runs to
// completion with no cancellation signal and no node cap.
type SolveOptions struct {
	Ctx     context.Context
	NodeCap int
}

// Solve loads the board at path and runs the requested Algorithm
// against it with default options. See SolveWithOptions.
func Solve(path string, algo Algorithm) (*result.Result, error) {
	return SolveWithOptions(path, algo, SolveOptions{})
}

// SolveWithOptions loads the board at path, runs the requested
// Algorithm against it, and returns a fully assembled Result: the
// action sequence, its replayed cost trace, and run statistics. On
// failure it returns one of *board.InvalidInputError (loader failure,
// before any search begins), ErrNoSolution, ErrSearchExhausted,
// ErrCancelled, or ErrUnknownAlgorithm.
//
// Search-time errors still populate NodesExpanded, ElapsedMs, and
// PeakMemoryMB on the returned Result (ActionSequence empty,
// TotalCost 0), matching the core API's "partial statistics on error"
// contract; callers that only care about the error may ignore the
// returned Result in that case.
func SolveWithOptions(path string, algo Algorithm, opts SolveOptions) (*result.Result, error) {
	b, start, err := board.Load(path)
	if err != nil {
		return nil, err
	}

	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)
	startTime := time.Now()

	actions, nodes, searchErr := dispatch(algo, b, *start, opts)

	elapsed := time.Since(startTime)
	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)
	peakMB := peakAllocMB(memBefore, memAfter)

	if searchErr != nil {
		return &result.Result{
			Algorithm:     algo,
			NodesExpanded: nodes,
			ElapsedMs:     float64(elapsed) / float64(time.Millisecond),
			PeakMemoryMB:  peakMB,
		}, mapEngineError(searchErr)
	}

	return result.Assemble(algo, b, *start, actions, nodes, elapsed, peakMB)
}

// dispatch is the sum-type switch spec.md §9's first REDESIGN FLAG
// calls for: one dispatch point at Solve entry, rather than dynamic
// dispatch threaded through the search frame itself.
func dispatch(algo Algorithm, b *board.Board, start board.State, opts SolveOptions) (actions string, nodes int, err error) {
	switch algo {
	case BFS:
		res, e := bfs.Search(b, start, bfs.WithContext(opts.Ctx), bfs.WithNodeCap(opts.NodeCap))
		if res == nil {
			return "", 0, e
		}
		return res.Actions, res.Nodes, e
	case DFS:
		res, e := dfs.Search(b, start, dfs.WithContext(opts.Ctx), dfs.WithNodeCap(opts.NodeCap))
		if res == nil {
			return "", 0, e
		}
		return res.Actions, res.Nodes, e
	case UCS:
		res, e := ucs.Search(b, start, ucs.WithContext(opts.Ctx), ucs.WithNodeCap(opts.NodeCap))
		if res == nil {
			return "", 0, e
		}
		return res.Actions, res.Nodes, e
	case ASTAR:
		res, e := astar.Search(b, start, astar.WithContext(opts.Ctx), astar.WithNodeCap(opts.NodeCap))
		if res == nil {
			return "", 0, e
		}
		return res.Actions, res.Nodes, e
	default:
		return "", 0, ErrUnknownAlgorithm
	}
}

func peakAllocMB(before, after runtime.MemStats) float64 {
	delta := after.TotalAlloc - before.TotalAlloc
	return float64(delta) / (1024 * 1024)
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrNoSolution):
		return ErrNoSolution
	case errors.Is(err, engine.ErrSearchExhausted):
		return ErrSearchExhausted
	case errors.Is(err, engine.ErrCancelled):
		return ErrCancelled
	default:
		return err
	}
}
