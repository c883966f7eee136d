package result_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ares-adventure/sokosolver/board"
	"github.com/ares-adventure/sokosolver/result"
)

func mustLoad(t *testing.T, content string) (*board.Board, board.State) {
	t.Helper()
	dir := t.TempDir()
	path := dir + "/input-01.txt"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	b, s, err := board.Load(path)
	require.NoError(t, err)
	return b, *s
}

func TestReplay_EmptySequenceYieldsEmptySlice(t *testing.T) {
	b, s := mustLoad(t, "1\n#####\n#@ *#\n#####\n")
	steps, err := result.Replay(b, s, "")
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestReplay_ScenarioOne(t *testing.T) {
	b, s := mustLoad(t, "3\n#####\n#@$.#\n#####\n")
	steps, err := result.Replay(b, s, "R")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, steps)
}

func TestReplay_ScenarioTwo(t *testing.T) {
	b, s := mustLoad(t, "2\n######\n#@ $.#\n######\n")
	steps, err := result.Replay(b, s, "rR")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, steps)
}

func TestReplay_UnrecognizedLabel(t *testing.T) {
	b, s := mustLoad(t, "3\n#####\n#@$.#\n#####\n")
	_, err := result.Replay(b, s, "X")
	assert.ErrorIs(t, err, result.ErrUnreplayable)
}

func TestReplay_PushWithNoStone(t *testing.T) {
	b, s := mustLoad(t, "3\n#####\n#@ .#\n#####\n")
	_, err := result.Replay(b, s, "R")
	assert.ErrorIs(t, err, result.ErrUnreplayable)
}

func TestAssemble_PopulatesAllFields(t *testing.T) {
	b, s := mustLoad(t, "3\n#####\n#@$.#\n#####\n")
	r, err := result.Assemble(result.BFS, b, s, "R", 2, 5*time.Millisecond, 1.25)
	require.NoError(t, err)
	assert.Equal(t, result.BFS, r.Algorithm)
	assert.Equal(t, 1, r.Steps)
	assert.Equal(t, 4, r.TotalCost)
	assert.Equal(t, 2, r.NodesExpanded)
	assert.Equal(t, 5.0, r.ElapsedMs)
	assert.Equal(t, 1.25, r.PeakMemoryMB)
	assert.Equal(t, []int{4}, r.CostSteps)
}

func TestAssemble_AlreadySolved(t *testing.T) {
	b, s := mustLoad(t, "1\n#####\n#@ *#\n#####\n")
	r, err := result.Assemble(result.DFS, b, s, "", 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, r.TotalCost)
	assert.Empty(t, r.CostSteps)
	assert.Equal(t, "", r.ActionSequence)
}

func TestAlgorithm_StringAndParseRoundTrip(t *testing.T) {
	for _, a := range []result.Algorithm{result.BFS, result.DFS, result.UCS, result.ASTAR} {
		parsed, ok := result.ParseAlgorithm(a.String())
		require.True(t, ok)
		assert.Equal(t, a, parsed)
	}
}
