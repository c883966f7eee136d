package deadlock

import (
	"testing"

	"github.com/ares-adventure/sokosolver/board"
)

func mustBoard(t *testing.T, content string, weights []int) *board.Board {
	t.Helper()
	rows := splitLines(content)
	terrain := make([][]board.Cell, len(rows))
	switches := make(map[board.Coord]struct{})
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	for r, line := range rows {
		terrain[r] = make([]board.Cell, width)
		for c := 0; c < width; c++ {
			ch := byte(' ')
			if c < len(line) {
				ch = line[c]
			}
			switch ch {
			case '#':
				terrain[r][c] = board.Wall
			case '.':
				terrain[r][c] = board.Switch
				switches[board.Coord{R: r, C: c}] = struct{}{}
			default:
				terrain[r][c] = board.Floor
			}
		}
	}
	return &board.Board{Rows: len(rows), Cols: width, Terrain: terrain, Switches: switches, Weights: weights}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func TestCornerDeadlock(t *testing.T) {
	b := mustBoard(t, "#####\n#   #\n#   #\n#####\n", []int{5})
	s := board.NewState(board.Coord{R: 1, C: 1}, []board.Coord{{R: 2, C: 3}})
	if !Check(b, s) {
		t.Fatal("expected corner deadlock at bottom-right-walled cell")
	}
}

func TestStoneOnSwitchIsNeverDeadlockedAlone(t *testing.T) {
	b := mustBoard(t, "#####\n#  .#\n#####\n", []int{1})
	s := board.NewState(board.Coord{R: 1, C: 1}, []board.Coord{{R: 1, C: 3}})
	if Check(b, s) {
		t.Fatal("stone resting on a switch must never be reported as a deadlock")
	}
}

func TestSwitchShortCircuitsWholeConfiguration(t *testing.T) {
	// Two stones: stone 0 sits on a switch, stone 1 is cornered. Because
	// the switch check runs first and short-circuits the whole scan,
	// Check must return false even though stone 1 alone would be a
	// corner deadlock if examined on its own. This is the preserved
	// caveat from the reference implementation (see doc.go).
	b := mustBoard(t, "#####\n#. .#\n#  ##\n#####\n", []int{1, 1})
	s := board.NewState(board.Coord{R: 1, C: 2}, []board.Coord{{R: 1, C: 1}, {R: 2, C: 2}})
	if Check(b, s) {
		t.Fatal("switch short-circuit must suppress detection of the later cornered stone")
	}
}

func TestNoDeadlockInOpenArea(t *testing.T) {
	b := mustBoard(t, "#####\n#   #\n#   #\n#####\n", []int{1})
	s := board.NewState(board.Coord{R: 1, C: 1}, []board.Coord{{R: 2, C: 2}})
	if Check(b, s) {
		t.Fatal("stone in open area must not be flagged as a deadlock")
	}
}
