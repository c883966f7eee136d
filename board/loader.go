package board

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load parses path into an immutable Board and its initial State.
//
// Format: line 1 is a whitespace-separated list of positive integer stone
// weights. Remaining lines are the map over the alphabet
// {'#', ' ', '.', '$', '*', '@', '+'}. Trailing newlines are stripped;
// interior and trailing spaces are preserved. Rows may differ in length
// and are right-padded with Floor to the width of the longest row.
//
// Load fails with an *InvalidInputError wrapping one of the sentinel
// errors in errors.go when the file is missing, empty, malformed, or the
// stone/weight counts disagree, or when the agent cell is absent or
// duplicated.
func Load(path string) (*Board, *State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, invalidInput(ErrMissingFile, fmt.Sprintf("open %q: %v", path, err))
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	// Default bufio.Scanner token size suffices for realistic puzzle maps;
	// grow the buffer for unusually wide ones.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, nil, invalidInput(ErrMissingFile, fmt.Sprintf("read %q: %v", path, err))
	}

	if len(lines) == 0 {
		return nil, nil, invalidInput(ErrEmptyFile, path)
	}

	weights, err := parseWeights(lines[0])
	if err != nil {
		return nil, nil, err
	}

	mapLines := lines[1:]
	maxWidth := 0
	for _, line := range mapLines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	rows := len(mapLines)
	terrain := make([][]Cell, rows)
	switches := make(map[Coord]struct{})

	var agent Coord
	agentFound := false
	var stoneOrder []Coord

	for r, line := range mapLines {
		terrain[r] = make([]Cell, maxWidth)
		for c := 0; c < maxWidth; c++ {
			var ch byte = ' '
			if c < len(line) {
				ch = line[c]
			}
			switch ch {
			case '#':
				terrain[r][c] = Wall
			case '.':
				terrain[r][c] = Switch
				switches[Coord{R: r, C: c}] = struct{}{}
			case '*':
				terrain[r][c] = Switch
				switches[Coord{R: r, C: c}] = struct{}{}
				stoneOrder = append(stoneOrder, Coord{R: r, C: c})
			case '+':
				terrain[r][c] = Switch
				switches[Coord{R: r, C: c}] = struct{}{}
				if agentFound {
					return nil, nil, invalidInput(ErrMultipleAgents, fmt.Sprintf("second agent at row %d col %d", r, c))
				}
				agent = Coord{R: r, C: c}
				agentFound = true
			case '$':
				terrain[r][c] = Floor
				stoneOrder = append(stoneOrder, Coord{R: r, C: c})
			case '@':
				terrain[r][c] = Floor
				if agentFound {
					return nil, nil, invalidInput(ErrMultipleAgents, fmt.Sprintf("second agent at row %d col %d", r, c))
				}
				agent = Coord{R: r, C: c}
				agentFound = true
			default:
				terrain[r][c] = Floor
			}
		}
	}

	if !agentFound {
		return nil, nil, invalidInput(ErrNoAgent, path)
	}

	if len(stoneOrder) != len(weights) {
		return nil, nil, invalidInput(ErrStoneWeightMismatch,
			fmt.Sprintf("%d stones, %d weights", len(stoneOrder), len(weights)))
	}

	b := &Board{
		Rows:     rows,
		Cols:     maxWidth,
		Terrain:  terrain,
		Switches: switches,
		Weights:  weights,
	}
	initial := NewState(agent, stoneOrder)

	return b, &initial, nil
}

// parseWeights splits the header line on whitespace and validates that
// every token is a positive integer.
func parseWeights(header string) ([]int, error) {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return nil, invalidInput(ErrMalformedHeader, "header line is blank")
	}
	weights := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			return nil, invalidInput(ErrMalformedHeader, fmt.Sprintf("token %q is not a positive integer", f))
		}
		weights[i] = n
	}
	return weights, nil
}
