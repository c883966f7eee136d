package result

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save appends r to the file at path as a 3-line record (algorithm name,
// statistics line, action sequence), matching the original's `save`
// format exactly:
//
//	<ALGORITHM>
//	Steps: <int>, Cost: <int>, Node: <int>, Time (ms): <float>, Memory (MB): <float>
//	<action_sequence>
//
// Unless duplicate is true, any existing record for the same Algorithm
// is removed from the file before the new one is appended.
func Save(path string, r *Result, duplicate bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("result: creating output directory: %w", err)
		}
	}

	if !duplicate {
		existing, err := Load(path)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		kept := existing[:0]
		for _, e := range existing {
			if e.Algorithm != r.Algorithm {
				kept = append(kept, e)
			}
		}
		if err := writeAll(path, kept); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("result: opening output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeRecord(w, r); err != nil {
		return err
	}
	return w.Flush()
}

func writeAll(path string, results []*Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("result: rewriting output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, r := range results {
		if err := writeRecord(w, r); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeRecord(w *bufio.Writer, r *Result) error {
	_, err := fmt.Fprintf(w, "%s\nSteps: %d, Cost: %d, Node: %d, Time (ms): %v, Memory (MB): %v\n%s\n",
		r.Algorithm.String(), r.Steps, r.TotalCost, r.NodesExpanded, r.ElapsedMs, r.PeakMemoryMB, r.ActionSequence)
	return err
}

// Load parses an existing output file back into a slice of Results, in
// file order. It is a supplementary helper for a future playback
// collaborator that wants to read prior runs without re-solving; the
// core solver never calls it.
func Load(path string) ([]*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("result: reading output file: %w", err)
	}

	var out []*Result
	for i := 0; i+2 < len(lines); i += 3 {
		algo, ok := ParseAlgorithm(strings.TrimSpace(lines[i]))
		if !ok {
			return nil, fmt.Errorf("result: unrecognized algorithm name %q", lines[i])
		}

		r := &Result{Algorithm: algo, ActionSequence: lines[i+2]}
		_, err := fmt.Sscanf(lines[i+1], "Steps: %d, Cost: %d, Node: %d, Time (ms): %g, Memory (MB): %g",
			&r.Steps, &r.TotalCost, &r.NodesExpanded, &r.ElapsedMs, &r.PeakMemoryMB)
		if err != nil {
			return nil, fmt.Errorf("result: parsing statistics line %q: %w", lines[i+1], err)
		}
		out = append(out, r)
	}

	return out, nil
}
