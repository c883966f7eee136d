// Command sokosolve is a thin CLI wiring layer around package
// sokosolver: it parses flags, checks the input file's name, invokes
// Solve, and writes the output file via result.Save. It carries no
// rendering or playback logic of its own.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"

	sokosolver "github.com/ares-adventure/sokosolver"
	"github.com/ares-adventure/sokosolver/result"
)

// inputNamePattern is the filename convention spec.md assigns to the
// collaborator rather than the core: ^input-\d{2}\.txt$.
var inputNamePattern = regexp.MustCompile(`^input-\d{2}\.txt$`)

func main() {
	algoFlag := flag.String("algo", "bfs", "search algorithm: bfs, dfs, ucs, astar")
	inputFlag := flag.String("input", "", "path to an input-NN.txt file")
	outFlag := flag.String("out", "output.txt", "path to the result output file")
	dupFlag := flag.Bool("dup", false, "append a new record instead of replacing any existing one for this algorithm")
	flag.Parse()

	if *inputFlag == "" {
		log.Fatal("sokosolve: -input is required")
	}
	if base := filepath.Base(*inputFlag); !inputNamePattern.MatchString(base) {
		log.Fatalf("sokosolve: input filename %q does not match ^input-\\d{2}\\.txt$", base)
	}

	algo, err := parseAlgorithm(*algoFlag)
	if err != nil {
		log.Fatalf("sokosolve: %v", err)
	}

	r, err := sokosolver.Solve(*inputFlag, algo)
	if err != nil {
		log.Fatalf("sokosolve: solve failed: %v", err)
	}

	if err := result.Save(*outFlag, r, *dupFlag); err != nil {
		log.Fatalf("sokosolve: saving result: %v", err)
	}

	fmt.Fprintf(os.Stdout, "%s: steps=%d cost=%d nodes=%d elapsed_ms=%.2f\n",
		r.Algorithm, r.Steps, r.TotalCost, r.NodesExpanded, r.ElapsedMs)
}

func parseAlgorithm(name string) (sokosolver.Algorithm, error) {
	switch name {
	case "bfs":
		return sokosolver.BFS, nil
	case "dfs":
		return sokosolver.DFS, nil
	case "ucs":
		return sokosolver.UCS, nil
	case "astar", "a*":
		return sokosolver.ASTAR, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q (want bfs, dfs, ucs, or astar)", name)
	}
}
