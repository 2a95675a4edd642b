// Command millsolve is the thin CLI front-end over internal/solver and
// internal/problems: it parses flags, reads an input file, and writes
// one output line per input line. This is the only place in the module
// that touches os.Open/os.Create or calls os.Exit.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/gomill/millsolve/internal/problems"
	"github.com/gomill/millsolve/internal/solver"
)

func main() {
	maxStones := flag.Int("max-stones", 9, "maximum stones per side")
	in := flag.String("in", "input_felder.txt", "input file, one encoded board per line")
	out := flag.String("out", "output.txt", "output file")
	problem := flag.String("problem", "canonical", "which problem to run: canonical, move-triple, classify")
	shards := flag.Int("shards", 1, "solver shard count for the classify problem (1 = single-threaded)")
	diskBacked := flag.Bool("disk-backed", false, "back the solver's WON/LOST sets with a temporary on-disk store")
	verbose := flag.Bool("v", false, "log solver progress")
	flag.Parse()

	if err := run(*maxStones, *in, *out, *problem, *shards, *diskBacked, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(maxStones int, inPath, outPath, problem string, shards int, diskBacked, verbose bool) error {
	lines, err := readLines(inPath)
	if err != nil {
		return fmt.Errorf("millsolve: reading %s: %w", inPath, err)
	}

	var outLines []string
	switch problem {
	case "canonical":
		matches, err := problems.SolveCanonicalForm(lines)
		if err != nil {
			return err
		}
		for _, m := range matches {
			outLines = append(outLines, strconv.Itoa(m))
		}

	case "move-triple":
		triples, err := problems.SolveMoveTriple(lines)
		if err != nil {
			return err
		}
		for _, t := range triples {
			outLines = append(outLines, fmt.Sprintf("%d %d %d", t[0], t[1], t[2]))
		}

	case "classify":
		result, err := solver.Solve(solver.Options{
			MaxStones:  maxStones,
			Shards:     shards,
			DiskBacked: diskBacked,
			Verbose:    verbose,
		})
		if err != nil {
			return fmt.Errorf("millsolve: solving: %w", err)
		}
		defer result.Close()

		classes, err := problems.Classify(lines, result.Won, result.Lost)
		if err != nil {
			return err
		}
		for _, c := range classes {
			outLines = append(outLines, strconv.Itoa(c))
		}

	default:
		return fmt.Errorf("millsolve: unknown -problem %q", problem)
	}

	return writeLines(outPath, outLines)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}
