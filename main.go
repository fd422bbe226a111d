package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/knavesat/knavesat/bitset"
	"github.com/knavesat/knavesat/puzzle"
	"github.com/knavesat/knavesat/stmt"
)

func main() {
	var (
		characters int
		level      int
		seed       int64
		nb         int
		verbose    bool
		check      bool
		solution   bool
		format     string
	)
	flag.IntVar(&characters, "n", 4, "number of characters")
	flag.IntVar(&level, "level", 2, "complexity level, from 0 to 4")
	flag.Int64Var(&seed, "seed", 0, "random seed; 0 means time-seeded")
	flag.IntVar(&nb, "count", 1, "number of puzzles to generate")
	flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	flag.BoolVar(&check, "check", false, "cross-checks each solution with a SAT solver")
	flag.BoolVar(&solution, "solution", false, "also prints the solution")
	flag.StringVar(&format, "format", "text", "output format: text, json or yaml")
	flag.Parse()
	if len(flag.Args()) != 0 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	opts := puzzle.Options{Characters: characters, Level: level, Verbose: verbose}
	if seed != 0 {
		opts.Rand = rand.New(rand.NewSource(seed))
	}
	for i := 0; i < nb; i++ {
		p, err := puzzle.Generate(opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not generate puzzle: %v\n", err)
			os.Exit(1)
		}
		if check {
			if err := puzzle.CrossCheck(p); err != nil {
				fmt.Fprintf(os.Stderr, "solver disagreement: %v\n", err)
				os.Exit(1)
			}
			if verbose {
				fmt.Println("c SAT cross-check passed")
			}
		}
		if err := output(p, i+1, level, format, solution); err != nil {
			fmt.Fprintf(os.Stderr, "could not write puzzle: %v\n", err)
			os.Exit(1)
		}
	}
}

func output(p *puzzle.Puzzle, idx, level int, format string, solution bool) error {
	switch format {
	case "text":
		printText(p, idx, solution)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report(p, level, solution))
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(report(p, level, solution))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func printText(p *puzzle.Puzzle, idx int, solution bool) {
	fmt.Printf("c puzzle %d (%d characters)\n", idx, p.Characters())
	for i, text := range p.Texts() {
		fmt.Printf("%d. %s says: %q\n", i+1, stmt.Name(i), text)
	}
	if !solution {
		return
	}
	line := "s " + solutionLine(p.Solution, p.Characters())
	if isatty.IsTerminal(os.Stdout.Fd()) {
		line = "\x1b[32m" + line + "\x1b[0m"
	}
	fmt.Println(line)
}

func solutionLine(a bitset.Set, n int) string {
	res := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			res += ", "
		}
		if a.Has(i) {
			res += stmt.Name(i) + ": truth-teller"
		} else {
			res += stmt.Name(i) + ": liar"
		}
	}
	return res
}

type puzzleReport struct {
	Characters int             `json:"characters" yaml:"characters"`
	Level      int             `json:"level" yaml:"level"`
	Statements []spokenLine    `json:"statements" yaml:"statements"`
	Solution   map[string]bool `json:"solution,omitempty" yaml:"solution,omitempty"`
}

type spokenLine struct {
	Speaker string `json:"speaker" yaml:"speaker"`
	Text    string `json:"text" yaml:"text"`
}

func report(p *puzzle.Puzzle, level int, solution bool) puzzleReport {
	rep := puzzleReport{Characters: p.Characters(), Level: level}
	for i, text := range p.Texts() {
		rep.Statements = append(rep.Statements, spokenLine{Speaker: stmt.Name(i), Text: text})
	}
	if solution {
		rep.Solution = make(map[string]bool, p.Characters())
		for i := 0; i < p.Characters(); i++ {
			rep.Solution[stmt.Name(i)] = p.Solution.Has(i)
		}
	}
	return rep
}
