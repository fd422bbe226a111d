package puzzle

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/knavesat/knavesat/stmt"
)

// Options configures puzzle generation.
type Options struct {
	// Characters is the number of characters, between MinCharacters and
	// MaxCharacters.
	Characters int
	// Level is the complexity dial, between 0 and MaxLevel. It selects
	// both the generator's weighting factor and the target band for the
	// total rendered length.
	Level int
	// Rand is the randomness source. Nil means a time-seeded source.
	Rand *rand.Rand
	// Verbose makes the assembler trace its attempts on stdout.
	Verbose bool
}

// Generate assembles one puzzle: it draws a statement per speaker,
// solves, and while the puzzle does not have exactly one solution or
// its rendered length falls outside the target band, replaces one
// randomly chosen speaker's statement and solves again. The loop is
// unbounded; it converges quickly for every supported configuration.
func Generate(opts Options) (*Puzzle, error) {
	if opts.Characters < MinCharacters || opts.Characters > MaxCharacters {
		return nil, fmt.Errorf("invalid character count %d: must be between %d and %d", opts.Characters, MinCharacters, MaxCharacters)
	}
	if opts.Level < 0 || opts.Level > MaxLevel {
		return nil, fmt.Errorf("invalid complexity level %d: must be between 0 and %d", opts.Level, MaxLevel)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n := opts.Characters
	gen := stmt.NewGen(rng)
	minWidth, maxWidth := band(n, opts.Level)
	stmts := make([]stmt.Statement, n)
	for i := range stmts {
		stmts[i] = gen.Statement(speakerContext(n, i, opts.Level, rng))
	}
	for attempt := 1; ; attempt++ {
		sols := Solutions(stmts)
		width := totalWidth(stmts)
		if len(sols) == 1 && width >= minWidth && width <= maxWidth {
			if opts.Verbose {
				fmt.Printf("c accepted after %d attempts (width %d, %d draws, %d rejected)\n",
					attempt, width, gen.Stats.NbDraws, gen.Stats.NbRejected)
			}
			return &Puzzle{Statements: stmts, Solution: sols[0]}, nil
		}
		if opts.Verbose {
			fmt.Printf("c attempt %d: %d solutions, width %d\n", attempt, len(sols), width)
		}
		i := rng.Intn(n)
		stmts[i] = gen.Statement(speakerContext(n, i, opts.Level, rng))
	}
}

// speakerContext builds the root context for one speaker. The grammar
// flag is drawn per statement so the puzzle mixes both phrasings.
func speakerContext(n, speaker, level int, rng *rand.Rand) stmt.Context {
	ctx := stmt.NewContext(n, speaker)
	ctx.Complexity = factors[level]
	ctx.Plain = rng.Intn(2) == 0
	return ctx
}

// CrossCheck validates the puzzle's solution against the SAT bridge,
// which computes the consistent assignments through gini instead of
// enumeration. It returns an error if the two solvers disagree.
func CrossCheck(p *Puzzle) error {
	models := stmt.Models(p.Statements)
	if len(models) != 1 {
		return fmt.Errorf("SAT cross-check found %d solutions, want 1", len(models))
	}
	if models[0] != p.Solution {
		return fmt.Errorf("SAT cross-check found solution %b, want %b", models[0], p.Solution)
	}
	return nil
}
