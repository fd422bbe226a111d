package stmt

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/knavesat/knavesat/bitset"
)

// topLayer is the deepest nesting layer a generated statement can have:
// 0 for atomic assertions, 1 for conjunctions and disjunctions of
// atomics, 2 for conditionals.
const topLayer = 2

// A variant is one entry of the static statement registry: its nesting
// layer and its randomized constructor.
type variant struct {
	layer int
	build func(g *Gen, ctx Context) Statement
}

// variants is the closed registry of statement variants the generator
// can produce. Negations are structural only and deliberately absent.
// Populated in init rather than in the declaration: the compound
// builders recurse through statement, which reads the registry back,
// and a slice literal here would make that an initialization cycle.
var variants []variant

func init() {
	variants = []variant{
		{layer: 0, build: randIdentity},
		{layer: 0, build: randCount},
		{layer: 1, build: randConjunction},
		{layer: 1, build: randDisjunction},
		{layer: 2, build: randConditional},
	}
}

// Stats counts the work done by a generator.
type Stats struct {
	NbDraws    int // candidate statements drawn
	NbRejected int // candidates discarded as degenerate
}

// A Gen produces random statements by rejection sampling: candidates
// are drawn from the variant registry, weighted by the context's
// complexity factor, and redrawn until one is neither internally
// redundant nor degenerate.
type Gen struct {
	Rand *rand.Rand
	// MaxRetries optionally caps each rejection loop. Zero, the
	// default, retries forever; that is the reference behavior, and it
	// terminates with probability 1 for every supported configuration.
	MaxRetries int
	Stats      Stats
}

// NewGen returns a generator drawing from rng.
func NewGen(rng *rand.Rand) *Gen {
	return &Gen{Rand: rng}
}

// Statement produces one random statement respecting ctx. The statement
// is informative: never a tautology, never unsatisfiable, and with no
// logically redundant part and no subject group mentioned twice.
func (g *Gen) Statement(ctx Context) Statement {
	return g.statement(ctx, topLayer)
}

func (g *Gen) statement(ctx Context, maxLayer int) Statement {
	if ctx.Complexity <= 0 {
		// The factor weights the variant draw; zero or negative values
		// would silently skew it.
		panic(fmt.Sprintf("stmt: complexity factor %v is not positive", ctx.Complexity))
	}
	var eligible []variant
	var weights []float64
	var total float64
	for _, v := range variants {
		if v.layer <= maxLayer {
			w := math.Pow(ctx.Complexity, float64(v.layer))
			eligible = append(eligible, v)
			weights = append(weights, w)
			total += w
		}
	}
	if len(eligible) == 0 {
		// A registry misconfiguration, not a runtime condition.
		panic(fmt.Sprintf("stmt: no statement variant within layer %d", maxLayer))
	}
retry:
	for iter := 0; ; iter++ {
		g.spin(iter)
		g.Stats.NbDraws++
		x := g.Rand.Float64() * total
		v := eligible[len(eligible)-1]
		for i, w := range weights {
			if x < w {
				v = eligible[i]
				break
			}
			x -= w
		}
		s := v.build(g, ctx)
		// Naming the exact same group of people twice in one statement
		// reads as clumsy, even when logically sound.
		if bitset.Dup(s.appendSubjects(nil)) {
			g.Stats.NbRejected++
			continue retry
		}
		return s
	}
}

// spin panics once a rejection loop exceeds the optional retry cap.
func (g *Gen) spin(iter int) {
	if g.MaxRetries > 0 && iter >= g.MaxRetries {
		panic(fmt.Sprintf("stmt: rejection sampling still running after %d retries", g.MaxRetries))
	}
}

func randIdentity(g *Gen, ctx Context) Statement {
	return Identity(ctx, g.Rand.Intn(ctx.Characters), g.Rand.Intn(2) == 0)
}

func randCount(g *Gen, ctx Context) Statement {
	var subjects bitset.Set
	for i := 0; subjects.Count() < 2; i++ {
		g.spin(i)
		subjects = bitset.Set(g.Rand.Intn(1 << uint(ctx.Characters)))
	}
	// One bit per possible liar count, 0 through the group size. The
	// empty mask is self-contradictory and the full one a tautology, so
	// both are redrawn.
	nbCounts := subjects.Count() + 1
	var allowed bitset.Set
	for i := 0; allowed == 0 || allowed == bitset.Universe(nbCounts); i++ {
		g.spin(i)
		allowed = bitset.Set(g.Rand.Intn(1 << uint(nbCounts)))
	}
	return Count(ctx, subjects, allowed)
}

func randConjunction(g *Gen, ctx Context) Statement {
	sub := ctx.child()
	for i := 0; ; i++ {
		g.spin(i)
		left := g.statement(sub, 0)
		rightCtx := sub
		if p, ok := left.Predicate(); ok {
			rightCtx = sub.withPrecondition(p)
		}
		right := g.statement(rightCtx, 0)
		s := And(ctx, left, right)
		// A substatement implying the whole conjunction makes the other
		// one redundant; an unsatisfiable conjunction is no statement
		// at all.
		if Implies(left, s) || Implies(right, s) || Tautology(Not(s)) {
			g.Stats.NbRejected++
			continue
		}
		return s
	}
}

func randDisjunction(g *Gen, ctx Context) Statement {
	sub := ctx.child()
	for i := 0; ; i++ {
		g.spin(i)
		left := g.statement(sub, 0)
		right := g.statement(sub, 0)
		s := Or(ctx, left, right)
		// The disjunction collapsing to one of its substatements makes
		// the other redundant; a tautological disjunction says nothing.
		if Implies(s, left) || Implies(s, right) || Tautology(s) {
			g.Stats.NbRejected++
			continue
		}
		return s
	}
}

func randConditional(g *Gen, ctx Context) Statement {
	sub := ctx.child()
	for i := 0; ; i++ {
		g.spin(i)
		ante := g.statement(sub, 1)
		consCtx := sub
		if p, ok := ante.Predicate(); ok {
			consCtx = sub.withPrecondition(p)
		}
		cons := g.statement(consCtx, 1)
		s := If(ctx, ante, cons)
		// Reject vacuous antecedents, conditionals that collapse to
		// their consequent, and tautologies.
		if Implies(s, Not(ante)) || Implies(s, cons) || Tautology(s) {
			g.Stats.NbRejected++
			continue
		}
		return s
	}
}
