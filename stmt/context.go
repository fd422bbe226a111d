package stmt

// A Context carries the construction parameters of a statement: who
// speaks, how many characters the puzzle has, and how the statement is
// worded. Contexts are plain values: derivation methods return modified
// copies, so the construction of one substatement can never observe the
// context of a sibling.
type Context struct {
	// Characters is the number of characters in the puzzle.
	Characters int
	// Speaker is the index of the character uttering the statement.
	Speaker int
	// Root marks the outermost clause of an utterance. A root clause is
	// rendered as a full sentence, capitalized and terminated with a
	// period.
	Root bool
	// Plain selects the plain-verb grammar ("Bob lies") over the formal
	// one ("Bob is a liar").
	Plain bool
	// Complexity weights the random generator: the probability of a
	// variant is proportional to Complexity raised to its nesting
	// layer, so values above 1 favor deeper statements.
	Complexity float64

	precond    bool
	hasPrecond bool
}

// NewContext returns the root context for the given speaker, with
// neutral complexity.
func NewContext(characters, speaker int) Context {
	return Context{Characters: characters, Speaker: speaker, Root: true, Complexity: 1}
}

// Precondition returns the truth-value asserted by an already-built
// sibling clause, if any. Rendering uses it to shorten a clause that
// repeats the same assertion about another character ("so is Bob").
func (c Context) Precondition() (value, ok bool) {
	return c.precond, c.hasPrecond
}

// child derives the context of a substatement: no longer a root clause,
// and with no leftover precondition.
func (c Context) child() Context {
	c.Root = false
	c.precond, c.hasPrecond = false, false
	return c
}

// withPrecondition derives a copy recording the truth-value asserted by
// the preceding sibling clause.
func (c Context) withPrecondition(value bool) Context {
	c.precond, c.hasPrecond = value, true
	return c
}
