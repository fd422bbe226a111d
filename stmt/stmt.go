package stmt

import "github.com/knavesat/knavesat/bitset"

// A Statement is one node of a boolean expression tree uttered by a
// character. The interface is closed: the unexported method keeps every
// implementation inside this package, so evaluation, rendering and SAT
// encoding are exhaustive by construction.
type Statement interface {
	// TrueOn reports the truth-value of the statement under assignment
	// a (bit i set means character i is a truth-teller). It is total
	// and deterministic over all assignments.
	TrueOn(a bitset.Set) bool
	// Text returns the rendered sentence.
	Text() string
	// Context returns the context the statement was built with.
	Context() Context
	// Predicate returns the single truth-value the statement asserts
	// about its subject when that value is context-independent. Only
	// identity assertions have one; ok is false for everything else.
	Predicate() (value, ok bool)

	// appendSubjects appends the subject group of each atomic leaf, in
	// utterance order.
	appendSubjects(dst []bitset.Set) []bitset.Set
	// clause returns the bare rendered clause, without sentence
	// capitalization or termination.
	clause() string
}

// Tautology reports whether s is true under every assignment.
func Tautology(s Statement) bool {
	for a, top := bitset.Set(0), bitset.Universe(s.Context().Characters); a <= top; a++ {
		if !s.TrueOn(a) {
			return false
		}
	}
	return true
}

// Implies reports whether t holds under every assignment where s holds.
func Implies(s, t Statement) bool {
	for a, top := bitset.Set(0), bitset.Universe(s.Context().Characters); a <= top; a++ {
		if s.TrueOn(a) && !t.TrueOn(a) {
			return false
		}
	}
	return true
}

// ConsistentOn reports whether the statement agrees with its speaker's
// own label under a: a truth-teller must utter a true statement, a liar
// a false one.
func ConsistentOn(s Statement, a bitset.Set) bool {
	return s.TrueOn(a) == a.Has(s.Context().Speaker)
}

// An identity assertion: "subject is a truth-teller" (or a liar).
type identity struct {
	ctx      Context
	subject  int
	truthful bool
}

// Identity builds the atomic assertion that the given character is a
// truth-teller (truthful) or a liar (!truthful).
func Identity(ctx Context, subject int, truthful bool) Statement {
	return identity{ctx: ctx, subject: subject, truthful: truthful}
}

func (s identity) TrueOn(a bitset.Set) bool { return a.Has(s.subject) == s.truthful }
func (s identity) Context() Context         { return s.ctx }
func (s identity) Predicate() (bool, bool)  { return s.truthful, true }

func (s identity) appendSubjects(dst []bitset.Set) []bitset.Set {
	return append(dst, bitset.Set(0).With(s.subject))
}

// A count assertion: "among subjects, the number of liars is one of the
// counts allowed by the mask".
type count struct {
	ctx      Context
	subjects bitset.Set
	// allowed has one bit per possible liar count, from 0 to the size
	// of the subject group. A single representation covers "exactly k",
	// "at least k", "at most k" and arbitrary disjunctions of counts.
	allowed bitset.Set
}

// Count builds the atomic assertion that the number of liars among
// subjects is one of the set bits of allowed.
func Count(ctx Context, subjects, allowed bitset.Set) Statement {
	return count{ctx: ctx, subjects: subjects, allowed: allowed}
}

func (s count) TrueOn(a bitset.Set) bool {
	return s.allowed.Has(s.subjects.Without(a).Count())
}

func (s count) Context() Context        { return s.ctx }
func (s count) Predicate() (bool, bool) { return false, false }

func (s count) appendSubjects(dst []bitset.Set) []bitset.Set {
	return append(dst, s.subjects)
}

type conj struct {
	ctx         Context
	left, right Statement
}

// And builds the conjunction of two substatements.
func And(ctx Context, left, right Statement) Statement {
	return conj{ctx: ctx, left: left, right: right}
}

func (s conj) TrueOn(a bitset.Set) bool { return s.left.TrueOn(a) && s.right.TrueOn(a) }
func (s conj) Context() Context         { return s.ctx }
func (s conj) Predicate() (bool, bool)  { return false, false }

func (s conj) appendSubjects(dst []bitset.Set) []bitset.Set {
	return s.right.appendSubjects(s.left.appendSubjects(dst))
}

type disj struct {
	ctx         Context
	left, right Statement
}

// Or builds the disjunction of two substatements.
func Or(ctx Context, left, right Statement) Statement {
	return disj{ctx: ctx, left: left, right: right}
}

func (s disj) TrueOn(a bitset.Set) bool { return s.left.TrueOn(a) || s.right.TrueOn(a) }
func (s disj) Context() Context         { return s.ctx }
func (s disj) Predicate() (bool, bool)  { return false, false }

func (s disj) appendSubjects(dst []bitset.Set) []bitset.Set {
	return s.right.appendSubjects(s.left.appendSubjects(dst))
}

// A material conditional: "if ante, then cons".
type cond struct {
	ctx        Context
	ante, cons Statement
}

// If builds the material conditional with the given antecedent and
// consequent.
func If(ctx Context, ante, cons Statement) Statement {
	return cond{ctx: ctx, ante: ante, cons: cons}
}

func (s cond) TrueOn(a bitset.Set) bool { return !s.ante.TrueOn(a) || s.cons.TrueOn(a) }
func (s cond) Context() Context         { return s.ctx }
func (s cond) Predicate() (bool, bool)  { return false, false }

func (s cond) appendSubjects(dst []bitset.Set) []bitset.Set {
	return s.cons.appendSubjects(s.ante.appendSubjects(dst))
}

// A negation. Purely structural: the generator never produces one
// directly, it only exists so that rejection checks and callers can
// negate a statement.
type neg struct {
	sub Statement
}

// Not builds the negation of a statement.
func Not(sub Statement) Statement {
	return neg{sub: sub}
}

func (s neg) TrueOn(a bitset.Set) bool { return !s.sub.TrueOn(a) }
func (s neg) Context() Context         { return s.sub.Context() }
func (s neg) Predicate() (bool, bool)  { return false, false }

func (s neg) appendSubjects(dst []bitset.Set) []bitset.Set {
	return s.sub.appendSubjects(dst)
}
