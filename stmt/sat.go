package stmt

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/knavesat/knavesat/bitset"
)

// Models returns every assignment under which all the given statements
// are simultaneously consistent with their speakers. It computes the
// same set as brute-force enumeration, but through a SAT solver: the
// statements are compiled into a gini circuit and the models are
// enumerated with blocking clauses. It exists to cross-check the
// enumeration solver, not to replace it.
//
// All statements must share the same character count.
func Models(stmts []Statement) []bitset.Set {
	if len(stmts) == 0 {
		return nil
	}
	nb := stmts[0].Context().Characters
	c := logic.NewCCap(64 * nb)
	chars := make([]z.Lit, nb)
	for i := range chars {
		chars[i] = c.Lit()
	}
	root := c.T
	for _, s := range stmts {
		f := compile(s, c, chars)
		speaker := chars[s.Context().Speaker]
		// Consistency: the statement's truth-value equals the
		// speaker's own label.
		agree := c.Or(c.And(f, speaker), c.And(f.Not(), speaker.Not()))
		root = c.And(root, agree)
	}
	g := gini.New()
	c.ToCnf(g)
	var res []bitset.Set
	for {
		g.Assume(root)
		if g.Solve() != 1 {
			return res
		}
		values := make([]bool, nb)
		var a bitset.Set
		for i, m := range chars {
			values[i] = g.Value(m)
			if values[i] {
				a = a.With(i)
			}
		}
		res = append(res, a)
		// Block this model and look for another one.
		for i, m := range chars {
			if values[i] {
				g.Add(m.Not())
			} else {
				g.Add(m)
			}
		}
		g.Add(z.LitNull)
	}
}

// compile translates a statement into a literal of the circuit c, with
// one input literal per character.
func compile(s Statement, c *logic.C, chars []z.Lit) z.Lit {
	switch s := s.(type) {
	case identity:
		m := chars[s.subject]
		if !s.truthful {
			m = m.Not()
		}
		return m
	case count:
		members := s.subjects.Members(len(chars))
		liars := make([]z.Lit, len(members))
		for i, idx := range members {
			liars[i] = chars[idx].Not()
		}
		sort := c.CardSort(liars)
		res := c.F
		for m := 0; m <= len(members); m++ {
			if !s.allowed.Has(m) {
				continue
			}
			exact := sort.Leq(m)
			if m > 0 {
				exact = c.And(exact, sort.Leq(m-1).Not())
			}
			res = c.Or(res, exact)
		}
		return res
	case conj:
		return c.And(compile(s.left, c, chars), compile(s.right, c, chars))
	case disj:
		return c.Or(compile(s.left, c, chars), compile(s.right, c, chars))
	case cond:
		return c.Or(compile(s.ante, c, chars).Not(), compile(s.cons, c, chars))
	case neg:
		return compile(s.sub, c, chars).Not()
	default:
		panic("stmt: unknown statement variant")
	}
}
