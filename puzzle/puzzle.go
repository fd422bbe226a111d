// Package puzzle assembles finished truth-teller / liar puzzles: one
// statement per character, exactly one consistent assignment, and a
// total rendered length inside a complexity-dependent band.
package puzzle

import (
	"github.com/knavesat/knavesat/bitset"
	"github.com/knavesat/knavesat/stmt"
)

// A Puzzle is a finished, frozen puzzle: one statement per character and
// the single assignment consistent with all of them.
type Puzzle struct {
	Statements []stmt.Statement
	Solution   bitset.Set
}

// Characters returns the number of characters in the puzzle.
func (p *Puzzle) Characters() int {
	return len(p.Statements)
}

// Texts returns the rendered sentence of each statement, in speaker
// order.
func (p *Puzzle) Texts() []string {
	res := make([]string, len(p.Statements))
	for i, s := range p.Statements {
		res[i] = s.Text()
	}
	return res
}

// Check evaluates a guessed assignment and reports, per speaker, whether
// the speaker's statement is consistent with the guess. A correct guess
// yields all true; the false entries of a wrong guess are the statements
// contradicting it.
func (p *Puzzle) Check(guess bitset.Set) []bool {
	res := make([]bool, len(p.Statements))
	for i, s := range p.Statements {
		res[i] = stmt.ConsistentOn(s, guess)
	}
	return res
}

// Solutions returns every assignment consistent with all statements, by
// brute force over the 2^n assignment space. A well-formed puzzle yields
// exactly one; zero means the statements contradict each other, more
// than one means they underconstrain the characters.
func Solutions(stmts []stmt.Statement) []bitset.Set {
	if len(stmts) == 0 {
		return nil
	}
	var res []bitset.Set
	for a, top := bitset.Set(0), bitset.Universe(stmts[0].Context().Characters); a <= top; a++ {
		consistent := true
		for _, s := range stmts {
			if !stmt.ConsistentOn(s, a) {
				consistent = false
				break
			}
		}
		if consistent {
			res = append(res, a)
		}
	}
	return res
}
