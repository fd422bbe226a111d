// Package stmt implements the statement algebra of truth-teller / liar
// puzzles.
//
// A statement is a boolean expression tree uttered by one character about
// the truthfulness of the characters of the puzzle. Leaves either assert
// that one character is a truth-teller or a liar, or constrain the number
// of liars among a group of characters. Inner nodes combine substatements
// with negation, conjunction, disjunction and material implication.
//
// Every statement can be evaluated against a complete truth-assignment,
// a bit-vector with one bit per character (see package bitset). The
// character count is small enough that tautology and implication checks
// simply enumerate all assignments.
//
// Statements are built either by hand through the exported constructors,
// or through Gen, a weighted randomized generator that rejects degenerate
// candidates (internally redundant, unsatisfiable or trivially true
// statements) until an informative one is produced.
//
// The set of statement variants is closed: the Statement interface has an
// unexported method, so no variant can be added outside this package.
package stmt
