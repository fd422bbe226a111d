package stmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var names = []string{"Alice", "Bob", "Carol", "Dave", "Emma", "Frank", "Grace", "Hugo"}

var countWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight"}

// Name returns the display name of character i.
func Name(i int) string {
	if i < 0 || i >= len(names) {
		panic("stmt: no name for character index")
	}
	return names[i]
}

// sentence turns a bare clause into a full sentence when ctx marks the
// root of an utterance.
func sentence(ctx Context, clause string) string {
	if !ctx.Root {
		return clause
	}
	r, size := utf8.DecodeRuneInString(clause)
	return string(unicode.ToUpper(r)) + clause[size:] + "."
}

func (s identity) Text() string { return sentence(s.ctx, s.clause()) }

func (s identity) clause() string {
	self := s.subject == s.ctx.Speaker
	// A sibling clause already asserted the same value about another
	// character, so the full phrasing would be redundant.
	if p, ok := s.ctx.Precondition(); ok && p == s.truthful {
		switch {
		case self && s.ctx.Plain:
			return "so do I"
		case self:
			return "so am I"
		case s.ctx.Plain:
			return "so does " + Name(s.subject)
		default:
			return "so is " + Name(s.subject)
		}
	}
	if s.ctx.Plain {
		if self {
			if s.truthful {
				return "I tell the truth"
			}
			return "I lie"
		}
		if s.truthful {
			return Name(s.subject) + " tells the truth"
		}
		return Name(s.subject) + " lies"
	}
	kind := "a liar"
	if s.truthful {
		kind = "a truth-teller"
	}
	if self {
		return "I am " + kind
	}
	return Name(s.subject) + " is " + kind
}

func (s count) Text() string { return sentence(s.ctx, s.clause()) }

func (s count) clause() string {
	group := s.groupList()
	size := s.subjects.Count()
	counts := s.allowed.Members(size + 1)
	if len(counts) == 0 {
		panic("stmt: count assertion with an empty count mask")
	}
	first, last := counts[0], counts[len(counts)-1]
	contiguous := len(counts) == last-first+1
	switch {
	case len(counts) == 1:
		return s.exactly(group, first)
	case contiguous && first > 0 && last == size:
		return s.atLeast(group, first)
	case contiguous && first == 0 && last < size:
		return s.atMost(group, last)
	default:
		return s.oneOf(group, counts)
	}
}

func (s count) exactly(group string, m int) string {
	if s.ctx.Plain {
		switch m {
		case 0:
			return "none of " + group + " is a liar"
		case 1:
			return "exactly one of " + group + " is a liar"
		default:
			return "exactly " + countWords[m] + " of " + group + " are liars"
		}
	}
	switch m {
	case 0:
		return "among " + group + ", there are no liars"
	case 1:
		return "among " + group + ", there is exactly one liar"
	default:
		return "among " + group + ", there are exactly " + countWords[m] + " liars"
	}
}

func (s count) atLeast(group string, m int) string {
	if s.ctx.Plain {
		if m == 1 {
			return "at least one of " + group + " is a liar"
		}
		return "at least " + countWords[m] + " of " + group + " are liars"
	}
	if m == 1 {
		return "among " + group + ", there is at least one liar"
	}
	return "among " + group + ", there are at least " + countWords[m] + " liars"
}

func (s count) atMost(group string, m int) string {
	if s.ctx.Plain {
		if m == 1 {
			return "at most one of " + group + " is a liar"
		}
		return "at most " + countWords[m] + " of " + group + " are liars"
	}
	if m == 1 {
		return "among " + group + ", there is at most one liar"
	}
	return "among " + group + ", there are at most " + countWords[m] + " liars"
}

func (s count) oneOf(group string, counts []int) string {
	words := make([]string, len(counts))
	for i, m := range counts {
		words[i] = countWords[m]
	}
	choice := strings.Join(words, " or ")
	if s.ctx.Plain {
		return "either " + choice + " of " + group + " are liars"
	}
	return "among " + group + ", the number of liars is either " + choice
}

// groupList renders the subject group as an enumeration of names, with
// the speaker, when present, placed last as "me".
func (s count) groupList() string {
	var parts []string
	self := false
	for _, i := range s.subjects.Members(s.ctx.Characters) {
		if i == s.ctx.Speaker {
			self = true
			continue
		}
		parts = append(parts, Name(i))
	}
	if self {
		parts = append(parts, "me")
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

func (s conj) Text() string { return sentence(s.ctx, s.clause()) }

func (s conj) clause() string {
	return s.left.clause() + " and " + s.right.clause()
}

func (s disj) Text() string { return sentence(s.ctx, s.clause()) }

func (s disj) clause() string {
	clause := s.left.clause() + " or " + s.right.clause()
	if s.ctx.Root {
		return "either " + clause
	}
	return clause
}

func (s cond) Text() string { return sentence(s.ctx, s.clause()) }

func (s cond) clause() string {
	return "if " + s.ante.clause() + ", then " + s.cons.clause()
}

func (s neg) Text() string { return sentence(s.Context(), s.clause()) }

func (s neg) clause() string {
	return "it is not true that " + s.sub.clause()
}
