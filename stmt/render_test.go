package stmt

import "testing"

func TestRenderIdentity(t *testing.T) {
	formal := NewContext(3, 0)
	plain := formal
	plain.Plain = true
	tests := []struct {
		name string
		s    Statement
		want string
	}{
		{"formal liar", Identity(formal, 1, false), "Bob is a liar."},
		{"formal truth-teller", Identity(formal, 2, true), "Carol is a truth-teller."},
		{"plain liar", Identity(plain, 1, false), "Bob lies."},
		{"plain truth-teller", Identity(plain, 2, true), "Carol tells the truth."},
		{"formal self", Identity(formal, 0, true), "I am a truth-teller."},
		{"plain self", Identity(plain, 0, false), "I lie."},
	}
	for _, tt := range tests {
		if got := tt.s.Text(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRenderPrecondition(t *testing.T) {
	formal := NewContext(3, 0)
	plain := formal
	plain.Plain = true

	sub := formal.child()
	s := And(formal, Identity(sub, 2, false), Identity(sub.withPrecondition(false), 1, false))
	if got, want := s.Text(), "Carol is a liar and so is Bob."; got != want {
		t.Errorf("formal conjunction: got %q, want %q", got, want)
	}

	sub = plain.child()
	s = And(plain, Identity(sub, 2, false), Identity(sub.withPrecondition(false), 1, false))
	if got, want := s.Text(), "Carol lies and so does Bob."; got != want {
		t.Errorf("plain conjunction: got %q, want %q", got, want)
	}

	// A precondition asserting the opposite value must not shorten the
	// clause.
	sub = formal.child()
	s = And(formal, Identity(sub, 2, false), Identity(sub.withPrecondition(true), 1, false))
	if got, want := s.Text(), "Carol is a liar and Bob is a liar."; got != want {
		t.Errorf("opposite precondition: got %q, want %q", got, want)
	}

	// The speaker shortens to the right verb form.
	sub = plain.child()
	s = If(plain, Identity(sub, 1, true), Identity(sub.withPrecondition(true), 0, true))
	if got, want := s.Text(), "If Bob tells the truth, then so do I."; got != want {
		t.Errorf("conditional with self consequent: got %q, want %q", got, want)
	}
}

func TestRenderCount(t *testing.T) {
	formal := NewContext(4, 0)
	plain := formal
	plain.Plain = true
	tests := []struct {
		name string
		s    Statement
		want string
	}{
		{"formal exactly one", Count(formal, 0b0110, 0b010), "Among Bob and Carol, there is exactly one liar."},
		{"formal no liars", Count(formal, 0b0110, 0b001), "Among Bob and Carol, there are no liars."},
		{"formal at least one with self", Count(formal, 0b0011, 0b110), "Among Bob and me, there is at least one liar."},
		{"formal at most two", Count(formal, 0b1110, 0b0111), "Among Bob, Carol and Dave, there are at most two liars."},
		{"formal enumerated", Count(formal, 0b0110, 0b101), "Among Bob and Carol, the number of liars is either zero or two."},
		{"plain exactly two", Count(plain, 0b1110, 0b100), "Exactly two of Bob, Carol and Dave are liars."},
		{"plain none", Count(plain, 0b1010, 0b001), "None of Bob and Dave is a liar."},
		{"plain at least two", Count(plain, 0b1110, 0b1100), "At least two of Bob, Carol and Dave are liars."},
		{"plain at most one with self", Count(plain, 0b0101, 0b011), "At most one of Carol and me is a liar."},
		{"plain enumerated", Count(plain, 0b1110, 0b1010), "Either one or three of Bob, Carol and Dave are liars."},
	}
	for _, tt := range tests {
		if got := tt.s.Text(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRenderConnectives(t *testing.T) {
	formal := NewContext(3, 0)
	sub := formal.child()

	s := Or(formal, Identity(sub, 1, false), Identity(sub, 2, true))
	if got, want := s.Text(), "Either Bob is a liar or Carol is a truth-teller."; got != want {
		t.Errorf("root disjunction: got %q, want %q", got, want)
	}

	s = If(formal, Identity(sub, 1, false), Identity(sub, 2, true))
	if got, want := s.Text(), "If Bob is a liar, then Carol is a truth-teller."; got != want {
		t.Errorf("conditional: got %q, want %q", got, want)
	}

	// Non-root disjunctions drop the "either".
	s = If(formal, Or(sub, Identity(sub, 1, false), Identity(sub, 2, false)), Identity(sub, 0, true))
	if got, want := s.Text(), "If Bob is a liar or Carol is a liar, then I am a truth-teller."; got != want {
		t.Errorf("nested disjunction: got %q, want %q", got, want)
	}

	s = Not(Identity(formal, 1, true))
	if got, want := s.Text(), "It is not true that Bob is a truth-teller."; got != want {
		t.Errorf("negation: got %q, want %q", got, want)
	}
}

func TestRenderEmptyCountMask(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("rendering a count with an empty mask should panic")
		}
	}()
	Count(NewContext(3, 0), 0b110, 0).Text()
}

func TestName(t *testing.T) {
	if got := Name(0); got != "Alice" {
		t.Errorf("Name(0): got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Name(8) should panic")
		}
	}()
	Name(8)
}
