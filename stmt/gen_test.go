package stmt

import (
	"math/rand"
	"testing"

	"github.com/knavesat/knavesat/bitset"
)

func testGen() *Gen {
	return NewGen(rand.New(rand.NewSource(1)))
}

// checkInformative asserts the rejection discipline held for every node
// of a generated statement.
func checkInformative(t *testing.T, s Statement) {
	t.Helper()
	switch s := s.(type) {
	case identity:
	case count:
		if s.subjects.Count() < 2 {
			t.Errorf("count assertion about fewer than two subjects: %q", s.Text())
		}
		full := bitset.Universe(s.subjects.Count() + 1)
		if s.allowed == 0 || s.allowed == full {
			t.Errorf("degenerate count mask %b in %q", s.allowed, s.Text())
		}
	case conj:
		if Implies(s.left, s) || Implies(s.right, s) {
			t.Errorf("conjunction with a redundant substatement: %q", s.Text())
		}
		if Tautology(Not(s)) {
			t.Errorf("unsatisfiable conjunction: %q", s.Text())
		}
		checkInformative(t, s.left)
		checkInformative(t, s.right)
	case disj:
		if Implies(s, s.left) || Implies(s, s.right) {
			t.Errorf("disjunction with a redundant substatement: %q", s.Text())
		}
		if Tautology(s) {
			t.Errorf("tautological disjunction: %q", s.Text())
		}
		checkInformative(t, s.left)
		checkInformative(t, s.right)
	case cond:
		if Implies(s, Not(s.ante)) {
			t.Errorf("conditional with a vacuous antecedent: %q", s.Text())
		}
		if Implies(s, s.cons) {
			t.Errorf("conditional collapsing to its consequent: %q", s.Text())
		}
		if Tautology(s) {
			t.Errorf("tautological conditional: %q", s.Text())
		}
		checkInformative(t, s.ante)
		checkInformative(t, s.cons)
	default:
		t.Fatalf("unexpected statement variant %T", s)
	}
}

func TestStatementInformative(t *testing.T) {
	g := testGen()
	for n := 2; n <= 5; n++ {
		for i := 0; i < 50; i++ {
			ctx := NewContext(n, i%n)
			ctx.Complexity = 1.5
			s := g.Statement(ctx)
			checkInformative(t, s)
			if bitset.Dup(s.appendSubjects(nil)) {
				t.Errorf("statement names the same subject group twice: %q", s.Text())
			}
		}
	}
}

func TestStatementLayerBound(t *testing.T) {
	g := testGen()
	ctx := NewContext(4, 0)
	ctx.Complexity = 2 // bias toward deep variants, the bound must still hold
	for i := 0; i < 50; i++ {
		switch g.statement(ctx, 0).(type) {
		case identity, count:
		default:
			t.Fatalf("layer 0 produced a compound statement")
		}
		switch g.statement(ctx, 1).(type) {
		case cond:
			t.Fatalf("layer 1 produced a conditional")
		default:
		}
	}
}

func TestStatementNoEligibleVariant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("an empty eligible variant set should panic")
		}
	}()
	testGen().statement(NewContext(3, 0), -1)
}

func TestStatementNonPositiveComplexity(t *testing.T) {
	ctx := NewContext(3, 0)
	ctx.Complexity = 0
	defer func() {
		if recover() == nil {
			t.Errorf("a non-positive complexity factor should panic")
		}
	}()
	testGen().Statement(ctx)
}

func TestSpin(t *testing.T) {
	g := testGen()
	g.MaxRetries = 5
	g.spin(4) // under the cap
	defer func() {
		if recover() == nil {
			t.Errorf("exceeding the retry cap should panic")
		}
	}()
	g.spin(5)
}

func TestStatementDeterministic(t *testing.T) {
	ctx := NewContext(4, 2)
	ctx.Complexity = 1.2
	first := NewGen(rand.New(rand.NewSource(7))).Statement(ctx).Text()
	second := NewGen(rand.New(rand.NewSource(7))).Statement(ctx).Text()
	if first != second {
		t.Errorf("same seed produced %q and %q", first, second)
	}
}
