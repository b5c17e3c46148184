package identity_test

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/charmingruby/adequate/fp"
	"github.com/charmingruby/adequate/identity"
)

var _ fp.Monad[int, identity.Container[int]] = identity.Container[int]{}

func TestContainerFunctorLaws(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }
	check := func(value int) bool {
		c := identity.Of(value)
		idMapped := c.Map(fp.Identity[int])
		left := identity.Map(identity.Map(c, inc), dbl)
		right := identity.Map(c, fp.Compose(dbl, inc))
		return idMapped.Value() == c.Value() && left.Value() == right.Value()
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor law failed: %v", err)
	}
}

func TestContainerMonadLaws(t *testing.T) {
	f := func(x int) identity.Container[int] { return identity.Of(x - 4) }
	g := func(x int) identity.Container[int] { return identity.Of(x * 3) }
	check := func(value int) bool {
		m := identity.Of(value)
		leftIdentity := identity.Chain(identity.Of(value), f).Value() == f(value).Value()
		rightIdentity := identity.Chain(m, identity.Of[int]).Value() == m.Value()
		assoc := identity.Chain(identity.Chain(m, f), g).Value() ==
			identity.Chain(m, func(v int) identity.Container[int] { return identity.Chain(f(v), g) }).Value()
		return leftIdentity && rightIdentity && assoc
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("monad law failed: %v", err)
	}
}

func TestJoinAndChain(t *testing.T) {
	nested := identity.Of(identity.Of("inner"))
	if got := identity.Join(nested).Value(); got != "inner" {
		t.Fatalf("join mismatch %q", got)
	}
	length := identity.Chain(identity.Of("four"), func(s string) identity.Container[int] {
		return identity.Of(len(s))
	})
	if length.Value() != 4 {
		t.Fatalf("chain mismatch")
	}
	same := identity.Of(3).Chain(func(v int) identity.Container[int] { return identity.Of(v + 2) })
	if same.Value() != 5 {
		t.Fatalf("method chain mismatch")
	}
}

func TestApplicative(t *testing.T) {
	add := fp.Curry2(func(a, b int) int { return a + b })
	if got := identity.Ap(identity.Of(add(2)), identity.Of(3)).Value(); got != 5 {
		t.Fatalf("ap mismatch %d", got)
	}
	if got := identity.Lift2(add, identity.Of(2), identity.Of(3)).Value(); got != 5 {
		t.Fatalf("lift2 mismatch %d", got)
	}
	neg := identity.Of(func(v int) int { return -v })
	if got := identity.Ap(neg, identity.Of(4)).Value(); got != -4 {
		t.Fatalf("ap mismatch %d", got)
	}
	if got := identity.Map(identity.Of("flamethrowers"), strings.ToUpper).String(); got != "Container(FLAMETHROWERS)" {
		t.Fatalf("unexpected string %q", got)
	}
}
