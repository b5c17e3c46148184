package effect_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmingruby/adequate/effect"
	"github.com/charmingruby/adequate/fp"
)

var _ fp.Monad[int, effect.IO[int]] = effect.IO[int]{}

func counter() (effect.IO[int], *int) {
	calls := 0
	return effect.New(func() int {
		calls++
		return calls
	}), &calls
}

func TestBuildingDoesNotRun(t *testing.T) {
	io, calls := counter()
	mapped := effect.Map(io, func(v int) int { return v * 10 })
	chained := effect.Chain(mapped, func(v int) effect.IO[string] {
		return effect.Of(strings.Repeat("x", v))
	})
	joined := effect.Join(effect.Of(io))
	_ = effect.Ap(effect.Of(func(v int) int { return v }), io)
	_ = effect.Tap(io, func(int) {})
	_ = io.Chain(func(v int) effect.IO[int] { return effect.Of(v) })
	if *calls != 0 {
		t.Fatalf("building a pipeline must not run it, got %d calls", *calls)
	}
	if got := chained.Run(); got != strings.Repeat("x", 10) {
		t.Fatalf("unexpected result %q", got)
	}
	if *calls != 1 {
		t.Fatalf("expected one run, got %d", *calls)
	}
	if joined.Run() != 2 {
		t.Fatalf("join should run the inner computation when forced")
	}
}

func TestRunRerunsComputation(t *testing.T) {
	io, calls := counter()
	doubled := io.Map(func(v int) int { return v * 2 })
	if doubled.Run() != 2 || doubled.Run() != 4 {
		t.Fatalf("each Run should re-run the computation")
	}
	if *calls != 2 {
		t.Fatalf("expected 2 calls, got %d", *calls)
	}
}

func TestFunctorAndMonadLaws(t *testing.T) {
	inc := func(v int) int { return v + 1 }
	dbl := func(v int) int { return v * 2 }
	base := effect.Of(20)
	if effect.Map(base, fp.Identity[int]).Run() != base.Run() {
		t.Fatalf("identity law failed")
	}
	if effect.Map(effect.Map(base, inc), dbl).Run() != effect.Map(base, fp.Compose(dbl, inc)).Run() {
		t.Fatalf("composition law failed")
	}
	f := func(v int) effect.IO[int] { return effect.Of(v - 3) }
	g := func(v int) effect.IO[int] { return effect.Of(v * 7) }
	if effect.Chain(effect.Of(5), f).Run() != f(5).Run() {
		t.Fatalf("left identity failed")
	}
	if effect.Chain(base, effect.Of[int]).Run() != base.Run() {
		t.Fatalf("right identity failed")
	}
	left := effect.Chain(effect.Chain(base, f), g)
	right := effect.Chain(base, func(v int) effect.IO[int] { return effect.Chain(f(v), g) })
	if left.Run() != right.Run() {
		t.Fatalf("associativity failed")
	}
}

func TestApplicativeRunsInOrder(t *testing.T) {
	var trace []string
	step := func(name string, v int) effect.IO[int] {
		return effect.New(func() int {
			trace = append(trace, name)
			return v
		})
	}
	sum := effect.Lift2(fp.Curry2(func(a, b int) int { return a + b }), step("a", 2), step("b", 3))
	if sum.Run() != 5 {
		t.Fatalf("unexpected sum")
	}
	if strings.Join(trace, ",") != "a,b" {
		t.Fatalf("unexpected order %v", trace)
	}
	if effect.Ap(effect.Of(func(v int) int { return -v }), effect.Of(3)).Run() != -3 {
		t.Fatalf("ap mismatch")
	}
	if effect.Of(3).Chain(func(v int) effect.IO[int] { return effect.Of(v + 1) }).Run() != 4 {
		t.Fatalf("method chain mismatch")
	}
}

func TestAttemptReadsFileLazily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	read := effect.Attempt(func() ([]byte, error) { return os.ReadFile(path) })
	if !read.Run().IsLeft() {
		t.Fatalf("expected Left before the file exists")
	}
	if err := os.WriteFile(path, []byte("[core]\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	contents, ok := read.Run().RightValue()
	if !ok || string(contents) != "[core]\n" {
		t.Fatalf("expected file contents on re-run, got %q", contents)
	}
	failing := effect.Attempt(func() (int, error) { return 0, errors.New("boom") })
	if v, _ := failing.Run().LeftValue(); v == nil || v.Error() != "boom" {
		t.Fatalf("expected boom")
	}
}

func TestTapAndString(t *testing.T) {
	seen := 0
	io := effect.Tap(effect.Of(4), func(v int) { seen = v })
	if io.String() != "IO(?)" || seen != 0 {
		t.Fatalf("tap must stay deferred")
	}
	if io.Run() != 4 || seen != 4 {
		t.Fatalf("tap should observe the value")
	}
}

func TestUsageErrorsPanic(t *testing.T) {
	cases := map[string]func(){
		"zero run":    func() { effect.IO[int]{}.Run() },
		"nil new":     func() { effect.New[int](nil) },
		"nil attempt": func() { effect.Attempt[int](nil) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn()
		})
	}
}
