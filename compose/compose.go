// Package compose wraps a value nested in two containers, F<G<A>>, so a single
// Map reaches through both layers without flattening them.
//
// Go cannot abstract over type constructors, so the outer and inner map
// functions are passed explicitly. Any pair of containers from this module
// works without a dedicated nested type.
//
// Example:
//
//	c := compose.New(effect.Of(maybe.Just("Rock over London")))
//	heads := compose.Map(c,
//		effect.Map[maybe.Maybe[string], maybe.Maybe[int]],
//		maybe.Map[string, int],
//		func(s string) int { return len(s) },
//	)
//	fmt.Println(heads.Get().Run()) // Just(16)
package compose

import "fmt"

// Compose holds a doubly nested container value.
type Compose[FGA any] struct {
	fga FGA
}

// New wraps fga.
func New[FGA any](fga FGA) Compose[FGA] {
	return Compose[FGA]{fga: fga}
}

// Get returns the wrapped nested value.
func (c Compose[FGA]) Get() FGA {
	return c.fga
}

// String implements fmt.Stringer for debugging.
func (c Compose[FGA]) String() string {
	return fmt.Sprintf("Compose(%v)", c.fga)
}

// Map lifts fn through the inner container with inner and then through the
// outer container with outer. Each layer is traversed exactly once.
func Map[FGA any, FGB any, GA any, GB any, A any, B any](
	c Compose[FGA],
	outer func(FGA, func(GA) GB) FGB,
	inner func(GA, func(A) B) GB,
	fn func(A) B,
) Compose[FGB] {
	return New(outer(c.fga, func(ga GA) GB {
		return inner(ga, fn)
	}))
}
