// Package identity implements the baseline container: a box around a single
// value exposing map, join, chain and ap. The other containers in this module
// mirror its contract.
//
// Example:
//
//	c := identity.Map(identity.Of("flamethrowers"), strings.ToUpper)
//	fmt.Println(c) // Container(FLAMETHROWERS)
package identity

import "fmt"

// Container holds exactly one value of type T. Operations never mutate a
// Container; they return new ones.
type Container[T any] struct {
	value T
}

// Of places value inside a Container.
func Of[T any](value T) Container[T] {
	return Container[T]{value: value}
}

// Value returns the held value.
func (c Container[T]) Value() T {
	return c.value
}

// Map applies fn to the held value, preserving its type. See the package
// level Map for type-changing transformations.
func (c Container[T]) Map(fn func(T) T) Container[T] {
	return Of(fn(c.value))
}

// Chain applies a Container-returning fn and returns its result.
func (c Container[T]) Chain(fn func(T) Container[T]) Container[T] {
	return fn(c.value)
}

// String implements fmt.Stringer for debugging.
func (c Container[T]) String() string {
	return fmt.Sprintf("Container(%v)", c.value)
}

// Map transforms the held value with fn.
func Map[A any, B any](c Container[A], fn func(A) B) Container[B] {
	return Of(fn(c.value))
}

// Join removes one level of nesting.
func Join[T any](c Container[Container[T]]) Container[T] {
	return c.value
}

// Chain maps with a Container-returning fn and flattens the result.
func Chain[A any, B any](c Container[A], fn func(A) Container[B]) Container[B] {
	return Join(Map(c, fn))
}

// Ap applies the function held by ff to the value held by c.
//
// Example:
//
//	add := func(a int) func(int) int { return func(b int) int { return a + b } }
//	five := identity.Ap(identity.Of(add(2)), identity.Of(3))
func Ap[A any, B any](ff Container[func(A) B], c Container[A]) Container[B] {
	return Map(c, ff.value)
}

// Lift2 applies a curried binary function to the values of two Containers.
func Lift2[A any, B any, C any](fn func(A) func(B) C, ca Container[A], cb Container[B]) Container[C] {
	return Ap(Map(ca, fn), cb)
}
