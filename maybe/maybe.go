// Package maybe implements an optional-value container. Absence is a distinct
// tag, never a zero value, and Map/Chain over Nothing stay Nothing.
//
// Example:
//
//	street := maybe.Chain(maybe.Just(user), func(u User) maybe.Maybe[string] {
//		if len(u.Addresses) == 0 {
//			return maybe.Nothing[string]()
//		}
//		return maybe.Just(u.Addresses[0].Street)
//	})
package maybe

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/charmingruby/adequate/either"
)

// Maybe represents presence or absence of a value of type T. The zero value is
// Nothing, so Maybes can be embedded safely. Values are stored inline, which
// makes Just(nil) valid for nil-capable types; use IsJust to distinguish an
// explicit nil from absence.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just constructs a Maybe holding value.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, ok: true}
}

// Nothing constructs an empty Maybe for the provided type.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromOk constructs a Maybe from a value and ok flag, mirroring Go's common
// multi-return patterns (e.g. map lookups).
func FromOk[T any](value T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(value)
}

// FromPtr creates a Maybe from a pointer, treating nil as Nothing.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Nothing[T]()
	}
	return Just(*ptr)
}

// FromOption converts a samber/mo Option.
func FromOption[T any](opt mo.Option[T]) Maybe[T] {
	value, ok := opt.Get()
	return FromOk(value, ok)
}

// FromEither keeps the Right value of e and drops a Left.
func FromEither[L any, R any](e either.Either[L, R]) Maybe[R] {
	value, ok := e.RightValue()
	return FromOk(value, ok)
}

// IsJust reports true when the Maybe holds a value (even if that value is nil).
func (m Maybe[T]) IsJust() bool {
	return m.ok
}

// IsNothing reports true when the Maybe is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.ok
}

// Get returns the held value along with a boolean indicating whether it was
// present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// UnsafeGet returns the held value or panics when the Maybe is Nothing.
func (m Maybe[T]) UnsafeGet() T {
	if !m.ok {
		panic("maybe: UnsafeGet on Nothing")
	}
	return m.value
}

// GetOrElse returns the held value when present, otherwise fallback.
func (m Maybe[T]) GetOrElse(fallback T) T {
	if m.ok {
		return m.value
	}
	return fallback
}

// GetOrElseFunc behaves like GetOrElse but evaluates the fallback only when
// necessary.
func (m Maybe[T]) GetOrElseFunc(fn func() T) T {
	if m.ok {
		return m.value
	}
	return fn()
}

// Filter keeps the value when predicate returns true, otherwise it becomes
// Nothing.
func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if m.ok && predicate(m.value) {
		return m
	}
	return Nothing[T]()
}

// ToOption converts the Maybe into a samber/mo Option.
func (m Maybe[T]) ToOption() mo.Option[T] {
	return mo.TupleToOption(m.value, m.ok)
}

// Map applies fn to the held value, preserving its type.
func (m Maybe[T]) Map(fn func(T) T) Maybe[T] {
	return Map(m, fn)
}

// Chain applies a Maybe-returning fn to the held value.
func (m Maybe[T]) Chain(fn func(T) Maybe[T]) Maybe[T] {
	if !m.ok {
		return m
	}
	return fn(m.value)
}

// String implements fmt.Stringer for debugging.
func (m Maybe[T]) String() string {
	if m.ok {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// Fold collapses the Maybe into a single value by selecting onNothing when the
// Maybe is empty or applying onJust to the held value.
func Fold[T any, U any](m Maybe[T], onNothing func() U, onJust func(T) U) U {
	if m.ok {
		return onJust(m.value)
	}
	return onNothing()
}

// Map transforms the held value with fn when present.
func Map[T any, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.ok {
		return Just(fn(m.value))
	}
	return Nothing[U]()
}

// Join removes one level of nesting. Nothing and Just(Nothing) both flatten
// to Nothing.
func Join[T any](m Maybe[Maybe[T]]) Maybe[T] {
	if m.ok {
		return m.value
	}
	return Nothing[T]()
}

// Chain maps with a Maybe-returning fn and flattens the result.
func Chain[T any, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	return Join(Map(m, fn))
}

// Ap applies the function held by mf to the value held by m. The result is
// Nothing when either side is Nothing.
func Ap[A any, B any](mf Maybe[func(A) B], m Maybe[A]) Maybe[B] {
	if !mf.ok {
		return Nothing[B]()
	}
	return Map(m, mf.value)
}

// Lift2 applies a curried binary function to the values of two Maybes.
func Lift2[A any, B any, C any](fn func(A) func(B) C, ma Maybe[A], mb Maybe[B]) Maybe[C] {
	return Ap(Map(ma, fn), mb)
}

// Tap calls fn with the held value, if any, and returns m unchanged.
func Tap[T any](m Maybe[T], fn func(T)) Maybe[T] {
	if m.ok {
		fn(m.value)
	}
	return m
}

// Sequence turns a slice of Maybes into a Maybe of a slice, which is Nothing
// as soon as any element is Nothing.
func Sequence[T any](items []Maybe[T]) Maybe[[]T] {
	values := make([]T, 0, len(items))
	for _, item := range items {
		if !item.ok {
			return Nothing[[]T]()
		}
		values = append(values, item.value)
	}
	return Just(values)
}

// Traverse maps items to Maybes and sequences them.
func Traverse[A any, B any](items []A, fn func(A) Maybe[B]) Maybe[[]B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		m := fn(item)
		if !m.ok {
			return Nothing[[]B]()
		}
		values = append(values, m.value)
	}
	return Just(values)
}

// ToEither converts the Maybe into an Either, using onNothing to build the
// Left value when the Maybe is empty.
func ToEither[L any, T any](m Maybe[T], onNothing func() L) either.Either[L, T] {
	if m.ok {
		return either.Right[L](m.value)
	}
	return either.Left[L, T](onNothing())
}
