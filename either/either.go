// Package either implements a disjoint two-variant container. Left carries a
// recoverable failure, Right carries success, and Map only touches Right.
//
// Example:
//
//	age := either.Map(parseBirthDate(input), func(born time.Time) int {
//		return yearsBetween(born, now)
//	})
//	msg := either.Fold(age,
//		func(err string) string { return "error: " + err },
//		func(years int) string { return fmt.Sprintf("%d years", years) },
//	)
//
// Either combinators uphold Functor/Monad laws (see laws_either_test.go).
package either

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// Either holds a Left value of type L or a Right value of type R, never both.
// The zero value is Left holding the zero L.
type Either[L any, R any] struct {
	left    L
	right   R
	isRight bool
}

// Of wraps a bare value as Right. A value is a success unless it is
// explicitly built with Left; the payload shape is never inspected.
func Of[L any, R any](value R) Either[L, R] {
	return Right[L](value)
}

// Right constructs the success variant.
func Right[L any, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// Left constructs the failure variant.
func Left[L any, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Try converts a standard Go (value, error) pair to an Either. A nil error
// yields Right regardless of value.
//
// Example:
//
//	port := either.Try(strconv.Atoi(raw))
func Try[R any](value R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](value)
}

// FromResult converts a samber/mo Result.
func FromResult[R any](res mo.Result[R]) Either[error, R] {
	value, err := res.Get()
	return Try(value, err)
}

// FromMo converts a samber/mo Either.
func FromMo[L any, R any](e mo.Either[L, R]) Either[L, R] {
	if right, ok := e.Right(); ok {
		return Right[L](right)
	}
	left, _ := e.Left()
	return Left[L, R](left)
}

// IsLeft reports whether e holds the failure variant.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether e holds the success variant.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the Left payload and whether e is Left.
func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, !e.isRight
}

// RightValue returns the Right payload and whether e is Right.
func (e Either[L, R]) RightValue() (R, bool) {
	return e.right, e.isRight
}

// GetOrElse returns the Right payload or fallback.
func (e Either[L, R]) GetOrElse(fallback R) R {
	if e.isRight {
		return e.right
	}
	return fallback
}

// Map applies fn to a Right payload, preserving its type.
func (e Either[L, R]) Map(fn func(R) R) Either[L, R] {
	return Map(e, fn)
}

// Chain applies an Either-returning fn to a Right payload.
func (e Either[L, R]) Chain(fn func(R) Either[L, R]) Either[L, R] {
	if !e.isRight {
		return e
	}
	return fn(e.right)
}

// ToMo converts e into a samber/mo Either.
func (e Either[L, R]) ToMo() mo.Either[L, R] {
	if e.isRight {
		return mo.Right[L](e.right)
	}
	return mo.Left[L, R](e.left)
}

// String implements fmt.Stringer for debugging.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// ToResult converts an error-carrying Either into a samber/mo Result. A Left
// holding a nil error is reported as a descriptive error rather than success.
func ToResult[R any](e Either[error, R]) mo.Result[R] {
	if e.isRight {
		return mo.Ok(e.right)
	}
	err := e.left
	if err == nil {
		err = errors.New("either: nil error in Left")
	}
	return mo.Err[R](err)
}

// Fold eliminates e by applying onLeft or onRight to the active payload and
// returning the handler's result as is.
func Fold[L any, R any, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Match is Fold in curried, subject-last form for use in pipelines.
//
// Example:
//
//	render := fp.Compose2(
//		either.Match(func(err string) string { return err }, strconv.Itoa),
//		getAge(now),
//	)
func Match[L any, R any, U any](onLeft func(L) U, onRight func(R) U) func(Either[L, R]) U {
	return func(e Either[L, R]) U {
		return Fold(e, onLeft, onRight)
	}
}

// Map transforms a Right payload; a Left passes through unchanged.
func Map[L any, R any, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MapLeft transforms a Left payload; a Right passes through unchanged.
func MapLeft[L any, R any, M any](e Either[L, R], fn func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](fn(e.left))
}

// Bimap transforms whichever payload is active.
func Bimap[L any, R any, M any, U any](e Either[L, R], onLeft func(L) M, onRight func(R) U) Either[M, U] {
	if e.isRight {
		return Right[M](onRight(e.right))
	}
	return Left[M, U](onLeft(e.left))
}

// Join removes one level of nesting from the Right side.
func Join[L any, R any](e Either[L, Either[L, R]]) Either[L, R] {
	if e.isRight {
		return e.right
	}
	return Left[L, R](e.left)
}

// Chain maps with an Either-returning fn and flattens the result, propagating
// the first Left.
func Chain[L any, R any, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	return Join(Map(e, fn))
}

// Ap applies the function held by ef to the payload of e. The first Left wins.
func Ap[L any, A any, B any](ef Either[L, func(A) B], e Either[L, A]) Either[L, B] {
	if !ef.isRight {
		return Left[L, B](ef.left)
	}
	return Map(e, ef.right)
}

// Lift2 applies a curried binary function to the Right payloads of two Eithers.
func Lift2[L any, A any, B any, C any](fn func(A) func(B) C, ea Either[L, A], eb Either[L, B]) Either[L, C] {
	return Ap(Map(ea, fn), eb)
}
