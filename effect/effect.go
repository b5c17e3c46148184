// Package effect implements a deferred-effect container. An IO wraps a
// zero-argument computation; Map, Chain, Join and Ap only build new
// computations, and nothing runs until Run is called.
//
// Example:
//
//	readFile := func(name string) effect.IO[string] {
//		return effect.New(func() string {
//			data, _ := os.ReadFile(name)
//			return string(data)
//		})
//	}
//	firstLine := effect.Map(readFile("go.mod"), func(s string) string {
//		line, _, _ := strings.Cut(s, "\n")
//		return line
//	})
//	fmt.Println(firstLine.Run()) // the file is read here, and on every Run
package effect

import (
	"github.com/charmingruby/adequate/either"
	"github.com/charmingruby/adequate/fp"
)

// IO is a description of a computation producing T. The zero value has no
// computation and panics when run.
type IO[T any] struct {
	run func() T
}

// New wraps fn without invoking it. A nil fn is a programming error and
// panics immediately.
func New[T any](fn func() T) IO[T] {
	if fn == nil {
		panic("effect: New with nil computation")
	}
	return IO[T]{run: fn}
}

// Of lifts a plain value into an IO that performs no effect.
func Of[T any](value T) IO[T] {
	return New(fp.Constant(value))
}

// Attempt wraps a fallible computation so that running it yields an Either
// instead of an error pair.
//
// Example:
//
//	read := effect.Attempt(func() ([]byte, error) { return os.ReadFile(path) })
//	contents := read.Run() // either.Either[error, []byte]
func Attempt[T any](fn func() (T, error)) IO[either.Either[error, T]] {
	if fn == nil {
		panic("effect: Attempt with nil computation")
	}
	return New(func() either.Either[error, T] {
		value, err := fn()
		return either.Try(value, err)
	})
}

// Run forces the computation and returns its result. Each call re-runs the
// computation, including its side effects.
func (io IO[T]) Run() T {
	if io.run == nil {
		panic("effect: Run on zero IO")
	}
	return io.run()
}

// Map composes fn after the computation, preserving its type.
func (io IO[T]) Map(fn func(T) T) IO[T] {
	return Map(io, fn)
}

// Chain sequences an IO-returning fn after the computation.
func (io IO[T]) Chain(fn func(T) IO[T]) IO[T] {
	return New(func() T {
		return fn(io.Run()).Run()
	})
}

// String implements fmt.Stringer. The computation is opaque until run.
func (io IO[T]) String() string {
	return "IO(?)"
}

// Map returns an IO that runs io and then applies fn to its result.
func Map[A any, B any](io IO[A], fn func(A) B) IO[B] {
	return New(func() B {
		return fn(io.Run())
	})
}

// Join returns an IO that, when run, runs the outer computation and then the
// inner one it produced. Neither runs while joining.
func Join[T any](io IO[IO[T]]) IO[T] {
	return New(func() T {
		return io.Run().Run()
	})
}

// Chain maps with an IO-returning fn and flattens the result.
func Chain[A any, B any](io IO[A], fn func(A) IO[B]) IO[B] {
	return Join(Map(io, fn))
}

// Ap returns an IO that runs iof, then io, and applies the function to the
// value.
func Ap[A any, B any](iof IO[func(A) B], io IO[A]) IO[B] {
	return Chain(iof, func(fn func(A) B) IO[B] {
		return Map(io, fn)
	})
}

// Lift2 applies a curried binary function to the results of two IOs, running
// ia before ib.
func Lift2[A any, B any, C any](fn func(A) func(B) C, ia IO[A], ib IO[B]) IO[C] {
	return Ap(Map(ia, fn), ib)
}

// Tap returns an IO that calls fn with the result of io and passes the result
// through unchanged.
func Tap[T any](io IO[T], fn func(T)) IO[T] {
	return Map(io, func(v T) T {
		fn(v)
		return v
	})
}
