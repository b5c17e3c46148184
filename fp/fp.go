// Package fp provides currying and composition combinators for building
// point-free pipelines over the containers in this module.
//
// Example:
//
//	shout := fp.Compose2(
//		func(s string) string { return s + "!" },
//		strings.ToUpper,
//	)
//	fmt.Println(shout("send in the clowns"))
package fp

import "github.com/samber/lo"

// Identity returns the supplied value unchanged. It is the identity element
// of Compose.
//
// Example:
//
//	value := Identity(42)
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
//
// Example:
//
//	getDefault := Constant(time.Minute)
//	fmt.Println(getDefault())
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies a sequence of functions to value from left to right. All
// functions must accept and return the same type.
//
// Example:
//
//	result := Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Pipe2 builds the left-to-right pipeline g(f(x)).
func Pipe2[A any, B any, C any](f func(A) B, g func(B) C) func(A) C {
	return Compose2(g, f)
}

// Pipe3 builds the left-to-right pipeline h(g(f(x))).
func Pipe3[A any, B any, C any, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return Compose3(h, g, f)
}

// Compose composes functions in right-to-left order, so Compose(f, g)(x) is
// f(g(x)). Composing zero functions yields Identity and composing a single
// function yields an equivalent of that function.
//
// Example:
//
//	fn := Compose(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	value := fn(5) // 16
func Compose[T any](fns ...func(T) T) func(T) T {
	if len(fns) == 0 {
		return Identity[T]
	}
	if len(fns) == 1 {
		return fns[0]
	}
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Compose2 returns f ∘ g, changing types along the way.
//
// Example:
//
//	wordCount := Compose2(
//		func(ws []string) int { return len(ws) },
//		strings.Fields,
//	)
func Compose2[A any, B any, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 returns f ∘ g ∘ h.
func Compose3[A any, B any, C any, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D {
		return f(g(h(a)))
	}
}

// Compose4 returns f ∘ g ∘ h ∘ i.
func Compose4[A any, B any, C any, D any, E any](
	f func(D) E,
	g func(C) D,
	h func(B) C,
	i func(A) B,
) func(A) E {
	return func(a A) E {
		return f(g(h(i(a))))
	}
}

// ComposeBinary composes f after a binary g. Only the rightmost function of
// a composition may take more than one argument.
//
// Example:
//
//	sumThenDouble := ComposeBinary(
//		func(n int) int { return n * 2 },
//		func(a, b int) int { return a + b },
//	)
//	value := sumThenDouble(1, 2) // 6
func ComposeBinary[A any, B any, C any, D any](f func(C) D, g func(A, B) C) func(A, B) D {
	return func(a A, b B) D {
		return f(g(a, b))
	}
}

// Curry2 converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	addFive := Curry2(add)(5)
//	result := addFive(3)
func Curry2[A any, B any, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return lo.Partial(fn, a)
	}
}

// Curry3 converts a ternary function into its curried form.
//
// Example:
//
//	replace := Curry3(func(old, repl, s string) string {
//		return strings.ReplaceAll(s, old, repl)
//	})
//	censor := replace("darn")("****")
func Curry3[A any, B any, C any, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return Curry2(lo.Partial2(fn, a))
	}
}

// Curry4 converts a four-argument function into its curried form.
func Curry4[A any, B any, C any, D any, R any](fn func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return Curry3(lo.Partial3(fn, a))
	}
}

// Uncurry2 reverses Curry2.
func Uncurry2[A any, B any, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}
