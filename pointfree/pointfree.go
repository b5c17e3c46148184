// Package pointfree provides curried, subject-last helpers that plug into
// fp.Compose pipelines, plus generic map/chain utilities over the containers
// in this module.
//
// Example:
//
//	slugify := fp.Compose3(
//		pointfree.JoinStrings("-"),
//		pointfree.Split(" "),
//		pointfree.ToLowerCase,
//	)
//	fmt.Println(slugify("Mostly Adequate Guide")) // mostly-adequate-guide
package pointfree

import (
	"cmp"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/charmingruby/adequate/fp"
	"github.com/charmingruby/adequate/maybe"
)

// Replace substitutes every match of pattern in the subject with replacement.
// Replacement may reference capture groups with $1 and friends. An invalid
// pattern panics when Replace is called, not when the subject arrives.
//
// Example:
//
//	noVowels := pointfree.Replace(`[aeiou]`)("*")
//	fmt.Println(noVowels("chocolate")) // ch*c*l*t*
func Replace(pattern string) func(replacement string) func(s string) string {
	re := regexp.MustCompile(pattern)
	return func(replacement string) func(string) string {
		return func(s string) string {
			return re.ReplaceAllString(s, replacement)
		}
	}
}

// FindAll returns every non-overlapping match of pattern in the subject. No
// matches yields an empty slice.
func FindAll(pattern string) func(s string) []string {
	re := regexp.MustCompile(pattern)
	return func(s string) []string {
		matches := re.FindAllString(s, -1)
		if matches == nil {
			return []string{}
		}
		return matches
	}
}

// ToLowerCase lowercases s.
func ToLowerCase(s string) string {
	return strings.ToLower(s)
}

// ToUpperCase uppercases s.
func ToUpperCase(s string) string {
	return strings.ToUpper(s)
}

// Capitalize converts a word to title case: first letter upper, rest lower.
func Capitalize(s string) string {
	return lo.Capitalize(s)
}

// Length counts the runes in s.
func Length(s string) int {
	return len([]rune(s))
}

// Split splits the subject around every occurrence of sep.
func Split(sep string) func(s string) []string {
	return func(s string) []string {
		return strings.Split(s, sep)
	}
}

// JoinStrings concatenates the subject's elements with sep between them.
func JoinStrings(sep string) func(xs []string) string {
	return func(xs []string) string {
		return strings.Join(xs, sep)
	}
}

// Head returns the first element, or Nothing for an empty slice.
func Head[T any](xs []T) maybe.Maybe[T] {
	v, err := lo.Nth(xs, 0)
	return maybe.FromOk(v, err == nil)
}

// Last returns the final element, or Nothing for an empty slice.
func Last[T any](xs []T) maybe.Maybe[T] {
	v, err := lo.Nth(xs, -1)
	return maybe.FromOk(v, err == nil)
}

// Prop looks up key in the subject, yielding the zero value when it is
// missing.
func Prop[K comparable, V any](key K) func(m map[K]V) V {
	return func(m map[K]V) V {
		return m[key]
	}
}

// SafeProp looks up key in the subject, yielding Nothing when it is missing.
func SafeProp[K comparable, V any](key K) func(m map[K]V) maybe.Maybe[V] {
	return func(m map[K]V) maybe.Maybe[V] {
		v, ok := m[key]
		return maybe.FromOk(v, ok)
	}
}

// Add is curried addition; strings concatenate.
func Add[T cmp.Ordered](x T) func(y T) T {
	return func(y T) T {
		return x + y
	}
}

// Append returns a function that appends suffix to its argument.
//
// Example:
//
//	exclaim := pointfree.Append("!")
//	fmt.Println(exclaim("hi")) // hi!
func Append(suffix string) func(s string) string {
	return func(s string) string {
		return s + suffix
	}
}

// Fmap maps fn over every element of a slice.
func Fmap[A any, B any](fn func(A) B) func(xs []A) []B {
	return func(xs []A) []B {
		return lo.Map(xs, func(x A, _ int) B {
			return fn(x)
		})
	}
}

// Map dispatches to the container's own Map method. F is any fp.Functor, so
// the same helper serves every container in this module.
//
// Example:
//
//	inc := pointfree.Map[int, maybe.Maybe[int]](func(v int) int { return v + 1 })
//	fmt.Println(inc(maybe.Just(1))) // Just(2)
func Map[T any, F fp.Functor[T, F]](fn func(T) T) func(F) F {
	return func(f F) F {
		return f.Map(fn)
	}
}

// Bind dispatches to the container's own Chain method.
func Bind[T any, M fp.Monad[T, M]](fn func(T) M) func(M) M {
	return func(m M) M {
		return m.Chain(fn)
	}
}

// MapWith lifts fn using a container's package-level Map, allowing the
// payload type to change.
//
// Example:
//
//	lengths := pointfree.MapWith(maybe.Map[string, int], pointfree.Length)
func MapWith[FA any, FB any, A any, B any](fmap func(FA, func(A) B) FB, fn func(A) B) func(FA) FB {
	return func(fa FA) FB {
		return fmap(fa, fn)
	}
}

// Chain derives monadic chaining from a container's Map and Join: it is
// fp.Compose2(join, MapWith(fmap, fn)). No container needs a primitive
// chain for this to work.
//
// Example:
//
//	street := pointfree.Chain(
//		maybe.Map[Address, maybe.Maybe[string]],
//		maybe.Join[string],
//		func(a Address) maybe.Maybe[string] { return maybe.Just(a.Street) },
//	)
func Chain[MA any, MMB any, MB any, A any](
	fmap func(MA, func(A) MB) MMB,
	join func(MMB) MB,
	fn func(A) MB,
) func(MA) MB {
	return fp.Compose2(join, MapWith(fmap, fn))
}
