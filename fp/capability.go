package fp

// Functor is implemented by containers that can map their payload. The
// method form is type-preserving; each container package also exports a
// generic Map for type-changing transformations.
//
// Implementations must satisfy:
//
//   - identity:    c.Map(Identity) == c
//   - composition: c.Map(f).Map(g) == c.Map(Compose(g, f))
type Functor[T any, F any] interface {
	Map(fn func(T) T) F
}

// Monad is a Functor that can sequence payload-dependent computations.
// Chain must agree with flattening the result of Map by one level.
type Monad[T any, F any] interface {
	Functor[T, F]
	Chain(fn func(T) F) F
}
