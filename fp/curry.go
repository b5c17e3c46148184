package fp

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotFunc is returned when CurryN receives something that is not a function.
	ErrNotFunc = errors.New("fp: curry target is not a function")
	// ErrArity is returned when more arguments arrive than remain required,
	// or when an arity override does not fit the function signature.
	ErrArity = errors.New("fp: arity mismatch")
	// ErrArgType is returned when an argument cannot be assigned to the
	// parameter it fills.
	ErrArgType = errors.New("fp: argument type mismatch")
)

// Curried is a function of known arity that accepts its arguments across any
// number of calls. Values are immutable: every Call that does not complete
// the arity returns a new Curried capturing the arguments seen so far.
type Curried struct {
	fn    reflect.Value
	arity int
	args  []reflect.Value
}

// CurryN wraps fn for incremental application. The arity is the number of
// declared parameters unless an override is supplied; variadic functions
// require the override since their arity cannot be inferred.
//
// Example:
//
//	add3, _ := CurryN(func(a, b, c int) int { return a + b + c })
//	step, _ := add3.Call(1)
//	sum, _ := step.(Curried).Call(2, 3) // 6
func CurryN(fn any, arity ...int) (Curried, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return Curried{}, fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}
	typ := v.Type()
	n := typ.NumIn()
	if len(arity) > 1 {
		return Curried{}, fmt.Errorf("%w: at most one arity override, got %d", ErrArity, len(arity))
	}
	if len(arity) == 1 {
		want := arity[0]
		switch {
		case typ.IsVariadic() && want >= n-1:
			n = want
		case !typ.IsVariadic() && want == n:
		default:
			return Curried{}, fmt.Errorf("%w: override %d does not fit %s", ErrArity, want, typ)
		}
	} else if typ.IsVariadic() {
		return Curried{}, fmt.Errorf("%w: variadic %s needs an explicit arity", ErrArity, typ)
	}
	return Curried{fn: v, arity: n}, nil
}

// MustCurryN is like CurryN but panics on usage errors.
func MustCurryN(fn any, arity ...int) Curried {
	c, err := CurryN(fn, arity...)
	if err != nil {
		panic(err)
	}
	return c
}

// Arity reports the total number of arguments the wrapped function expects.
func (c Curried) Arity() int {
	return c.arity
}

// Remaining reports how many arguments are still required.
func (c Curried) Remaining() int {
	return c.arity - len(c.args)
}

// Call supplies more arguments. Calling with no arguments returns c itself.
// Once the accumulated arguments reach the arity the wrapped function runs
// and its result is returned: nil for no results, the value for one result,
// and a []any for several. Otherwise the returned value is a Curried.
func (c Curried) Call(args ...any) (any, error) {
	if !c.fn.IsValid() {
		return nil, fmt.Errorf("%w: zero Curried", ErrNotFunc)
	}
	if len(args) == 0 && c.Remaining() > 0 {
		return c, nil
	}
	if len(args) > c.Remaining() {
		return nil, fmt.Errorf("%w: got %d arguments, %d remaining", ErrArity, len(args), c.Remaining())
	}
	acc := make([]reflect.Value, len(c.args), len(c.args)+len(args))
	copy(acc, c.args)
	for _, arg := range args {
		v, err := c.convert(len(acc), arg)
		if err != nil {
			return nil, err
		}
		acc = append(acc, v)
	}
	if len(acc) < c.arity {
		return Curried{fn: c.fn, arity: c.arity, args: acc}, nil
	}
	return collect(c.fn.Call(acc)), nil
}

// MustCall is like Call but panics on usage errors.
func (c Curried) MustCall(args ...any) any {
	out, err := c.Call(args...)
	if err != nil {
		panic(err)
	}
	return out
}

func (c Curried) convert(pos int, arg any) (reflect.Value, error) {
	want := c.paramType(pos)
	if arg == nil {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(want), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: nil for parameter %d of type %s", ErrArgType, pos, want)
		}
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(want) {
		return reflect.Value{}, fmt.Errorf("%w: %s for parameter %d of type %s", ErrArgType, v.Type(), pos, want)
	}
	return v, nil
}

func (c Curried) paramType(pos int) reflect.Type {
	typ := c.fn.Type()
	last := typ.NumIn() - 1
	if typ.IsVariadic() && pos >= last {
		return typ.In(last).Elem()
	}
	return typ.In(pos)
}

func collect(out []reflect.Value) any {
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		values := make([]any, len(out))
		for i, v := range out {
			values[i] = v.Interface()
		}
		return values
	}
}
