package extend

import (
	"github.com/Station-Manager/extend/callable"
	"github.com/Station-Manager/errors"
)

// Impl is the body of a Function. The receiver is passed explicitly.
type Impl func(this any, args ...any) (any, error)

// Function is a callable member. Functions are referenced by pointer, so two
// members hold "the same" function only when they share a *Function.
type Function struct {
	name   string
	impl   Impl
	target *Function
	bound  any
}

// NewFunction wraps impl as a named Function.
func NewFunction(name string, impl Impl) *Function {
	return &Function{name: name, impl: impl}
}

// Native wraps an ordinary Go function. The first parameter of fn receives
// the receiver; the remaining parameters receive the call arguments, which
// are coerced to the parameter types.
func Native(name string, fn any) (*Function, error) {
	const op errors.Op = "extend.Native"
	v, err := callable.Func(fn)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return NewFunction(name, func(this any, args ...any) (any, error) {
		return callable.Call(v, this, args)
	}), nil
}

// MustNative is like Native but panics on an invalid fn.
func MustNative(name string, fn any) *Function {
	f, err := Native(name, fn)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// Call invokes the function with the given receiver.
func (f *Function) Call(this any, args ...any) (any, error) {
	if f.target != nil {
		this = f.bound
	}
	return f.impl(this, args...)
}

// Bind returns a new Function whose receiver is always recv.
// Binding an already bound function keeps the first receiver.
func (f *Function) Bind(recv any) *Function {
	if f.target != nil {
		return &Function{name: f.name, impl: f.impl, target: f.target, bound: f.bound}
	}
	return &Function{name: "bound " + f.name, impl: f.impl, target: f, bound: recv}
}

// IsBound reports whether the receiver of f is fixed.
func (f *Function) IsBound() bool { return f.target != nil }

// Target returns the unbound function f was derived from, or f itself.
func (f *Function) Target() *Function {
	if f.target != nil {
		return f.target
	}
	return f
}
