package extend

import "github.com/Station-Manager/errors"

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// CallAs calls the function member name on o and asserts the result to T.
func CallAs[T any](o *Object, name string, args ...any) (T, error) {
	const op errors.Op = "extend.CallAs"
	var zero T
	v, err := o.Call(name, args...)
	if err != nil {
		return zero, err
	}
	return as[T](op, v)
}

// GetAs reads name from o and asserts the result to T.
func GetAs[T any](o *Object, name string) (T, error) {
	const op errors.Op = "extend.GetAs"
	var zero T
	v, err := o.Get(name)
	if err != nil {
		return zero, err
	}
	return as[T](op, v)
}

func as[T any](op errors.Op, v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	out, ok := v.(T)
	if !ok {
		return zero, errors.New(op).Errorf("unexpected result type %T, want %T", v, zero)
	}
	return out, nil
}
