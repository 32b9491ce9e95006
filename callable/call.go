// Package callable invokes native Go functions on behalf of dynamic members.
//
// A callable function always receives the member receiver as its first
// parameter, followed by the call arguments. Method expressions obtained
// through reflection (reflect.Type.Method(i).Func) already have this shape,
// so Go methods and free functions share a single invocation path.
package callable

import (
	"reflect"

	"github.com/Station-Manager/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Func validates fn and returns its reflect.Value.
func Func(fn any) (reflect.Value, error) {
	const op errors.Op = "callable.Func"
	if fn == nil {
		return reflect.Value{}, errors.New(op).Msg(ErrMsgNilFunc)
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return reflect.Value{}, errors.New(op).Errorf("%s got %T", ErrMsgNotFunc, fn)
	}
	if v.IsNil() {
		return reflect.Value{}, errors.New(op).Msg(ErrMsgNilFunc)
	}
	t := v.Type()
	if t.NumIn() == 0 || (t.IsVariadic() && t.NumIn() == 1) {
		return reflect.Value{}, errors.New(op).Msg(ErrMsgNoReceiver)
	}
	switch t.NumOut() {
	case 0, 1:
	case 2:
		if t.Out(1) != errorType {
			return reflect.Value{}, errors.New(op).Msg(ErrMsgBadSecondOut)
		}
	default:
		return reflect.Value{}, errors.New(op).Msg(ErrMsgTooManyOuts)
	}
	return v, nil
}

// Call invokes fn with recv as the first argument followed by args.
func Call(fn reflect.Value, recv any, args []any) (any, error) {
	const op errors.Op = "callable.Call"
	t := fn.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	given := len(args) + 1
	if given < fixed || (!t.IsVariadic() && given > fixed) {
		return nil, errors.New(op).Errorf("wrong number of arguments: want %d, got %d", fixed-1, len(args))
	}

	in := make([]reflect.Value, 0, given)
	all := append([]any{recv}, args...)
	for i, a := range all {
		var pt reflect.Type
		if i < fixed {
			pt = t.In(i)
		} else {
			pt = t.In(fixed).Elem()
		}
		v, err := Coerce(a, pt)
		if err != nil {
			if i == 0 {
				return nil, errors.New(op).Errorf("receiver: %s", err)
			}
			return nil, errors.New(op).Errorf("argument %d: %s", i-1, err)
		}
		in = append(in, v)
	}

	return results(fn.Call(in))
}

// Coerce converts v into a value assignable to t.
// A nil v becomes the zero value of t.
func Coerce(v any, t reflect.Type) (reflect.Value, error) {
	const op errors.Op = "callable.Coerce"
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	// Numeric and string kinds convert freely; anything else must match.
	if rv.Type().ConvertibleTo(t) && convertibleKinds(rv.Kind(), t.Kind()) {
		return rv.Convert(t), nil
	}
	return reflect.Value{}, errors.New(op).Errorf("cannot use %s as %s", rv.Type(), t)
}

func convertibleKinds(from, to reflect.Kind) bool {
	return isNumeric(from) && isNumeric(to) || from == reflect.String && to == reflect.String
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func results(out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if out[0].Type() == errorType {
			return nil, asError(out[0])
		}
		return out[0].Interface(), nil
	default:
		return out[0].Interface(), asError(out[1])
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
