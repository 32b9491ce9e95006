package extend

import (
	"github.com/Station-Manager/errors"
)

// Holder is anything that owns an effective member table.
type Holder interface {
	Members() *Table
}

// Object is a plain instance. Its member table is the object itself.
type Object struct {
	table *Table
	class *Class
}

// NewObject creates an empty object with no prototype.
func NewObject() *Object { return &Object{table: NewTable(nil)} }

// ObjectOf creates an object whose own members are the entries of m as
// enumerable, writable, configurable data members. Map order is not
// defined, so member order follows sorted keys.
func ObjectOf(m map[string]any) *Object {
	o := NewObject()
	for _, k := range sortedKeys(m) {
		_ = o.table.DefineOwn(k, Data(m[k]))
	}
	return o
}

// Members returns the object's own table.
func (o *Object) Members() *Table { return o.table }

// Class returns the class o was instantiated from, or nil.
func (o *Object) Class() *Class { return o.class }

// Define installs d as an own member of o.
func (o *Object) Define(name string, d Descriptor) error {
	const op errors.Op = "extend.Object.Define"
	if err := o.table.DefineOwn(name, d); err != nil {
		return errors.New(op).Err(err)
	}
	return nil
}

// Has reports whether name is reachable from o.
func (o *Object) Has(name string) bool { return o.table.Has(name) }

// Get reads name from o or its prototype chain. Accessors run with o as the
// receiver. A missing member reads as nil.
func (o *Object) Get(name string) (any, error) {
	const op errors.Op = "extend.Object.Get"
	d, _, ok := o.table.Lookup(name)
	if !ok {
		return nil, nil
	}
	if d.Kind() == ValueKind {
		return d.Value, nil
	}
	if d.Get == nil {
		return nil, nil
	}
	v, err := d.Get.Call(o)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return v, nil
}

// Set writes v to name. An accessor runs its setter; a non-writable data
// member rejects the write; otherwise an own data member is created or
// updated.
func (o *Object) Set(name string, v any) error {
	const op errors.Op = "extend.Object.Set"
	d, owner, ok := o.table.Lookup(name)
	if ok && d.Kind() == AccessorKind {
		if d.Set == nil {
			return errors.New(op).Errorf("%s (%q)", ErrMsgNoSetter, name)
		}
		if _, err := d.Set.Call(o, v); err != nil {
			return errors.New(op).Err(err)
		}
		return nil
	}
	if ok && !d.Writable {
		return errors.New(op).Errorf("%s (%q)", ErrMsgNotWritable, name)
	}
	if ok && owner == o.table {
		return o.table.putValue(name, v)
	}
	return o.table.DefineOwn(name, Data(v))
}

// Call invokes the function member name with o as the receiver.
func (o *Object) Call(name string, args ...any) (any, error) {
	const op errors.Op = "extend.Object.Call"
	v, err := o.Get(name)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	fn, ok := v.(*Function)
	if !ok || fn == nil {
		return nil, errors.New(op).Errorf("%s (%q)", ErrMsgNotCallable, name)
	}
	return fn.Call(o, args...)
}

// CopyInto copies the members of o into target. It is Extend with o as the
// only source.
func (o *Object) CopyInto(target any, opts ...Option) error {
	_, err := Extend(target, o, opts...)
	return err
}

// Class is a class-like entity. Its effective member table is its
// prototype, which instances created by New inherit from.
type Class struct {
	name      string
	prototype *Table
	init      *Function
}

// NewClass creates a class. init, when non-nil, runs on every new instance
// with the instance as receiver and the constructor arguments.
func NewClass(name string, init Impl) *Class {
	c := &Class{name: name, prototype: NewTable(nil)}
	if init != nil {
		c.init = NewFunction(name, init)
	} else {
		c.init = NewFunction(name, func(any, ...any) (any, error) { return nil, nil })
	}
	_ = c.prototype.DefineOwn(ConstructorName, Method(c.init))
	return c
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Members returns the prototype table.
func (c *Class) Members() *Table { return c.prototype }

// Prototype returns the prototype table.
func (c *Class) Prototype() *Table { return c.prototype }

// Extends chains the prototype of c to the prototype of parent.
func (c *Class) Extends(parent *Class) error {
	const op errors.Op = "extend.Class.Extends"
	var proto *Table
	if parent != nil {
		proto = parent.prototype
	}
	if err := c.prototype.SetProto(proto); err != nil {
		return errors.New(op).Err(err)
	}
	return nil
}

// New creates an instance of c and runs the initializer.
func (c *Class) New(args ...any) (*Object, error) {
	const op errors.Op = "extend.Class.New"
	o := &Object{table: NewTable(c.prototype), class: c}
	if _, err := c.init.Call(o, args...); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return o, nil
}

// CopyInto copies the prototype members of c into target. It is Extend
// with c as the only source.
func (c *Class) CopyInto(target any, opts ...Option) error {
	_, err := Extend(target, c, opts...)
	return err
}

// CopyInto copies the members of t into target. It is Extend with t as the
// only source.
func (t *Table) CopyInto(target any, opts ...Option) error {
	_, err := Extend(target, t, opts...)
	return err
}
