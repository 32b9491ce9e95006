package extend

// Kind distinguishes data members from accessor members.
type Kind int

const (
	ValueKind    Kind = iota // Value (and Writable) carry the member
	AccessorKind             // Get and/or Set carry the member
)

func (k Kind) String() string {
	if k == AccessorKind {
		return "accessor"
	}
	return "value"
}

// Descriptor is the metadata bundle for one member. A descriptor with a
// non-nil Get or Set is an accessor and its Value and Writable are ignored.
type Descriptor struct {
	Value        any
	Get          *Function
	Set          *Function
	Enumerable   bool
	Configurable bool
	Writable     bool
}

// Method describes a class method: non-enumerable, writable and configurable.
func Method(fn *Function) Descriptor {
	return Descriptor{Value: fn, Writable: true, Configurable: true}
}

// Data describes a plain data member as created by assignment.
func Data(v any) Descriptor {
	return Descriptor{Value: v, Writable: true, Enumerable: true, Configurable: true}
}

// Accessor describes a class accessor: non-enumerable and configurable.
func Accessor(get, set *Function) Descriptor {
	return Descriptor{Get: get, Set: set, Configurable: true}
}

// Kind reports whether d is a value or an accessor descriptor.
func (d Descriptor) Kind() Kind {
	if d.Get != nil || d.Set != nil {
		return AccessorKind
	}
	return ValueKind
}

// Func returns the callable value of d, if any.
func (d Descriptor) Func() (*Function, bool) {
	if d.Kind() != ValueKind {
		return nil, false
	}
	fn, ok := d.Value.(*Function)
	return fn, ok && fn != nil
}

// Callable reports whether d carries a function value, getter or setter.
func (d Descriptor) Callable() bool {
	if d.Kind() == AccessorKind {
		return true
	}
	_, ok := d.Func()
	return ok
}

// Bind returns a copy of d with every callable part bound to recv.
func (d Descriptor) Bind(recv any) Descriptor {
	if fn, ok := d.Func(); ok {
		d.Value = fn.Bind(recv)
	}
	if d.Get != nil {
		d.Get = d.Get.Bind(recv)
	}
	if d.Set != nil {
		d.Set = d.Set.Bind(recv)
	}
	return d
}

func (d Descriptor) normalize() Descriptor {
	if d.Kind() == AccessorKind {
		d.Value = nil
		d.Writable = false
	}
	return d
}
