package extend

// Builder provides a fluent API to construct a Class with its members
// pre-defined.
type Builder struct {
	name    string
	init    Impl
	parent  *Class
	members []Member
}

// NewBuilder creates a builder for a class called name.
func NewBuilder(name string) *Builder { return &Builder{name: name} }

// Init sets the instance initializer.
func (b *Builder) Init(fn Impl) *Builder { b.init = fn; return b }

// Extends sets the parent class.
func (b *Builder) Extends(parent *Class) *Builder { b.parent = parent; return b }

// Method adds a method member.
func (b *Builder) Method(name string, fn Impl) *Builder {
	return b.Define(name, Method(NewFunction(name, fn)))
}

// Getter adds a getter. A setter added for the same name joins the same
// accessor.
func (b *Builder) Getter(name string, fn func(this any) (any, error)) *Builder {
	get := NewFunction("get "+name, func(this any, _ ...any) (any, error) { return fn(this) })
	return b.accessor(name, get, nil)
}

// Setter adds a setter. A getter added for the same name joins the same
// accessor.
func (b *Builder) Setter(name string, fn func(this any, v any) error) *Builder {
	set := NewFunction("set "+name, func(this any, args ...any) (any, error) {
		var v any
		if len(args) > 0 {
			v = args[0]
		}
		return nil, fn(this, v)
	})
	return b.accessor(name, nil, set)
}

// Define adds a member with an explicit descriptor.
func (b *Builder) Define(name string, d Descriptor) *Builder {
	for i := range b.members {
		if b.members[i].Name == name {
			b.members[i].Descriptor = d
			return b
		}
	}
	b.members = append(b.members, Member{Name: name, Descriptor: d})
	return b
}

func (b *Builder) accessor(name string, get, set *Function) *Builder {
	for i := range b.members {
		m := &b.members[i]
		if m.Name == name && m.Descriptor.Kind() == AccessorKind {
			if get != nil {
				m.Descriptor.Get = get
			}
			if set != nil {
				m.Descriptor.Set = set
			}
			return b
		}
	}
	return b.Define(name, Accessor(get, set))
}

// Build constructs the Class.
func (b *Builder) Build() (*Class, error) {
	c := NewClass(b.name, b.init)
	if b.parent != nil {
		if err := c.Extends(b.parent); err != nil {
			return nil, err
		}
	}
	for _, m := range b.members {
		if err := c.prototype.DefineOwn(m.Name, m.Descriptor); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Class {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
