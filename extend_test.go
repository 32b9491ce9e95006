package extend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(name string) *Function {
	return NewFunction(name, func(any, ...any) (any, error) { return nil, nil })
}

func classWith(name string, methods ...string) *Class {
	b := NewBuilder(name)
	for _, m := range methods {
		b.Define(m, Method(noop(m)))
	}
	return b.MustBuild()
}

func ownFunc(t *testing.T, tbl *Table, name string) *Function {
	t.Helper()
	d, ok := tbl.GetOwn(name)
	require.True(t, ok, "missing own member %q", name)
	fn, ok := d.Func()
	require.True(t, ok, "member %q is not a function", name)
	return fn
}

func TestExtend_ClassWithClass(t *testing.T) {
	a := NewClass("A", nil)
	b := classWith("B", "test")

	_, err := Extend(a, b)
	require.NoError(t, err)

	inst, err := a.New()
	require.NoError(t, err)
	v, err := inst.Get("test")
	require.NoError(t, err)
	assert.IsType(t, &Function{}, v)
}

func TestExtend_ClassWithMultipleClasses(t *testing.T) {
	a := NewClass("A", nil)
	b := classWith("B", "test1")
	c := classWith("C", "test2")

	_, err := Extend(a, []*Class{b, c})
	require.NoError(t, err)

	inst, err := a.New()
	require.NoError(t, err)
	assert.True(t, inst.Has("test1"))
	assert.True(t, inst.Has("test2"))
}

func TestExtend_ObjectWithClass(t *testing.T) {
	a := NewObject()
	b := classWith("B", "test")

	_, err := Extend(a, b)
	require.NoError(t, err)
	_, err = a.Call("test")
	assert.NoError(t, err)
}

func TestExtend_ObjectWithObject(t *testing.T) {
	a := NewObject()
	b := ObjectOf(map[string]any{"test": noop("test")})

	_, err := Extend(a, b)
	require.NoError(t, err)
	_, err = a.Call("test")
	assert.NoError(t, err)
}

func TestExtend_SameMembersForEveryShape(t *testing.T) {
	source := func() []any {
		return []any{
			classWith("B", "one", "two"),
			ObjectOf(map[string]any{"one": noop("one"), "two": noop("two")}),
		}
	}
	for _, src := range source() {
		objTarget := NewObject()
		classTarget := NewClass("A", nil)
		_, err := Extend(objTarget, src)
		require.NoError(t, err)
		_, err = Extend(classTarget, src)
		require.NoError(t, err)

		assert.Equal(t, []string{"one", "two"}, objTarget.Members().Names())
		assert.Equal(t, []string{ConstructorName, "one", "two"}, classTarget.Prototype().Names())
	}
}

func TestExtend_Getter(t *testing.T) {
	a := NewClass("A", nil)
	b := NewBuilder("B").Getter("test", func(any) (any, error) { return "test", nil }).MustBuild()

	_, err := Extend(a, b)
	require.NoError(t, err)

	inst, err := a.New()
	require.NoError(t, err)
	v, err := inst.Get("test")
	require.NoError(t, err)
	assert.Equal(t, "test", v)

	d, ok := a.Prototype().GetOwn("test")
	require.True(t, ok)
	assert.Equal(t, AccessorKind, d.Kind())
}

func TestExtend_Setter(t *testing.T) {
	a := NewClass("A", nil)
	b := NewBuilder("B").Setter("test", func(this any, v any) error {
		return this.(*Object).Set("stored", v)
	}).MustBuild()

	_, err := Extend(a, b)
	require.NoError(t, err)

	inst, err := a.New()
	require.NoError(t, err)
	require.NoError(t, inst.Set("test", "test"))
	v, err := inst.Get("stored")
	require.NoError(t, err)
	assert.Equal(t, "test", v)
	assert.False(t, inst.Members().HasOwn("test"))
}

func TestExtend_NameFilter(t *testing.T) {
	a := NewClass("A", nil)
	b := classWith("B", "include", "exclude")

	_, err := Extend(a, b, WithNames("include"))
	require.NoError(t, err)

	inst, err := a.New()
	require.NoError(t, err)
	assert.True(t, inst.Has("include"))
	assert.False(t, inst.Has("exclude"))
}

func TestExtend_EmptyNameFilterCopiesNothing(t *testing.T) {
	a := NewObject()
	_, err := Extend(a, classWith("B", "test"), WithNames())
	require.NoError(t, err)
	assert.Equal(t, 0, a.Members().Len())
}

func TestExtend_NoOverwriteByDefault(t *testing.T) {
	a := classWith("A", "test")
	b := classWith("B", "test")
	before := ownFunc(t, a.Prototype(), "test")

	_, err := Extend(a, b)
	require.NoError(t, err)
	assert.Same(t, before, ownFunc(t, a.Prototype(), "test"))
	assert.NotSame(t, ownFunc(t, b.Prototype(), "test"), ownFunc(t, a.Prototype(), "test"))
}

func TestExtend_Overwrite(t *testing.T) {
	a := classWith("A", "test")
	b := classWith("B", "test")

	_, err := Extend(a, b, WithOverwrite(true))
	require.NoError(t, err)
	assert.Same(t, ownFunc(t, b.Prototype(), "test"), ownFunc(t, a.Prototype(), "test"))
}

func TestExtend_OverwriteSkipsNonConfigurable(t *testing.T) {
	a := NewClass("A", nil)
	orig := noop("test")
	require.NoError(t, a.Prototype().DefineOwn("test", Descriptor{Value: orig, Enumerable: true}))
	b := classWith("B", "test")

	_, err := Extend(a, b, WithOverwrite(true))
	require.NoError(t, err)
	assert.Same(t, orig, ownFunc(t, a.Prototype(), "test"))
}

func TestExtend_InheritedNameBlocksCopy(t *testing.T) {
	parent := classWith("Parent", "test")
	child := NewClass("Child", nil)
	require.NoError(t, child.Extends(parent))
	b := classWith("B", "test")

	_, err := Extend(child, b)
	require.NoError(t, err)
	assert.False(t, child.Prototype().HasOwn("test"))

	_, err = Extend(child, b, WithOverwrite(true))
	require.NoError(t, err)
	assert.Same(t, ownFunc(t, b.Prototype(), "test"), ownFunc(t, child.Prototype(), "test"))
}

func TestExtend_SourceOrder(t *testing.T) {
	b := classWith("B", "test")
	c := classWith("C", "test")

	first := NewObject()
	_, err := Extend(first, []any{b, c})
	require.NoError(t, err)
	assert.Same(t, ownFunc(t, b.Prototype(), "test"), ownFunc(t, first.Members(), "test"))

	last := NewObject()
	_, err = Extend(last, []any{b, c}, WithOverwrite(true))
	require.NoError(t, err)
	assert.Same(t, ownFunc(t, c.Prototype(), "test"), ownFunc(t, last.Members(), "test"))
}

func TestExtend_ConstructorNeverCopied(t *testing.T) {
	a := NewClass("A", nil)
	b := NewClass("B", nil)
	before := ownFunc(t, a.Prototype(), ConstructorName)

	_, err := Extend(a, b, WithOverwrite(true))
	require.NoError(t, err)
	assert.Same(t, before, ownFunc(t, a.Prototype(), ConstructorName))

	obj := NewObject()
	_, err = Extend(obj, b)
	require.NoError(t, err)
	assert.False(t, obj.Has(ConstructorName))
}

func TestExtend_SkipsNonCallable(t *testing.T) {
	a := NewObject()
	b := ObjectOf(map[string]any{"data": 42, "fn": noop("fn"), "nilFn": (*Function)(nil)})

	_, err := Extend(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"fn"}, a.Members().Names())
}

func TestExtend_PreservesFlags(t *testing.T) {
	src := NewObject()
	fn := noop("frozen")
	require.NoError(t, src.Define("frozen", Descriptor{Value: fn, Enumerable: true}))
	require.NoError(t, src.Define("method", Method(noop("method"))))

	dst := NewObject()
	_, err := Extend(dst, src)
	require.NoError(t, err)

	d, ok := dst.Members().GetOwn("frozen")
	require.True(t, ok)
	assert.True(t, d.Enumerable)
	assert.False(t, d.Configurable)
	assert.False(t, d.Writable)

	d, ok = dst.Members().GetOwn("method")
	require.True(t, ok)
	assert.False(t, d.Enumerable)
	assert.True(t, d.Configurable)
	assert.True(t, d.Writable)
}

func TestExtend_ReturnsTarget(t *testing.T) {
	a := NewObject()
	out, err := Extend(a, classWith("B", "test"))
	require.NoError(t, err)
	assert.Same(t, a, out)
}

func TestExtend_BindTo(t *testing.T) {
	world := &struct{ name string }{"world"}
	other := ObjectOf(map[string]any{"hello": world})

	b := NewBuilder("B").
		Getter("test", func(this any) (any, error) { return this.(*Object).Get("hello") }).
		MustBuild()

	a1 := NewClass("A1", nil)
	a2 := NewClass("A2", nil)
	_, err := Extend(a1, b)
	require.NoError(t, err)
	_, err = Extend(a2, b, WithBindTo(other))
	require.NoError(t, err)

	i1, err := a1.New()
	require.NoError(t, err)
	v, err := i1.Get("test")
	require.NoError(t, err)
	assert.Nil(t, v)

	i2, err := a2.New()
	require.NoError(t, err)
	v, err = i2.Get("test")
	require.NoError(t, err)
	assert.Same(t, world, v)
}

func TestExtend_BindToMethodAndSetter(t *testing.T) {
	fixed := NewObject()
	b := NewBuilder("B").
		Method("self", func(this any, _ ...any) (any, error) { return this, nil }).
		Setter("value", func(this any, v any) error { return this.(*Object).Set("value_", v) }).
		MustBuild()

	a := NewClass("A", nil)
	_, err := Extend(a, b, WithBindTo(fixed))
	require.NoError(t, err)

	inst, err := a.New()
	require.NoError(t, err)
	self, err := inst.Call("self")
	require.NoError(t, err)
	assert.Same(t, fixed, self)

	require.NoError(t, inst.Set("value", 7))
	v, err := fixed.Get("value_")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.False(t, inst.Members().HasOwn("value_"))

	fn := ownFunc(t, a.Prototype(), "self")
	assert.True(t, fn.IsBound())
	assert.Same(t, ownFunc(t, b.Prototype(), "self"), fn.Target())
}

func TestExtend_WithConfig(t *testing.T) {
	a := classWith("A", "include")
	b := classWith("B", "include", "exclude")

	_, err := Extend(a, b, WithConfig(Options{Names: []string{"include"}, Overwrite: true}))
	require.NoError(t, err)
	assert.Same(t, ownFunc(t, b.Prototype(), "include"), ownFunc(t, a.Prototype(), "include"))
	assert.False(t, a.Prototype().HasOwn("exclude"))
}

func TestExtend_Errors(t *testing.T) {
	b := classWith("B", "test")

	_, err := Extend[*Object](nil, b)
	assert.Error(t, err)

	_, err = Extend((*Object)(nil), b)
	assert.Error(t, err)

	type plain struct{}
	_, err = Extend(plain{}, b)
	assert.Error(t, err)

	_, err = Extend(NewObject(), nil)
	assert.Error(t, err)
}

func TestExtend_ErrorLeavesTargetUntouched(t *testing.T) {
	a := NewObject()
	_, err := Extend(a, []any{classWith("B", "test"), nil})
	require.Error(t, err)
	assert.Equal(t, 0, a.Members().Len())
}

func TestExtend_ReadOnlyTarget(t *testing.T) {
	_, err := Extend(TableOf(counter{}), classWith("B", "test"))
	assert.Error(t, err)
}

func TestCopyInto_MatchesExtend(t *testing.T) {
	build := func() (*Class, *Class) {
		return classWith("A", "shared"), classWith("B", "shared", "include", "exclude")
	}

	tests := []struct {
		name string
		opts []Option
	}{
		{name: "no options"},
		{name: "filter", opts: []Option{WithNames("include")}},
		{name: "config without filter", opts: []Option{WithOverwrite(true)}},
		{name: "filter and config", opts: []Option{WithNames("shared"), WithOverwrite(true)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a1, b1 := build()
			_, err := Extend(a1, b1, tt.opts...)
			require.NoError(t, err)

			a2, b2 := build()
			require.NoError(t, b2.CopyInto(a2, tt.opts...))

			assert.Equal(t, a1.Prototype().Names(), a2.Prototype().Names())
			for _, name := range a1.Prototype().Names() {
				fromB1 := b1.Prototype().HasOwn(name) && ownFunc(t, a1.Prototype(), name) == ownFunc(t, b1.Prototype(), name)
				fromB2 := b2.Prototype().HasOwn(name) && ownFunc(t, a2.Prototype(), name) == ownFunc(t, b2.Prototype(), name)
				assert.Equal(t, fromB1, fromB2, "member %q", name)
			}
		})
	}
}

func TestCopyInto_ObjectAndTable(t *testing.T) {
	src := ObjectOf(map[string]any{"test": noop("test")})
	dst := NewObject()
	require.NoError(t, src.CopyInto(dst))
	assert.True(t, dst.Has("test"))

	tbl := NewTable(nil)
	require.NoError(t, tbl.DefineOwn("other", Method(noop("other"))))
	require.NoError(t, tbl.CopyInto(dst))
	assert.True(t, dst.Has("other"))
}
