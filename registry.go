package extend

import (
	"reflect"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/Station-Manager/extend/callable"
)

// RegistryOptions controls how Go method sets are turned into tables.
type RegistryOptions struct {
	LowerCamelNames bool // when true, "Greet" is registered as "greet"
}

type RegistryOption func(*RegistryOptions)

func WithLowerCamelNames(v bool) RegistryOption {
	return func(o *RegistryOptions) { o.LowerCamelNames = v }
}

// Registry caches read-only member tables built from Go types.
// It is safe for concurrent use.
type Registry struct {
	tables  sync.Map // map[reflect.Type]*Table
	options RegistryOptions
}

// NewRegistry creates a registry with the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{}
	for _, f := range opts {
		f(&r.options)
	}
	return r
}

var defaultRegistry = NewRegistry()

// TableOf returns the read-only table for the method set of v's dynamic
// type, using the default registry.
func TableOf(v any) *Table { return defaultRegistry.TableOf(v) }

// WarmTables pre-builds tables in the default registry.
func WarmTables(examples ...any) { defaultRegistry.Warm(examples...) }

// TableOf returns the read-only table for the method set of v's dynamic
// type. Each exported method becomes a non-enumerable, writable,
// configurable function member whose receiver must be of that type.
func (r *Registry) TableOf(v any) *Table {
	return r.tableFor(reflect.TypeOf(v))
}

// Warm pre-builds tables for the given example values. Nil entries are
// ignored.
func (r *Registry) Warm(examples ...any) {
	for _, e := range examples {
		if e == nil {
			continue
		}
		_ = r.tableFor(reflect.TypeOf(e))
	}
}

func (r *Registry) tableFor(typ reflect.Type) *Table {
	if cached, ok := r.tables.Load(typ); ok {
		return cached.(*Table)
	}
	t := NewTable(nil)
	if typ != nil {
		for i := 0; i < typ.NumMethod(); i++ {
			m := typ.Method(i)
			name := m.Name
			if r.options.LowerCamelNames {
				name = lowerFirst(name)
			}
			fn := m.Func
			_ = t.DefineOwn(name, Method(NewFunction(name, func(this any, args ...any) (any, error) {
				return callable.Call(fn, this, args)
			})))
		}
	}
	actual, _ := r.tables.LoadOrStore(typ, t.freeze())
	return actual.(*Table)
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
