package extend

import (
	"reflect"

	"github.com/Station-Manager/errors"
)

// Options controls which members Extend copies and how.
type Options struct {
	Names     []string // when non-nil, only these names are eligible (an empty slice admits nothing)
	BindTo    any      // when non-nil, copied callables are bound to this receiver
	Overwrite bool     // when true, replace configurable members already present on the target
}

type Option func(*Options)

// WithNames restricts copying to the given member names.
func WithNames(names ...string) Option {
	if names == nil {
		names = []string{}
	}
	return func(o *Options) { o.Names = names }
}

// WithBindTo binds every copied function, getter and setter to recv.
func WithBindTo(recv any) Option { return func(o *Options) { o.BindTo = recv } }

// WithOverwrite allows members already present on the target to be replaced.
func WithOverwrite(v bool) Option { return func(o *Options) { o.Overwrite = v } }

// WithConfig applies a complete Options value.
func WithConfig(cfg Options) Option { return func(o *Options) { *o = cfg } }

// Extend copies the callable members of sources onto target and returns
// target. sources is a single entity or a slice of entities, processed in
// order.
//
// The effective member table of a *Class is its prototype; of an *Object
// or *Table it is the value itself; of any other Holder it is whatever
// Members returns. Any other non-nil value may be used as a source, in
// which case its Go method set is copied (see TableOf).
//
// Members are skipped silently when they are not callable, are named
// ConstructorName, fall outside WithNames, already exist on the target
// without WithOverwrite, or exist as a non-configurable own member of the
// target. The only errors are nil entities and a target without a mutable
// member table; they are reported before anything is copied.
func Extend[T any](target T, sources any, opts ...Option) (T, error) {
	const op errors.Op = "extend.Extend"
	cfg := Options{}
	for _, f := range opts {
		f(&cfg)
	}

	dst, err := resolveTarget(target)
	if err != nil {
		return target, errors.New(op).Err(err)
	}
	srcs, err := resolveSources(sources)
	if err != nil {
		return target, errors.New(op).Err(err)
	}

	var filter map[string]struct{}
	if cfg.Names != nil {
		filter = nameSet(cfg.Names)
	}
	for _, src := range srcs {
		copyMembers(dst, src, filter, cfg)
	}
	return target, nil
}

func copyMembers(dst, src *Table, filter map[string]struct{}, cfg Options) {
	for _, m := range src.Entries() {
		name, d := m.Name, m.Descriptor
		if name == ConstructorName || !d.Callable() {
			continue
		}
		if filter != nil {
			if _, ok := filter[name]; !ok {
				continue
			}
		}
		if dst.Has(name) {
			if !cfg.Overwrite {
				continue
			}
			if own, ok := dst.GetOwn(name); ok && !own.Configurable {
				continue
			}
		}
		if cfg.BindTo != nil {
			d = d.Bind(cfg.BindTo)
		}
		// Only a concurrent definition can make this fail; skip like any
		// other conflict.
		_ = dst.DefineOwn(name, d)
	}
}

func resolveTarget(target any) (*Table, error) {
	const op errors.Op = "extend.resolveTarget"
	if isNil(target) {
		return nil, errors.New(op).Msg(ErrMsgNilTarget)
	}
	h, ok := target.(Holder)
	if !ok {
		return nil, errors.New(op).Errorf("%s got %T", ErrMsgReadOnlyTarget, target)
	}
	t := h.Members()
	if t == nil || t.ReadOnly() {
		return nil, errors.New(op).Errorf("%s got %T", ErrMsgReadOnlyTarget, target)
	}
	return t, nil
}

func resolveSources(sources any) ([]*Table, error) {
	const op errors.Op = "extend.resolveSources"
	list := []any{sources}
	if v := reflect.ValueOf(sources); v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		list = make([]any, v.Len())
		for i := range list {
			list[i] = v.Index(i).Interface()
		}
	}
	out := make([]*Table, 0, len(list))
	for i, s := range list {
		t, err := resolve(s)
		if err != nil {
			return nil, errors.New(op).Errorf("source %d: %s", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func resolve(v any) (*Table, error) {
	const op errors.Op = "extend.resolve"
	if isNil(v) {
		return nil, errors.New(op).Msg(ErrMsgNilSource)
	}
	if h, ok := v.(Holder); ok {
		if t := h.Members(); t != nil {
			return t, nil
		}
		return nil, errors.New(op).Errorf("%s got %T", ErrMsgNoMemberTable, v)
	}
	return TableOf(v), nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
