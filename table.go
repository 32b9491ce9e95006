package extend

import (
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	"github.com/goccy/go-json"
	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Member is one named entry of a Table.
type Member struct {
	Name       string
	Descriptor Descriptor
}

// Table is an ordered member table with an optional parent (prototype) table.
// Redefining a member keeps its original position.
type Table struct {
	mu       sync.RWMutex
	members  *sequencedmap.Map[string, Descriptor]
	proto    *Table
	readOnly bool
}

// NewTable creates an empty table chained to proto (which may be nil).
func NewTable(proto *Table) *Table {
	return &Table{members: sequencedmap.New[string, Descriptor](), proto: proto}
}

// Members returns t itself, so a *Table is its own effective member table.
func (t *Table) Members() *Table { return t }

// Proto returns the parent table or nil.
func (t *Table) Proto() *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.proto
}

// SetProto replaces the parent table. Chains that would loop are rejected.
func (t *Table) SetProto(proto *Table) error {
	const op errors.Op = "extend.Table.SetProto"
	for p := proto; p != nil; p = p.Proto() {
		if p == t {
			return errors.New(op).Msg("Prototype chain cannot contain a cycle.")
		}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.readOnly {
		return errors.New(op).Msg(ErrMsgReadOnlyTable)
	}
	t.proto = proto
	return nil
}

// ReadOnly reports whether the table rejects definitions.
func (t *Table) ReadOnly() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.readOnly
}

// DefineOwn installs d under name, replacing any own member of that name.
// Replacing a non-configurable member is an error.
func (t *Table) DefineOwn(name string, d Descriptor) error {
	const op errors.Op = "extend.Table.DefineOwn"
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.readOnly {
		return errors.New(op).Msg(ErrMsgReadOnlyTable)
	}
	if old, ok := t.members.Get(name); ok && !old.Configurable {
		return errors.New(op).Errorf("%s (%q)", ErrMsgNotConfigurable, name)
	}
	t.members.Set(name, d.normalize())
	return nil
}

// GetOwn returns the own descriptor for name.
func (t *Table) GetOwn(name string) (Descriptor, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.members.Get(name)
}

// HasOwn reports whether name is an own member of t.
func (t *Table) HasOwn(name string) bool {
	_, ok := t.GetOwn(name)
	return ok
}

// Lookup finds name on t or its prototype chain and returns the descriptor
// together with the table that owns it.
func (t *Table) Lookup(name string) (Descriptor, *Table, bool) {
	for cur := t; cur != nil; cur = cur.Proto() {
		if d, ok := cur.GetOwn(name); ok {
			return d, cur, true
		}
	}
	return Descriptor{}, nil, false
}

// Has reports whether name is reachable from t.
func (t *Table) Has(name string) bool {
	_, _, ok := t.Lookup(name)
	return ok
}

// Len returns the number of own members.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.members.Len()
}

// Entries returns a snapshot of the own members in definition order.
func (t *Table) Entries() []Member {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Member, 0, t.members.Len())
	for name, d := range t.members.All() {
		out = append(out, Member{Name: name, Descriptor: d})
	}
	return out
}

// Names returns the own member names in definition order.
func (t *Table) Names() []string {
	entries := t.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

type memberJSON struct {
	Name         string    `json:"name"`
	Kind         string    `json:"kind"`
	Enumerable   bool      `json:"enumerable"`
	Configurable bool      `json:"configurable"`
	Writable     null.Bool `json:"writable"`
	Callable     bool      `json:"callable"`
}

// MarshalJSON emits a snapshot of the own members. Writable is null for
// accessors.
func (t *Table) MarshalJSON() ([]byte, error) {
	entries := t.Entries()
	out := make([]memberJSON, 0, len(entries))
	for _, e := range entries {
		d := e.Descriptor
		m := memberJSON{
			Name:         e.Name,
			Kind:         d.Kind().String(),
			Enumerable:   d.Enumerable,
			Configurable: d.Configurable,
			Callable:     d.Callable(),
		}
		if d.Kind() == ValueKind {
			m.Writable = null.BoolFrom(d.Writable)
		}
		out = append(out, m)
	}
	return json.Marshal(out)
}

// putValue updates the value of an existing own data member in place.
func (t *Table) putValue(name string, v any) error {
	const op errors.Op = "extend.Table.putValue"
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.readOnly {
		return errors.New(op).Msg(ErrMsgReadOnlyTable)
	}
	d, ok := t.members.Get(name)
	if !ok || d.Kind() != ValueKind || !d.Writable {
		return errors.New(op).Errorf("%s (%q)", ErrMsgNotWritable, name)
	}
	d.Value = v
	t.members.Set(name, d)
	return nil
}

func (t *Table) freeze() *Table {
	t.mu.Lock()
	t.readOnly = true
	t.mu.Unlock()
	return t
}
