// Package extend copies method-like members between objects and classes.
//
// Go has no prototypes or property descriptors, so the package carries a
// small explicit object model: a Function is a callable that receives its
// receiver explicitly, a Descriptor holds one member (a value, or a getter
// and setter, plus enumerable/configurable/writable flags) and a Table is an
// ordered member table that may chain to a parent table. A Class owns a
// prototype Table that its instances inherit from; an Object owns its own
// Table.
//
// Basic Usage
//
//	a := extend.NewClass("A", nil)
//	b := extend.NewBuilder("B").
//	    Method("test", func(this any, args ...any) (any, error) { return "ok", nil }).
//	    MustBuild()
//	_, err := extend.Extend(a, b)
//
// The method-style form copies from the receiver:
//
//	err := b.CopyInto(a, extend.WithNames("test"))
//
// # Copy Rules
//
// For every source, in order, and every own member of its effective table,
// in definition order:
//  1. Skip the member named "constructor"
//  2. Skip members that carry no function value, getter or setter
//  3. Skip names outside WithNames, when given
//  4. Skip names already reachable on the target unless WithOverwrite(true)
//  5. Skip names whose own target member is non-configurable
//  6. Bind every function part to WithBindTo's receiver, when given
//  7. Define the member on the target with its original flags
//
// Skips are silent. Extend only fails for nil entities or a target without
// a mutable table, and it fails before copying anything.
//
// # Go Values As Sources
//
// Any other non-nil value may act as a source: its exported methods are
// exposed through a read-only Table built once per type (see TableOf and
// Registry). Those functions require a receiver of the same type, so they
// are usually copied with WithBindTo:
//
//	_, err := extend.Extend(obj, svc, extend.WithBindTo(svc))
//
// # Thread Safety
//
// Tables and the Registry are safe for concurrent use. A single Extend call
// is not atomic; concurrent calls against the same target must be
// serialized by the caller.
package extend
