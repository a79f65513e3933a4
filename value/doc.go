// Package value defines the closed set of values produced by the esfuzz
// generators: a tagged union (Value) switched on an explicit Kind, the
// property descriptors of composite objects, and the Arena that owns every
// slot of one generated tree.
//
// What
//
//   - Atomic kinds: Undefined, Null, Boolean, String, Number. Always leaves.
//   - Composite kinds: Object, Function, Array, Date, RegExp, Error.
//   - Objects carry uniquely named properties. Each property is either a
//     Data descriptor (stored Handle + writable flag) or an Accessor
//     descriptor (no-op getter/setter), plus enumerable/configurable flags.
//   - Nested values are referenced by Handle (an index into the Arena), never
//     embedded. Two references to the same Handle alias the same slot, which
//     is how shared and circular structures are represented.
//
// Ownership
//
//	A Tree owns its Arena. Reusing a value means storing its Handle a second
//	time; nothing is deep-copied. Handles are only meaningful within the Arena
//	that issued them, so an object extended by further generation is named
//	by a Ref (Tree plus Handle) rather than by its *Object alone.
//
// Concurrency
//
//	Values and Arenas are not synchronized. A Tree may be read from many
//	goroutines once generation has returned, but must not be mutated
//	concurrently.
//
// Errors
//
//   - ErrDuplicateProperty  Define was called with a name already present.
//   - ErrBadHandle          a Handle does not address a slot of the Arena.
//   - ErrBadDescriptor      a Property sets neither or both of Data and
//     Accessor.
package value
