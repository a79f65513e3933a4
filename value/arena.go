package value

import "fmt"

// Handle addresses one slot of an Arena.
type Handle int

// NoHandle is the zero-information handle; no Arena ever issues it.
const NoHandle Handle = -1

// Arena owns the slots of one generated tree. Slots are only appended, never
// removed, so a Handle stays valid for the Arena's lifetime.
type Arena struct {
	slots []Value
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc stores v in a new slot and returns its handle. Composite payloads are
// pointers, so a composite may be allocated before it is populated and nested
// values can reference its handle while it is being built.
func (a *Arena) Alloc(v Value) Handle {
	a.slots = append(a.slots, v)
	return Handle(len(a.slots) - 1)
}

// Set replaces the value stored at h.
func (a *Arena) Set(h Handle, v Value) error {
	if !a.Contains(h) {
		return fmt.Errorf("Set(%d): %w", h, ErrBadHandle)
	}
	a.slots[h] = v
	return nil
}

// At returns a pointer to the value stored at h. The pointer is invalidated
// by the next Alloc.
func (a *Arena) At(h Handle) (*Value, bool) {
	if !a.Contains(h) {
		return nil, false
	}
	return &a.slots[h], true
}

// Contains reports whether h addresses a slot of a.
func (a *Arena) Contains(h Handle) bool {
	return a != nil && h >= 0 && int(h) < len(a.slots)
}

// Len returns the number of slots.
func (a *Arena) Len() int {
	if a == nil {
		return 0
	}
	return len(a.slots)
}
