// SPDX-License-Identifier: MIT
// Package: esfuzz/generator
//
// impl_object.go - objects and functions with random property descriptors.
//
// Contract:
//   • Property count is uniform in [0, MaximumLength], then lowered so the
//     object's total own properties (a Base may already hold some) never
//     exceed MaximumLength.
//   • Names are random strings; a name already on the object is redrawn.
//   • Each property is, with probability 1/2, a data property whose value is
//     dispatched one level deeper with random writable flag; otherwise an
//     accessor with no-op get/set. Enumerable and configurable are random for
//     both variants.
//   • With Functions disabled only data properties are produced, and the
//     nested configuration keeps Functions disabled.
//   • A function is an object generated over a callable base.
//   • A base is only extended when run adopted its Arena; its slot is reused
//     as the root and no new slot is allocated for it.
//
// Complexity: O(n) properties plus the cost of nested values; name redraws
// are rare because the name space grows with MaximumLength.

package generator

import "github.com/katalvlaran/esfuzz/value"

func generateObject(s *state, cfg Config) value.Handle {
	h, obj, ok := s.base(cfg, false)
	if !ok {
		obj = value.NewObject()
		h = s.alloc(value.ObjectValue(obj))
	}
	s.populate(obj, cfg)
	return h
}

func generateFunction(s *state, cfg Config) value.Handle {
	h, fn, ok := s.base(cfg, true)
	if !ok {
		fn = value.NewFunction()
		h = s.alloc(value.ObjectValue(fn))
	}
	s.populate(fn, cfg)
	return h
}

// base returns the slot of cfg.Base when it lives in this call's Arena and
// holds an object of the requested callability.
func (s *state) base(cfg Config, callable bool) (value.Handle, *value.Object, bool) {
	if cfg.Base == nil || cfg.Base.Tree == nil || cfg.Base.Tree.Arena != s.tree.Arena {
		return value.NoHandle, nil, false
	}
	obj, ok := cfg.Base.Object()
	if !ok || obj.Callable != callable {
		return value.NoHandle, nil, false
	}
	return cfg.Base.Handle, obj, true
}

// populate defines random properties on obj.
func (s *state) populate(obj *value.Object, cfg Config) {
	n := s.rng.Intn(cfg.MaximumLength + 1)
	if room := cfg.MaximumLength - obj.Len(); n > room {
		n = max(room, 0)
	}
	nested := cfg.nested()

	for i := 0; i < n; i++ {
		name := s.randomString(cfg)
		for obj.Has(name) {
			name = s.randomString(cfg)
		}

		p := value.Property{Name: name}
		if !cfg.Functions || s.coin() {
			p.Data = &value.Data{Value: s.dispatch(nested), Writable: s.coin()}
		} else {
			p.Accessor = value.NoopAccessor()
		}
		p.Enumerable = s.coin()
		p.Configurable = s.coin()

		if err := obj.Define(p); err != nil {
			// Unreachable: the name was checked above and the descriptor
			// has exactly one variant.
			s.log.Error(err, "define property", "tree", s.tree.ID.String())
		}
	}
}
