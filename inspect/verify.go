// verify.go - invariant verification.
//
// Verify walks every slot of a tree and checks what the generator
// configuration promises. Violations do not stop the walk: each one is
// wrapped with ErrInvariant and appended with multierr, so a single call
// reports everything wrong with a tree.
//
// Checked per slot:
//   - the kind is known and composite payloads are present;
//   - composites have at most MaximumLength members;
//   - every reference resolves inside the arena;
//   - strings, property names and error messages have at most
//     MaximumLength code units;
//   - property names are unique and descriptors have exactly one variant;
//   - dates lie within [value.MinDate, value.MaxDate];
//   - patterns use the fixed body and canonical flag order;
//   - with Functions disabled: no function slots, no accessor properties and
//     no error Stack accessors.
//
// Depth is not checked here; use Depth, because an explicitly requested
// composite root may legitimately sit one level above its budget.

package inspect

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/esfuzz/generator"
	"github.com/katalvlaran/esfuzz/value"
)

// Verify checks every slot of t against cfg and returns all violations
// combined, or nil. Use multierr.Errors to list them individually; each
// satisfies errors.Is(err, ErrInvariant).
func Verify(t *value.Tree, cfg generator.Config) error {
	g, err := Build(t)
	if err != nil {
		return err
	}
	v := &verifier{tree: t, graph: g, cfg: cfg}
	for _, h := range g.Vertices() {
		v.slot(h)
	}
	return v.errs
}

type verifier struct {
	tree  *value.Tree
	graph *Graph
	cfg   generator.Config
	errs  error
}

func (v *verifier) fail(h value.Handle, format string, args ...any) {
	v.errs = multierr.Append(v.errs,
		fmt.Errorf("slot %d: %s: %w", h, fmt.Sprintf(format, args...), ErrInvariant))
}

func (v *verifier) slot(h value.Handle) {
	val, _ := v.tree.Value(h)
	if !val.Kind.Valid() {
		v.fail(h, "unknown kind %q", val.Kind)
		return
	}
	if m := val.Members(); m > v.cfg.MaximumLength {
		v.fail(h, "%s has %d members, limit %d", val.Kind, m, v.cfg.MaximumLength)
	}
	nbrs, _ := v.graph.Neighbors(h)
	for _, e := range nbrs {
		if !v.graph.HasVertex(e.To) {
			v.fail(h, "reference %s points at missing slot %d", e.Label, e.To)
		}
	}

	switch val.Kind {
	case value.KindString:
		v.text(h, "string", val.Str)
	case value.KindObject, value.KindFunction:
		v.object(h, val)
	case value.KindArray:
		if val.Array == nil {
			v.fail(h, "array without payload")
		}
	case value.KindDate:
		if !val.Date.Valid() {
			v.fail(h, "date %d out of range", int64(val.Date))
		}
	case value.KindRegExp:
		v.pattern(h, val.Pattern)
	case value.KindError:
		v.errorValue(h, val.Err)
	}
}

func (v *verifier) text(h value.Handle, what string, s value.String) {
	if s.Len() > v.cfg.MaximumLength {
		v.fail(h, "%s has %d code units, limit %d", what, s.Len(), v.cfg.MaximumLength)
	}
}

func (v *verifier) object(h value.Handle, val *value.Value) {
	if val.Object == nil {
		v.fail(h, "%s without payload", val.Kind)
		return
	}
	if val.Kind == value.KindFunction && !v.cfg.Functions {
		v.fail(h, "function generated with functions disabled")
	}
	names := make(map[string]struct{}, val.Object.Len())
	for _, p := range val.Object.Properties() {
		key := p.Name.Key()
		if _, dup := names[key]; dup {
			v.fail(h, "duplicate property %q", p.Name.Text())
		}
		names[key] = struct{}{}
		v.text(h, "property name", p.Name)

		if (p.Data == nil) == (p.Accessor == nil) {
			v.fail(h, "property %q is neither data nor accessor", p.Name.Text())
		}
		if p.IsAccessor() && !v.cfg.Functions {
			v.fail(h, "accessor property %q with functions disabled", p.Name.Text())
		}
	}
}

func (v *verifier) pattern(h value.Handle, p *value.Pattern) {
	if p == nil {
		v.fail(h, "regexp without payload")
		return
	}
	if p.Source != value.PatternSource {
		v.fail(h, "pattern body %q", p.Source)
	}
	// Flags must be a subsequence of the canonical order.
	rest := value.PatternFlags
	for _, f := range p.Flags {
		i := strings.IndexRune(rest, f)
		if i < 0 {
			v.fail(h, "pattern flags %q not in canonical order %q", p.Flags, value.PatternFlags)
			return
		}
		rest = rest[i+1:]
	}
}

func (v *verifier) errorValue(h value.Handle, e *value.ErrorValue) {
	if e == nil {
		v.fail(h, "error without payload")
		return
	}
	known := false
	for _, t := range value.ErrorTypes() {
		known = known || t == e.Type
	}
	if !known {
		v.fail(h, "unknown error type %q", e.Type)
	}
	v.text(h, "error message", e.Message)
	if e.Stack != nil && !v.cfg.Functions {
		v.fail(h, "error stack accessor with functions disabled")
	}
}
