package inspect

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/esfuzz/value"
)

// Format renders t deterministically, one member per line. Values that
// are referenced more than once are labelled <ref *N>; a reference back to
// a composite on the current path prints [Circular *N], and a repeated
// reference elsewhere prints [Ref *N] instead of the value again.
//
//	<ref *0> [
//	  1.5
//	  "a"
//	  [Circular *0]
//	]
func Format(t *value.Tree) (string, error) {
	shared, err := Shared(t)
	if err != nil {
		return "", err
	}
	f := &formatter{
		tree:    t,
		labels:  make(map[value.Handle]bool, len(shared)),
		onPath:  make(map[value.Handle]bool),
		printed: make(map[value.Handle]bool),
	}
	for _, h := range shared {
		f.labels[h] = true
	}
	f.value(t.Root, 0)
	return f.b.String(), nil
}

type formatter struct {
	tree    *value.Tree
	b       strings.Builder
	labels  map[value.Handle]bool
	onPath  map[value.Handle]bool
	printed map[value.Handle]bool
}

func (f *formatter) indent(depth int) {
	f.b.WriteString(strings.Repeat("  ", depth))
}

func (f *formatter) value(h value.Handle, depth int) {
	v, ok := f.tree.Value(h)
	if !ok {
		f.b.WriteString("[Missing *" + strconv.Itoa(int(h)) + "]")
		return
	}
	switch {
	case f.onPath[h]:
		f.b.WriteString("[Circular *" + strconv.Itoa(int(h)) + "]")
		return
	case f.printed[h] && f.labels[h]:
		f.b.WriteString("[Ref *" + strconv.Itoa(int(h)) + "]")
		return
	}
	f.printed[h] = true
	if f.labels[h] {
		f.b.WriteString("<ref *" + strconv.Itoa(int(h)) + "> ")
	}

	switch v.Kind {
	case value.KindUndefined:
		f.b.WriteString("undefined")
	case value.KindNull:
		f.b.WriteString("null")
	case value.KindBoolean:
		f.b.WriteString(strconv.FormatBool(v.Bool))
	case value.KindNumber:
		f.b.WriteString(strconv.FormatFloat(v.Number, 'g', -1, 64))
	case value.KindString:
		f.b.WriteString(strconv.QuoteToASCII(v.Str.Text()))
	case value.KindDate:
		f.b.WriteString("Date(" + strconv.FormatInt(int64(v.Date), 10) + ")")
	case value.KindRegExp:
		f.b.WriteString(v.Pattern.String())
	case value.KindError:
		f.b.WriteString(string(v.Err.Type) + "(" + strconv.QuoteToASCII(v.Err.Message.Text()) + ")")
	case value.KindObject, value.KindFunction:
		f.object(h, v, depth)
	case value.KindArray:
		f.array(h, v, depth)
	default:
		f.b.WriteString("<" + string(v.Kind) + ">")
	}
}

func (f *formatter) object(h value.Handle, v *value.Value, depth int) {
	if v.Kind == value.KindFunction {
		f.b.WriteString("function ")
	}
	props := v.Object.Properties()
	if len(props) == 0 {
		f.b.WriteString("{}")
		return
	}
	f.onPath[h] = true
	f.b.WriteString("{\n")
	for _, p := range props {
		f.indent(depth + 1)
		f.b.WriteString(strconv.QuoteToASCII(p.Name.Text()) + ": ")
		if p.IsAccessor() {
			f.b.WriteString("[Getter/Setter]")
		} else {
			f.value(p.Data.Value, depth+1)
		}
		f.b.WriteByte('\n')
	}
	f.indent(depth)
	f.b.WriteByte('}')
	delete(f.onPath, h)
}

func (f *formatter) array(h value.Handle, v *value.Value, depth int) {
	if v.Array.Len() == 0 {
		f.b.WriteString("[]")
		return
	}
	f.onPath[h] = true
	f.b.WriteString("[\n")
	for _, c := range v.Array.Elements {
		f.indent(depth + 1)
		f.value(c, depth+1)
		f.b.WriteByte('\n')
	}
	f.indent(depth)
	f.b.WriteByte(']')
	delete(f.onPath, h)
}
