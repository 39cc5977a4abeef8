// printer.go — canonical value rendering (spec §3, §9).
//
// Two forms: Stringify (the "display" form: strings render raw, used by
// `echo`, `to_string`, and f-string interpolation) and reprString (the
// "repr" form nested containers use for their elements, so `['a', 'b']`
// stays unambiguous, the same str()/repr() split the teacher's printer.go
// makes for MindScript values). Result's `Ok(v)`/`Err(e)` shape is adopted
// verbatim from original_source/stdlib/result.py (see SPEC_FULL.md).
package sol

import (
	"fmt"
	"strings"
)

// Stringify renders v the way `echo`, `to_string`, and string interpolation
// do: top-level strings are unquoted.
func Stringify(v Value) string {
	if v.Tag == VTString {
		return v.Data.(string)
	}
	return reprString(v)
}

// reprString renders v unambiguously, quoting strings; used for nested
// container elements and for standalone value rendering where a string
// needs to be told apart from its surrounding punctuation.
func reprString(v Value) string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNumber:
		return CanonicalNumberString(v.Data.(Number))
	case VTString:
		return "'" + escapeSingleQuoted(v.Data.(string)) + "'"
	case VTArray:
		xs := v.Data.([]Value)
		parts := make([]string, len(xs))
		for i, x := range xs {
			parts[i] = reprString(x)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case VTDict:
		d := v.Data.(*Dict)
		parts := make([]string, len(d.Keys))
		for i, k := range d.Keys {
			parts[i] = k + ": " + reprString(d.Entries[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case VTClosure:
		c := v.Data.(*Closure)
		if c.Name != "" {
			return fmt.Sprintf("<closure %s/%d>", c.Name, len(c.Params))
		}
		return fmt.Sprintf("<closure/%d>", len(c.Params))
	case VTBuiltin:
		return fmt.Sprintf("<builtin %s>", v.Data.(*Builtin).Name)
	case VTPartial:
		p := v.Data.(*Partial)
		return fmt.Sprintf("<partial %s/%d>", reprString(p.Callee), len(p.Args))
	case VTResult:
		r := v.Data.(*Result)
		if r.Success {
			return "Ok(" + reprString(r.Val) + ")"
		}
		return "Err(" + reprString(r.Err) + ")"
	default:
		return "<?>"
	}
}

func escapeSingleQuoted(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString("\\'")
		case '\\':
			b.WriteString("\\\\")
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// evalInterpString renders an InterpString by evaluating each slot's path
// and interleaving it with the literal fragments (spec §4.5 "Interpolated
// string"). A slot whose name is unbound fails with NameError; it is not
// rendered as literal text.
func evalInterpString(is *InterpString, env *Env) (Value, error) {
	var b strings.Builder
	b.WriteString(is.Fragments[0])
	for i, slot := range is.Slots {
		base, err := eval(slot.Base, env)
		if err != nil {
			return Value{}, err
		}
		comps, err := evalPathSteps(slot.Steps, env, slot.Line())
		if err != nil {
			return Value{}, err
		}
		v, err := PathGet(base, comps, slot.Line())
		if err != nil {
			return Value{}, err
		}
		b.WriteString(Stringify(v))
		b.WriteString(is.Fragments[i+1])
	}
	return StrVal(b.String()), nil
}
