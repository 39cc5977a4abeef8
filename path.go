// path.go — `|`-path access and copy-on-write update (spec §3, §4.5).
//
// A path is a base value plus a sequence of steps, each either a string key
// (Dict field), a 1-based integer index (Array element), or a dynamically
// computed component from a parenthesised expression. Grounded on the
// teacher's field/index access in interpreter_ops.go, generalized to Sol's
// single unified `|` operator covering both Array and Dict traversal.
package sol

import "strconv"

// pathComponent is a resolved path step: either a string key or a 1-based
// array index, determined by the underlying container at each step.
type pathComponent struct {
	isIndex bool
	key     string
	index   int64
}

// componentFromValue turns a resolved step Value into a pathComponent,
// following spec §9's "Dict key rendering": a Number step is first tried as
// an Array index, then canonicalized to a string for Dict lookup.
func componentFromValue(v Value, line int) (pathComponent, error) {
	switch v.Tag {
	case VTString:
		return pathComponent{key: v.Data.(string)}, nil
	case VTNumber:
		n := v.Data.(Number)
		if n.IsInt {
			return pathComponent{isIndex: true, index: n.Int, key: CanonicalNumberString(n)}, nil
		}
		return pathComponent{key: CanonicalNumberString(n)}, nil
	default:
		return pathComponent{}, newErr(TypeErrorK, line, "path component must be a string or number, got %s", v.Tag)
	}
}

// PathGet resolves a chain of components against base, returning an
// IndexError/KeyError/TypeError on the first failing step (spec §3).
func PathGet(base Value, comps []pathComponent, line int) (Value, error) {
	cur := base
	for _, c := range comps {
		switch cur.Tag {
		case VTArray:
			arr := cur.Data.([]Value)
			idx, err := arrayIndex(c, len(arr), line)
			if err != nil {
				return Value{}, err
			}
			cur = arr[idx]
		case VTDict:
			d := cur.Data.(*Dict)
			v, ok := d.Entries[c.key]
			if !ok {
				return Value{}, newErr(KeyErrorK, line, "no such key: %s", c.key)
			}
			cur = v
		default:
			return Value{}, newErr(TypeErrorK, line, "cannot index into a %s", cur.Tag)
		}
	}
	return cur, nil
}

// PathSet returns a new value equal to base with comps updated to v,
// rebuilding every container on the path (copy-on-write, spec §3
// "Lifecycle": "every update ... returns a new container; sibling
// references ... are unaffected").
func PathSet(base Value, comps []pathComponent, v Value, line int) (Value, error) {
	if len(comps) == 0 {
		return v, nil
	}
	head, rest := comps[0], comps[1:]
	switch base.Tag {
	case VTArray:
		arr := base.Data.([]Value)
		idx, err := arrayIndex(head, len(arr), line)
		if err != nil {
			return Value{}, err
		}
		next, err := PathSet(arr[idx], rest, v, line)
		if err != nil {
			return Value{}, err
		}
		out := make([]Value, len(arr))
		copy(out, arr)
		out[idx] = next
		return ArrVal(out), nil
	case VTDict:
		d := base.Data.(*Dict)
		var child Value
		if existing, ok := d.Entries[head.key]; ok {
			child = existing
		} else if len(rest) > 0 {
			return Value{}, newErr(KeyErrorK, line, "no such key: %s", head.key)
		}
		next, err := PathSet(child, rest, v, line)
		if err != nil {
			return Value{}, err
		}
		return DictVal(d.Set(head.key, next)), nil
	default:
		return Value{}, newErr(TypeErrorK, line, "cannot index into a %s", base.Tag)
	}
}

func arrayIndex(c pathComponent, length int, line int) (int, error) {
	if !c.isIndex {
		return 0, newErr(TypeErrorK, line, "array index must be a number, got key %q", c.key)
	}
	i := c.index
	if i < 1 || i > int64(length) {
		return 0, newErr(IndexErrorK, line, "index %s out of range for array of length %d", strconv.FormatInt(i, 10), length)
	}
	return int(i - 1), nil
}
