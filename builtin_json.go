// builtin_json.go — JSON/CSV domain-stack row: jsonparse/jsonstringify/
// jsonread/jsonwrite/csvread/csvwrite, via stdlib encoding/json and
// encoding/csv. Grounded on the teacher's builtin_json.go (jsonParse/
// jsonStringify); no third-party JSON library (jsoniter, sjson) appears
// anywhere in the retrieval pack, so serialization stays on encoding/json.
package sol

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"strconv"
	"strings"
)

func registerJSONBuiltins(r *Registry) {
	r.Add(&Builtin{Name: "jsonparse", MinArity: 1, MaxArity: 1, Fn: biJSONParse})
	r.Add(&Builtin{Name: "jsonstringify", MinArity: 1, MaxArity: 1, Fn: biJSONStringify})
	r.Add(&Builtin{Name: "jsonread", MinArity: 1, MaxArity: 1, Fn: biJSONRead})
	r.Add(&Builtin{Name: "jsonwrite", MinArity: 2, MaxArity: 2, Fn: biJSONWrite})
	r.Add(&Builtin{Name: "csvread", MinArity: 1, MaxArity: 1, Fn: biCSVRead})
	r.Add(&Builtin{Name: "csvwrite", MinArity: 2, MaxArity: 2, Fn: biCSVWrite})
}

func biJSONParse(args []Value) (Value, error) {
	strs, err := requireStrings("jsonparse", args)
	if err != nil {
		return Value{}, err
	}
	var x any
	if err := json.Unmarshal([]byte(strs[0]), &x); err != nil {
		return ErrStr("invalid JSON: " + err.Error()), nil
	}
	return OkVal(goJSONToValue(x)), nil
}

func biJSONStringify(args []Value) (Value, error) {
	gv, err := valueToGoJSON(args[0])
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	b, err := json.Marshal(gv)
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(StrVal(string(b))), nil
}

func biJSONRead(args []Value) (Value, error) {
	strs, err := requireStrings("jsonread", args)
	if err != nil {
		return Value{}, err
	}
	data, err := os.ReadFile(strs[0])
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	var x any
	if err := json.Unmarshal(data, &x); err != nil {
		return ErrStr("invalid JSON: " + err.Error()), nil
	}
	return OkVal(goJSONToValue(x)), nil
}

func biJSONWrite(args []Value) (Value, error) {
	path, x := args[0], args[1]
	if path.Tag != VTString {
		return Value{}, newErr(TypeErrorK, 0, "jsonwrite: path must be a String, got %s", path.Tag)
	}
	gv, err := valueToGoJSON(x)
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	b, err := json.Marshal(gv)
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	if err := os.WriteFile(path.Data.(string), b, 0o644); err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(Null), nil
}

func biCSVRead(args []Value) (Value, error) {
	strs, err := requireStrings("csvread", args)
	if err != nil {
		return Value{}, err
	}
	f, err := os.Open(strs[0])
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	out := make([]Value, len(rows))
	for i, row := range rows {
		cells := make([]Value, len(row))
		for j, c := range row {
			cells[j] = StrVal(c)
		}
		out[i] = ArrVal(cells)
	}
	return OkVal(ArrVal(out)), nil
}

func biCSVWrite(args []Value) (Value, error) {
	path, rowsArg := args[0], args[1]
	if path.Tag != VTString {
		return Value{}, newErr(TypeErrorK, 0, "csvwrite: path must be a String, got %s", path.Tag)
	}
	if rowsArg.Tag != VTArray {
		return Value{}, newErr(TypeErrorK, 0, "csvwrite: rows must be an Array, got %s", rowsArg.Tag)
	}
	rows := rowsArg.Data.([]Value)
	records := make([][]string, len(rows))
	for i, row := range rows {
		if row.Tag != VTArray {
			return Value{}, newErr(TypeErrorK, 0, "csvwrite: row %d is not an Array", i+1)
		}
		cells := row.Data.([]Value)
		rec := make([]string, len(cells))
		for j, c := range cells {
			if c.Tag != VTString {
				return Value{}, newErr(TypeErrorK, 0, "csvwrite: row %d cell %d is not a String", i+1, j+1)
			}
			rec[j] = c.Data.(string)
		}
		records[i] = rec
	}
	f, err := os.Create(path.Data.(string))
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(Null), nil
}

// valueToGoJSON converts a Sol Value into a Go JSON-able value.
func valueToGoJSON(v Value) (any, error) {
	switch v.Tag {
	case VTNull:
		return nil, nil
	case VTBool:
		return v.Data.(bool), nil
	case VTNumber:
		n := v.Data.(Number)
		if n.IsInt {
			return n.Int, nil
		}
		return n.Float, nil
	case VTString:
		return v.Data.(string), nil
	case VTArray:
		xs := v.Data.([]Value)
		out := make([]any, len(xs))
		for i := range xs {
			el, err := valueToGoJSON(xs[i])
			if err != nil {
				return nil, err
			}
			out[i] = el
		}
		return out, nil
	case VTDict:
		d := v.Data.(*Dict)
		out := make(map[string]any, len(d.Entries))
		for _, k := range d.Keys {
			ev, err := valueToGoJSON(d.Entries[k])
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	default:
		return nil, newErr(TypeErrorK, 0, "value of type %s is not JSON-serializable", v.Tag)
	}
}

// goJSONToValue converts a decoded JSON value into a Sol Value, preferring
// Int for integral numbers per spec §3's numeric-tower rules.
func goJSONToValue(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null
	case bool:
		return BoolVal(v)
	case string:
		return StrVal(v)
	case float64:
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v) && math.Abs(v) < 1e18 {
			return IntVal(int64(v))
		}
		return FloatVal(v)
	case json.Number:
		s := v.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return IntVal(i)
			}
		}
		f, _ := strconv.ParseFloat(s, 64)
		return FloatVal(f)
	case []any:
		out := make([]Value, len(v))
		for i := range v {
			out[i] = goJSONToValue(v[i])
		}
		return ArrVal(out)
	case map[string]any:
		d := NewDict()
		for k, vv := range v {
			d = d.Set(k, goJSONToValue(vv))
		}
		return DictVal(d)
	default:
		return Null
	}
}
