// builtin_compression.go — Compression domain-stack row: gzip/gunzip via
// stdlib compress/gzip. Grounded on the teacher's builtin_compression.go
// (gzipCompress/gzipDecompress); no third-party compression library appears
// in the retrieval pack.
package sol

import (
	"bytes"
	"compress/gzip"
	"io"
)

func registerCompressionBuiltins(r *Registry) {
	r.Add(&Builtin{Name: "gzip", MinArity: 1, MaxArity: 1, Fn: biGzip})
	r.Add(&Builtin{Name: "gunzip", MinArity: 1, MaxArity: 1, Fn: biGunzip})
}

func biGzip(args []Value) (Value, error) {
	strs, err := requireStrings("gzip", args)
	if err != nil {
		return Value{}, err
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(strs[0])); err != nil {
		zw.Close()
		return ErrStr(err.Error()), nil
	}
	if err := zw.Close(); err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(StrVal(buf.String())), nil
}

func biGunzip(args []Value) (Value, error) {
	strs, err := requireStrings("gunzip", args)
	if err != nil {
		return Value{}, err
	}
	zr, err := gzip.NewReader(bytes.NewReader([]byte(strs[0])))
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return ErrStr(err.Error()), nil
	}
	return OkVal(StrVal(string(out))), nil
}
