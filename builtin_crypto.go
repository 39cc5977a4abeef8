// builtin_crypto.go — Hashing domain-stack row: md5/sha256 via stdlib
// crypto/md5, crypto/sha256. Grounded on the teacher's builtin_crypto.go
// (sha256/hmacSha256/ctEqual); golang.org/x/crypto in the pack covers SSH,
// not generic hashing, so hashing stays on the standard library digests.
// Digests render as lowercase hex, matching every hash-printing convention
// in the retrieval pack.
package sol

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
)

func registerCryptoBuiltins(r *Registry) {
	r.Add(&Builtin{Name: "md5", MinArity: 1, MaxArity: 1, Fn: biMD5})
	r.Add(&Builtin{Name: "sha256", MinArity: 1, MaxArity: 1, Fn: biSHA256})
}

func biMD5(args []Value) (Value, error) {
	strs, err := requireStrings("md5", args)
	if err != nil {
		return Value{}, err
	}
	sum := md5.Sum([]byte(strs[0]))
	return StrVal(hex.EncodeToString(sum[:])), nil
}

func biSHA256(args []Value) (Value, error) {
	strs, err := requireStrings("sha256", args)
	if err != nil {
		return Value{}, err
	}
	sum := sha256.Sum256([]byte(strs[0]))
	return StrVal(hex.EncodeToString(sum[:])), nil
}
