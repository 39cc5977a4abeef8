// registry.go — the Builtin Registry (spec §6).
//
// A flat name -> *Builtin table consulted by the evaluator whenever an
// identifier isn't bound in the current Env. Grounded on the teacher's
// native-registration pattern (interpreter.go's RegisterNative / Core frame),
// simplified to Sol's closed, non-extensible builtin set: there is no
// RegisterNative equivalent because Sol has no FFI (spec §1 Non-goals).
package sol

// Registry holds every builtin reachable by name.
type Registry struct {
	byName map[string]*Builtin
}

// Add registers b, overwriting any previous entry with the same name.
func (r *Registry) Add(b *Builtin) {
	r.byName[b.Name] = b
}

// Lookup resolves name against the registry.
func (r *Registry) Lookup(name string) (*Builtin, bool) {
	b, ok := r.byName[name]
	return b, ok
}

// NewRegistry builds the full standard Builtin Registry: the operator
// callables and core list/Result combinators spec §6 names, plus the
// domain-stack builtins described in SPEC_FULL.md's DOMAIN STACK table.
func NewRegistry() *Registry {
	r := &Registry{byName: map[string]*Builtin{}}
	registerCoreBuiltins(r)
	registerStringBuiltins(r)
	registerPathBuiltins(r)
	registerFileBuiltins(r)
	registerNetBuiltins(r)
	registerCryptoBuiltins(r)
	registerJSONBuiltins(r)
	registerCompressionBuiltins(r)
	registerSysBuiltins(r)
	registerGitBuiltins(r)
	return r
}
