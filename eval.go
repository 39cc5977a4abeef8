// eval.go — the private tree-walking evaluator (spec §4.5).
//
// Grounded on the teacher's interpreter_exec.go for the shape of a
// single-dispatch `eval(node, env)` walker, but carries Sol's own rules:
// greedy application collects every explicit argument onto one node, so
// this file supplies the currying/partial-application machinery the parser
// never needs to (spec §3 "Partial" / §4.5 "Application"). Pipeline is a
// pure desugaring at this layer: `left |> f a` evaluates exactly like
// `f left a` (spec §4.5 "Pipeline").
package sol

// eval walks expr in env, consulting env.registryOf() for names the Env
// chain doesn't bind.
func eval(expr Expr, env *Env) (Value, error) {
	switch e := expr.(type) {
	case *NumberLit:
		return Value{Tag: VTNumber, Data: e.Value}, nil
	case *StringLit:
		return StrVal(e.Value), nil
	case *BoolLit:
		return BoolVal(e.Value), nil
	case *NullLit:
		return Null, nil
	case *InterpString:
		return evalInterpString(e, env)
	case *Ident:
		return resolveName(e.Name, env, e.Line())
	case *ArrayLit:
		return evalArrayLit(e, env)
	case *DictLit:
		return evalDictLit(e, env)
	case *PathExpr:
		return evalPathExpr(e, env)
	case *Application:
		return evalApplication(e, env)
	case *Pipeline:
		return evalPipeline(e, env)
	case *IfExpr:
		return evalIf(e, env)
	case *Assign:
		return evalAssign(e, env)
	default:
		return Value{}, newErr(TypeErrorK, expr.Line(), "unhandled expression node %T", expr)
	}
}

// resolveName implements spec §4.5's lookup order: Env chain first, then
// the Builtin Registry, else NameError. A builtin that takes no arguments
// (such as `pwd` or `cpu_count`) is invoked when named, since no
// application node can carry zero arguments; every other builtin resolves
// to its callable value.
func resolveName(name string, env *Env, line int) (Value, error) {
	if v, ok := env.Get(name); ok {
		return v, nil
	}
	if reg := env.registryOf(); reg != nil {
		if b, ok := reg.Lookup(name); ok {
			if b.MinArity == 0 && b.MaxArity == 0 {
				return invokeCallee(BuiltinVal(b), nil, line)
			}
			return BuiltinVal(b), nil
		}
	}
	return Value{}, newErr(NameError, line, "undefined name: %s", name)
}

func evalArrayLit(e *ArrayLit, env *Env) (Value, error) {
	out := make([]Value, len(e.Elems))
	for i, el := range e.Elems {
		v, err := eval(el, env)
		if err != nil {
			return Value{}, err
		}
		out[i] = v
	}
	return ArrVal(out), nil
}

func evalDictLit(e *DictLit, env *Env) (Value, error) {
	d := NewDict()
	for i, key := range e.Keys {
		v, err := eval(e.Values[i], env)
		if err != nil {
			return Value{}, err
		}
		d = d.Set(key, v)
	}
	return DictVal(d), nil
}

func evalPathExpr(e *PathExpr, env *Env) (Value, error) {
	base, err := eval(e.Base, env)
	if err != nil {
		return Value{}, err
	}
	comps, err := evalPathSteps(e.Steps, env, e.Line())
	if err != nil {
		return Value{}, err
	}
	return PathGet(base, comps, e.Line())
}

func evalPathSteps(steps []PathStep, env *Env, line int) ([]pathComponent, error) {
	comps := make([]pathComponent, len(steps))
	for i, s := range steps {
		var v Value
		if s.IsExpr {
			val, err := eval(s.Expr, env)
			if err != nil {
				return nil, err
			}
			v = val
		} else {
			v = s.Lit
		}
		c, err := componentFromValue(v, line)
		if err != nil {
			return nil, err
		}
		comps[i] = c
	}
	return comps, nil
}

func evalApplication(e *Application, env *Env) (Value, error) {
	callee, err := eval(e.Func, env)
	if err != nil {
		return Value{}, err
	}
	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := eval(a, env)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	return applyValue(callee, args, e.Line())
}

// evalPipeline desugars `left |> f a1 a2` into `f left a1 a2` (spec §4.5):
// the piped value always becomes the callee's first argument, regardless
// of how many explicit arguments the pipeline stage already carries.
func evalPipeline(e *Pipeline, env *Env) (Value, error) {
	leftVal, err := eval(e.Left, env)
	if err != nil {
		return Value{}, err
	}
	callee, err := eval(e.Right.Func, env)
	if err != nil {
		return Value{}, err
	}
	args := make([]Value, 0, len(e.Right.Args)+1)
	args = append(args, leftVal)
	for _, a := range e.Right.Args {
		v, err := eval(a, env)
		if err != nil {
			return Value{}, err
		}
		args = append(args, v)
	}
	return applyValue(callee, args, e.Line())
}

// evalIf implements short-circuit evaluation: only the taken branch runs
// (spec §4.5 "If expression").
func evalIf(e *IfExpr, env *Env) (Value, error) {
	cond, err := eval(e.Cond, env)
	if err != nil {
		return Value{}, err
	}
	if Truthy(cond) {
		return eval(e.Then, env)
	}
	return eval(e.Else, env)
}

// evalAssign defines Name in env: a plain value if Params is empty, or a
// Closure capturing env otherwise (spec §4.5 "Assignment"). Because env is
// mutated in place, a closure can recurse by name: by the time it's invoked,
// env already carries its own binding.
func evalAssign(e *Assign, env *Env) (Value, error) {
	if len(e.Params) == 0 {
		v, err := eval(e.Body, env)
		if err != nil {
			return Value{}, err
		}
		env.Define(e.Name, v)
		return v, nil
	}
	closure := &Closure{Name: e.Name, Params: e.Params, Body: e.Body, Env: env}
	v := ClosureVal(closure)
	env.Define(e.Name, v)
	return v, nil
}

// arityOf reports a callable's (min, max) argument count; max == -1 means
// unbounded (spec §3 "Partial"/"Builtin").
func arityOf(callee Value) (min, max int, ok bool) {
	switch callee.Tag {
	case VTClosure:
		n := len(callee.Data.(*Closure).Params)
		return n, n, true
	case VTBuiltin:
		b := callee.Data.(*Builtin)
		return b.MinArity, b.MaxArity, true
	default:
		return 0, 0, false
	}
}

// applyValue applies newArgs to callee, implementing spec §3/§4.5's
// currying rule: a callable invoked with fewer than its minimum arity
// returns a Partial; invoked with exactly enough, it runs; invoked with
// more than its maximum, the surplus is applied to its result in turn
// (so `add 1 2 3` behaves like `(add 1 2) 3` whenever `add`'s result is
// itself callable).
func applyValue(callee Value, newArgs []Value, line int) (Value, error) {
	base := callee
	var prior []Value
	if callee.Tag == VTPartial {
		p := callee.Data.(*Partial)
		base = p.Callee
		prior = p.Args
	}
	min, max, ok := arityOf(base)
	if !ok {
		return Value{}, newErr(TypeErrorK, line, "value of type %s is not callable", base.Tag)
	}
	all := make([]Value, 0, len(prior)+len(newArgs))
	all = append(all, prior...)
	all = append(all, newArgs...)

	if len(all) < min {
		return PartialVal(&Partial{Callee: base, Args: all}), nil
	}

	take := len(all)
	if max != -1 && take > max {
		take = max
	}
	callArgs := all[:take]
	leftover := all[take:]

	result, err := invokeCallee(base, callArgs, line)
	if err != nil {
		return Value{}, err
	}
	if len(leftover) == 0 {
		return result, nil
	}
	return applyValue(result, leftover, line)
}

func invokeCallee(base Value, args []Value, line int) (Value, error) {
	switch base.Tag {
	case VTClosure:
		c := base.Data.(*Closure)
		callEnv := NewEnv(c.Env)
		for i, p := range c.Params {
			callEnv.Define(p, args[i])
		}
		return eval(c.Body, callEnv)
	case VTBuiltin:
		b := base.Data.(*Builtin)
		v, err := b.Fn(args)
		if err != nil {
			if se, ok := err.(*SolError); ok {
				if se.Line == 0 {
					se.Line = line
				}
				return Value{}, se
			}
			return Value{}, newErr(TypeErrorK, line, "%s: %v", b.Name, err)
		}
		return v, nil
	default:
		return Value{}, newErr(TypeErrorK, line, "value of type %s is not callable", base.Tag)
	}
}
