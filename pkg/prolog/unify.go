package prolog

// Bindings is a binding set (§3): a mapping from variable id to the term
// it was resolved against during one unification attempt. Bindings are
// local to a single unify+substitute pass; they are never shared or
// mutated across resolver steps.
type Bindings map[uint64]Term

// Unify computes a most-general unifier of pat and e, or fails with
// ErrUnifyFail. No occurs-check is performed (§4.2, §9 Open Question —
// occurs-check): cyclic-term construction is undefined behavior here,
// by design, rather than silently looped over or rejected.
func Unify(pat, e Term) (Bindings, error) {
	b := make(Bindings)
	if err := unify(b, pat, e); err != nil {
		return nil, err
	}
	return b, nil
}

func unify(b Bindings, pat, e Term) error {
	if pv, ok := pat.(*Variable); ok {
		if ev, ok := e.(*Variable); ok {
			if bound, ok := b[ev.ID]; ok {
				return solve(b, pv.ID, bound)
			}
		}
		return solve(b, pv.ID, e)
	}
	if ev, ok := e.(*Variable); ok {
		return solve(b, ev.ID, pat)
	}
	pf, ok1 := pat.(*Functor)
	ef, ok2 := e.(*Functor)
	if !ok1 || !ok2 || pf.Name != ef.Name || len(pf.Args) != len(ef.Args) {
		return ErrUnifyFail
	}
	for i := range pf.Args {
		if err := unify(b, pf.Args[i], ef.Args[i]); err != nil {
			return err
		}
	}
	return nil
}

// solve implements variable-to-term commitment with chasing (§4.2):
//
//  1. If id is unbound, bind it to e.
//  2. If e equals the existing binding (modulo variable-id-only
//     equality), succeed without change.
//  3. If the existing binding is a variable, chase through it and
//     overwrite the entry to point at e — this is what makes patterns
//     like eq(X,X) applied to eq(Z,Y) unify: committing X↦Z then
//     rewriting on the second occurrence to keep the chain consistent.
//  4. Otherwise, if e is itself a variable, chase through its binding.
//  5. Otherwise fail.
func solve(b Bindings, id uint64, e Term) error {
	e2, bound := b[id]
	if !bound {
		b[id] = e
		return nil
	}
	if equalTerm(e, e2) {
		return nil
	}
	if e2v, ok := e2.(*Variable); ok {
		if err := solve(b, e2v.ID, e); err == nil {
			b[id] = e
			return nil
		}
	}
	if ev, ok := e.(*Variable); ok {
		return solve(b, ev.ID, e2)
	}
	return ErrUnifyFail
}
