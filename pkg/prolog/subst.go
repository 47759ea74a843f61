package prolog

// SubstituteAndFreshen applies bindings b to t, renaming every variable
// occurrence — bound or not — to a fresh id drawn from gen (§4.3).
// Renaming reaches into bound values too, since a term fetched out of b
// may itself contain variables that belong to the clause currently
// being instantiated.
func SubstituteAndFreshen(gen *IDAllocator, b Bindings, t Term) Term {
	switch v := t.(type) {
	case *Functor:
		if len(v.Args) == 0 {
			return v
		}
		args := make([]Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = SubstituteAndFreshen(gen, b, a)
		}
		return &Functor{Name: v.Name, Args: args, Loc: v.Loc}
	case *Variable:
		if bound, ok := b[v.ID]; ok {
			// bound may itself contain variables bound elsewhere in b
			// (e.g. a clause-head argument unified against an unbound
			// variable holding a compound built from other clause
			// variables) — those need substituting too, not just
			// renaming, or they'd revert to free variables.
			return SubstituteAndFreshen(gen, b, bound)
		}
		return freshen(v, gen)
	default:
		return t
	}
}

// freshen renames an unbound variable to a new id allocated from gen,
// keyed by its current id so repeated occurrences of the same source
// variable within one activation collapse onto one fresh id, while
// distinct source variables get distinct fresh ids. Bound variables
// never reach here: SubstituteAndFreshen recurses into their value
// instead, since that value may itself hold variables bound elsewhere.
func freshen(v *Variable, gen *IDAllocator) *Variable {
	return &Variable{Name: v.Name, ID: gen.Alloc(v.ID), Loc: v.Loc}
}
