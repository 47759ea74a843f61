package prolog

// Definition is a clause (§3): a pair of a Functor head and an ordered
// sequence of Functor body goals. A Definition with an empty Body is a
// fact. Body is stored in reverse order of surface appearance (I2), so
// the resolver can pop its leftmost goal in O(1) by removing the last
// element.
type Definition struct {
	Name string
	Pat  *Functor
	Body []*Functor
	Loc  Pos
}

// NewDefinition builds a Definition from a head and body given in
// surface (left-to-right) order, reversing the body to satisfy I2.
func NewDefinition(pat *Functor, body []*Functor) *Definition {
	reversed := make([]*Functor, len(body))
	for i, g := range body {
		reversed[len(body)-1-i] = g
	}
	return &Definition{Name: pat.Name, Pat: pat, Body: reversed, Loc: pat.Loc}
}

// apply unifies d's head against goal g, yielding a binding set or
// ErrUnifyFail (§4.4 step 4a).
func (d *Definition) apply(g *Functor) (Bindings, error) {
	return Unify(d.Pat, g)
}

// Rules is the database (§3): an immutable, source-ordered mapping from
// functor name to the sequence of Definitions with that name.
// Resolution never mutates a Rules value (I3).
type Rules struct {
	byName map[string][]*Definition
}

// NewRules returns an empty database.
func NewRules() *Rules {
	return &Rules{byName: make(map[string][]*Definition)}
}

// Add appends d to the bucket for d.Name, preserving source order —
// insertion order within a bucket is the resolution search order (§3).
func (r *Rules) Add(d *Definition) {
	r.byName[d.Name] = append(r.byName[d.Name], d)
}

// Lookup returns the Definitions registered under name, or (nil, false)
// if name has no definitions (ErrNoMatch, §7).
func (r *Rules) Lookup(name string) ([]*Definition, bool) {
	ds, ok := r.byName[name]
	return ds, ok
}
