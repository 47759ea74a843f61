// Package prolog implements a Horn-clause resolution engine: a unifier,
// a term substituter/freshener, and an SLD resolver with backtracking,
// driven by a database of clauses parsed from the surface syntax in
// lexer.go and parser.go.
package prolog

import (
	"fmt"
	"strings"
)

// Pos is a source location. It is carried by every Term for diagnostics
// but, per the data model's invariant I4, it never participates in
// equality, hashing, or unification.
type Pos struct {
	Line, Col int
}

// String renders a position as "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Term is a first-order term: either a Functor or a Variable. Terms are
// immutable; substitution and freshening always produce new terms.
type Term interface {
	// String renders the term for the answer formatter and diagnostics.
	String() string
	// isTerm is unexported so Term cannot be implemented outside this package.
	isTerm()
}

// Functor is a compound term (or, when Args is empty, an atom). Name is
// always lowercase-initial per the surface syntax (§6.1).
type Functor struct {
	Name string
	Args []Term
	Loc  Pos
}

func (f *Functor) isTerm() {}

// NewAtom builds a zero-arity Functor.
func NewAtom(name string) *Functor {
	return &Functor{Name: name}
}

// NewFunctor builds a Functor applying name to args.
func NewFunctor(name string, args ...Term) *Functor {
	return &Functor{Name: name, Args: args}
}

func (f *Functor) String() string {
	if len(f.Args) == 0 {
		return f.Name
	}
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteByte('(')
	for i, a := range f.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Variable is a logic variable. Its identity is carried solely by ID (the
// data model's "variable equality is by id only" rule) — Name exists
// purely for display and is never consulted by equalTerm, Unify, or any
// hashing/equality check in this package.
type Variable struct {
	Name string
	ID   uint64
	Loc  Pos
}

func (v *Variable) isTerm() {}

func (v *Variable) String() string {
	return v.Name
}

// equalTerm reports structural equality between two terms: Functors
// compare name and, recursively, args; Variables compare ID only.
// Locations never participate (I4).
func equalTerm(a, b Term) bool {
	switch ta := a.(type) {
	case *Variable:
		tb, ok := b.(*Variable)
		return ok && ta.ID == tb.ID
	case *Functor:
		tb, ok := b.(*Functor)
		if !ok || ta.Name != tb.Name || len(ta.Args) != len(tb.Args) {
			return false
		}
		for i := range ta.Args {
			if !equalTerm(ta.Args[i], tb.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
