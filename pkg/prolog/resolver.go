package prolog

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gitrdm/hornlog/internal/tracelog"
)

// Answer is an answer substitution (§3): a mapping from the original
// query variable name to the Term it currently resolves to.
type Answer map[string]Term

// QueryVarOrder walks goals left-to-right, pre-order over functor
// arguments, and returns the query's variable names in order of first
// occurrence (§3 "Query ordering"). This controls display order in the
// formatter.
func QueryVarOrder(goals []*Functor) []string {
	var order []string
	seen := make(map[string]bool)
	var walk func(t Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case *Variable:
			if !seen[v.Name] {
				seen[v.Name] = true
				order = append(order, v.Name)
			}
		case *Functor:
			for _, a := range v.Args {
				walk(a)
			}
		}
	}
	for _, g := range goals {
		walk(g)
	}
	return order
}

// identityAnswer builds the initial answer substitution: every query
// variable mapped to itself (§3: "initialized at query time to
// identity").
func identityAnswer(order []string, goals []*Functor) Answer {
	a := make(Answer, len(order))
	var find func(t Term, name string) *Variable
	find = func(t Term, name string) *Variable {
		switch v := t.(type) {
		case *Variable:
			if v.Name == name {
				return v
			}
		case *Functor:
			for _, arg := range v.Args {
				if r := find(arg, name); r != nil {
					return r
				}
			}
		}
		return nil
	}
	for _, name := range order {
		for _, g := range goals {
			if v := find(g, name); v != nil {
				a[name] = v
				break
			}
		}
	}
	return a
}

// frame is one choice point: the goal currently being resolved, the
// ordered Definitions registered for its functor name, which one to
// try next, the goal stack beneath this goal (in leftmost-at-tail
// order), and the answer substitution as of entering this goal (before
// any candidate definition's bindings are applied).
type frame struct {
	goal   *Functor
	defs   []*Definition
	idx    int
	rest   []Term
	answer Answer
}

// state is a fully-substituted resolution state awaiting entry: either
// it has no goals left (a solution) or its next goal needs a fresh
// choice frame.
type state struct {
	goals  []Term // leftmost pending goal at the tail
	answer Answer
}

// Resolver drives depth-first SLD resolution with backtracking (C5). It
// is single-threaded and pull-lazy: each Next call performs bounded
// work up to the next success leaf, and no background work happens
// between calls (§5). Resolver holds no goroutines, channels, or
// mutexes — cancellation is cooperative via the context passed to Next.
type Resolver struct {
	rules   *Rules
	global  *IDAllocator
	stack   []frame
	pending *state
	done    bool
	log     *logrus.Entry
}

// NewResolver builds a resolver for goals (in surface left-to-right
// order) against rules, using global for per-activation freshening
// seeds (§4.4). The initial answer substitution is the query's identity
// mapping over its own variable-occurrence order.
func NewResolver(rules *Rules, goals []*Functor, global *IDAllocator) *Resolver {
	order := QueryVarOrder(goals)
	answer := identityAnswer(order, goals)

	stack := make([]Term, len(goals))
	for i, g := range goals {
		stack[len(goals)-1-i] = g
	}

	return &Resolver{
		rules:   rules,
		global:  global,
		pending: &state{goals: stack, answer: answer},
		log:     tracelog.With("resolver"),
	}
}

// Next returns the next answer substitution, or ok=false when the
// stream is exhausted (§4.4, §5). Dropping a Resolver mid-stream (never
// calling Next again) cancels the search at no cost beyond releasing
// the frame stack — there is nothing else to release.
func (r *Resolver) Next(ctx context.Context) (Answer, bool, error) {
	if r.done {
		return nil, false, nil
	}
	for {
		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		default:
		}

		if r.pending != nil {
			st := r.pending
			r.pending = nil

			if len(st.goals) == 0 {
				return st.answer, true, nil
			}

			g := st.goals[len(st.goals)-1]
			rest := st.goals[:len(st.goals)-1]

			fn, ok := g.(*Functor)
			if !ok {
				r.log.Debug("resolve: goal is unbound variable, branch fails")
				continue // Undef: this branch yields no solutions; backtrack.
			}
			defs, ok := r.rules.Lookup(fn.Name)
			if !ok || len(defs) == 0 {
				r.log.WithField("goal", fn.Name).Debug("resolve: no matching clause, branch fails")
				continue // NoMatch: this branch yields no solutions; backtrack.
			}
			r.stack = append(r.stack, frame{goal: fn, defs: defs, idx: 0, rest: rest, answer: st.answer})
			continue
		}

		if len(r.stack) == 0 {
			r.done = true
			return nil, false, nil
		}

		top := &r.stack[len(r.stack)-1]
		if top.idx >= len(top.defs) {
			r.stack = r.stack[:len(r.stack)-1] // exhausted: backtrack
			continue
		}
		def := top.defs[top.idx]
		top.idx++

		bindings, err := def.apply(top.goal)
		if err != nil {
			continue // UnifyFail: try the next definition for this goal.
		}

		gen := NewIDAllocatorFrom(r.global.PeekNext())

		newAnswer := make(Answer, len(top.answer))
		for k, v := range top.answer {
			newAnswer[k] = SubstituteAndFreshen(gen, bindings, v)
		}

		newGoals := make([]Term, 0, len(top.rest)+len(def.Body))
		for _, g := range top.rest {
			newGoals = append(newGoals, SubstituteAndFreshen(gen, bindings, g))
		}
		for _, g := range def.Body {
			newGoals = append(newGoals, SubstituteAndFreshen(gen, bindings, g))
		}

		r.pending = &state{goals: newGoals, answer: newAnswer}
	}
}
