package prolog

import (
	"github.com/hashicorp/go-multierror"
)

// Context owns the global id allocator for one program's lifetime (§4.1,
// §5). A single Context parses the database once, then parses and
// resolves queries serially — the allocator's counter must never
// rewind, so concurrent use of one Context is not supported.
type Context struct {
	ids *IDAllocator
}

// NewContext returns a Context with a fresh, zeroed id allocator.
func NewContext() *Context {
	return &Context{ids: NewIDAllocator()}
}

// LoadRules parses src as a sequence of clauses (§4.7, §4.8) and returns
// the resulting database. Each clause gets its own variable namespace
// (I1). If any clause fails to parse, LoadRules keeps scanning for
// subsequent clauses — recovering at the next `.` — so that a batch load
// reports every syntax error found, not just the first; the returned
// error is a *multierror.Error aggregating them (§7).
func (c *Context) LoadRules(src string) (*Rules, error) {
	lex := NewLexer(src)
	parser := NewParser(lex)
	rules := NewRules()

	var errs *multierror.Error
	for {
		c.ids.NewClause()
		def, ok, err := parser.ParseDefinition(c.ids)
		if err != nil {
			errs = multierror.Append(errs, err)
			if !recoverToNextPeriod(lex) {
				break
			}
			continue
		}
		if !ok {
			break
		}
		rules.Add(def)
	}
	return rules, errs.ErrorOrNil()
}

// ParseQuery parses one query clause — a comma-separated goal sequence
// terminated by `.` — in its own variable namespace, for the REPL's
// "?-" prompt (§4.9).
func (c *Context) ParseQuery(src string) ([]*Functor, error) {
	c.ids.NewClause()
	lex := NewLexer(src)
	parser := NewParser(lex)
	goals, err := parser.ParseQuery(c.ids)
	if err != nil {
		return nil, err
	}
	if _, err := lex.expect(TokenEOF); err != nil {
		return nil, err
	}
	return goals, nil
}

// IDs exposes the Context's allocator so a resolver can be seeded for
// freshening (§4.3); callers must not call Alloc on it directly once
// resolution has begun for an in-flight query.
func (c *Context) IDs() *IDAllocator {
	return c.ids
}

// recoverToNextPeriod scans forward to (and past) the next TokenPeriod
// or TokenEOF, so a batch load can continue past one broken clause.
// Returns false once EOF is reached.
func recoverToNextPeriod(lex *Lexer) bool {
	for {
		tok, err := lex.Next()
		if err != nil {
			continue // the bad token itself; keep skipping
		}
		if tok.Kind == TokenEOF {
			return false
		}
		if tok.Kind == TokenPeriod {
			return true
		}
	}
}
