package prolog

// Parser builds Definitions and query goal lists from a token stream
// (§4.7, §6.1). Each clause gets its own variable-name scope: the
// caller hands ParseDefinition a fresh IDAllocator (or calls NewClause
// between parses of the same allocator) so that `X` in one clause and
// `X` in the next are unrelated variables, per I1.
//
// The grammar differs from the reference source in one place: a clause
// head followed directly by `.` is a fact (no body), rather than
// requiring `:- true.`. §9's Open Question on `true/0` resolves this
// the other way around — `true/0` is an ordinary predicate, not special
// syntax — so the grammar must accept bare facts directly.
type Parser struct {
	lex *Lexer
}

// NewParser constructs a Parser reading from lex.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// ParseDefinition reads one clause — `head.` or `head :- g1, g2, ... .`
// — assigning fresh variable ids within ids. It returns ok=false at
// end of input, with no error.
func (p *Parser) ParseDefinition(ids *IDAllocator) (def *Definition, ok bool, err error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, false, err
	}
	if tok.Kind == TokenEOF {
		return nil, false, nil
	}

	pat, err := p.parseTerm(ids)
	if err != nil {
		return nil, false, err
	}
	head, isFunctor := pat.(*Functor)
	if !isFunctor {
		return nil, false, newSyntaxError(tok.Loc, "clause head must be a functor, found a variable")
	}

	var body []*Functor
	hasBody, err := p.lex.isToken(TokenPen)
	if err != nil {
		return nil, false, err
	}
	if hasBody {
		body, err = p.parseGoalSequence(ids)
		if err != nil {
			return nil, false, err
		}
	}
	if _, err := p.lex.expect(TokenPeriod); err != nil {
		return nil, false, err
	}

	return NewDefinition(head, body), true, nil
}

// ParseQuery reads a query's goal sequence terminated by `.`, without
// consuming a trailing EOF (callers decide whether trailing input is
// an error). Goals are returned in surface left-to-right order; callers
// pass them to NewResolver, which reverses internally per I2.
func (p *Parser) ParseQuery(ids *IDAllocator) ([]*Functor, error) {
	goals, err := p.parseGoalSequence(ids)
	if err != nil {
		return nil, err
	}
	if _, err := p.lex.expect(TokenPeriod); err != nil {
		return nil, err
	}
	return goals, nil
}

// parseGoalSequence reads a comma-separated list of functor goals.
func (p *Parser) parseGoalSequence(ids *IDAllocator) ([]*Functor, error) {
	var goals []*Functor
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		t, err := p.parseTerm(ids)
		if err != nil {
			return nil, err
		}
		g, isFunctor := t.(*Functor)
		if !isFunctor {
			return nil, newSyntaxError(tok.Loc, "goal must be a functor, found a variable")
		}
		goals = append(goals, g)

		more, err := p.lex.isToken(TokenComma)
		if err != nil {
			return nil, err
		}
		if !more {
			return goals, nil
		}
	}
}

// parseTerm reads one term: an identifier starting lowercase is a
// functor (optionally applied to a parenthesized, comma-separated
// argument list); one starting uppercase is a variable, whose name is
// resolved to an id via ids.Alloc so repeated occurrences within the
// same clause share identity (§4.1, §6.1).
func (p *Parser) parseTerm(ids *IDAllocator) (Term, error) {
	tok, err := p.lex.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	name := tok.Text
	if name == "" {
		return nil, newSyntaxError(tok.Loc, "empty identifier")
	}

	if isUpper(rune(name[0])) {
		id := ids.Alloc(name)
		return &Variable{Name: name, ID: id, Loc: tok.Loc}, nil
	}

	var args []Term
	hasArgs, err := p.lex.isToken(TokenLParen)
	if err != nil {
		return nil, err
	}
	if hasArgs {
		for {
			arg, err := p.parseTerm(ids)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			more, err := p.lex.isToken(TokenComma)
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
		}
		if _, err := p.lex.expect(TokenRParen); err != nil {
			return nil, err
		}
	}
	return &Functor{Name: name, Args: args, Loc: tok.Loc}, nil
}

func isUpper(c rune) bool {
	return c == '_' || (c >= 'A' && c <= 'Z')
}
