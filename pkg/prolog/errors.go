package prolog

import (
	"fmt"

	"github.com/pkg/errors"
)

// SyntaxError reports a scanner/parser failure with its source location
// (§6.4, §7). Its inner cause is created with github.com/pkg/errors,
// which records a stack trace and is reachable through Unwrap; Error
// itself prints only the position and message.
type SyntaxError struct {
	Pos     Pos
	Message string
	cause   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *SyntaxError) Unwrap() error {
	return e.cause
}

// newSyntaxError builds a SyntaxError at pos with a formatted message.
func newSyntaxError(pos Pos, format string, args ...interface{}) *SyntaxError {
	msg := fmt.Sprintf(format, args...)
	return &SyntaxError{Pos: pos, Message: msg, cause: errors.New(msg)}
}

// Resolution-error kinds (§7). These are expected control signals, not
// faults. Only Unify returns one (ErrUnifyFail); the resolver handles
// the no-match and unbound-goal cases by ending that branch with no
// answers and returns neither error, so a query with no answers reaches
// the user as "No.".
var (
	// ErrUnifyFail is returned when two terms cannot be made
	// syntactically equal by any binding set.
	ErrUnifyFail = errors.New("prolog: unification failed")
	// ErrNoMatch names the case of a goal whose functor has no
	// definitions in the database.
	ErrNoMatch = errors.New("prolog: no matching clause")
	// ErrUndef names the case of a goal on the stack that is a free
	// variable rather than a functor.
	ErrUndef = errors.New("prolog: goal is an unbound variable")
)
