// Package repl drives the interactive read-solve-print loop described
// in §4.9/§6.3: a "?-" prompt for a fresh query, a ".." continuation
// prompt until the line contains a period, and a per-answer "request
// next (;) or stop (.)" protocol once a query starts producing
// solutions.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gitrdm/hornlog/internal/tracelog"
	"github.com/gitrdm/hornlog/pkg/prolog"
)

var quitWords = map[string]bool{"q": true, "quit": true, "exit": true}

// REPL owns the loaded database and the Context that parses queries
// against it, and drives the loop over an input/output pair.
type REPL struct {
	ctx   *prolog.Context
	rules *prolog.Rules
	in    *bufio.Scanner
	out   io.Writer
	log   *logrus.Entry
}

// New builds a REPL reading lines from in and writing prompts/answers
// to out, against the already-loaded rules.
func New(ctx *prolog.Context, rules *prolog.Rules, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		ctx:   ctx,
		rules: rules,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   tracelog.With("repl"),
	}
}

// Run drives the loop until the input is exhausted, a quit word is
// entered, or ctx is cancelled. It never returns an error for ordinary
// syntax mistakes: those are reported to out and the loop continues
// (§7 — only syntax errors reach the user; the REPL itself recovers).
func (r *REPL) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			r.log.Debug("context cancelled, ending session")
			return
		}
		line, ok := r.prompt("?-")
		if !ok {
			r.log.Debug("input exhausted, ending session")
			return
		}
		if isQuit(line) {
			r.log.WithField("word", line).Debug("quit word received")
			return
		}
		for !strings.Contains(line, ".") {
			more, ok := r.prompt("..")
			if !ok || isQuit(more) {
				return
			}
			line += more
		}

		goals, err := r.ctx.ParseQuery(line)
		if err != nil {
			fmt.Fprintln(r.out, err.Error())
			continue
		}

		r.runQuery(ctx, goals)
	}
}

// runQuery resolves goals against the database and drives the
// per-answer continuation protocol: after each answer, ";" asks for
// the next solution, "." ends the query early, and anything else
// re-prompts (§6.3).
func (r *REPL) runQuery(ctx context.Context, goals []*prolog.Functor) {
	resolver := prolog.NewResolver(r.rules, goals, r.ctx.IDs())
	order := prolog.QueryVarOrder(goals)
	stream := prolog.NewAnswerStream(resolver, order)

	for {
		line, ok, err := stream.Next(ctx)
		if err != nil {
			fmt.Fprintln(r.out, "query cancelled")
			return
		}
		if !ok {
			fmt.Fprintln(r.out, "No.")
			return
		}
		fmt.Fprintln(r.out, line)

		for {
			more, ok := r.prompt("")
			if !ok || more == "." {
				return
			}
			if more == ";" {
				break
			}
			// anything else re-prompts without advancing past this answer
		}
	}
}

// prompt writes label followed by a space, reads one line, and returns
// it trimmed. ok is false when input is exhausted (EOF).
func (r *REPL) prompt(label string) (line string, ok bool) {
	if label != "" {
		fmt.Fprintf(r.out, "%s ", label)
	}
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func isQuit(s string) bool {
	return quitWords[s]
}
