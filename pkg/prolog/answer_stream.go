package prolog

import "context"

// AnswerStream pulls deduplicated, formatted answers out of a Resolver
// one at a time (§4.5, §5: pull-lazy, single-pass, cancellable). It is
// the type the REPL (internal/repl) drives directly: "request next
// line; ok=false means done."
type AnswerStream struct {
	resolver *Resolver
	order    []string
	seen     map[string]bool
}

// NewAnswerStream wraps resolver, rendering and deduplicating its
// answers in order.
func NewAnswerStream(resolver *Resolver, order []string) *AnswerStream {
	return &AnswerStream{resolver: resolver, order: order, seen: make(map[string]bool)}
}

// Next returns the next non-duplicate formatted answer line, or
// ok=false when the underlying resolution is exhausted.
func (s *AnswerStream) Next(ctx context.Context) (line string, ok bool, err error) {
	for {
		answer, ok, err := s.resolver.Next(ctx)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, nil
		}
		key := canonicalKey(s.order, answer)
		if s.seen[key] {
			continue
		}
		s.seen[key] = true
		return FormatAnswer(s.order, answer), true, nil
	}
}
