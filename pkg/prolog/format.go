package prolog

import "strings"

// FormatAnswer renders one answer in query-variable order (§4.5),
// skipping variables bound only to themselves (a trivial self-binding)
// and emitting "Yes." when nothing is left to show.
func FormatAnswer(order []string, a Answer) string {
	var parts []string
	for _, v := range order {
		val := a[v]
		if bv, ok := val.(*Variable); ok && bv.Name == v {
			continue
		}
		parts = append(parts, v+" = "+val.String())
	}
	if len(parts) == 0 {
		return "Yes."
	}
	return strings.Join(parts, ", ") + "."
}

// canonicalKey builds the string a dedup set keys on: the non-skipped
// bindings, in query order, joined the same way FormatAnswer renders
// them. Two answers are duplicates iff their canonical keys match —
// equivalent to spec.md's "non-skipped bindings are structurally
// equal," computed with a hash set instead of the source's O(n²) scan
// (§4.5 explicitly permits this).
func canonicalKey(order []string, a Answer) string {
	return FormatAnswer(order, a)
}

// Dedup filters answers, in order, down to the first occurrence of
// each distinct canonical rendering (P7: the formatter never emits two
// identical lines in succession, and in fact never emits a duplicate at
// all across the whole stream).
func Dedup(order []string, answers []Answer) []Answer {
	seen := make(map[string]bool, len(answers))
	out := make([]Answer, 0, len(answers))
	for _, a := range answers {
		key := canonicalKey(order, a)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}
