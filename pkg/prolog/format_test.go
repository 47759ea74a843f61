package prolog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatAnswerNoVariablesYieldsYes(t *testing.T) {
	require.Equal(t, "Yes.", FormatAnswer(nil, Answer{}))
}

func TestFormatAnswerSkipsTrivialSelfBinding(t *testing.T) {
	a := Answer{"Y": &Variable{Name: "Y", ID: 1}}
	require.Equal(t, "Yes.", FormatAnswer([]string{"Y"}, a))
}

func TestFormatAnswerNonTrivialBinding(t *testing.T) {
	a := Answer{"Y": &Variable{Name: "Z", ID: 1}}
	require.Equal(t, "Y = Z.", FormatAnswer([]string{"Y"}, a))
}

func TestFormatAnswerMultipleBindingsCommaSeparated(t *testing.T) {
	a := Answer{
		"X": NewAtom("bob"),
		"Y": NewAtom("liz"),
	}
	require.Equal(t, "X = bob, Y = liz.", FormatAnswer([]string{"X", "Y"}, a))
}

func TestDedupRemovesRepeatedAnswers(t *testing.T) {
	order := []string{"X"}
	answers := []Answer{
		{"X": NewAtom("red")},
		{"X": NewAtom("red")},
		{"X": NewAtom("blue")},
	}
	out := Dedup(order, answers)
	require.Len(t, out, 2)
	require.Equal(t, "X = red.", FormatAnswer(order, out[0]))
	require.Equal(t, "X = blue.", FormatAnswer(order, out[1]))
}
