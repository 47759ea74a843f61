package prolog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnswerStreamSkipsDuplicatesAcrossPulls(t *testing.T) {
	c := NewContext()
	rules, err := c.LoadRules(`
		color(red).
		color(red).
		color(blue).
		likes(X) :- color(X).
	`)
	require.NoError(t, err)

	goals, err := c.ParseQuery("likes(X).")
	require.NoError(t, err)

	order := QueryVarOrder(goals)
	resolver := NewResolver(rules, goals, c.IDs())
	stream := NewAnswerStream(resolver, order)

	ctx := context.Background()
	var lines []string
	for {
		line, ok, err := stream.Next(ctx)
		require.NoError(t, err)
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	require.Equal(t, []string{"X = red.", "X = blue."}, lines)
}

func TestAnswerStreamExhaustionReturnsFalse(t *testing.T) {
	c := NewContext()
	rules, err := c.LoadRules("foo.")
	require.NoError(t, err)

	goals, err := c.ParseQuery("bar.")
	require.NoError(t, err)

	order := QueryVarOrder(goals)
	resolver := NewResolver(rules, goals, c.IDs())
	stream := NewAnswerStream(resolver, order)

	_, ok, err := stream.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}
