package prolog

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestContextLoadRulesFacts(t *testing.T) {
	ctx := NewContext()
	rules, err := ctx.LoadRules("parent(tom, bob). parent(bob, liz).")
	require.NoError(t, err)

	defs, ok := rules.Lookup("parent")
	require.True(t, ok)
	require.Len(t, defs, 2)
}

func TestContextLoadRulesAggregatesSyntaxErrors(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.LoadRules("foo(X. bar(Y).\nbaz(#).")
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.GreaterOrEqual(t, len(merr.Errors), 1)
}

func TestContextLoadRulesRecoversAfterBadClause(t *testing.T) {
	ctx := NewContext()
	rules, err := ctx.LoadRules("foo(X.\nbar(ok).")
	require.Error(t, err)
	defs, ok := rules.Lookup("bar")
	require.True(t, ok)
	require.Len(t, defs, 1)
}

func TestContextParseQueryFreshVariableNamespacePerCall(t *testing.T) {
	ctx := NewContext()
	g1, err := ctx.ParseQuery("eq(X, X).")
	require.NoError(t, err)
	g2, err := ctx.ParseQuery("eq(X, X).")
	require.NoError(t, err)

	id1 := g1[0].Args[0].(*Variable).ID
	id2 := g2[0].Args[0].(*Variable).ID
	require.NotEqual(t, id1, id2)
}
