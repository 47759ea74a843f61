package prolog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseOneDefinition(t *testing.T, src string) *Definition {
	t.Helper()
	p := NewParser(NewLexer(src))
	ids := NewIDAllocator()
	def, ok, err := p.ParseDefinition(ids)
	require.NoError(t, err)
	require.True(t, ok)
	return def
}

func TestParserFact(t *testing.T) {
	def := parseOneDefinition(t, "parent(tom, bob).")
	require.Equal(t, "parent", def.Name)
	require.Len(t, def.Pat.Args, 2)
	require.Empty(t, def.Body)
}

func TestParserRuleReversesBody(t *testing.T) {
	def := parseOneDefinition(t, "grandparent(X, Z) :- parent(X, Y), parent(Y, Z).")
	require.Len(t, def.Body, 2)
	// I2: body stored in reverse of surface order.
	require.Equal(t, "parent", def.Body[0].Name)
	require.Equal(t, "Y", def.Body[0].Args[0].(*Variable).Name)
	require.Equal(t, "Z", def.Body[0].Args[1].(*Variable).Name)
	require.Equal(t, "X", def.Body[1].Args[0].(*Variable).Name)
	require.Equal(t, "Y", def.Body[1].Args[1].(*Variable).Name)
}

func TestParserSharedVariableSameClauseSameID(t *testing.T) {
	def := parseOneDefinition(t, "eq(X, X).")
	v1 := def.Pat.Args[0].(*Variable)
	v2 := def.Pat.Args[1].(*Variable)
	require.Equal(t, v1.ID, v2.ID)
}

func TestParserDistinctClausesDoNotShareVariableNamespace(t *testing.T) {
	ids := NewIDAllocator()
	p1 := NewParser(NewLexer("foo(X)."))
	def1, _, err := p1.ParseDefinition(ids)
	require.NoError(t, err)

	ids.NewClause()
	p2 := NewParser(NewLexer("bar(X)."))
	def2, _, err := p2.ParseDefinition(ids)
	require.NoError(t, err)

	v1 := def1.Pat.Args[0].(*Variable)
	v2 := def2.Pat.Args[0].(*Variable)
	require.NotEqual(t, v1.ID, v2.ID)
}

func TestParserEndOfInput(t *testing.T) {
	p := NewParser(NewLexer("   % nothing but a comment\n"))
	def, ok, err := p.ParseDefinition(NewIDAllocator())
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, def)
}

func TestParserSyntaxErrorHasLocation(t *testing.T) {
	p := NewParser(NewLexer("foo(X"))
	_, _, err := p.ParseDefinition(NewIDAllocator())
	require.Error(t, err)
	var syn *SyntaxError
	require.ErrorAs(t, err, &syn)
	require.Equal(t, Pos{Line: 1, Col: 6}, syn.Pos)
}

func TestParserQuery(t *testing.T) {
	p := NewParser(NewLexer("parent(tom, X), parent(X, liz)."))
	goals, err := p.ParseQuery(NewIDAllocator())
	require.NoError(t, err)
	require.Len(t, goals, 2)
	require.Equal(t, "parent", goals[0].Name)
	require.Equal(t, "parent", goals[1].Name)
}
