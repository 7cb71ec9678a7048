package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmjaga/api-task/http/validation"
)

// ── Splitting ────────────────────────────────────────────────────────────────

func TestParse_SplitsOnPipes(t *testing.T) {
	tokens := validation.Parse("required|varchar")
	require.Len(t, tokens, 2)
	assert.Equal(t, "required", tokens[0].Name)
	assert.Equal(t, "varchar", tokens[1].Name)
}

func TestParse_PipesInsideParensAreNotSeparators(t *testing.T) {
	tokens := validation.Parse("enum(A|B|default:C)|required")
	require.Len(t, tokens, 2)

	assert.Equal(t, "enum", tokens[0].Name)
	assert.Equal(t, "A|B|default:C", tokens[0].Params)
	assert.True(t, tokens[0].HasParams)

	assert.Equal(t, "required", tokens[1].Name)
	assert.False(t, tokens[1].HasParams)
}

func TestParse_DeclarationOrderIsPreserved(t *testing.T) {
	tokens := validation.Parse("varchar|required|integer")
	require.Len(t, tokens, 3)
	assert.Equal(t, "varchar", tokens[0].Name)
	assert.Equal(t, "required", tokens[1].Name)
	assert.Equal(t, "integer", tokens[2].Name)
}

func TestParse_EmptyRuleString(t *testing.T) {
	assert.Empty(t, validation.Parse(""))
}

func TestParse_BlankSegmentsAreSkipped(t *testing.T) {
	tokens := validation.Parse("required||varchar|")
	require.Len(t, tokens, 2)
	assert.Equal(t, "required", tokens[0].Name)
	assert.Equal(t, "varchar", tokens[1].Name)
}

// ── Parameter extraction ─────────────────────────────────────────────────────

func TestParse_SingleParam(t *testing.T) {
	tokens := validation.Parse("after(startDate)")
	require.Len(t, tokens, 1)
	assert.Equal(t, "after", tokens[0].Name)
	assert.Equal(t, "startDate", tokens[0].Params)
	assert.True(t, tokens[0].HasParams)
}

func TestParse_EmptyParamGroup(t *testing.T) {
	// enum() is distinct from a bare enum: the group exists but is empty.
	tokens := validation.Parse("enum()")
	require.Len(t, tokens, 1)
	assert.Equal(t, "enum", tokens[0].Name)
	assert.Empty(t, tokens[0].Params)
	assert.True(t, tokens[0].HasParams)
}

func TestParse_NoParamGroup(t *testing.T) {
	tokens := validation.Parse("enum")
	require.Len(t, tokens, 1)
	assert.False(t, tokens[0].HasParams)
}

func TestParse_NestedParens(t *testing.T) {
	tokens := validation.Parse("enum(a(x|y)|b)|required")
	require.Len(t, tokens, 2)
	assert.Equal(t, "a(x|y)|b", tokens[0].Params)
	assert.Equal(t, "required", tokens[1].Name)
}

func TestParse_UnclosedParenRunsToEnd(t *testing.T) {
	tokens := validation.Parse("after(startDate")
	require.Len(t, tokens, 1)
	assert.Equal(t, "after", tokens[0].Name)
	assert.Equal(t, "startDate", tokens[0].Params)
	assert.True(t, tokens[0].HasParams)
}

func TestParse_UnbalancedCloseParen(t *testing.T) {
	// A stray close paren must not corrupt depth tracking for what follows.
	tokens := validation.Parse("varchar)|required")
	require.Len(t, tokens, 2)
	assert.Equal(t, "required", tokens[1].Name)
}
