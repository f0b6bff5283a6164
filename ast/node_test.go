package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExpansion struct {
	values map[string]string
	err    error
}

func (s *stubExpansion) ExpandIntoString(text string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if v, ok := s.values[text]; ok {
		return v, nil
	}
	return text, nil
}

func TestStringNode_TryBool_KeywordVariants(t *testing.T) {
	ctx := &stubExpansion{}
	tests := []struct {
		Text     string
		Value    bool
		Expected bool
	}{
		{"true", true, true},
		{"TRUE", true, true},
		{"on", true, true},
		{"yes", true, true},
		{"false", false, true},
		{"off", false, true},
		{"no", false, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		n := NewStringNode(tt.Text, false)
		val, ok := n.TryBool(ctx)
		assert.Equal(t, tt.Expected, ok, "text %q", tt.Text)
		if ok {
			assert.Equal(t, tt.Value, val, "text %q", tt.Text)
		}
	}
}

func TestStringNode_GetExpandedValue_CachesResult(t *testing.T) {
	calls := 0
	ctx := &countingExpansion{base: &stubExpansion{values: map[string]string{"$(Foo)": "bar"}}, calls: &calls}
	n := NewStringNode("$(Foo)", true)

	v1, err := n.GetExpandedValue(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "bar", v1)

	v2, err := n.GetExpandedValue(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "bar", v2)
	assert.Equal(t, 1, calls, "expansion should be cached across repeated calls")

	n.ResetState()
	_, _ = n.GetExpandedValue(ctx)
	assert.Equal(t, 2, calls, "ResetState should clear the cache")
}

type countingExpansion struct {
	base  ExpansionContext
	calls *int
}

func (c *countingExpansion) ExpandIntoString(text string) (string, error) {
	*c.calls++
	return c.base.ExpandIntoString(text)
}

func TestStringNode_NonExpandable_SkipsContext(t *testing.T) {
	n := NewStringNode("Debug", false)
	v, err := n.GetExpandedValue(nil)
	assert.NoError(t, err)
	assert.Equal(t, "Debug", v)
}

func TestNumericNode_TryNumeric(t *testing.T) {
	tests := []struct {
		Text     string
		Expected float64
	}{
		{"16", 16},
		{"0x10", 16},
		{"-3.5", -3.5},
	}
	for _, tt := range tests {
		n := NewNumericNode(tt.Text)
		v, ok := n.TryNumeric(nil)
		assert.True(t, ok, "text %q", tt.Text)
		assert.Equal(t, tt.Expected, v, "text %q", tt.Text)
	}
}

func TestBooleanNode_TryBool(t *testing.T) {
	n := NewBooleanNode(true, "true")
	v, ok := n.TryBool(nil)
	assert.True(t, ok)
	assert.True(t, v)
}

func TestCompositeNodes_HaveDeclaredArity(t *testing.T) {
	left := NewBooleanNode(true, "true")
	right := NewBooleanNode(false, "false")

	and := NewAndNode(left, right)
	assert.Equal(t, KindAnd, and.Kind())
	assert.Same(t, left, and.Left)
	assert.Same(t, right, and.Right)

	not := NewNotNode(left)
	assert.Equal(t, KindNot, not.Kind())
	assert.Same(t, left, not.Child)

	eq := NewEqNode(left, right)
	assert.Equal(t, KindEq, eq.Kind())
	assert.Same(t, left, eq.Left)
	assert.Same(t, right, eq.Right)
}

func TestFunctionCallNode_KnownFunctionArity(t *testing.T) {
	arity, known := KnownFunctionArity("exists")
	assert.True(t, known)
	assert.Equal(t, 1, arity)

	_, known = KnownFunctionArity("NoSuchFunction")
	assert.False(t, known)
}
