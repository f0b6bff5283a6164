package eval_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomsbuild/condeval/eval"
	"github.com/gomsbuild/condeval/parser"
)

type fakeState struct {
	properties map[string]string
	items      map[string][]eval.Item
	metadata   map[string]string
	files      map[string]bool
	loaded     map[string]bool
	warnings   []string
	condition  map[string][]string
}

func newFakeState() *fakeState {
	return &fakeState{
		properties: map[string]string{},
		items:      map[string][]eval.Item{},
		metadata:   map[string]string{},
		files:      map[string]bool{},
		loaded:     map[string]bool{},
		condition:  map[string][]string{},
	}
}

func (s *fakeState) GetProperty(name string) (string, bool) {
	v, ok := s.properties[name]
	return v, ok
}

func (s *fakeState) GetItems(itemType string) ([]eval.Item, bool) {
	v, ok := s.items[itemType]
	return v, ok
}

func (s *fakeState) GetMetadata(itemType, name string) (string, bool) {
	v, ok := s.metadata[itemType+"."+name]
	return v, ok
}

func (s *fakeState) Exists(path string) bool { return s.files[path] }

func (s *fakeState) IsLoaded(path string) bool { return s.loaded[path] }

func (s *fakeState) Warn(key string, args ...interface{}) {
	s.warnings = append(s.warnings, key)
}

func (s *fakeState) RecordConditionedProperty(name, value string) {
	s.condition[name] = append(s.condition[name], value)
}

// ExpandIntoString is a minimal expander sufficient for tests: it
// substitutes whole "$(Name)" references from the property map and
// leaves everything else untouched.
func (s *fakeState) ExpandIntoString(text string) (string, error) {
	if strings.HasPrefix(text, "$(") && strings.HasSuffix(text, ")") {
		name := text[2 : len(text)-1]
		if v, ok := s.properties[name]; ok {
			return v, nil
		}
		return text, nil
	}
	return text, nil
}

func evalText(t *testing.T, text string, st eval.State, opts parser.Options) (bool, error) {
	t.Helper()
	node, err := parser.Parse(text, opts, nil)
	require.NoError(t, err, "text %q", text)
	return eval.Evaluate(node, st)
}

func TestEvaluate_Boolean(t *testing.T) {
	st := newFakeState()
	v, err := evalText(t, "true", st, 0)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEvaluate_HexEquality(t *testing.T) {
	st := newFakeState()
	v, err := evalText(t, "0x10 == 16", st, 0)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEvaluate_CaseInsensitiveStringEquality(t *testing.T) {
	st := newFakeState()
	v, err := evalText(t, "'abc' == 'ABC'", st, 0)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEvaluate_NegatedParenthesizedAnd(t *testing.T) {
	st := newFakeState()
	v, err := evalText(t, "!('true' and 'false')", st, 0)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEvaluate_PropertyExpansion(t *testing.T) {
	st := newFakeState()
	st.properties["Configuration"] = "Debug"
	v, err := evalText(t, "'$(Configuration)' == 'Debug'", st, parser.AllowProperties)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEvaluate_ConditionedPropertyRecorded(t *testing.T) {
	st := newFakeState()
	st.properties["Configuration"] = "Release"
	_, err := evalText(t, "$(Configuration)==Debug", st, parser.AllowProperties)
	require.NoError(t, err)
	assert.Equal(t, []string{"Debug"}, st.condition["Configuration"])
}

func TestEvaluate_Exists(t *testing.T) {
	st := newFakeState()
	v, err := evalText(t, "Exists('no-such-file')", st, 0)
	require.NoError(t, err)
	assert.False(t, v)

	st.files["build.proj"] = true
	v, err = evalText(t, "Exists('build.proj')", st, 0)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEvaluate_ExistsMultiplePathsRequiresAll(t *testing.T) {
	st := newFakeState()
	st.files["a.txt"] = true
	st.files["b.txt"] = true

	v, err := evalText(t, "Exists('a.txt;b.txt')", st, 0)
	require.NoError(t, err)
	assert.True(t, v)

	delete(st.files, "b.txt")
	v, err = evalText(t, "Exists('a.txt;b.txt')", st, 0)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestEvaluate_HasTrailingSlash(t *testing.T) {
	st := newFakeState()
	v, err := evalText(t, "HasTrailingSlash('foo/')", st, 0)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = evalText(t, "HasTrailingSlash('foo')", st, 0)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestEvaluate_NumericComparison(t *testing.T) {
	st := newFakeState()
	v, err := evalText(t, "2 > 1", st, 0)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEvaluate_VersionComparison(t *testing.T) {
	st := newFakeState()
	v, err := evalText(t, "'1.2.3' > '1.2.0'", st, 0)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEvaluate_ToolsVersionCompatKludge(t *testing.T) {
	st := newFakeState()
	st.properties["MSBuildToolsVersion"] = "Current"
	v, err := evalText(t, "$(MSBuildToolsVersion) >= 4.0", st, parser.AllowProperties)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestEvaluate_ToolsVersionCompatDoesNotApplyToLiteral(t *testing.T) {
	st := newFakeState()
	_, err := evalText(t, "'Current' >= 4.0", st, 0)
	require.Error(t, err)
	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.ComparisonOnNonNumericExpression, evalErr.Key)
}

func TestEvaluate_ToolsVersionCompatDoesNotLeakIntoEquality(t *testing.T) {
	st := newFakeState()
	st.properties["MSBuildToolsVersion"] = "Current"

	v, err := evalText(t, "$(MSBuildToolsVersion) == 'Current'", st, parser.AllowProperties)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = evalText(t, "$(MSBuildToolsVersion) == '4.0'", st, parser.AllowProperties)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestEvaluate_NonBooleanTopLevelFails(t *testing.T) {
	st := newFakeState()
	_, err := evalText(t, "42", st, 0)
	require.Error(t, err)
	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.ExpressionDoesNotEvaluateToBoolean, evalErr.Key)
}

func TestEvaluate_ComparisonOnNonNumericFails(t *testing.T) {
	st := newFakeState()
	_, err := evalText(t, "'abc' > 'def and ghi'", st, 0)
	require.Error(t, err)
	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.ComparisonOnNonNumericExpression, evalErr.Key)
}

func TestEvaluate_ResetStateAllowsReEvaluation(t *testing.T) {
	st := newFakeState()
	st.properties["Configuration"] = "Debug"
	node, err := parser.Parse("'$(Configuration)' == 'Debug'", parser.AllowProperties, nil)
	require.NoError(t, err)

	v, err := eval.Evaluate(node, st)
	require.NoError(t, err)
	assert.True(t, v)

	st.properties["Configuration"] = "Release"
	eval.ResetState(node)
	v, err = eval.Evaluate(node, st)
	require.NoError(t, err)
	assert.False(t, v)
}
