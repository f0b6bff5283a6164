package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomsbuild/condeval/eval"
)

type stubFS struct{ present map[string]bool }

func (s stubFS) Exists(path string) bool { return s.present[path] }

func TestState_PropertyExpansion(t *testing.T) {
	s := New(stubFS{})
	s.SetProperty("Configuration", "Debug")

	out, err := s.ExpandIntoString("bin/$(Configuration)/out")
	require.NoError(t, err)
	assert.Equal(t, "bin/Debug/out", out)
}

func TestState_UndefinedPropertyExpandsEmpty(t *testing.T) {
	s := New(stubFS{})
	out, err := s.ExpandIntoString("$(Nope)")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestState_ItemListExpansion(t *testing.T) {
	s := New(stubFS{})
	s.SetItems("Compile", []eval.Item{{Identity: "a.cs"}, {Identity: "b.cs"}})

	out, err := s.ExpandIntoString("@(Compile)")
	require.NoError(t, err)
	assert.Equal(t, "a.cs;b.cs", out)
}

func TestState_MetadataExpansion(t *testing.T) {
	s := New(stubFS{})
	s.SetMetadata("Compile", "Filename", "a")

	out, err := s.ExpandIntoString("%(Compile.Filename)")
	require.NoError(t, err)
	assert.Equal(t, "a", out)
}

func TestState_PercentEscapeUnescaped(t *testing.T) {
	s := New(stubFS{})
	out, err := s.ExpandIntoString("50%25 done")
	require.NoError(t, err)
	assert.Equal(t, "50% done", out)
}

func TestState_ConditionedPropertyTracking(t *testing.T) {
	s := New(stubFS{})
	s.RecordConditionedProperty("Configuration", "Debug")
	s.RecordConditionedProperty("Configuration", "Release")
	assert.Equal(t, []string{"Debug", "Release"}, s.ConditionedValues("Configuration"))
}

func TestState_Exists(t *testing.T) {
	s := New(stubFS{present: map[string]bool{"a.txt": true}})
	assert.True(t, s.Exists("a.txt"))
	assert.False(t, s.Exists("b.txt"))
}

func TestState_WarnRecordsHistoryAndCallback(t *testing.T) {
	s := New(stubFS{})
	var seen []string
	s.SetWarnFunc(func(key string, args ...interface{}) { seen = append(seen, key) })
	s.Warn("ConditionMaybeEvaluatedIncorrectly")
	assert.Equal(t, []string{"ConditionMaybeEvaluatedIncorrectly"}, s.Warnings())
	assert.Equal(t, []string{"ConditionMaybeEvaluatedIncorrectly"}, seen)
}
