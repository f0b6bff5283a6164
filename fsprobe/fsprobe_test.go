package fsprobe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOS_Exists(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0644))

	fs := New()
	assert.True(t, fs.Exists(present))
	assert.False(t, fs.Exists(filepath.Join(dir, "missing.txt")))
}
