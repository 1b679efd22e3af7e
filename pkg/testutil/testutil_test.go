package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/codec/pkg/filesystem"
)

func TestCreateTreeAndReadTree(t *testing.T) {
	root := t.TempDir()
	CreateTree(t, root, map[string]string{
		"a.txt":       "a",
		"nested/b.go": "package b",
		"empty/":      "",
	})

	assert.True(t, DirExists(t, filepath.Join(root, "empty")))
	assert.Equal(t, map[string]string{
		"a.txt":       "a",
		"nested/b.go": "package b",
	}, ReadTree(t, root))
}

func TestTreeChecksum(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	tree := map[string]string{"x/y.txt": "same"}
	CreateTree(t, a, tree)
	CreateTree(t, b, tree)
	assert.Equal(t, TreeChecksum(t, a), TreeChecksum(t, b))

	CreateFile(t, b, "extra.txt", "")
	assert.NotEqual(t, TreeChecksum(t, a), TreeChecksum(t, b))
}

func TestWriteTree(t *testing.T) {
	fsys := filesystem.NewMemory()
	WriteTree(t, fsys, "/tmpl", map[string]string{
		"dir/file.txt": "content",
		"other/":       "",
	})

	data, err := fsys.ReadFile("/tmpl/dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	info, err := fsys.Stat("/tmpl/other")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
