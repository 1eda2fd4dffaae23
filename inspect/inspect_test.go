package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "fonts", "f.ttf")
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte("0123456789abcdefghij"), 0644))

	r, err := File(p, "fonts/f.ttf")
	require.NoError(t, err)
	assert.Equal(t, "fonts/f.ttf", r.Path)
	assert.Equal(t, int64(20), r.Size)
	assert.Len(t, r.SHA256, 64)
	assert.True(t, r.Required)
	assert.Equal(t, "font", r.Category)
}

func TestFileOther(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "subreddits.txt")
	require.NoError(t, os.WriteFile(p, []byte("funny\n"), 0644))

	r, err := File(p, "subreddits.txt")
	require.NoError(t, err)
	assert.False(t, r.Required)
	assert.Equal(t, "other", r.Category)
}

func TestFileMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "gone.png"), "images/gone.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInspect)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "images/gone.png")
}

func TestFileInvalidUTF8(t *testing.T) {
	root := t.TempDir()
	name := "a\xff.png"
	p := filepath.Join(root, name)
	require.NoError(t, os.WriteFile(p, []byte("x"), 0644))

	_, err := File(p, "images/"+name)
	assert.ErrorIs(t, err, ErrInspect)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestFileBrokenLink(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "b.png")
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), p))

	_, err := File(p, "images/b.png")
	assert.ErrorIs(t, err, ErrInspect)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
