package walk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func collect(t *testing.T, root string, exclude []string) []string {
	t.Helper()
	out := []string{}
	err := Walk(root, exclude, func(path string) error {
		rel, err := Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, rel)
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestWalkOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.txt", "b")
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "images/z.png", "z")
	writeFile(t, root, "images/a.png", "a")
	writeFile(t, root, "images/icons/i.svg", "i")
	writeFile(t, root, "fonts/f.ttf", "f")
	writeFile(t, root, "zz.txt", "zz")

	got := collect(t, root, nil)
	assert.Equal(t, []string{
		"a.txt",
		"b.txt",
		"zz.txt",
		"fonts/f.ttf",
		"images/a.png",
		"images/z.png",
		"images/icons/i.svg",
	}, got)

	assert.Equal(t, got, collect(t, root, nil), "walk must be repeatable")
}

func TestWalkPrunesExcluded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".git/config", "x")
	writeFile(t, root, ".git/objects/ab/cd", "x")
	writeFile(t, root, "images/__pycache__/x.png", "x")
	writeFile(t, root, "images/a.png", "a")

	got := collect(t, root, []string{".git", "__pycache__"})
	assert.Equal(t, []string{"images/a.png"}, got)
}

func TestWalkMissingRoot(t *testing.T) {
	err := Walk(filepath.Join(t.TempDir(), "missing"), nil, func(string) error { return nil })
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestWalkRootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", "x")
	err := Walk(filepath.Join(root, "file.txt"), nil, func(string) error { return nil })
	assert.ErrorIs(t, err, ErrRootNotDir)
}

func TestWalkStopsOnError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "b.txt", "b")

	stop := errors.New("stop")
	seen := 0
	err := Walk(root, nil, func(string) error {
		seen++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, seen)
}

func TestRel(t *testing.T) {
	rel, err := Rel("/r", filepath.Join("/r", "images", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "images/a.png", rel)
}

func TestWalkLinks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "images/a.png", "a")
	writeFile(t, root, "other/c.png", "c")
	require.NoError(t, os.Symlink(filepath.Join(root, "images", "a.png"), filepath.Join(root, "images", "link.png")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.png"), filepath.Join(root, "images", "broken.png")))
	require.NoError(t, os.Symlink(filepath.Join(root, "other"), filepath.Join(root, "images", "dirlink")))

	got := collect(t, root, nil)
	assert.Equal(t, []string{
		"images/a.png",
		"images/broken.png",
		"images/link.png",
		"other/c.png",
	}, got)
}

func TestCheckRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", "x")
	assert.NoError(t, CheckRoot(root))
	assert.ErrorIs(t, CheckRoot(filepath.Join(root, "missing")), ErrRootNotFound)
	assert.ErrorIs(t, CheckRoot(filepath.Join(root, "file.txt")), ErrRootNotDir)
}
