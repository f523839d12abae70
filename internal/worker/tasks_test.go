package worker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirTasks(t *testing.T) {
	in := t.TempDir()
	for _, name := range []string{"b.png", "a.JPG", "c.webp", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(in, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(in, "sub.png"), 0o755))

	tasks, err := DirTasks(in, "out", "")
	require.NoError(t, err)
	require.Equal(t, []Task{
		{Input: filepath.Join(in, "a.JPG"), Output: filepath.Join("out", "a.JPG")},
		{Input: filepath.Join(in, "b.png"), Output: filepath.Join("out", "b.png")},
		{Input: filepath.Join(in, "c.webp"), Output: filepath.Join("out", "c.png")},
	}, tasks)

	tasks, err = DirTasks(in, "out", "tif")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, filepath.Join("out", "c.tif"), tasks[2].Output)
}

func TestDirTasksMissingDir(t *testing.T) {
	_, err := DirTasks(filepath.Join(t.TempDir(), "missing"), "out", "")
	require.Error(t, err)
}
