package testutils

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConcurrentMapFS(t *testing.T) {
	// Concurrent access is covered by internal/fswatcher/fswatcher_test.go.
	cmfs := NewConcurrentMapFS(fstest.MapFS{
		"session.txt": &fstest.MapFile{
			Data:    []byte("$ cd /\n$ ls\n"),
			Mode:    0o400,
			ModTime: time.Now(),
		},
		"old/session.txt": &fstest.MapFile{
			Data:    []byte("$ ls\n1 a\n"),
			Mode:    0o644,
			ModTime: time.Now(),
		},
	})
	require.NoError(t, fstest.TestFS(cmfs, "session.txt", "old/session.txt"))

	cmfs.Delete("old/session.txt")
	require.NoError(t, fstest.TestFS(cmfs, "session.txt"))
}
