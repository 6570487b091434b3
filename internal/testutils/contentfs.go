package testutils

import (
	"embed"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed testdata
var testdata embed.FS

// Transcripts available in NewTestTranscriptFS.
const (
	// ExampleTranscript is the canonical session: 95437 bytes in small
	// directories, 48381165 bytes in total, /d is the deletion candidate.
	ExampleTranscript = "example.txt"
	// NoisyTranscript is ExampleTranscript with noise lines and a repeated root listing.
	NoisyTranscript = "noisy.txt"
	// EmptyDirTranscript lists a single empty directory below the root.
	EmptyDirTranscript = "empty-dir.txt"
)

func NewTestTranscriptFS(t *testing.T) fs.FS {
	transcriptFS, err := fs.Sub(testdata, "testdata")
	require.NoError(t, err)

	return transcriptFS
}

// ReadTranscript returns the content of one of the test transcripts.
func ReadTranscript(t *testing.T, name string) string {
	data, err := fs.ReadFile(NewTestTranscriptFS(t), name)
	require.NoError(t, err)

	return string(data)
}
