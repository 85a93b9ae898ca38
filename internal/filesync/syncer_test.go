package filesync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/namnguyen21-f/Nutrition-Tracker/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkReadsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profile":null}`), 0o644))

	s := NewSyncer(utils.NewLogger())
	defer s.Close()

	data, err := s.Link(path)
	require.NoError(t, err)
	assert.Equal(t, `{"profile":null}`, string(data))
	assert.Equal(t, path, s.Linked())
}

func TestLinkMissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	s := NewSyncer(utils.NewLogger())
	defer s.Close()

	data, err := s.Link(path)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Equal(t, path, s.Linked())
}

func TestEnqueueWithoutLinkIsDropped(t *testing.T) {
	s := NewSyncer(utils.NewLogger())
	s.Enqueue([]byte("snapshot"))
	assert.NoError(t, s.Close())
}

func TestCloseFlushesLatestSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	s := NewSyncer(utils.NewLogger())
	_, err := s.Link(path)
	require.NoError(t, err)

	// Rapid consecutive snapshots: the last successful write must reflect
	// the newest state; intermediate snapshots may be skipped.
	s.Enqueue([]byte("one"))
	s.Enqueue([]byte("two"))
	s.Enqueue([]byte("three"))
	require.NoError(t, s.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "three", string(content))
}

func TestOwnWritesDoNotTriggerReimport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	s := NewSyncer(utils.NewLogger())
	defer s.Close()
	_, err := s.Link(path)
	require.NoError(t, err)

	var seen [][]byte
	s.OnExternalChange(func(data []byte) {
		seen = append(seen, data)
	})

	// Simulate our own write landing on disk.
	require.NoError(t, os.WriteFile(path, []byte("mine"), 0o644))
	s.mu.Lock()
	s.lastWritten = []byte("mine")
	s.mu.Unlock()
	s.handleFileChange(path)
	assert.Empty(t, seen)

	// An out-of-band edit is handed to the callback.
	require.NoError(t, os.WriteFile(path, []byte("theirs"), 0o644))
	s.handleFileChange(path)
	require.Len(t, seen, 1)
	assert.Equal(t, "theirs", string(seen[0]))
}
