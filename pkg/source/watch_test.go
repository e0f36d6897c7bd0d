package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/EmilyShepherd/stream-reduce-go/pkg/reduce"
	"github.com/EmilyShepherd/stream-reduce-go/pkg/stream"
)

func TestWatchFileDeliversRewrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	w, err := WatchFile(path)
	require.NoError(t, err)
	defer w.Close()

	// A rewrite can surface as more than one event, with the file in an
	// intermediate state for the early ones, so keep rewriting and read
	// documents until the final content comes through.
	deadline := time.After(5 * time.Second)
	retry := time.NewTicker(100 * time.Millisecond)
	defer retry.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0o600))
	for {
		select {
		case doc, ok := <-w.Documents():
			require.True(t, ok)

			n, err := reduce.Fold(stream.JSONArray[int](doc), 0, func(acc int, _ int) int {
				return acc + 1
			})
			doc.Close()
			if err == nil && n == 3 {
				return
			}
		case <-retry.C:
			require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0o600))
		case <-deadline:
			t.Fatal("rewritten document never delivered")
		}
	}
}

func TestWatcherCloseClosesDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	w, err := WatchFile(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	deadline := time.After(2 * time.Second)
	for {
		select {
		case doc, ok := <-w.Documents():
			if !ok {
				return
			}
			doc.Close()
		case <-deadline:
			t.Fatal("documents channel never closed")
		}
	}
}

func TestWatchFileMissingFile(t *testing.T) {
	_, err := WatchFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
