package vault_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julien-sobczak/the-notekit/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForEvent(t *testing.T, events <-chan vault.Event) vault.Event {
	t.Helper()
	select {
	case event := <-events:
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
		return vault.Event{}
	}
}

func TestIndexer(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Projects"), 0755))

	indexer, err := vault.NewIndexer(root, vault.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer indexer.Close()
	indexer.Start()

	t.Run("Create", func(t *testing.T) {
		path := filepath.Join(root, "Projects", "ACME.md")
		require.NoError(t, os.WriteFile(path, []byte("# ACME"), 0644))

		event := waitForEvent(t, indexer.Events())
		assert.Equal(t, "Projects/ACME.md", event.Path)
		assert.Equal(t, vault.Created, event.Op)
		assert.NotEmpty(t, event.ID)
	})

	t.Run("Successive writes are coalesced", func(t *testing.T) {
		path := filepath.Join(root, "Projects", "ACME.md")
		require.NoError(t, os.WriteFile(path, []byte("# ACME v2"), 0644))
		require.NoError(t, os.WriteFile(path, []byte("# ACME v3"), 0644))

		event := waitForEvent(t, indexer.Events())
		assert.Equal(t, "Projects/ACME.md", event.Path)
		assert.Equal(t, vault.Modified, event.Op)

		// The burst must produce a single event
		select {
		case extra := <-indexer.Events():
			t.Fatalf("unexpected extra event: %+v", extra)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("Unsupported extensions are ignored", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(root, "Projects", "photo.png"), []byte("raw"), 0644))

		select {
		case event := <-indexer.Events():
			t.Fatalf("unexpected event: %+v", event)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("Remove", func(t *testing.T) {
		path := filepath.Join(root, "Projects", "ACME.md")
		require.NoError(t, os.Remove(path))

		event := waitForEvent(t, indexer.Events())
		assert.Equal(t, "Projects/ACME.md", event.Path)
		assert.Equal(t, vault.Deleted, event.Op)
	})
}

func TestIndexerMissingRoot(t *testing.T) {
	_, err := vault.NewIndexer(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "created", vault.Created.String())
	assert.Equal(t, "modified", vault.Modified.String())
	assert.Equal(t, "deleted", vault.Deleted.String())
}

func TestIndexerCloseTwice(t *testing.T) {
	indexer, err := vault.NewIndexer(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, indexer.Close())
	assert.NotPanics(t, func() {
		indexer.Close()
	})
}
