package catalogs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeFixture = `[
  {"name": "fzf", "urls": [{"name": "home", "url": "https://github.com/junegunn/fzf"}]},
  {"name": "bat", "tags": ["rust", "windows"]}
]
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tools.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStoreOpen(t *testing.T) {
	path := writeCatalog(t, storeFixture)

	store, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
	assert.Equal(t, 2, store.Len())
	assert.False(t, store.Dirty())

	records := store.Records()
	assert.Equal(t, "uncategorized", records[1].Category)
	assert.Equal(t, []string{"rust", "windows"}, records[1].Tags)
	assert.Empty(t, records[1].Platforms)
}

func TestStoreOpenWithUpgrade(t *testing.T) {
	path := writeCatalog(t, storeFixture)

	store, err := Open(path, WithUpgrade())
	require.NoError(t, err)

	records := store.Records()
	assert.Equal(t, AllPlatforms, records[0].Platforms)
	assert.Equal(t, []Platform{PlatformWindows}, records[1].Platforms)
	assert.Equal(t, []string{"rust"}, records[1].Tags)
}

func TestStoreRecordsAreCopies(t *testing.T) {
	store, err := Open(writeCatalog(t, storeFixture))
	require.NoError(t, err)

	records := store.Records()
	records[0].Name = "changed"
	assert.Equal(t, "fzf", store.Records()[0].Name)
	assert.False(t, store.Dirty())
}

func TestStoreDirtyTracking(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Store) error
	}{
		{name: "sort of an already sorted catalog", mutate: func(s *Store) error {
			return s.Sort(SortKeyName, SortDesc)
		}},
		{name: "identity transform", mutate: func(s *Store) error {
			s.Transform("noop", func(r []Record) []Record { return r })
			return nil
		}},
		{name: "add", mutate: func(s *Store) error {
			s.Add(Record{Name: "jq"})
			return nil
		}},
		{name: "mark", mutate: func(s *Store) error {
			s.MarkDirty()
			return nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(writeCatalog(t, storeFixture))
			require.NoError(t, err)
			require.False(t, store.Dirty())

			require.NoError(t, tt.mutate(store))
			assert.True(t, store.Dirty())
		})
	}
}

func TestStoreTransform(t *testing.T) {
	store, err := Open(writeCatalog(t, storeFixture))
	require.NoError(t, err)

	store.Transform("rename", func(records []Record) []Record {
		records[0].Name = "fzf-renamed"
		return records[:1]
	})
	assert.Equal(t, []string{"fzf-renamed"}, names(store.Records()))
	assert.True(t, store.Dirty())
}

func TestStoreSortError(t *testing.T) {
	store, err := Open(writeCatalog(t, storeFixture))
	require.NoError(t, err)

	err = store.Sort(SortKeyName, SortOrder("sideways"))
	require.Error(t, err)
	assert.False(t, store.Dirty())
}

func TestStoreSave(t *testing.T) {
	path := writeCatalog(t, storeFixture)
	store, err := Open(path)
	require.NoError(t, err)

	written, err := store.Save()
	require.NoError(t, err)
	assert.False(t, written, "clean store skips the write")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, storeFixture, string(raw))

	store.Add(Record{Name: "jq", Category: "json"})
	assert.True(t, store.Dirty())

	written, err = store.Save()
	require.NoError(t, err)
	assert.True(t, written)
	assert.False(t, store.Dirty())

	reopened, err := Open(path)
	require.NoError(t, err)
	if diff := cmp.Diff(store.Records()[:2], reopened.Records()[:2]); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "jq", reopened.Records()[2].Name)
}

func TestNewStoreStartsDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.json")
	store := NewStore(path, nil)
	assert.True(t, store.Dirty())

	written, err := store.Save()
	require.NoError(t, err)
	assert.True(t, written)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestUpdate(t *testing.T) {
	t.Run("persists on success", func(t *testing.T) {
		path := writeCatalog(t, storeFixture)

		store, written, err := Update(path, func(s *Store) error {
			return s.Sort(SortKeyName, SortAsc)
		})
		require.NoError(t, err)
		assert.True(t, written)
		assert.Equal(t, []string{"bat", "fzf"}, names(store.Records()))

		reopened, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"bat", "fzf"}, names(reopened.Records()))
	})

	t.Run("unchanged catalog is not rewritten", func(t *testing.T) {
		path := writeCatalog(t, storeFixture)

		_, written, err := Update(path, func(*Store) error { return nil })
		require.NoError(t, err)
		assert.False(t, written)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, storeFixture, string(raw))
	})

	t.Run("discards changes on error", func(t *testing.T) {
		path := writeCatalog(t, storeFixture)

		store, written, err := Update(path, func(s *Store) error {
			s.Add(Record{Name: "jq"})
			return fmt.Errorf("render failed")
		})
		require.EqualError(t, err, "render failed")
		assert.Nil(t, store)
		assert.False(t, written)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, storeFixture, string(raw))
	})

	t.Run("open failure", func(t *testing.T) {
		called := false
		_, _, err := Update(filepath.Join(t.TempDir(), "none.json"), func(*Store) error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, called)
	})
}
