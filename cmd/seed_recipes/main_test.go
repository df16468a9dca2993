package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/storage"
)

// sharedStore hands out the same in-memory store to every command and
// ignores Close so the test can inspect it afterwards
type sharedStore struct{ *storage.MemoryStore }

func (sharedStore) Close() error { return nil }

func execute(t *testing.T, store *storage.MemoryStore, args ...string) (string, error) {
	t.Helper()
	open := func(context.Context, logger.Logger) (storage.Store, error) {
		return sharedStore{store}, nil
	}
	cmd := newRootCmd(open, logger.NewNop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func stored(t *testing.T, store *storage.MemoryStore) []models.Recipe {
	t.Helper()
	data, err := store.Load(context.Background())
	require.NoError(t, err)
	var recipes []models.Recipe
	require.NoError(t, json.Unmarshal(data, &recipes))
	return recipes
}

func TestResetWritesDefaultRecipes(t *testing.T) {
	store := storage.NewMemoryStore()

	out, err := execute(t, store, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 5 recipes")
	assert.Len(t, stored(t, store), 5)
}

func TestResetFromFile(t *testing.T) {
	store := storage.NewMemoryStore()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recipes:\n  - id: a\n    title: Toast\n    difficulty: Easy\n"), 0o600))

	_, err := execute(t, store, "reset", "--file", path)
	require.NoError(t, err)

	recipes := stored(t, store)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Toast", recipes[0].Title)
}

func TestImport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recipes", r.URL.Path)
		_, _ = w.Write([]byte(`{"recipes":[{"id":"r1","title":"Remote Stew","difficulty":"Medium"},{"id":"r2","title":"Remote Pie","difficulty":"Hard"}]}`))
	}))
	t.Cleanup(srv.Close)

	store := storage.NewMemoryStore()
	out, err := execute(t, store, "import", "--from", srv.URL+"/api")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 recipes")
	assert.Len(t, stored(t, store), 2)
}

func TestImportFailsWithoutRecipes(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	store := storage.NewMemoryStore()
	_, err := execute(t, store, "import", "--from", srv.URL)
	assert.Error(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestExport(t *testing.T) {
	store := storage.NewMemoryStore()
	_, err := execute(t, store, "reset")
	require.NoError(t, err)

	out, err := execute(t, store, "export")
	require.NoError(t, err)

	var recipes []models.Recipe
	require.NoError(t, json.Unmarshal([]byte(out), &recipes))
	assert.Len(t, recipes, 5)
}
