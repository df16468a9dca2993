package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeed(t, `
recipes:
  - id: "10"
    title: Shakshuka
    description: Eggs poached in spiced tomato sauce
    cookTime: 30
    servings: 2
    difficulty: Easy
    ingredients: [eggs, tomatoes]
    instructions: [simmer, crack eggs]
    author: {id: "7", name: Nadia}
    createdAt: 2024-02-01T08:00:00Z
    likes: 4
    category: Mediterranean
`)

	recipes, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	r := recipes[0]
	assert.Equal(t, "Shakshuka", r.Title)
	assert.Equal(t, 30, r.CookTime)
	assert.Equal(t, "Nadia", r.Author.Name)
	assert.True(t, r.CreatedAt.Equal(time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{}, r.Tags)
}

func TestLoadSeedFileErrors(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadSeedFile(writeSeed(t, "recipes: [unterminated"))
	assert.Error(t, err)

	_, err = LoadSeedFile(writeSeed(t, "recipes:\n  - {id: a, difficulty: Easy}\n  - {id: a, difficulty: Easy}\n"))
	assert.ErrorIs(t, err, ErrInvalidCollection)

	_, err = LoadSeedFile(writeSeed(t, "recipes:\n  - {id: a, difficulty: Trivial}\n"))
	assert.ErrorIs(t, err, ErrInvalidCollection)
}
