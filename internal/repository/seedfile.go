package repository

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pageza/recipe-share/backend/internal/models"
)

type seedFile struct {
	Recipes []models.Recipe `yaml:"recipes"`
}

// LoadSeedFile reads a YAML document of the form `recipes: [...]` to use
// in place of DefaultRecipes.
func LoadSeedFile(path string) ([]models.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var doc seedFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := checkCollection(doc.Recipes); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	for i := range doc.Recipes {
		doc.Recipes[i] = withEmptySlices(doc.Recipes[i])
	}
	return doc.Recipes, nil
}
