package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pantrychef/backend/internal/models"
)

// Bundle is the single versioned artifact pairing corpus metadata with index
// vectors. Recipe i's vector is Vectors[i]; shipping the two together under
// one version is what keeps the positional pairing from silently corrupting
// when either side is rebuilt.
type Bundle struct {
	Version string          `json:"version"`
	Dim     int             `json:"dim"`
	Recipes []models.Recipe `json:"recipes"`
	Vectors [][]float32     `json:"vectors"`
}

// Validate checks the bundle's internal consistency.
func (b *Bundle) Validate() error {
	if b.Version == "" {
		return fmt.Errorf("bundle has no version")
	}
	if b.Dim <= 0 {
		return fmt.Errorf("bundle has invalid dimension %d", b.Dim)
	}
	if len(b.Recipes) != len(b.Vectors) {
		return fmt.Errorf("bundle has %d recipes but %d vectors", len(b.Recipes), len(b.Vectors))
	}
	for i := range b.Recipes {
		if b.Recipes[i].Position != i {
			return fmt.Errorf("recipe at slot %d has position %d", i, b.Recipes[i].Position)
		}
		if len(b.Vectors[i]) != b.Dim {
			return fmt.Errorf("vector %d has dimension %d, want %d", i, len(b.Vectors[i]), b.Dim)
		}
	}
	return nil
}

// LoadBundle reads and validates a bundle file.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	return ParseBundle(data)
}

// ParseBundle decodes and validates bundle bytes.
func ParseBundle(data []byte) (*Bundle, error) {
	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("failed to decode bundle: %w", err)
	}
	if err := bundle.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bundle: %w", err)
	}
	return &bundle, nil
}

// SaveBundle validates and writes a bundle file.
func SaveBundle(path string, bundle *Bundle) error {
	if err := bundle.Validate(); err != nil {
		return fmt.Errorf("refusing to write invalid bundle: %w", err)
	}
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}
	return nil
}

// Corpus is the fixed, positionally addressable recipe collection held for
// the process lifetime. It is read-only after construction, so concurrent
// requests share it without locking.
type Corpus struct {
	version string
	recipes []models.Recipe
}

// NewCorpus creates a new Corpus instance
func NewCorpus(version string, recipes []models.Recipe) *Corpus {
	return &Corpus{version: version, recipes: recipes}
}

// Recipe returns the recipe at the given index position.
func (c *Corpus) Recipe(position int) (*models.Recipe, bool) {
	if position < 0 || position >= len(c.recipes) {
		return nil, false
	}
	return &c.recipes[position], true
}

// Len returns the number of corpus recipes.
func (c *Corpus) Len() int {
	return len(c.recipes)
}

// Version returns the bundle version the corpus was loaded from.
func (c *Corpus) Version() string {
	return c.version
}

// FromBundle builds the in-memory corpus and its flat similarity index from
// one validated bundle, guaranteeing both come from the same version.
func FromBundle(bundle *Bundle) (*Corpus, *FlatIndex, error) {
	if err := bundle.Validate(); err != nil {
		return nil, nil, err
	}
	index, err := NewFlatIndex(bundle.Dim, bundle.Vectors)
	if err != nil {
		return nil, nil, err
	}
	return NewCorpus(bundle.Version, bundle.Recipes), index, nil
}
