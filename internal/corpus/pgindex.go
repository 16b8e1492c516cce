package corpus

import (
	"context"
	"fmt"

	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/service"
)

// PGVectorIndex performs nearest-neighbor search over the seeded recipes
// table using the pgvector distance operator.
type PGVectorIndex struct {
	db *gorm.DB
}

// NewPGVectorIndex creates a new PGVectorIndex instance
func NewPGVectorIndex(db *gorm.DB) *PGVectorIndex {
	return &PGVectorIndex{db: db}
}

// Search returns the k nearest recipes by L2 distance. Postgres orders by
// the distance expression and then position, matching the flat index's
// stable tie behavior.
func (idx *PGVectorIndex) Search(ctx context.Context, vector []float32, k int) ([]service.Hit, error) {
	if idx.db.Dialector.Name() != "postgres" {
		return nil, fmt.Errorf("pgvector search requires postgres, got %s", idx.db.Dialector.Name())
	}
	if k <= 0 {
		return nil, fmt.Errorf("invalid k %d", k)
	}

	vec := pgvector.NewVector(vector)
	var hits []service.Hit
	err := idx.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select("position, embedding <-> ? AS distance", vec).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:  "embedding <-> ?, position",
			Vars: []interface{}{vec},
		}}).
		Limit(k).
		Scan(&hits).Error
	if err != nil {
		return nil, fmt.Errorf("pgvector search failed: %w", err)
	}
	return hits, nil
}

// LoadFromDB loads the full corpus from the recipes table in position order,
// together with the bundle version it was seeded from. A missing version row
// means the table was populated outside the seeding flow and cannot be
// trusted to pair with any index.
func LoadFromDB(db *gorm.DB) (*Corpus, error) {
	var meta models.CorpusMeta
	if err := db.First(&meta, "id = ?", 1).Error; err != nil {
		return nil, fmt.Errorf("corpus version missing, reseed the corpus: %w", err)
	}

	var recipes []models.Recipe
	if err := db.Order("position").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load corpus recipes: %w", err)
	}

	for i := range recipes {
		if recipes[i].Position != i {
			return nil, fmt.Errorf("corpus positions are not contiguous at %d", i)
		}
	}

	return NewCorpus(meta.Version, recipes), nil
}
