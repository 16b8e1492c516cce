package integration

import (
	"context"
	"os"
	"testing"

	pgvector "github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/corpus"
	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/testdb"
)

func TestPGVectorBackend(t *testing.T) {
	if os.Getenv("RUN_DB_TESTS") == "" {
		t.Skip("set RUN_DB_TESTS=1 to run container-backed tests")
	}

	db := testdb.SetupTestDB(t)
	defer db.Close()

	recipes := []models.Recipe{
		{Position: 0, Name: "Palak Paneer", Diet: "Vegetarian", Embedding: testVector(0)},
		{Position: 1, Name: "Chicken Curry", Diet: "Non Vegetarian", Embedding: testVector(1)},
		{Position: 2, Name: "Vegan Bowl", Diet: "Vegan", Embedding: testVector(2)},
	}
	require.NoError(t, db.DB.Create(&recipes).Error)
	require.NoError(t, db.DB.Create(&models.CorpusMeta{ID: 1, Version: "pg-v1"}).Error)

	t.Run("loads the corpus with its version", func(t *testing.T) {
		loaded, err := corpus.LoadFromDB(db.DB)
		require.NoError(t, err)
		assert.Equal(t, "pg-v1", loaded.Version())
		assert.Equal(t, 3, loaded.Len())
	})

	t.Run("searches by ascending distance", func(t *testing.T) {
		index := corpus.NewPGVectorIndex(db.DB)
		hits, err := index.Search(context.Background(), testVector(1).Slice(), 2)
		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, 1, hits[0].Position)
		assert.LessOrEqual(t, hits[0].Distance, hits[1].Distance)
	})
}

// testVector places recipe i at coordinate i on the first axis of a 384-dim
// space so distances are unambiguous.
func testVector(i int) pgvector.Vector {
	v := make([]float32, 384)
	v[0] = float32(i)
	return pgvector.NewVector(v)
}
