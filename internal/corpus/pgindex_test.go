package corpus_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/corpus"
	"github.com/pantrychef/backend/internal/models"
)

func TestPGVectorIndexRequiresPostgres(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	index := corpus.NewPGVectorIndex(db)
	_, err = index.Search(context.Background(), []float32{0.1, 0.2}, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires postgres")
}

func TestLoadFromDBRequiresVersionRow(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CorpusMeta{}))

	_, err = corpus.LoadFromDB(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corpus version missing")
}
