package service

import (
	"context"
	"fmt"

	"github.com/pantrychef/backend/internal/types"
)

const (
	// DefaultTopK is the number of nearest neighbors retrieved per query.
	DefaultTopK = 5

	// ScoreThreshold is the hard similarity cutoff. Embedding similarity
	// degrades gracefully, but returning a barely-related recipe is worse
	// than admitting there is no match.
	ScoreThreshold = 0.5
)

// SearchService retrieves corpus recipes by semantic similarity
type SearchService struct {
	encoder Encoder
	index   NearestNeighborIndex
	corpus  RecipeSource
}

// NewSearchService creates a new SearchService instance
func NewSearchService(encoder Encoder, index NearestNeighborIndex, corpus RecipeSource) *SearchService {
	return &SearchService{
		encoder: encoder,
		index:   index,
		corpus:  corpus,
	}
}

// Search encodes the query, retrieves the k nearest corpus entries, converts
// distances to similarity scores via 1/(1+distance), drops everything below
// the score threshold and finally applies any diet intent found in the query
// text as a hard filter. Results keep the index's ascending-distance order,
// i.e. descending score with ties in position order.
func (s *SearchService) Search(ctx context.Context, query string, k int) ([]types.ScoredRecipe, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	vector, err := s.encoder.Encode(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	hits, err := s.index.Search(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	matched := make([]types.ScoredRecipe, 0, len(hits))
	for _, hit := range hits {
		score := 1.0 / (1.0 + float64(hit.Distance))
		if score < ScoreThreshold {
			continue
		}
		recipe, ok := s.corpus.Recipe(hit.Position)
		if !ok {
			// A hit outside the corpus means index and metadata have
			// drifted apart; the bundle version check should make this
			// impossible.
			return nil, fmt.Errorf("index position %d has no corpus recipe", hit.Position)
		}
		matched = append(matched, types.ScoredRecipe{
			Recipe:          *recipe,
			SimilarityScore: score,
			Source:          types.SourceRetrieved,
		})
	}

	return FilterByDiet(matched, ExtractDietIntents(query)), nil
}
