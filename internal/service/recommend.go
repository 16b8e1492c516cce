package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pantrychef/backend/internal/types"
)

// DefaultGenerationTimeout bounds a single fallback generation call.
// Unbounded generation latency is the dominant tail-latency risk in this
// pipeline, so expiry is reported as a generation failure.
const DefaultGenerationTimeout = 30 * time.Second

// RecommendationService runs the retrieval-and-fallback pipeline
type RecommendationService struct {
	search            *SearchService
	generator         TextGenerator
	generationTimeout time.Duration
}

// NewRecommendationService creates a new RecommendationService instance. A
// nil generator disables fallback generation; retrieval misses then surface
// ErrGenerationUnavailable instead of a silently empty success.
func NewRecommendationService(search *SearchService, generator TextGenerator, generationTimeout time.Duration) *RecommendationService {
	if generationTimeout <= 0 {
		generationTimeout = DefaultGenerationTimeout
	}
	return &RecommendationService{
		search:            search,
		generator:         generator,
		generationTimeout: generationTimeout,
	}
}

// Recommend resolves a request to one of three terminal outcomes: the single
// best corpus recipe, a generated recipe when retrieval comes up empty, or an
// error. Each stage is attempted exactly once; there are no retries.
func (s *RecommendationService) Recommend(ctx context.Context, req *types.RecommendRequest) (*types.Recommendation, error) {
	normalized := NormalizeIngredients(req.Ingredients)
	if len(normalized) == 0 {
		return nil, ErrNoIngredients
	}

	query := BuildQueryString(normalized, strings.ToLower(req.PreferredCourse), strings.ToLower(req.PreferredDiet))

	candidates, err := s.search.Search(ctx, query, DefaultTopK)
	if err != nil {
		return nil, err
	}

	candidates = FilterByCourse(candidates, req.PreferredCourse)
	candidates = FilterByMaxTime(candidates, req.MaxTotalTime)
	if req.PreferredDiet != "" {
		// The explicit preference filters again on top of any diet intent the
		// search stage extracted from the query text (AND-of-ORs).
		candidates = FilterByDiet(candidates, []string{strings.ToLower(req.PreferredDiet)})
	}
	candidates = FilterByNutrition(candidates, req.NutritionPreferences)

	if len(candidates) > 0 {
		best := candidates[0]
		return &types.Recommendation{Retrieved: &best}, nil
	}

	log.Printf("no corpus recipe above threshold for query %q, falling back to generation", query)
	return s.generateFallback(ctx, req)
}

func (s *RecommendationService) generateFallback(ctx context.Context, req *types.RecommendRequest) (*types.Recommendation, error) {
	if s.generator == nil {
		return nil, ErrGenerationUnavailable
	}

	prompt := BuildGenerationPrompt(req.PreferredDiet, req.PreferredCourse, req.Ingredients)

	ctx, cancel := context.WithTimeout(ctx, s.generationTimeout)
	defer cancel()

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: generation timed out after %s", ErrGenerationUnavailable, s.generationTimeout)
		}
		return nil, fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	generated, err := ParseGeneratedRecipe(text)
	if err != nil {
		log.Printf("failed to parse generated recipe: %v", err)
		return nil, err
	}

	return &types.Recommendation{Generated: generated}, nil
}
