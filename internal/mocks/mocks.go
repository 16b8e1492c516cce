package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
)

// MockEncoder is a mock implementation of the Encoder interface
type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

// MockIndex is a mock implementation of the NearestNeighborIndex interface
type MockIndex struct {
	mock.Mock
}

func (m *MockIndex) Search(ctx context.Context, vector []float32, k int) ([]service.Hit, error) {
	args := m.Called(ctx, vector, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Hit), args.Error(1)
}

// MockGenerator is a mock implementation of the TextGenerator interface
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockRecommendationService is a mock implementation of the recommendation pipeline
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, req *types.RecommendRequest) (*types.Recommendation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recommendation), args.Error(1)
}

// MockNutritionService is a mock implementation of the nutrition service
type MockNutritionService struct {
	mock.Mock
}

func (m *MockNutritionService) Analyze(ctx context.Context, ingredients []string) (map[string]float64, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}
