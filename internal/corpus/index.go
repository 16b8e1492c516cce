package corpus

import (
	"context"
	"fmt"
	"sort"

	"github.com/pantrychef/backend/internal/service"
)

// FlatIndex is an exact nearest-neighbor index over the bundle's vectors
// using squared L2 distance. The corpus is small enough that a full scan per
// query is cheaper than maintaining an approximate structure.
type FlatIndex struct {
	dim     int
	vectors [][]float32
}

// NewFlatIndex creates a new FlatIndex instance
func NewFlatIndex(dim int, vectors [][]float32) (*FlatIndex, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid index dimension %d", dim)
	}
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector %d has dimension %d, want %d", i, len(v), dim)
		}
	}
	return &FlatIndex{dim: dim, vectors: vectors}, nil
}

// Dim returns the index's vector dimension.
func (idx *FlatIndex) Dim() int {
	return idx.dim
}

// Len returns the number of indexed vectors.
func (idx *FlatIndex) Len() int {
	return len(idx.vectors)
}

// Search returns the k nearest vectors by squared L2 distance, ascending,
// with distance ties kept in position order.
func (idx *FlatIndex) Search(ctx context.Context, vector []float32, k int) ([]service.Hit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(vector) != idx.dim {
		return nil, fmt.Errorf("query vector has dimension %d, want %d", len(vector), idx.dim)
	}
	if k <= 0 {
		return nil, fmt.Errorf("invalid k %d", k)
	}

	hits := make([]service.Hit, len(idx.vectors))
	for i, candidate := range idx.vectors {
		hits[i] = service.Hit{Position: i, Distance: squaredL2(vector, candidate)}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
