package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaximalMarginalRelevance_EmptyInput(t *testing.T) {
	assert.Nil(t, maximalMarginalRelevance([]float32{1, 0}, nil, 5, DefaultLambda))
	assert.Nil(t, maximalMarginalRelevance([]float32{1, 0}, [][]float32{{1, 0}}, 0, DefaultLambda))
}

func TestMaximalMarginalRelevance_FirstPickIsMostRelevant(t *testing.T) {
	query := []float32{1, 0, 0}
	embeddings := [][]float32{
		{0, 1, 0},
		{1, 0, 0},
		{0.5, 0.5, 0},
	}

	selected := maximalMarginalRelevance(query, embeddings, 1, DefaultLambda)

	assert.Equal(t, []int{1}, selected)
}

func TestMaximalMarginalRelevance_PenalisesRedundancy(t *testing.T) {
	query := []float32{1, 1, 0}
	// Index 1 duplicates index 0; index 2 is equally relevant but
	// orthogonal to the first pick.
	embeddings := [][]float32{
		{1, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}

	selected := maximalMarginalRelevance(query, embeddings, 2, DefaultLambda)

	assert.Equal(t, []int{0, 2}, selected)
}

func TestMaximalMarginalRelevance_TopKLargerThanCandidates(t *testing.T) {
	query := []float32{1, 0}
	embeddings := [][]float32{
		{1, 0},
		{0, 1},
	}

	selected := maximalMarginalRelevance(query, embeddings, 10, DefaultLambda)

	assert.Len(t, selected, 2)
}

func TestMaximalMarginalRelevance_LambdaOnePureRelevance(t *testing.T) {
	query := []float32{1, 0}
	embeddings := [][]float32{
		{0.8, 0},
		{1, 0},
		{0.9, 0},
	}

	selected := maximalMarginalRelevance(query, embeddings, 3, 1.0)

	assert.Equal(t, []int{1, 2, 0}, selected)
}
