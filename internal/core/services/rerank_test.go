package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormaliseScores_Empty(t *testing.T) {
	assert.Nil(t, normaliseScores(nil))
	assert.Nil(t, normaliseScores([]float64{}))
}

func TestNormaliseScores_EqualScoresPassThrough(t *testing.T) {
	scores := []float64{0.4, 0.4, 0.4}

	out := normaliseScores(scores)

	assert.Equal(t, scores, out)
}

func TestNormaliseScores_MinMaxMapping(t *testing.T) {
	out := normaliseScores([]float64{2, 6, 4})

	assert.InDelta(t, 0, out[0], 1e-9)
	assert.InDelta(t, 1, out[1], 1e-9)
	assert.InDelta(t, 0.5, out[2], 1e-9)
}

func TestNormaliseScores_DoesNotMutateInput(t *testing.T) {
	scores := []float64{1, 3}

	normaliseScores(scores)

	assert.Equal(t, []float64{1, 3}, scores)
}
