package services

// normaliseScores min-max normalises scores to [0,1].
// When all scores are equal the raw scores pass through unchanged to
// avoid division by zero.
func normaliseScores(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}

	minScore, maxScore := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < minScore {
			minScore = s
		}
		if s > maxScore {
			maxScore = s
		}
	}

	out := make([]float64, len(scores))
	if maxScore == minScore {
		copy(out, scores)
		return out
	}

	for i, s := range scores {
		out[i] = (s - minScore) / (maxScore - minScore)
	}
	return out
}
