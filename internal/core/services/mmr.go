package services

import "github.com/mizan-labs/mizan-cli/internal/index/flat"

// DefaultLambda is the MMR relevance/diversity trade-off.
// The formula mixes raw inner-product relevance with raw inter-document
// similarity on purpose; the weight is a candidate for empirical tuning,
// not the scale.
const DefaultLambda = 0.7

// maximalMarginalRelevance greedily selects up to topK documents trading
// query relevance against redundancy with already-selected documents.
// The first pick is the single most query-similar candidate; each
// subsequent pick maximises
//
//	lambda*relevance(d) - (1-lambda)*max_{s in selected} similarity(d, s)
//
// Returns indices into embeddings, in selection order. Terminates early
// when candidates are exhausted.
func maximalMarginalRelevance(query []float32, embeddings [][]float32, topK int, lambda float64) []int {
	if topK <= 0 || len(embeddings) == 0 {
		return nil
	}

	relevance := make([]float64, len(embeddings))
	for i, emb := range embeddings {
		relevance[i] = flat.DotProduct(emb, query)
	}

	selected := make([]int, 0, topK)
	chosen := make([]bool, len(embeddings))

	for len(selected) < topK {
		best := -1
		var bestScore float64

		if len(selected) == 0 {
			for i := range embeddings {
				if best == -1 || relevance[i] > bestScore {
					best = i
					bestScore = relevance[i]
				}
			}
		} else {
			for i := range embeddings {
				if chosen[i] {
					continue
				}
				redundancy := flat.DotProduct(embeddings[i], embeddings[selected[0]])
				for _, s := range selected[1:] {
					if sim := flat.DotProduct(embeddings[i], embeddings[s]); sim > redundancy {
						redundancy = sim
					}
				}
				score := lambda*relevance[i] - (1-lambda)*redundancy
				if best == -1 || score > bestScore {
					best = i
					bestScore = score
				}
			}
		}

		if best == -1 {
			break
		}
		chosen[best] = true
		selected = append(selected, best)
	}

	return selected
}
