package nlp

import "math"

// logScores computes the smoothed log probability of the token sequence for
// every tag, in corpus order.
//
// Prior: ln(intentCount/totalPatterns). Likelihood per token: add-one
// smoothing over the tag's token total plus the *global* vocabulary size.
// The shared vocabSize denominator is a deliberate simplification kept for
// compatibility with the model this engine replaces; it guarantees a
// strictly positive term for tokens the tag has never seen.
func (m *TrainedModel) logScores(tokens []string) []float64 {
	scores := make([]float64, len(m.Tags))

	for i, tag := range m.Tags {
		logProb := math.Log(float64(m.IntentCounts[tag]) / float64(m.TotalPatterns))

		denominator := float64(m.TokenTotals[tag] + m.VocabSize)
		if denominator > 0 {
			for _, token := range tokens {
				wordProb := float64(m.WordCounts[tag][token]+1) / denominator
				logProb += math.Log(wordProb)
			}
		}

		scores[i] = logProb
	}

	return scores
}

// Classify scores the tokens against every tag and returns the arg-max.
// Ties break on the first tag in corpus order with the maximal score. An
// empty model (no trained patterns) yields IntentNone; an empty token
// sequence still produces a prior-only ranking.
func Classify(tokens []string, m *TrainedModel) ClassificationResult {
	if m == nil || len(m.Tags) == 0 || m.TotalPatterns == 0 {
		return ClassificationResult{BestIntent: IntentNone}
	}

	scores := m.logScores(tokens)

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	return ClassificationResult{BestIntent: Intent(m.Tags[best])}
}

// ClassifyWithProbabilities is the diagnostic variant: alongside the arg-max
// it exponentiates every score and rescales to percentages of the total
// mass. When every exp underflows to zero the distribution is left nil
// instead of dividing by zero.
func ClassifyWithProbabilities(tokens []string, m *TrainedModel) ClassificationResult {
	result := Classify(tokens, m)
	if result.BestIntent == IntentNone {
		return result
	}

	scores := m.logScores(tokens)

	total := 0.0
	raw := make([]float64, len(scores))
	for i, score := range scores {
		raw[i] = math.Exp(score)
		total += raw[i]
	}

	if total <= 0 {
		return result
	}

	result.Probabilities = make(map[string]float64, len(m.Tags))
	for i, tag := range m.Tags {
		result.Probabilities[tag] = raw[i] / total * 100
	}

	return result
}
