package nlp

// Train builds a model from the corpus in a single linear pass. For every
// pattern of every record it counts normalized tokens per tag, adds one unit
// of prior mass to the tag, and grows the global vocabulary. Tags whose
// records carry no patterns gain no prior mass and are never classifiable.
// Deterministic given the corpus and the tokenizer.
func Train(records []IntentRecord) *TrainedModel {
	m := &TrainedModel{
		WordCounts:   make(map[string]map[string]int),
		IntentCounts: make(map[string]int),
		TokenTotals:  make(map[string]int),
		Vocabulary:   make(map[string]struct{}),
		responses:    make(map[string][]string),
	}

	for _, record := range records {
		m.responses[record.Tag] = record.Responses

		for _, pattern := range record.Patterns {
			if m.IntentCounts[record.Tag] == 0 {
				m.Tags = append(m.Tags, record.Tag)
				m.WordCounts[record.Tag] = make(map[string]int)
			}
			m.IntentCounts[record.Tag]++
			m.TotalPatterns++

			for _, token := range Normalize(pattern) {
				m.WordCounts[record.Tag][token]++
				m.TokenTotals[record.Tag]++
				m.Vocabulary[token] = struct{}{}
			}
		}
	}

	m.VocabSize = len(m.Vocabulary)
	return m
}
