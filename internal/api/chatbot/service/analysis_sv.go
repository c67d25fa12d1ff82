package chatbotService

import (
	"ProjectGlimmer/internal/api/chatbot"
	"ProjectGlimmer/pkg/nlp"
	"context"
	"math"
)

// Analyze runs the full pipeline for one message and reports every
// intermediate stage: tokens, the intent distribution, extracted entities,
// and the reply the chat endpoint would have produced.
func (s *chatbotService) Analyze(ctx context.Context, message string) (chatbot.AnalysisResponse, error) {
	model, err := s.loadModel()
	if err != nil {
		return chatbot.AnalysisResponse{}, err
	}

	tokens := nlp.Normalize(message)
	result := nlp.ClassifyWithProbabilities(tokens, model)

	var probabilities map[string]float64
	if len(result.Probabilities) > 0 {
		probabilities = make(map[string]float64, len(result.Probabilities))
		for tag, pct := range result.Probabilities {
			probabilities[tag] = math.Round(pct*100) / 100
		}
	}

	entities := make(map[string]string)
	switch result.BestIntent {
	case nlp.IntentProductSearch:
		entities["product_name"] = s.extractProductName(tokens)
	case nlp.IntentCategorySearch:
		entities["category_name"] = extractCategoryName(message)
	}
	if len(entities) == 0 {
		entities = nil
	}

	response := s.respond(ctx, model, result.BestIntent, message, tokens)

	return chatbot.AnalysisResponse{
		Message:       message,
		Tokens:        tokens,
		BestIntent:    string(result.BestIntent),
		Probabilities: probabilities,
		Entities:      entities,
		Response:      response,
	}, nil
}
