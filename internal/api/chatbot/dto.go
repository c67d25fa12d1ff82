package chatbot

import (
	"ProjectGlimmer/internal/entity"
	"time"
)

type ChatRequest struct {
	Message string `json:"message" validate:"max=512"`
}

type ChatResponse struct {
	Response string             `json:"response"`
	Intent   string             `json:"intent"`
	History  []entity.ChatEntry `json:"history,omitempty"`
}

type AnalysisResponse struct {
	Message       string             `json:"message"`
	Tokens        []string           `json:"tokens"`
	BestIntent    string             `json:"best_intent"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
	Entities      map[string]string  `json:"entities,omitempty"`
	Response      string             `json:"response"`
}

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	UserText  string    `json:"user_text"`
	BotText   string    `json:"bot_text"`
	Intent    string    `json:"intent"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
	Total    int                   `json:"total"`
}
