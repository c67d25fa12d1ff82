package chatbotService

import (
	"ProjectGlimmer/internal/api/chatbot"
	"ProjectGlimmer/internal/entity"
	"ProjectGlimmer/pkg/log"
	"ProjectGlimmer/pkg/nlp"
	"context"
	"os"
	"time"
)

const (
	emptyMessageResponse = "Please enter a message..."

	// Guest transcripts live in Redis and age out on their own.
	guestHistoryTTL = 24 * time.Hour

	historyFetchLimit = 100
)

func (s *chatbotService) Chat(ctx context.Context, sessionID string, user *entity.UserLoginData, message string) (chatbot.ChatResponse, error) {
	if message == "" {
		history, err := s.redis.GetChatHistory(ctx, sessionID)
		if err != nil {
			s.log.WithFields(log.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Failed to fetch chat history for empty message")
			history = nil
		}
		return chatbot.ChatResponse{Response: emptyMessageResponse, History: history}, nil
	}

	model, err := s.loadModel()
	if err != nil {
		return chatbot.ChatResponse{}, err
	}

	tokens := nlp.Normalize(message)
	result := nlp.Classify(tokens, model)
	response := s.respond(ctx, model, result.BestIntent, message, tokens)

	if result.BestIntent == nlp.IntentFeedback {
		s.forwardFeedback(user, message)
	}

	entry := entity.ChatEntry{User: message, Bot: response}
	if err := s.redis.AppendChatEntry(ctx, sessionID, entry, guestHistoryTTL); err != nil {
		s.log.WithFields(log.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to append chat entry to session history")
	}

	if user != nil {
		s.persistMessage(ctx, user.ID, message, response, string(result.BestIntent))
	}

	history, err := s.redis.GetChatHistory(ctx, sessionID)
	if err != nil {
		s.log.WithFields(log.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to fetch chat history after append")
		history = []entity.ChatEntry{entry}
	}

	return chatbot.ChatResponse{
		Response: response,
		Intent:   string(result.BestIntent),
		History:  history,
	}, nil
}

func (s *chatbotService) GetHistory(ctx context.Context, userID string) (chatbot.HistoryResponse, error) {
	repoClient, err := s.chatbotRepo.NewClient(false)
	if err != nil {
		s.log.WithField("error", err.Error()).Error("[ChatbotService][GetHistory] failed to create repository client")
		return chatbot.HistoryResponse{}, err
	}

	messages, err := repoClient.Transcripts.GetChatMessagesByUserID(ctx, userID, historyFetchLimit)
	if err != nil {
		return chatbot.HistoryResponse{}, err
	}

	responses := make([]chatbot.ChatMessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, chatbot.ChatMessageResponse{
			ID:        message.ID,
			UserText:  message.UserText,
			BotText:   message.BotText,
			Intent:    message.Intent,
			CreatedAt: message.CreatedAt,
		})
	}

	return chatbot.HistoryResponse{
		Messages: responses,
		Total:    len(responses),
	}, nil
}

func (s *chatbotService) ClearHistory(ctx context.Context, sessionID string, userID string) error {
	if sessionID != "" {
		if err := s.redis.ClearChatHistory(ctx, sessionID); err != nil {
			s.log.WithFields(log.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Failed to clear session chat history")
		}
	}

	repoClient, err := s.chatbotRepo.NewClient(false)
	if err != nil {
		s.log.WithField("error", err.Error()).Error("[ChatbotService][ClearHistory] failed to create repository client")
		return err
	}

	affected, err := repoClient.Transcripts.DeleteChatMessagesByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if affected == 0 {
		return chatbot.ErrHistoryNotFound
	}

	return nil
}

// loadModel reads the corpus and returns the cached model for it. Edits to
// the corpus file take effect on the next request without a restart.
func (s *chatbotService) loadModel() (*nlp.TrainedModel, error) {
	raw, err := os.ReadFile(s.corpusPath)
	if err != nil {
		s.log.WithFields(log.Fields{
			"path":  s.corpusPath,
			"error": err.Error(),
		}).Error("Failed to read intent corpus")
		return nil, chatbot.ErrCorpusUnavailable
	}

	model, err := s.cache.Get(raw)
	if err != nil {
		s.log.WithFields(log.Fields{
			"path":  s.corpusPath,
			"error": err.Error(),
		}).Error("Failed to parse intent corpus")
		return nil, chatbot.ErrCorpusUnavailable
	}

	return model, nil
}

// forwardFeedback relays a feedback message to the support inbox. Delivery is
// best effort; the chat reply does not depend on it.
func (s *chatbotService) forwardFeedback(user *entity.UserLoginData, message string) {
	userLabel := "guest"
	if user != nil {
		userLabel = user.Username
	}

	if err := s.smtp.SendFeedback(userLabel, message); err != nil {
		s.log.WithFields(log.Fields{
			"user":  userLabel,
			"error": err.Error(),
		}).Warn("Failed to forward feedback to support inbox")
	}
}

// persistMessage stores one exchange for an authenticated user. Transcript
// persistence never blocks the chat reply, failures are only logged.
func (s *chatbotService) persistMessage(ctx context.Context, userID string, userText string, botText string, intent string) {
	repoClient, err := s.chatbotRepo.NewClient(false)
	if err != nil {
		s.log.WithField("error", err.Error()).Warn("[ChatbotService][persistMessage] failed to create repository client")
		return
	}

	now := time.Now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithField("error", err.Error()).Warn("[ChatbotService][persistMessage] failed to generate message ID")
		return
	}

	message := entity.ChatMessage{
		ID:        id,
		UserID:    userID,
		UserText:  userText,
		BotText:   botText,
		Intent:    intent,
		CreatedAt: now,
	}

	if err := repoClient.Transcripts.CreateChatMessage(ctx, message); err != nil {
		s.log.WithFields(log.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Failed to persist chat message")
	}
}
