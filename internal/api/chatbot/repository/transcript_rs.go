package chatbotRepository

import (
	"ProjectGlimmer/internal/entity"
	contextPkg "ProjectGlimmer/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type transcriptsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type ChatMessageDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	UserText  sql.NullString `db:"user_text"`
	BotText   sql.NullString `db:"bot_text"`
	Intent    sql.NullString `db:"intent"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *transcriptsRepository) CreateChatMessage(ctx context.Context, message entity.ChatMessage) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         message.ID,
		"user_id":    message.UserID,
		"user_text":  message.UserText,
		"bot_text":   message.BotText,
		"intent":     message.Intent,
		"created_at": message.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateChatMessage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateChatMessage named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateChatMessage execution err")
		return err
	}

	return nil
}

func (r *transcriptsRepository) GetChatMessagesByUserID(ctx context.Context, userID string, limit int) ([]entity.ChatMessage, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var messagesList []ChatMessageDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetChatMessagesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetChatMessagesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &messagesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetChatMessagesByUserID execution err")
		return nil, err
	}

	messages := make([]entity.ChatMessage, 0, len(messagesList))
	for _, messageDB := range messagesList {
		messages = append(messages, r.makeChatMessage(messageDB))
	}

	return messages, nil
}

func (r *transcriptsRepository) DeleteChatMessagesByUserID(ctx context.Context, userID string) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteChatMessagesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteChatMessagesByUserID named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteChatMessagesByUserID execution err")
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return affected, nil
}

func (r *transcriptsRepository) makeChatMessage(messageDB ChatMessageDB) entity.ChatMessage {
	return entity.ChatMessage{
		ID:        messageDB.ID.String,
		UserID:    messageDB.UserID.String,
		UserText:  messageDB.UserText.String,
		BotText:   messageDB.BotText.String,
		Intent:    messageDB.Intent.String,
		CreatedAt: messageDB.CreatedAt,
	}
}
