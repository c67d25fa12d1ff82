package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"ProjectGlimmer/internal/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Guest chat transcripts live here: one list per session id, trimmed only by
// TTL. Authenticated transcripts are persisted in Postgres instead.
type IRedis interface {
	AppendChatEntry(ctx context.Context, sessionID string, entry entity.ChatEntry, expiration time.Duration) error
	GetChatHistory(ctx context.Context, sessionID string) ([]entity.ChatEntry, error)
	ClearChatHistory(ctx context.Context, sessionID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func chatKey(sessionID string) string {
	return "chat_history:" + sessionID
}

func (r *redisClient) AppendChatEntry(ctx context.Context, sessionID string, entry entity.ChatEntry, expiration time.Duration) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		logrus.Error(fmt.Sprintf("Error marshaling chat entry for session %s: %v", sessionID, err))
		return err
	}

	key := chatKey(sessionID)
	if err := r.client.RPush(ctx, key, payload).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error appending chat entry for session %s: %v", sessionID, err))
		return err
	}

	if err := r.client.Expire(ctx, key, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error setting expiration for session %s: %v", sessionID, err))
		return err
	}

	return nil
}

func (r *redisClient) GetChatHistory(ctx context.Context, sessionID string) ([]entity.ChatEntry, error) {
	values, err := r.client.LRange(ctx, chatKey(sessionID), 0, -1).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading chat history for session %s: %v", sessionID, err))
		return nil, err
	}

	entries := make([]entity.ChatEntry, 0, len(values))
	for _, value := range values {
		var entry entity.ChatEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			logrus.Warn(fmt.Sprintf("Skipping undecodable chat entry for session %s: %v", sessionID, err))
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *redisClient) ClearChatHistory(ctx context.Context, sessionID string) error {
	if _, err := r.client.Del(ctx, chatKey(sessionID)).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error clearing chat history for session %s: %v", sessionID, err))
		return err
	}
	return nil
}
