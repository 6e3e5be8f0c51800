package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// historyLimit caps how many queries are remembered per user.
const historyLimit = 10

// SearchHistoryService keeps a per-user list of recent search queries in
// Redis: most recent first, deduplicated, capped at historyLimit.
type SearchHistoryService struct {
	redis *redis.Client
}

func NewSearchHistoryService(client *redis.Client) *SearchHistoryService {
	return &SearchHistoryService{redis: client}
}

func historyKey(userID uuid.UUID) string {
	return fmt.Sprintf("search:history:%s", userID)
}

// Record stores a search query at the head of the user's history,
// removing any earlier occurrence and trimming to the cap. Blank queries
// are ignored.
func (s *SearchHistoryService) Record(ctx context.Context, userID uuid.UUID, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	key := historyKey(userID)
	pipe := s.redis.Pipeline()
	pipe.LRem(ctx, key, 0, query)
	pipe.LPush(ctx, key, query)
	pipe.LTrim(ctx, key, 0, historyLimit-1)
	_, err := pipe.Exec(ctx)
	return err
}

// Recent returns the user's search history, most recent first.
func (s *SearchHistoryService) Recent(ctx context.Context, userID uuid.UUID) ([]string, error) {
	entries, err := s.redis.LRange(ctx, historyKey(userID), 0, historyLimit-1).Result()
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear drops the user's search history.
func (s *SearchHistoryService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.redis.Del(ctx, historyKey(userID)).Err()
}
