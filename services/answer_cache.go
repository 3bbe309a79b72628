package services

import (
	"encoding/hex"
	"time"

	"github.com/go-redis/redis"
	"golang.org/x/crypto/blake2b"
)

// AnswerCache stores model answers. Rule answers are never cached.
type AnswerCache interface {
	Get(question, passage string) (string, bool, error)
	Set(question, passage, answer string) error
}

// RedisAnswerCache keeps answers under qa:answer:<blake2b(question, passage)>,
// so editing the passage invalidates every entry.
type RedisAnswerCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAnswerCache(client *redis.Client, ttl time.Duration) *RedisAnswerCache {
	return &RedisAnswerCache{client: client, ttl: ttl}
}

func (c *RedisAnswerCache) Get(question, passage string) (string, bool, error) {
	answer, err := c.client.Get(answerCacheKey(question, passage)).Result()
	if err == redis.Nil {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}
	return answer, true, nil
}

func (c *RedisAnswerCache) Set(question, passage, answer string) error {
	return c.client.Set(answerCacheKey(question, passage), answer, c.ttl).Err()
}

func answerCacheKey(question, passage string) string {
	sum := blake2b.Sum256([]byte(question + "\x00" + passage))
	return "qa:answer:" + hex.EncodeToString(sum[:])
}
