package review

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const queueKey = "reviews:pending"

// Queue is the durable FIFO buffer for reviews submitted while offline.
type Queue struct {
	redis *redis.Client
}

func NewQueue(redisClient *redis.Client) *Queue {
	return &Queue{redis: redisClient}
}

func (q *Queue) Enqueue(ctx context.Context, r Review) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return q.redis.RPush(ctx, queueKey, payload).Err()
}

func (q *Queue) All(ctx context.Context) ([]Review, error) {
	raw, err := q.redis.LRange(ctx, queueKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	reviews := make([]Review, 0, len(raw))
	for _, item := range raw {
		var r Review
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}

// Replace rewrites the queue with the given items, preserving their order.
func (q *Queue) Replace(ctx context.Context, reviews []Review) error {
	pipe := q.redis.TxPipeline()
	pipe.Del(ctx, queueKey)
	for _, r := range reviews {
		payload, err := json.Marshal(r)
		if err != nil {
			return err
		}
		pipe.RPush(ctx, queueKey, payload)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (q *Queue) Len(ctx context.Context) (int, error) {
	n, err := q.redis.LLen(ctx, queueKey).Result()
	return int(n), err
}
