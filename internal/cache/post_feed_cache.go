package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/suraj-17-jadhav/internship-program/internal/model"
)

const postFeedKey = "blog:posts:feed"

// PostFeedCache keeps the list-posts result in redis for a short TTL.
// Every post mutation invalidates the key.
type PostFeedCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewPostFeedCache(client *redisv9.Client, ttl time.Duration) *PostFeedCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &PostFeedCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *PostFeedCache) Get(ctx context.Context) ([]model.Post, bool, error) {
	raw, err := c.client.Get(ctx, postFeedKey).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get post feed failed: %w", err)
	}

	var posts []model.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached post feed failed: %w", err)
	}
	return posts, true, nil
}

func (c *PostFeedCache) Set(ctx context.Context, posts []model.Post) error {
	payload, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("marshal post feed failed: %w", err)
	}
	if err := c.client.Set(ctx, postFeedKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set post feed failed: %w", err)
	}
	return nil
}

func (c *PostFeedCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, postFeedKey).Err(); err != nil {
		return fmt.Errorf("redis delete post feed failed: %w", err)
	}
	return nil
}
