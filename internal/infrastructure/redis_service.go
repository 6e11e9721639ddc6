package infrastructure

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

const leaderboardKey = "leaderboard:solved"

type RedisService struct {
	client *redis.Client
}

func NewRedisService() *RedisService {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	password := os.Getenv("REDIS_PASSWORD")
	db := GetEnvAsInt("REDIS_DB", 0)

	// Alternative: Use REDIS_URL if provided
	redisURL := os.Getenv("REDIS_URL")
	if redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err == nil {
			client := redis.NewClient(opt)
			ctx := context.Background()
			if err := client.Ping(ctx).Err(); err != nil {
				fmt.Printf("Warning: Redis connection failed with REDIS_URL: %v\n", err)
			} else {
				fmt.Printf("Connected to Redis using REDIS_URL: %s\n", redisURL)
				return &RedisService{client: client}
			}
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		fmt.Printf("Warning: Redis connection failed: %v\n", err)
		fmt.Printf("Redis will be disabled. Some features may not work properly.\n")
		return &RedisService{client: nil}
	}

	fmt.Printf("Connected to Redis at %s:%s\n", host, port)
	return &RedisService{client: client}
}

// NewRedisServiceWithClient wires an existing client, used by tests.
func NewRedisServiceWithClient(client *redis.Client) *RedisService {
	return &RedisService{client: client}
}

func (r *RedisService) SetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Set(ctx, "token:"+token, userID, ttl).Err()
}

func (r *RedisService) GetToken(ctx context.Context, token string) (string, error) {
	if r.client == nil {
		return "", redis.Nil // Redis disabled, return nil as if key doesn't exist
	}
	return r.client.Get(ctx, "token:"+token).Result()
}

func (r *RedisService) SetCode(ctx context.Context, key, code string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, key, code, ttl).Err()
}

func (r *RedisService) GetCode(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		return "", redis.Nil
	}
	return r.client.Get(ctx, key).Result()
}

func (r *RedisService) DeleteKey(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, key).Err()
}

// SetSolvedScore keeps the leaderboard sorted set in sync with a user's
// total solved count.
func (r *RedisService) SetSolvedScore(ctx context.Context, username string, totalSolved int) error {
	if r.client == nil {
		return nil
	}
	return r.client.ZAdd(ctx, leaderboardKey, &redis.Z{
		Score:  float64(totalSolved),
		Member: username,
	}).Err()
}

// TopSolvers returns up to limit usernames with their solved counts, best
// first. A disabled Redis yields an empty board, never an error.
func (r *RedisService) TopSolvers(ctx context.Context, limit int) ([]redis.Z, error) {
	if r.client == nil {
		return nil, nil
	}
	return r.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
}
