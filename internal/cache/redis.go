package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	categoriesKey = "categories:all"
	categoriesTTL = 5 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. A failed connection leaves the
// cache disabled; every helper tolerates a nil client.
func Init(host string, port int, password string) error {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client
func GetClient() *redis.Client {
	return client
}

// GetCachedCategories returns the cached category list, if any
func GetCachedCategories(ctx context.Context) ([]string, bool) {
	if client == nil {
		return nil, false
	}
	raw, err := client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		return nil, false
	}
	var labels []string
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil, false
	}
	return labels, true
}

// CacheCategories stores the category list for a few minutes
func CacheCategories(ctx context.Context, labels []string) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(labels)
	if err != nil {
		return
	}
	client.Set(ctx, categoriesKey, raw, categoriesTTL)
}

// InvalidateCategories drops the cached category list after an admin
// creates or removes a category
func InvalidateCategories(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, categoriesKey)
}
