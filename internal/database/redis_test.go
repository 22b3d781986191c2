package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealdb-explorer/backend/config"
)

func TestRedisOptions(t *testing.T) {
	t.Run("should build from host settings", func(t *testing.T) {
		opts, err := RedisOptions(&config.Config{
			RedisHost:     "cache",
			RedisPort:     "6380",
			RedisPassword: "pw",
			RedisDB:       3,
		})

		require.NoError(t, err)
		assert.Equal(t, "cache:6380", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.Equal(t, 3, opts.DB)
	})

	t.Run("should prefer the URL", func(t *testing.T) {
		opts, err := RedisOptions(&config.Config{
			RedisHost: "ignored",
			RedisPort: "1",
			RedisURL:  "redis://:secret@redis.internal:6379/2",
		})

		require.NoError(t, err)
		assert.Equal(t, "redis.internal:6379", opts.Addr)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 2, opts.DB)
	})

	t.Run("should reject a malformed URL", func(t *testing.T) {
		_, err := RedisOptions(&config.Config{RedisURL: "http://not-redis"})
		assert.Error(t, err)
	})
}

func TestNewRedisClientUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	client, err := NewRedisClient(ctx, &config.Config{RedisHost: "127.0.0.1", RedisPort: "1"})

	assert.Nil(t, client)
	assert.Error(t, err)
}
