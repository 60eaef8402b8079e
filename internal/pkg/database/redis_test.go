package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		Password: "",
		DB:       0,
		PoolSize: 10,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectSet("auth:session:+966501234567", "payload", 10*time.Minute).SetVal("OK")
	mock.ExpectGet("auth:session:+966501234567").SetVal("payload")

	require.NoError(t, client.Set(ctx, "auth:session:+966501234567", "payload", 10*time.Minute))

	val, err := client.Get(ctx, "auth:session:+966501234567")
	require.NoError(t, err)
	assert.Equal(t, "payload", val)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GetMissingKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGet("auth:session:+966501234567").RedisNil()

	_, err := client.Get(context.Background(), "auth:session:+966501234567")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("auth:cooldown:+966501234567").SetVal(1)

	assert.NoError(t, client.Delete(context.Background(), "auth:cooldown:+966501234567"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_TTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectTTL("auth:cooldown:+966501234567").SetVal(25 * time.Second)

	ttl, err := client.TTL(context.Background(), "auth:cooldown:+966501234567")
	require.NoError(t, err)
	assert.Equal(t, 25*time.Second, ttl)
}
