package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cordilleraweaves/marketplace-api/internal/cache"
	"github.com/cordilleraweaves/marketplace-api/internal/config"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	return cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: 10 * time.Minute}), mock
}

func TestCacheGet(t *testing.T) {
	ctx := context.Background()
	key := cache.Key(cache.ProductKeyPrefix, "7")

	t.Run("Success - Hit", func(t *testing.T) {
		// Arrange
		c, mock := newTestCache(t)

		stored := &models.Product{ID: 7, Name: "Inabel Blanket", Price: 1200}
		data, err := json.Marshal(stored)
		require.NoError(t, err)

		mock.ExpectGet(key).SetVal(string(data))

		// Act
		got := &models.Product{}
		found, err := c.Get(ctx, key, got)

		// Assert
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Inabel Blanket", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Miss Is Not An Error", func(t *testing.T) {
		// Arrange
		c, mock := newTestCache(t)

		mock.ExpectGet(key).RedisNil()

		// Act
		got := &models.Product{}
		found, err := c.Get(ctx, key, got)

		// Assert
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Failure - Corrupt Payload", func(t *testing.T) {
		// Arrange
		c, mock := newTestCache(t)

		mock.ExpectGet(key).SetVal("{not json")

		// Act
		got := &models.Product{}
		found, err := c.Get(ctx, key, got)

		// Assert
		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestCacheSet(t *testing.T) {
	ctx := context.Background()
	key := cache.Key(cache.ProductKeyPrefix, "7")
	product := &models.Product{ID: 7, Name: "Inabel Blanket"}

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		// Arrange
		c, mock := newTestCache(t)

		data, err := json.Marshal(product)
		require.NoError(t, err)

		mock.ExpectSet(key, data, 5*time.Minute).SetVal("OK")

		// Act
		err = c.Set(ctx, key, product, 5*time.Minute)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Zero TTL Falls Back To Default", func(t *testing.T) {
		// Arrange
		c, mock := newTestCache(t)

		data, err := json.Marshal(product)
		require.NoError(t, err)

		mock.ExpectSet(key, data, 10*time.Minute).SetVal("OK")

		// Act
		err = c.Set(ctx, key, product, 0)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCacheDelete(t *testing.T) {
	ctx := context.Background()

	// Arrange
	c, mock := newTestCache(t)
	mock.ExpectDel(cache.FundraisingListKey).SetVal(1)

	// Act
	err := c.Delete(ctx, cache.FundraisingListKey)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "product:7", cache.Key(cache.ProductKeyPrefix, "7"))
	assert.Equal(t, "catalog:list:1:20", cache.Key(cache.CatalogListKey, "1:20"))
}
