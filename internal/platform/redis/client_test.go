package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ims/internal/platform/config"
)

func TestNewWithoutURL(t *testing.T) {
	c, err := New(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestOptions(t *testing.T) {
	opts, err := options(config.RedisConfig{
		URL:          "redis://localhost:6379/2",
		PoolSize:     7,
		MinIdleConns: 1,
		DialTimeout:  2 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, 1, opts.MinIdleConns)
	assert.Equal(t, 2*time.Second, opts.DialTimeout)
}

func TestOptionsKeepsLibraryDefaults(t *testing.T) {
	opts, err := options(config.RedisConfig{URL: "redis://localhost:6379"})
	require.NoError(t, err)

	assert.Zero(t, opts.PoolSize, "zero lets go-redis size the pool")
	assert.Zero(t, opts.ReadTimeout)
}

func TestOptionsRejectsBadURL(t *testing.T) {
	_, err := options(config.RedisConfig{URL: "://nope"})
	require.Error(t, err)
}
