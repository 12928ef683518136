//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisPreferences(t *testing.T) {
	ctx := context.Background()
	container, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })

	repo := NewRedisPreferenceRepository(rdb)

	email, err := repo.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Empty(t, email)

	require.NoError(t, repo.SetRememberedEmail(ctx, "agente@exploraneiva.com"))
	email, err = repo.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "agente@exploraneiva.com", email)

	require.NoError(t, repo.ClearRememberedEmail(ctx))
	email, err = repo.RememberedEmail(ctx)
	require.NoError(t, err)
	assert.Empty(t, email)
}
