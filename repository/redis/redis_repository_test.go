package redis

import (
	"context"
	"testing"
	"time"

	redisclient "github.com/muhammadheryan/tuba-user/cmd/redis"
	"github.com/muhammadheryan/tuba-user/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryWithoutClient(t *testing.T) {
	redisclient.Set(nil)
	repo := NewRepository(time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))
	require.NoError(t, repo.SetUser(ctx, &model.User{ID: 1, Handle: "jane#123456"}))

	got, err := repo.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, repo.DeleteUser(ctx, 1, 2))
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "user:42", userKey(42))
}
