package main

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/muhammadheryan/tuba-user/constant"
	redismocks "github.com/muhammadheryan/tuba-user/mocks/repository/redis"
	"github.com/muhammadheryan/tuba-user/model"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

func TestNewHandler(t *testing.T) {
	event := model.UserEvent{Name: constant.EventAccountAdded, UserID: 7, AccountID: 3}

	t.Run("without cache", func(t *testing.T) {
		assert.NoError(t, newHandler(nil)(context.Background(), event))
	})

	t.Run("drops the cached user", func(t *testing.T) {
		cache := redismocks.NewRedisRepository(t)
		cache.On("DeleteUser", mock.Anything, uint64(7)).Return(nil).Once()
		assert.NoError(t, newHandler(cache)(context.Background(), event))
	})

	t.Run("cache failure is retried", func(t *testing.T) {
		cache := redismocks.NewRedisRepository(t)
		cache.On("DeleteUser", mock.Anything, uint64(7)).Return(errors.New("redis down")).Once()
		assert.Error(t, newHandler(cache)(context.Background(), event))
	})
}
