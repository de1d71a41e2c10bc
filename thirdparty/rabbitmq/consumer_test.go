package rabbitmq

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleDelivery(t *testing.T) {
	logger.Set(zap.NewNop())

	tests := []struct {
		name        string
		body        string
		handlerErr  error
		wantCalled  bool
		wantAck     bool
		wantRequeue bool
	}{
		{
			name:       "handled",
			body:       `{"name":"user.created","user_id":7,"requester_id":7}`,
			wantCalled: true,
			wantAck:    true,
		},
		{
			name:    "malformed json dropped",
			body:    `{"name":`,
			wantAck: true,
		},
		{
			name:    "missing event name dropped",
			body:    `{"user_id":7}`,
			wantAck: true,
		},
		{
			name:        "handler failure requeued",
			body:        `{"name":"account.added","user_id":7,"account_id":3}`,
			handlerErr:  errors.New("disk full"),
			wantCalled:  true,
			wantRequeue: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := func(ctx context.Context, event model.UserEvent) error {
				called = true
				assert.Equal(t, uint64(7), event.UserID)
				return tt.handlerErr
			}

			ack, requeue := handleDelivery(context.Background(), []byte(tt.body), handler)
			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantAck, ack)
			assert.Equal(t, tt.wantRequeue, requeue)
		})
	}
}

func TestBindingKeysCoverEvents(t *testing.T) {
	events := []constant.UserEventName{
		constant.EventUserCreated, constant.EventUserUpdated, constant.EventUserDeleted,
		constant.EventAccountAdded, constant.EventAccountRemoved,
	}
	for _, e := range events {
		matched := false
		for _, key := range bindingKeys {
			prefix := key[:len(key)-1]
			if len(e) > len(prefix) && string(e)[:len(prefix)] == prefix {
				matched = true
			}
		}
		assert.True(t, matched, string(e))
	}
}
