package context

import (
	"context"

	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(constant.RequestIDKey).(string)
	return v
}

// NewRequestContext builds the service request context for the given flow.
func NewRequestContext(ctx context.Context, flow constant.UserFlow) *model.RequestContext {
	userID, _ := GetUserID(ctx)
	return &model.RequestContext{
		RequestID: GetRequestID(ctx),
		UserID:    userID,
		Flow:      flow,
	}
}
