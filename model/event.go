package model

import (
	"time"

	"github.com/muhammadheryan/tuba-user/constant"
)

// UserEvent is published on every user or account write
type UserEvent struct {
	Name        constant.UserEventName `json:"name"`
	UserID      uint64                 `json:"user_id"`
	AccountID   uint64                 `json:"account_id,omitempty"`
	RequesterID uint64                 `json:"requester_id"`
	RequestID   string                 `json:"request_id,omitempty"`
	OccurredAt  time.Time              `json:"occurred_at"`
}
