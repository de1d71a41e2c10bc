package model

import (
	"github.com/muhammadheryan/tuba-user/constant"
	"go.uber.org/zap"
)

// RequestContext carries per-operation metadata through the services. Never persisted.
type RequestContext struct {
	RequestID    string
	UserID       uint64
	TargetUserID uint64
	Flow         constant.UserFlow
	SubEntities  []constant.SubEntityDataset
}

// Fields renders the context as log fields.
func (rc *RequestContext) Fields() []zap.Field {
	if rc == nil {
		return nil
	}
	fields := []zap.Field{
		zap.Uint64("requester_id", rc.UserID),
		zap.String("flow", string(rc.Flow)),
	}
	if rc.RequestID != "" {
		fields = append(fields, zap.String("request_id", rc.RequestID))
	}
	if rc.TargetUserID > 0 {
		fields = append(fields, zap.Uint64("target_user_id", rc.TargetUserID))
	}
	return fields
}

// Conflict is a uniqueness violation found against stored data
type Conflict struct {
	TargetID uint64                `json:"id,omitempty"`
	Name     string                `json:"name"`
	Type     constant.ConflictType `json:"type"`
}

// OrFlow returns rc tagged with flow when it carries none yet. A nil rc yields a fresh context.
func (rc *RequestContext) OrFlow(flow constant.UserFlow) *RequestContext {
	if rc != nil && rc.Flow != "" {
		return rc
	}
	return rc.WithFlow(flow)
}

// WithFlow returns a copy of rc tagged with flow.
func (rc *RequestContext) WithFlow(flow constant.UserFlow) *RequestContext {
	c := RequestContext{}
	if rc != nil {
		c = *rc
	}
	c.Flow = flow
	return &c
}

// WithTarget returns a copy of rc pointing at the user the operation acts upon.
func (rc *RequestContext) WithTarget(userID uint64) *RequestContext {
	c := RequestContext{}
	if rc != nil {
		c = *rc
	}
	c.TargetUserID = userID
	return &c
}
