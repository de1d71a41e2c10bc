package model

import (
	"time"

	"github.com/muhammadheryan/tuba-user/constant"
)

type UserSearchRequest struct {
	User        []UserRefRequest            `json:"user" validate:"required,min=1"`
	SubEntities []constant.SubEntityDataset `json:"sub_entities,omitempty"`
}

type UserSearchResponse struct {
	User []UserResponse `json:"user"`
}

type AccountSearchRequest struct {
	AccountRef AccountRef `json:"account_ref" validate:"required"`
}

type AddAccountsRequest struct {
	Account []AccountNew `json:"account" validate:"required,min=1,dive"`
}

// UserResponse omits the datasets that were not requested
type UserResponse struct {
	ID        uint64              `json:"id"`
	Status    constant.UserStatus `json:"status,omitempty"`
	Handle    string              `json:"handle,omitempty"`
	Name      string              `json:"name,omitempty"`
	NameLast  *string             `json:"name_last,omitempty"`
	Type      constant.UserType   `json:"type,omitempty"`
	Account   []AccountResponse   `json:"account,omitempty"`
	CreatedAt *time.Time          `json:"created_at,omitempty"`
	UpdatedAt *time.Time          `json:"updated_at,omitempty"`
}

type UserCheckResponse struct {
	Valid     bool       `json:"valid"`
	Conflicts []Conflict `json:"conflicts,omitempty"`
}

type AccountResponse struct {
	ID         uint64                 `json:"id"`
	Status     constant.AccountStatus `json:"status"`
	Type       constant.AccountType   `json:"type"`
	SubType    *string                `json:"sub_type,omitempty"`
	Identifier string                 `json:"identifier"`
	Name       *string                `json:"name,omitempty"`
	Default    bool                   `json:"default"`
}

type HealthStatus struct {
	Name     string         `json:"name"`
	Status   string         `json:"status"`
	Info     string         `json:"info,omitempty"`
	Services []HealthStatus `json:"services,omitempty"`
}

const (
	HealthOK    = "OK"
	HealthError = "ERROR"
)
