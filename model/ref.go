package model

import (
	"fmt"
	"strings"

	"github.com/muhammadheryan/tuba-user/constant"
)

// AccountRef identifies a sub-account by its type and identifier
type AccountRef struct {
	Type       constant.AccountType `json:"type" validate:"required,account_type"`
	Identifier string               `json:"identifier" validate:"required"`
}

// Key is the batch cache key of the reference.
func (r AccountRef) Key() string {
	return string(r.Type) + "_" + r.Identifier
}

func (r AccountRef) IsValid() bool {
	return r.Type.IsValid() && strings.TrimSpace(r.Identifier) != ""
}

// UserRef points at a user either by ID or by one of its sub-accounts.
// Build it with UserRefByID or UserRefByAccount; the zero value references nobody.
type UserRef struct {
	id      uint64
	account *AccountRef
}

func UserRefByID(id uint64) UserRef {
	return UserRef{id: id}
}

func UserRefByAccount(accountType constant.AccountType, identifier string) UserRef {
	return UserRef{account: &AccountRef{Type: accountType, Identifier: identifier}}
}

// ID returns the referenced user ID, 0 for sub-account references.
func (r UserRef) ID() uint64 {
	return r.id
}

// Account returns the referenced sub-account, if the reference is not ID based.
func (r UserRef) Account() (AccountRef, bool) {
	if r.id > 0 || r.account == nil {
		return AccountRef{}, false
	}
	return *r.account, true
}

func (r UserRef) IsZero() bool {
	return r.id == 0 && r.account == nil
}

func (r UserRef) String() string {
	if r.id > 0 {
		return fmt.Sprintf("id:%d", r.id)
	}
	if r.account != nil {
		return fmt.Sprintf("%s:%s", r.account.Type, r.account.Identifier)
	}
	return "none"
}

// UserRefRequest is the wire shape of a user reference
type UserRefRequest struct {
	ID         uint64      `json:"id,omitempty"`
	AccountRef *AccountRef `json:"account_ref,omitempty"`
}

// ToUserRef builds the reference, the ID taking precedence over the account.
func (r UserRefRequest) ToUserRef() (UserRef, bool) {
	if r.ID > 0 {
		return UserRefByID(r.ID), true
	}
	if r.AccountRef != nil && r.AccountRef.Type != "" && r.AccountRef.Identifier != "" {
		return UserRefByAccount(r.AccountRef.Type, r.AccountRef.Identifier), true
	}
	return UserRef{}, false
}
