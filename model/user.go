package model

import (
	"time"

	"github.com/muhammadheryan/tuba-user/constant"
)

// User represents the users table entity hydrated with its sub-accounts
type User struct {
	ID        uint64              `db:"id" json:"id"`
	Status    constant.UserStatus `db:"status" json:"status"`
	Handle    string              `db:"handle" json:"handle"`
	Name      string              `db:"name" json:"name"`
	NameLast  *string             `db:"name_last" json:"name_last,omitempty"`
	Type      constant.UserType   `db:"type" json:"type"`
	Account   []Account           `db:"-" json:"account"`
	CreatedAt time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time          `db:"updated_at" json:"updated_at,omitempty"`
}

// Account represents the accounts table entity, owned by exactly one user
type Account struct {
	ID         uint64                 `db:"id" json:"id"`
	UserID     uint64                 `db:"user_id" json:"user_id,omitempty"`
	Status     constant.AccountStatus `db:"status" json:"status"`
	Type       constant.AccountType   `db:"type" json:"type"`
	SubType    *string                `db:"sub_type" json:"sub_type,omitempty"`
	Identifier string                 `db:"identifier" json:"identifier"`
	Name       *string                `db:"name" json:"name,omitempty"`
	Default    bool                   `db:"is_default" json:"default"`
	CreatedAt  time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt  *time.Time             `db:"updated_at" json:"updated_at,omitempty"`
}

// Clone returns a deep copy of the user, accounts included.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.NameLast = cloneString(u.NameLast)
	c.UpdatedAt = cloneTime(u.UpdatedAt)
	if u.Account != nil {
		c.Account = make([]Account, len(u.Account))
		for i := range u.Account {
			c.Account[i] = *u.Account[i].Clone()
		}
	}
	return &c
}

func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	c.SubType = cloneString(a.SubType)
	c.Name = cloneString(a.Name)
	c.UpdatedAt = cloneTime(a.UpdatedAt)
	return &c
}

// FindAccount returns the user's account matching type and identifier, if any.
func (u *User) FindAccount(accountType constant.AccountType, identifier string) *Account {
	for i := range u.Account {
		if u.Account[i].Type == accountType && u.Account[i].Identifier == identifier {
			return &u.Account[i]
		}
	}
	return nil
}

// HasDefaultAccount reports whether one of the user's accounts of the given type is the default one.
func (u *User) HasDefaultAccount(accountType constant.AccountType) bool {
	for _, acc := range u.Account {
		if acc.Type == accountType && acc.Default {
			return true
		}
	}
	return false
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// UserNew is the payload for creating a user
type UserNew struct {
	Name     *string           `json:"name,omitempty" validate:"omitempty,max=64"`
	NameLast *string           `json:"name_last,omitempty" validate:"omitempty,max=128"`
	Type     constant.UserType `json:"type,omitempty" validate:"omitempty,oneof=individual business"`
	Account  []AccountNew      `json:"account" validate:"required,min=1,dive"`
}

// AccountNew is the payload for adding a sub-account
type AccountNew struct {
	Type       constant.AccountType `json:"type" validate:"required,account_type"`
	SubType    *string              `json:"sub_type,omitempty" validate:"omitempty,max=32"`
	Identifier string               `json:"identifier" validate:"required,max=128"`
	Name       *string              `json:"name,omitempty" validate:"omitempty,max=64"`
	Default    bool                 `json:"default,omitempty"`
}

// UserUpdate carries a partial update, nil fields are left untouched
type UserUpdate struct {
	ID       uint64               `json:"-"`
	Name     *string              `json:"name,omitempty" validate:"omitempty,min=1,max=64"`
	NameLast *string              `json:"name_last,omitempty" validate:"omitempty,max=128"`
	Type     *constant.UserType   `json:"type,omitempty" validate:"omitempty,oneof=individual business"`
	Status   *constant.UserStatus `json:"status,omitempty" validate:"omitempty,oneof=valid blocked pending unknown"`
}

// IsEmpty reports whether the update carries no field to change.
func (u *UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.NameLast == nil && u.Type == nil && u.Status == nil
}

// ApplyTo shallow-merges the update onto a copy of the user.
func (u *UserUpdate) ApplyTo(user *User) *User {
	merged := user.Clone()
	if u.Name != nil {
		merged.Name = *u.Name
	}
	if u.NameLast != nil {
		merged.NameLast = cloneString(u.NameLast)
	}
	if u.Type != nil {
		merged.Type = *u.Type
	}
	if u.Status != nil {
		merged.Status = *u.Status
	}
	return merged
}

// UserSearchFilter selects users by reference
type UserSearchFilter struct {
	User        []UserRef
	SubEntities []constant.SubEntityDataset
}
