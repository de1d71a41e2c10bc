// Package memory provides an in-memory implementation of the user repository.
//
// Every instance owns its own data, ordered by ID, so tests can run in parallel
// without sharing state. All operations are thread-safe and each write runs in a
// single critical section. Data is lost on process restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
	userrepo "github.com/muhammadheryan/tuba-user/repository/user"
)

// Compile-time check that UserRepository implements userrepo.UserRepository
var _ userrepo.UserRepository = (*UserRepository)(nil)

// SaveAccountHook is called before an account is written; a non-nil error aborts the write.
type SaveAccountHook func(userID uint64, acc *model.Account) error

type UserRepository struct {
	mu            sync.RWMutex
	users         map[uint64]*model.User
	accounts      map[uint64]*model.Account
	nextUserID    uint64
	nextAccountID uint64
	hook          SaveAccountHook
	calls         map[string]int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:    make(map[uint64]*model.User),
		accounts: make(map[uint64]*model.Account),
		calls:    make(map[string]int),
	}
}

// OnSaveAccount installs a hook run before every account write.
func (r *UserRepository) OnSaveAccount(hook SaveAccountHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hook = hook
}

// Calls returns how many times method was invoked.
func (r *UserRepository) Calls(method string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.calls[method]
}

func (r *UserRepository) count(method string) {
	r.calls[method]++
}

func (r *UserRepository) Ping(ctx context.Context) (string, error) {
	return time.Now().UTC().Format("15:04:05.000000"), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("FindAll")

	users := make([]model.User, 0, len(r.users))
	for _, id := range r.sortedUserIDs() {
		users = append(users, *r.hydrate(r.users[id]))
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("FindByID")

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return r.hydrate(u), nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []uint64) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("FindByIDs")

	wanted := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	users := make([]model.User, 0, len(ids))
	for _, id := range r.sortedUserIDs() {
		if wanted[id] {
			users = append(users, *r.hydrate(r.users[id]))
		}
	}
	return users, nil
}

func (r *UserRepository) FindUsersByAccount(ctx context.Context, identifier string, accountType constant.AccountType) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("FindUsersByAccount")

	owners := make(map[uint64]bool)
	for _, acc := range r.accounts {
		if acc.Identifier == identifier && acc.Type == accountType {
			owners[acc.UserID] = true
		}
	}
	users := make([]model.User, 0, len(owners))
	for _, id := range r.sortedUserIDs() {
		if owners[id] {
			users = append(users, *r.hydrate(r.users[id]))
		}
	}
	return users, nil
}

func (r *UserRepository) FindUsersByHandle(ctx context.Context, handle string) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("FindUsersByHandle")

	users := make([]model.User, 0)
	for _, id := range r.sortedUserIDs() {
		if u := r.users[id]; u.Handle == handle {
			users = append(users, model.User{ID: u.ID, Handle: u.Handle, Name: u.Name})
		}
	}
	return users, nil
}

func (r *UserRepository) FindAccountsByIdentifier(ctx context.Context, identifier string, accountType constant.AccountType) ([]model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("FindAccountsByIdentifier")

	accounts := make([]model.Account, 0)
	for _, id := range r.sortedAccountIDs() {
		if acc := r.accounts[id]; acc.Identifier == identifier && acc.Type == accountType {
			accounts = append(accounts, *acc.Clone())
		}
	}
	return accounts, nil
}

func (r *UserRepository) FindAccountByIdentifier(ctx context.Context, userID uint64, accountType constant.AccountType, identifier string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("FindAccountByIdentifier")

	if acc := r.findAccount(userID, accountType, identifier); acc != nil {
		return acc.Clone(), nil
	}
	return nil, nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user == nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("SaveUser")

	for id, u := range r.users {
		if u.Handle == user.Handle && id != user.ID {
			return nil, fmt.Errorf("duplicate handle '%s'", user.Handle)
		}
	}

	now := time.Now().UTC()
	row := user.Clone()
	row.Account = nil
	row.UpdatedAt = &now
	if row.ID > 0 {
		existing, ok := r.users[row.ID]
		if !ok {
			return nil, userrepo.ErrNotFound
		}
		row.CreatedAt = existing.CreatedAt
	} else {
		r.nextUserID++
		row.ID = r.nextUserID
		row.CreatedAt = now
	}

	// accounts are checked before anything is written so a failure leaves no trace
	if r.hook != nil {
		for i := range user.Account {
			if err := r.hook(row.ID, &user.Account[i]); err != nil {
				return nil, err
			}
		}
	}

	r.users[row.ID] = row
	for i := range user.Account {
		r.saveAccountLocked(row.ID, &user.Account[i], now)
	}
	return r.hydrate(row), nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, upd *model.UserUpdate) (*model.User, error) {
	if upd == nil {
		return nil, userrepo.ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("UpdateUser")

	existing, ok := r.users[upd.ID]
	if !ok {
		return nil, userrepo.ErrNotFound
	}
	row := upd.ApplyTo(existing)
	now := time.Now().UTC()
	row.UpdatedAt = &now
	r.users[row.ID] = row
	return r.hydrate(row), nil
}

func (r *UserRepository) SaveAccount(ctx context.Context, userID uint64, acc *model.Account) (*model.Account, error) {
	if acc == nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("SaveAccount")

	if _, ok := r.users[userID]; !ok {
		return nil, fmt.Errorf("%w: user %d", userrepo.ErrNotFound, userID)
	}
	if r.hook != nil {
		if err := r.hook(userID, acc); err != nil {
			return nil, err
		}
	}
	return r.saveAccountLocked(userID, acc, time.Now().UTC()).Clone(), nil
}

// saveAccountLocked writes the account and switches the default flag, r.mu must be held
func (r *UserRepository) saveAccountLocked(userID uint64, acc *model.Account, now time.Time) *model.Account {
	row := acc.Clone()
	row.UserID = userID
	row.UpdatedAt = &now

	if row.ID == 0 {
		if existing := r.findAccount(userID, row.Type, row.Identifier); existing != nil {
			row.ID = existing.ID
		}
	}

	if row.Default {
		for _, other := range r.accounts {
			if other.UserID == userID && other.Type == row.Type && other.ID != row.ID && other.Default {
				other.Default = false
				other.UpdatedAt = &now
			}
		}
	}

	if existing, ok := r.accounts[row.ID]; ok && row.ID > 0 {
		row.CreatedAt = existing.CreatedAt
		// an update never lowers the default, only a new default of the same type does
		row.Default = row.Default || existing.Default
	} else {
		r.nextAccountID++
		row.ID = r.nextAccountID
		row.CreatedAt = now
	}
	r.accounts[row.ID] = row
	return row
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) (*model.User, error) {
	if id == 0 {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("DeleteUser")

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: 0 users deleted for ID %d", userrepo.ErrUnexpectedRowCount, id)
	}
	snapshot := r.hydrate(u)
	for accID, acc := range r.accounts {
		if acc.UserID == id {
			delete(r.accounts, accID)
		}
	}
	delete(r.users, id)
	return snapshot, nil
}

func (r *UserRepository) DeleteAccount(ctx context.Context, accountID uint64) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count("DeleteAccount")

	acc, ok := r.accounts[accountID]
	if !ok {
		return nil, nil
	}
	delete(r.accounts, accountID)
	return acc.Clone(), nil
}

func (r *UserRepository) findAccount(userID uint64, accountType constant.AccountType, identifier string) *model.Account {
	for _, acc := range r.accounts {
		if acc.UserID == userID && acc.Type == accountType && acc.Identifier == identifier {
			return acc
		}
	}
	return nil
}

// hydrate returns a copy of u with its accounts ordered by ID
func (r *UserRepository) hydrate(u *model.User) *model.User {
	c := u.Clone()
	c.Account = make([]model.Account, 0)
	for _, id := range r.sortedAccountIDs() {
		if acc := r.accounts[id]; acc.UserID == u.ID {
			c.Account = append(c.Account, *acc.Clone())
		}
	}
	return c
}

func (r *UserRepository) sortedUserIDs() []uint64 {
	ids := make([]uint64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *UserRepository) sortedAccountIDs() []uint64 {
	ids := make([]uint64, 0, len(r.accounts))
	for id := range r.accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
