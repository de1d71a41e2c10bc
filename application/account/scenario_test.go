package account_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	appaccount "github.com/muhammadheryan/tuba-user/application/account"
	appuser "github.com/muhammadheryan/tuba-user/application/user"
	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
	"github.com/muhammadheryan/tuba-user/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	repo     *memory.UserRepository
	users    appuser.UserApp
	accounts appaccount.AccountApp
}

func newEnv(t *testing.T) env {
	t.Helper()
	repo := memory.NewUserRepository()
	users := appuser.NewUserApp(nil, repo, nil, nil)
	return env{
		repo:     repo,
		users:    users,
		accounts: appaccount.NewAccountApp(users, repo, nil, nil),
	}
}

func wallet(i int) string {
	return fmt.Sprintf("0x%040x", i)
}

func (e env) createJane(t *testing.T) *model.User {
	t.Helper()
	u, err := e.users.CreateUser(context.Background(), nil, &model.UserNew{Account: []model.AccountNew{
		{Type: constant.AccountTypeEmail, Identifier: "jane@test.com"},
		{Type: constant.AccountTypeWallet, Identifier: wallet(1)},
	}})
	require.NoError(t, err)
	return u
}

func (e env) defaults(t *testing.T, userID uint64, accountType constant.AccountType) (total, defaults int) {
	t.Helper()
	u, err := e.users.GetUserByID(context.Background(), nil, userID)
	require.NoError(t, err)
	require.NotNil(t, u)
	for _, acc := range u.Account {
		if acc.Type != accountType {
			continue
		}
		total++
		if acc.Default {
			defaults++
		}
	}
	return total, defaults
}

func TestScenario_NewDefaultReplacesOldOne(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	jane := e.createJane(t)
	ref := model.UserRefByAccount(constant.AccountTypeEmail, "jane@test.com")

	second, err := e.accounts.AddAccount(ctx, nil, ref, &model.AccountNew{Type: constant.AccountTypeWallet, Identifier: wallet(2)})
	require.NoError(t, err)
	assert.False(t, second.Default)

	third, err := e.accounts.AddAccount(ctx, nil, ref, &model.AccountNew{Type: constant.AccountTypeWallet, Identifier: wallet(3), Default: true})
	require.NoError(t, err)
	assert.True(t, third.Default)

	total, defaults := e.defaults(t, jane.ID, constant.AccountTypeWallet)
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, defaults)

	u, err := e.users.GetUserByID(ctx, nil, jane.ID)
	require.NoError(t, err)
	assert.True(t, u.FindAccount(constant.AccountTypeWallet, third.Identifier).Default)

	// the email default is untouched
	_, emailDefaults := e.defaults(t, jane.ID, constant.AccountTypeEmail)
	assert.Equal(t, 1, emailDefaults)
}

func TestScenario_FirstAccountOfTypeBecomesDefault(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()

	u, err := e.users.CreateUser(ctx, nil, &model.UserNew{Account: []model.AccountNew{
		{Type: constant.AccountTypeWallet, Identifier: wallet(1)},
	}})
	require.NoError(t, err)

	acc, err := e.accounts.AddAccount(ctx, nil, model.UserRefByID(u.ID), &model.AccountNew{Type: constant.AccountTypeEmail, Identifier: "jane@test.com"})
	require.NoError(t, err)
	assert.True(t, acc.Default)
}

func TestScenario_AddAccountIsIdempotent(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	jane := e.createJane(t)

	first, err := e.accounts.AddAccount(ctx, nil, model.UserRefByID(jane.ID), &model.AccountNew{Type: constant.AccountTypeEmail, Identifier: "jane@work.com"})
	require.NoError(t, err)
	again, err := e.accounts.AddAccount(ctx, nil, model.UserRefByID(jane.ID), &model.AccountNew{Type: constant.AccountTypeEmail, Identifier: "JANE@work.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	total, _ := e.defaults(t, jane.ID, constant.AccountTypeEmail)
	assert.Equal(t, 2, total)
}

func TestScenario_AccountOfAnotherUserIsRejected(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	e.createJane(t)

	john, err := e.users.CreateUser(ctx, nil, &model.UserNew{Account: []model.AccountNew{
		{Type: constant.AccountTypeEmail, Identifier: "john@test.com"},
	}})
	require.NoError(t, err)

	_, err = e.accounts.AddAccount(ctx, nil, model.UserRefByID(john.ID), &model.AccountNew{Type: constant.AccountTypeEmail, Identifier: "jane@test.com"})
	assertErrCode(t, err, constant.ErrAlreadyExists)
}

func TestScenario_AddAccountsConcurrentDefaults(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	jane := e.createJane(t)

	reqs := make([]model.AccountNew, 0, 8)
	for i := 10; i < 18; i++ {
		reqs = append(reqs, model.AccountNew{Type: constant.AccountTypeWallet, Identifier: wallet(i), Default: true})
	}
	added, err := e.accounts.AddAccounts(context.Background(), nil, model.UserRefByID(jane.ID), reqs)
	require.NoError(t, err)
	assert.Len(t, added, len(reqs))

	total, defaults := e.defaults(t, jane.ID, constant.AccountTypeWallet)
	assert.Equal(t, len(reqs)+1, total)
	assert.Equal(t, 1, defaults)
}

func TestScenario_AddAccountsKeepsWritesBeforeFailure(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	jane := e.createJane(t)

	failure := errors.New("disk full")
	e.repo.OnSaveAccount(func(userID uint64, acc *model.Account) error {
		if acc.Identifier == "boom@test.com" {
			return failure
		}
		return nil
	})

	_, err := e.accounts.AddAccounts(context.Background(), nil, model.UserRefByID(jane.ID), []model.AccountNew{
		{Type: constant.AccountTypeEmail, Identifier: "jane@work.com"},
		{Type: constant.AccountTypeEmail, Identifier: "boom@test.com"},
		{Type: constant.AccountTypeEmail, Identifier: "jane@home.com"},
	})
	assertErrCode(t, err, constant.ErrInternal)
	assert.ErrorIs(t, err, failure)

	// no rollback: the other accounts stay linked
	u, err := e.users.GetUserByID(context.Background(), nil, jane.ID)
	require.NoError(t, err)
	assert.NotNil(t, u.FindAccount(constant.AccountTypeEmail, "jane@work.com"))
	assert.NotNil(t, u.FindAccount(constant.AccountTypeEmail, "jane@home.com"))
	assert.Nil(t, u.FindAccount(constant.AccountTypeEmail, "boom@test.com"))
}

func TestScenario_RemoveAccount(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	jane := e.createJane(t)
	ref := model.UserRefByAccount(constant.AccountTypeEmail, "jane@test.com")
	walletRef := model.AccountRef{Type: constant.AccountTypeWallet, Identifier: wallet(1)}

	removed, err := e.accounts.RemoveAccount(ctx, nil, ref, walletRef)
	require.NoError(t, err)
	assert.Equal(t, jane.ID, removed.UserID)

	_, err = e.accounts.RemoveAccount(ctx, nil, ref, walletRef)
	assertErrCode(t, err, constant.ErrNotFound)

	_, err = e.accounts.RemoveAccount(ctx, nil, model.UserRefByAccount(constant.AccountTypeEmail, "ghost@test.com"), walletRef)
	assertErrCode(t, err, constant.ErrNotFound)
}

func TestScenario_FindOrCreateUserWithWallet(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	ref := model.UserRefByAccount(constant.AccountTypeWallet, wallet(7))

	created, err := e.accounts.FindOrCreateUserWithWallet(ctx, nil, ref)
	require.NoError(t, err)
	require.Len(t, created.Account, 1)
	assert.True(t, created.Account[0].Default)

	found, err := e.accounts.FindOrCreateUserWithWallet(ctx, nil, ref)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	all, err := e.users.GetAllUsers(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
