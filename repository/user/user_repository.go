package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
	txrepo "github.com/muhammadheryan/tuba-user/repository/tx"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"go.uber.org/zap"
)

var (
	// ErrUnexpectedRowCount is returned when a write touched a different number of rows than expected.
	ErrUnexpectedRowCount = errors.New("unexpected number of rows affected")
	// ErrNotFound is returned by UpdateUser when the target user does not exist.
	ErrNotFound = errors.New("user not found")
)

// UserRepository is the persistence gateway for users and their sub-accounts.
// Lookups return nil or an empty slice for "not found", errors are store failures only.
type UserRepository interface {
	Ping(ctx context.Context) (string, error)
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id uint64) (*model.User, error)
	// FindByIDs silently drops missing IDs.
	FindByIDs(ctx context.Context, ids []uint64) ([]model.User, error)
	FindUsersByAccount(ctx context.Context, identifier string, accountType constant.AccountType) ([]model.User, error)
	// FindUsersByHandle returns the users holding handle, without their accounts.
	FindUsersByHandle(ctx context.Context, handle string) ([]model.User, error)
	FindAccountsByIdentifier(ctx context.Context, identifier string, accountType constant.AccountType) ([]model.Account, error)
	FindAccountByIdentifier(ctx context.Context, userID uint64, accountType constant.AccountType, identifier string) (*model.Account, error)
	// SaveUser inserts the user when it has no ID, updates it otherwise. Accounts are saved along.
	SaveUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, upd *model.UserUpdate) (*model.User, error)
	// SaveAccount inserts or updates an account. Setting Default clears the previous
	// default of the same (user, type) atomically. Updating never lowers Default on its own;
	// an account stops being the default only when another one takes its place.
	// ErrNotFound when the user does not exist.
	SaveAccount(ctx context.Context, userID uint64, acc *model.Account) (*model.Account, error)
	// DeleteUser removes the user's accounts then the user, and returns the removed snapshot.
	DeleteUser(ctx context.Context, id uint64) (*model.User, error)
	DeleteAccount(ctx context.Context, accountID uint64) (*model.Account, error)
}

type SQL struct {
	conn *sqlx.DB
	tx   txrepo.TxRepository
}

func NewUserRepository(conn *sqlx.DB, tx txrepo.TxRepository) UserRepository {
	return &SQL{conn: conn, tx: tx}
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx
type queryer interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

const (
	userColumns    = `id, status, handle, name, name_last, type, created_at, updated_at`
	accountColumns = `id, user_id, status, type, sub_type, identifier, name, is_default, created_at, updated_at`

	pingQuery             = `SELECT CAST(CURRENT_TIME() AS CHAR)`
	getUsersAll           = `SELECT ` + userColumns + ` FROM users ORDER BY id`
	getUserByID           = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	getUserByIDForUpdate  = getUserByID + ` FOR UPDATE`
	getUsersByIDs         = `SELECT ` + userColumns + ` FROM users WHERE id IN (?) ORDER BY id`
	getUsersByHandle      = `SELECT id, handle, name FROM users WHERE handle = ?`
	getUserIDsByAccount   = `SELECT DISTINCT user_id FROM accounts WHERE identifier = ? AND type = ? ORDER BY user_id`
	getAccountsByUserIDs  = `SELECT ` + accountColumns + ` FROM accounts WHERE user_id IN (?) ORDER BY id`
	getAccountsByIdent    = `SELECT ` + accountColumns + ` FROM accounts WHERE identifier = ? AND type = ? ORDER BY id`
	getAccountByUserIdent = `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = ? AND type = ? AND identifier = ? LIMIT 1`
	getAccountByID        = `SELECT ` + accountColumns + ` FROM accounts WHERE id = ?`
	getAccountIDByIdent   = `SELECT id FROM accounts WHERE user_id = ? AND type = ? AND identifier = ? LIMIT 1`
	lockUserRow           = `SELECT id FROM users WHERE id = ? FOR UPDATE`

	insertUserQuery    = `INSERT INTO users (status, handle, name, name_last, type, created_at, updated_at) VALUES (?, ?, ?, ?, ?, NOW(), NOW())`
	updateUserQuery    = `UPDATE users SET status = ?, handle = ?, name = ?, name_last = ?, type = ?, updated_at = NOW() WHERE id = ?`
	insertAccountQuery = `INSERT INTO accounts (user_id, status, type, sub_type, identifier, name, is_default, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`
	// the default flag is only ever raised by an account update, lowering it is done by clearDefaultQuery
	updateAccountQuery = `UPDATE accounts SET status = ?, type = ?, sub_type = ?, identifier = ?, name = ?, is_default = (is_default OR ?), updated_at = NOW() WHERE id = ?`
	clearDefaultQuery  = `UPDATE accounts SET is_default = 0, updated_at = NOW() WHERE user_id = ? AND type = ? AND is_default = 1 AND id <> ?`

	deleteAccountsByUser = `DELETE FROM accounts WHERE user_id = ?`
	deleteUserQuery      = `DELETE FROM users WHERE id = ?`
	deleteAccountQuery   = `DELETE FROM accounts WHERE id = ?`
)

func (s *SQL) Ping(ctx context.Context) (string, error) {
	var now string
	if err := s.conn.GetContext(ctx, &now, pingQuery); err != nil {
		return "", fmt.Errorf("failed to connect to database: %w", err)
	}
	return now, nil
}

func (s *SQL) FindAll(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := s.conn.SelectContext(ctx, &users, getUsersAll); err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, s.conn, users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQL) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	if id == 0 {
		return nil, nil
	}
	return s.findByID(ctx, s.conn, getUserByID, id)
}

func (s *SQL) findByID(ctx context.Context, q queryer, query string, id uint64) (*model.User, error) {
	var entity model.User
	if err := sqlx.GetContext(ctx, q, &entity, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	users := []model.User{entity}
	if err := s.hydrate(ctx, q, users); err != nil {
		return nil, err
	}
	return &users[0], nil
}

func (s *SQL) FindByIDs(ctx context.Context, ids []uint64) ([]model.User, error) {
	valid := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return []model.User{}, nil
	}

	query, args, err := sqlx.In(getUsersByIDs, valid)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(valid))
	if err := s.conn.SelectContext(ctx, &users, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, s.conn, users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQL) FindUsersByAccount(ctx context.Context, identifier string, accountType constant.AccountType) ([]model.User, error) {
	if identifier == "" || accountType == "" {
		return []model.User{}, nil
	}
	var userIDs []uint64
	if err := s.conn.SelectContext(ctx, &userIDs, getUserIDsByAccount, identifier, accountType); err != nil {
		return nil, err
	}
	return s.FindByIDs(ctx, userIDs)
}

func (s *SQL) FindUsersByHandle(ctx context.Context, handle string) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := s.conn.SelectContext(ctx, &users, getUsersByHandle, handle); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQL) FindAccountsByIdentifier(ctx context.Context, identifier string, accountType constant.AccountType) ([]model.Account, error) {
	accounts := make([]model.Account, 0)
	if err := s.conn.SelectContext(ctx, &accounts, getAccountsByIdent, identifier, accountType); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *SQL) FindAccountByIdentifier(ctx context.Context, userID uint64, accountType constant.AccountType, identifier string) (*model.Account, error) {
	if userID == 0 || accountType == "" || identifier == "" {
		logger.Warn("[FindAccountByIdentifier] ignoring invalid account specification",
			zap.Uint64("user_id", userID), zap.String("type", string(accountType)), zap.String("identifier", identifier))
		return nil, nil
	}
	var acc model.Account
	if err := s.conn.GetContext(ctx, &acc, getAccountByUserIdent, userID, accountType, identifier); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &acc, nil
}

// hydrate loads the accounts of users in a single query
func (s *SQL) hydrate(ctx context.Context, q queryer, users []model.User) error {
	if len(users) == 0 {
		return nil
	}
	ids := make([]uint64, len(users))
	index := make(map[uint64]int, len(users))
	for i := range users {
		ids[i] = users[i].ID
		index[users[i].ID] = i
		users[i].Account = make([]model.Account, 0)
	}

	query, args, err := sqlx.In(getAccountsByUserIDs, ids)
	if err != nil {
		return err
	}
	var accounts []model.Account
	if err := sqlx.SelectContext(ctx, q, &accounts, q.Rebind(query), args...); err != nil {
		return err
	}
	for _, acc := range accounts {
		if i, ok := index[acc.UserID]; ok {
			users[i].Account = append(users[i].Account, acc)
		}
	}
	return nil
}

func (s *SQL) SaveUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user == nil {
		return nil, nil
	}

	userID := user.ID
	err := s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if userID > 0 {
			logger.Info("[SaveUser] updating user", zap.Uint64("user_id", userID))
			if _, err := tx.ExecContext(ctx, updateUserQuery, user.Status, user.Handle, user.Name, user.NameLast, user.Type, userID); err != nil {
				return fmt.Errorf("failed to update user %d: %w", userID, err)
			}
		} else {
			res, err := tx.ExecContext(ctx, insertUserQuery, user.Status, user.Handle, user.Name, user.NameLast, user.Type)
			if err != nil {
				return fmt.Errorf("failed to insert user: %w", err)
			}
			lastID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			userID = uint64(lastID)
			logger.Info("[SaveUser] inserted user", zap.Uint64("user_id", userID))
		}

		for i := range user.Account {
			if _, err := s.saveAccountTx(ctx, tx, userID, &user.Account[i]); err != nil {
				return fmt.Errorf("failed to store account '%s' of user %d: %w", user.Account[i].Identifier, userID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.FindByID(ctx, userID)
}

func (s *SQL) UpdateUser(ctx context.Context, upd *model.UserUpdate) (*model.User, error) {
	if upd == nil || upd.ID == 0 {
		return nil, ErrNotFound
	}

	query := "UPDATE users SET updated_at = NOW()"
	args := make([]any, 0, 5)
	if upd.Name != nil {
		query += ", name = ?"
		args = append(args, *upd.Name)
	}
	if upd.NameLast != nil {
		query += ", name_last = ?"
		args = append(args, *upd.NameLast)
	}
	if upd.Type != nil {
		query += ", type = ?"
		args = append(args, *upd.Type)
	}
	if upd.Status != nil {
		query += ", status = ?"
		args = append(args, *upd.Status)
	}
	query += " WHERE id = ?"
	args = append(args, upd.ID)

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", upd.ID, err)
	}

	user, err := s.FindByID(ctx, upd.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *SQL) SaveAccount(ctx context.Context, userID uint64, acc *model.Account) (*model.Account, error) {
	if acc == nil {
		return nil, nil
	}
	var saved *model.Account
	err := s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error
		saved, err = s.saveAccountTx(ctx, tx, userID, acc)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *SQL) saveAccountTx(ctx context.Context, tx *sqlx.Tx, userID uint64, acc *model.Account) (*model.Account, error) {
	// writers of one user's accounts queue on the user row, the first account of a type included
	var locked []uint64
	if err := tx.SelectContext(ctx, &locked, lockUserRow, userID); err != nil {
		return nil, err
	}
	if len(locked) == 0 {
		return nil, ErrNotFound
	}

	accountID := acc.ID
	if accountID == 0 {
		err := tx.GetContext(ctx, &accountID, getAccountIDByIdent, userID, acc.Type, acc.Identifier)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	if acc.Default {
		if _, err := tx.ExecContext(ctx, clearDefaultQuery, userID, acc.Type, accountID); err != nil {
			return nil, fmt.Errorf("failed to clear default account: %w", err)
		}
	}

	if accountID > 0 {
		if _, err := tx.ExecContext(ctx, updateAccountQuery, acc.Status, acc.Type, acc.SubType, acc.Identifier, acc.Name, acc.Default, accountID); err != nil {
			return nil, fmt.Errorf("failed to update account %d: %w", accountID, err)
		}
	} else {
		res, err := tx.ExecContext(ctx, insertAccountQuery, userID, acc.Status, acc.Type, acc.SubType, acc.Identifier, acc.Name, acc.Default)
		if err != nil {
			return nil, fmt.Errorf("failed to insert account: %w", err)
		}
		lastID, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		accountID = uint64(lastID)
	}

	var saved model.Account
	if err := tx.GetContext(ctx, &saved, getAccountByID, accountID); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *SQL) DeleteUser(ctx context.Context, id uint64) (*model.User, error) {
	if id == 0 {
		return nil, nil
	}

	var removed *model.User
	err := s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		snapshot, err := s.findByID(ctx, tx, getUserByIDForUpdate, id)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, deleteAccountsByUser, id)
		if err != nil {
			return fmt.Errorf("failed to delete accounts of user %d: %w", id, err)
		}
		removedAccounts, _ := res.RowsAffected()
		logger.Warn("[DeleteUser] deleted sub-accounts", zap.Uint64("user_id", id), zap.Int64("count", removedAccounts))

		res, err = tx.ExecContext(ctx, deleteUserQuery, id)
		if err != nil {
			return fmt.Errorf("failed to delete user %d: %w", id, err)
		}
		removedUsers, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if removedUsers != 1 || snapshot == nil {
			return fmt.Errorf("%w: %d users deleted for ID %d", ErrUnexpectedRowCount, removedUsers, id)
		}
		removed = snapshot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (s *SQL) DeleteAccount(ctx context.Context, accountID uint64) (*model.Account, error) {
	if accountID == 0 {
		return nil, nil
	}

	var removed *model.Account
	err := s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var acc model.Account
		if err := tx.GetContext(ctx, &acc, getAccountByID+" FOR UPDATE", accountID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}
		res, err := tx.ExecContext(ctx, deleteAccountQuery, accountID)
		if err != nil {
			return fmt.Errorf("failed to delete account %d: %w", accountID, err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n != 1 {
			return fmt.Errorf("%w: %d accounts deleted for ID %d", ErrUnexpectedRowCount, n, accountID)
		}
		removed = &acc
		return nil
	})
	if err != nil {
		return nil, err
	}
	if removed != nil {
		logger.Warn("[DeleteAccount] deleted account", zap.Uint64("account_id", accountID), zap.Uint64("user_id", removed.UserID))
	}
	return removed, nil
}
