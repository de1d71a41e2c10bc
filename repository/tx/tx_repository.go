package tx

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"go.uber.org/zap"
)

type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type txRepo struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db}
}

func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	return tx.Rollback()
}

// WithTransaction runs fn in a transaction, committed when fn succeeds and
// rolled back when it fails or panics (the panic is re-raised).
func (r *txRepo) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := r.RollbackTx(tx); rbErr != nil {
				logger.Error("[WithTransaction] rollback after panic", zap.String("error", rbErr.Error()))
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := r.RollbackTx(tx); rbErr != nil {
			logger.Error("[WithTransaction] rollback", zap.String("error", rbErr.Error()), zap.String("cause", err.Error()))
		}
		return err
	}

	if err := r.CommitTx(tx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
