package repository

import (
	"context"
	"database/sql"
	"fmt"

	"user-service/internal/database"
)

// Session — открытый вызывающей стороной дескриптор хранилища (*sql.DB или *sql.Conn).
// Хелперы пакета открывают на нем транзакции, но никогда не закрывают сам дескриптор.
type Session interface {
	database.DBTX
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

var (
	_ Session = (*sql.DB)(nil)
	_ Session = (*sql.Conn)(nil)
)

// inTx выполняет fn в транзакции: commit при успехе, rollback при ошибке.
func inTx(ctx context.Context, s Session, fn func(q *database.Queries) error) (err error) {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(database.New(tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
