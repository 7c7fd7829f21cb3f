// Общие помощники для репозиториев postgresql: транзакции, фильтры, ошибки драйвера
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	txTimeout = 10 * time.Second

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// runInTx runs fn inside a transaction bounded by txTimeout. The transaction is
// rolled back unless fn returns nil and the commit succeeds.
func runInTx(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, op string, fn func(ctx context.Context, tx pgx.Tx) error) error {
	txCtx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := pool.Begin(txCtx)
	if err != nil {
		logger.Error("failed to begin transaction",
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.Background())
			logger.Error("panic in transaction",
				slog.String("operation", op),
				slog.Any("panic", p),
			)
			panic(p)
		}
		_ = tx.Rollback(context.Background())
	}()

	if err := fn(txCtx, tx); err != nil {
		return err
	}

	if err := tx.Commit(txCtx); err != nil {
		logger.Error("failed to commit transaction",
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// sqlParts accumulates "column = $n" expressions with their positional arguments.
type sqlParts struct {
	exprs []string
	args  []any
}

func (p *sqlParts) add(column string, value any) {
	p.args = append(p.args, value)
	p.exprs = append(p.exprs, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

func (p *sqlParts) empty() bool {
	return len(p.exprs) == 0
}

func (p *sqlParts) where() string {
	if p.empty() {
		return ""
	}
	return " WHERE " + strings.Join(p.exprs, " AND ")
}

func (p *sqlParts) set() string {
	return strings.Join(p.exprs, ", ")
}

// nextArg appends a trailing argument and returns its placeholder.
func (p *sqlParts) nextArg(value any) string {
	p.args = append(p.args, value)
	return fmt.Sprintf("$%d", len(p.args))
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func isUniqueViolation(err error) bool {
	pgErr, ok := asPgError(err)
	return ok && pgErr.Code == pgUniqueViolation
}

// foreignKeyConstraint returns the violated constraint name, if err is an FK violation.
func foreignKeyConstraint(err error) (string, bool) {
	pgErr, ok := asPgError(err)
	if !ok || pgErr.Code != pgForeignKeyViolation {
		return "", false
	}
	return pgErr.ConstraintName, true
}
