// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/go-split/split-ledger/internal/domain"
	"github.com/go-split/split-ledger/internal/entryrepo"
	"github.com/go-split/split-ledger/pkg/dbpkg"
	"github.com/go-split/split-ledger/pkg/errorspkg"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns transaction RepoPGS running on an enclosing database transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns transaction RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    transactions (description, total_amount)
VALUES
    ($1, $2)
RETURNING id, description, total_amount, voided_at, created_at
`

// Create creates the transaction row and then returns it.
func (r *RepoPGS) Create(ctx context.Context, description string, totalAmount int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, description, totalAmount)

	t, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getQuery = `
SELECT
	id, description, total_amount, voided_at, created_at
FROM transactions
WHERE id = $1
`

// Get returns the transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	t, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const voidQuery = `
UPDATE transactions
SET voided_at = now()
WHERE id = $1 AND voided_at IS NULL
RETURNING id, description, total_amount, voided_at, created_at
`

// Void marks the transaction as voided.
//
// Entries of a voided transaction are kept but no longer count toward
// balances. Voiding an absent transaction returns ErrTransactionNotFound;
// voiding twice returns ErrTransactionAlreadyVoided.
func (r *RepoPGS) Void(ctx context.Context, id int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, voidQuery, id)

	t, err := scanTransaction(row)
	if err == nil {
		return t, nil
	}

	if err != sql.ErrNoRows {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	// No row voided: distinguish a missing transaction from a voided one.
	if _, err := r.Get(ctx, id); err != nil {
		return t, err
	}

	return t, domain.ErrTransactionAlreadyVoided
}

// CreateWithEntries persists the transaction row and all its ledger entries
// as a single atomic unit, preserving the given entry order.
func (r *RepoPGS) CreateWithEntries(ctx context.Context, description string, totalAmount int64, entries []domain.Entry) (domain.TransactionResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransactionResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer rollback(ctx, tx)

	result, err = createWithEntries(ctx, tx, description, totalAmount, entries)
	if err != nil {
		return domain.TransactionResult{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.TransactionResult{}, errorspkg.ErrInternal
	}

	return result, nil
}

// Replace voids the old transaction and creates the new one with its entries
// within one atomic unit, so concurrent balance reads never observe the old
// and new split double-counted or both missing.
func (r *RepoPGS) Replace(ctx context.Context, id int64, description string, totalAmount int64, entries []domain.Entry) (domain.TransactionResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransactionResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer rollback(ctx, tx)

	txRepo := NewTxRepoPGS(tx)

	if _, err := txRepo.Void(ctx, id); err != nil {
		return result, err
	}

	result, err = createWithEntries(ctx, tx, description, totalAmount, entries)
	if err != nil {
		return domain.TransactionResult{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.TransactionResult{}, errorspkg.ErrInternal
	}

	return result, nil
}

func createWithEntries(ctx context.Context, tx *sql.Tx, description string, totalAmount int64, entries []domain.Entry) (domain.TransactionResult, error) {
	var result domain.TransactionResult

	txRepo := NewTxRepoPGS(tx)
	entryRepo := entryrepo.NewRepoPGS(tx)

	t, err := txRepo.Create(ctx, description, totalAmount)
	if err != nil {
		return result, err
	}

	result.Transaction = t
	result.Entries = make([]domain.Entry, 0, len(entries))

	for _, e := range entries {
		e.TransactionID = t.ID

		created, err := entryRepo.Create(ctx, e)
		if err != nil {
			return domain.TransactionResult{}, err
		}

		result.Entries = append(result.Entries, created)
	}

	return result, nil
}

func rollback(ctx context.Context, tx *sql.Tx) {
	l := zerolog.Ctx(ctx)

	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		l.Error().Err(err).Send()
	}
}

func scanTransaction(row *sql.Row) (domain.Transaction, error) {
	var (
		t        domain.Transaction
		voidedAt sql.NullTime
	)

	err := row.Scan(
		&t.ID,
		&t.Description,
		&t.TotalAmount,
		&voidedAt,
		&t.CreatedAt,
	)

	if err != nil {
		return t, err
	}

	if voidedAt.Valid {
		t.VoidedAt = &voidedAt.Time
	}

	return t, nil
}
