// Package entryrepo manages repository layer of ledger entries.
package entryrepo

import (
	"context"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-split/split-ledger/internal/domain"
	"github.com/go-split/split-ledger/pkg/dbpkg"
	"github.com/go-split/split-ledger/pkg/errorspkg"
)

// RepoPGS facilitates entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns entry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    ledger_entries (transaction_id, from_user_id, to_user_id, amount)
VALUES
    ($1, $2, $3, $4)
RETURNING id, transaction_id, from_user_id, to_user_id, amount, created_at
`

// Create creates the entry and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.Entry) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.TransactionID,
		arg.FromUserID,
		arg.ToUserID,
		arg.Amount,
	)

	var e domain.Entry

	err := row.Scan(
		&e.ID,
		&e.TransactionID,
		&e.FromUserID,
		&e.ToUserID,
		&e.Amount,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx context.Context, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "ledger_entries_from_user_id_fkey", "ledger_entries_to_user_id_fkey":
				return e, domain.ErrUserNotFound
			case "ledger_entries_transaction_id_fkey":
				return e, domain.ErrTransactionNotFound
			}
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listActiveByUserQuery = `
SELECT
	e.id, e.transaction_id, e.from_user_id, e.to_user_id, e.amount, e.created_at
FROM ledger_entries e
INNER JOIN transactions t ON e.transaction_id = t.id
WHERE
    t.voided_at IS NULL
    AND (e.from_user_id = $1 OR e.to_user_id = $1)
ORDER BY e.id
`

// ListActiveByUser returns entries of non-voided transactions where the given
// user is either side.
func (r *RepoPGS) ListActiveByUser(ctx context.Context, userID int64) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listActiveByUserQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Entry{}

	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(
			&e.ID,
			&e.TransactionID,
			&e.FromUserID,
			&e.ToUserID,
			&e.Amount,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}

		items = append(items, e)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
