// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-split/split-ledger/internal/domain"
	"github.com/go-split/split-ledger/internal/split"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	CreateWithEntries(ctx context.Context, description string, totalAmount int64, entries []domain.Entry) (domain.TransactionResult, error)
	Replace(ctx context.Context, id int64, description string, totalAmount int64, entries []domain.Entry) (domain.TransactionResult, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo Repo
}

// New returns transaction service struct to manage transaction business logic.
func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Create validates and normalizes the split request, matches both sides into
// ledger entries and persists the transaction with its entries atomically.
//
// Validation happens before any persistence; a validation error leaves no
// side effects.
func (s *Service) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.TransactionResult, error) {
	l := zerolog.Ctx(ctx)

	entries, err := split.Entries(arg)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.TransactionResult{}, err
	}

	return s.repo.CreateWithEntries(ctx, arg.Description, arg.TotalAmount, entries)
}

// Update voids the transaction with the given id and creates a replacement
// from the new split request, atomically with respect to balance reads.
func (s *Service) Update(ctx context.Context, id int64, arg domain.CreateTransactionParams) (domain.TransactionResult, error) {
	l := zerolog.Ctx(ctx)

	entries, err := split.Entries(arg)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.TransactionResult{}, err
	}

	return s.repo.Replace(ctx, id, arg.Description, arg.TotalAmount, entries)
}
