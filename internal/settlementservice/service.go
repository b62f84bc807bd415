// Package settlementservice manages business logic layer of balance settlement.
package settlementservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-split/split-ledger/internal/domain"
)

// Balancer provides the balance view needed by the settlement service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package settlementservice
type Balancer interface {
	List(ctx context.Context, userID int64) ([]domain.Balance, error)
}

// TransactionCreator provides the transaction entry point used to persist
// clearing transactions.
type TransactionCreator interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.TransactionResult, error)
}

// Service facilitates settlement service layer logic.
type Service struct {
	balances     Balancer
	transactions TransactionCreator
}

// New returns settlement service struct to manage settlement business logic.
func New(b Balancer, t TransactionCreator) *Service {
	return &Service{
		balances:     b,
		transactions: t,
	}
}

const clearingDescription = "Clearing balance"

// Clear drives every nonzero counterpart balance of the given user to zero
// by creating one clearing transaction per counterpart.
//
// Each clearing transaction is an independent atomic unit. A failure on one
// counterpart does not prevent attempting the remaining ones and does not
// roll back the ones already cleared; the first error encountered is
// returned. With no nonzero balances Clear creates no transactions.
func (s *Service) Clear(ctx context.Context, userID int64) error {
	l := zerolog.Ctx(ctx)

	balances, err := s.balances.List(ctx, userID)
	if err != nil {
		return err
	}

	var firstErr error

	for _, b := range balances {
		arg := clearingParams(userID, b)

		if _, err := s.transactions.Create(ctx, arg); err != nil {
			l.Error().Err(err).Msgf("Clear: counterpart %d left unsettled", b.UserID)

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func clearingParams(userID int64, b domain.Balance) domain.CreateTransactionParams {
	arg := domain.CreateTransactionParams{
		Description:     clearingDescription,
		SplitType:       domain.SplitTypeUneven,
		ComputationType: domain.ComputationTypeAmount,
	}

	if b.TotalAmount > 0 {
		// The counterpart owes the user and pays the debt off.
		arg.TotalAmount = b.TotalAmount
		arg.FromUsers = []domain.UserSplit{{UserID: b.UserID, Value: b.TotalAmount}}
		arg.ToUsers = []domain.UserSplit{{UserID: userID, Value: b.TotalAmount}}

		return arg
	}

	// The user owes the counterpart.
	arg.TotalAmount = -b.TotalAmount
	arg.FromUsers = []domain.UserSplit{{UserID: userID, Value: -b.TotalAmount}}
	arg.ToUsers = []domain.UserSplit{{UserID: b.UserID, Value: -b.TotalAmount}}

	return arg
}
