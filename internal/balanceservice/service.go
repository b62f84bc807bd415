// Package balanceservice manages business logic layer of balances.
package balanceservice

import (
	"context"
	"sort"

	"github.com/go-split/split-ledger/internal/domain"
)

// Repo provides data access layer interface needed by balance service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package balanceservice
type Repo interface {
	ListActiveByUser(ctx context.Context, userID int64) ([]domain.Entry, error)
}

// Service facilitates balance service layer logic.
type Service struct {
	repo Repo
}

// New returns balance service struct to manage balance business logic.
func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// List returns the net balance per counterpart for the given user.
//
// Every active entry where the user paid credits the beneficiary counterpart;
// every entry where the user received debits the payer counterpart. Zero
// nets are omitted. Balances are recomputed from entries on every call and
// returned in ascending counterpart id order.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Balance, error) {
	entries, err := s.repo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	net := make(map[int64]int64)

	for _, e := range entries {
		if e.FromUserID == userID {
			net[e.ToUserID] += e.Amount
		}

		if e.ToUserID == userID {
			net[e.FromUserID] -= e.Amount
		}
	}

	balances := []domain.Balance{}

	for counterpart, amount := range net {
		if amount == 0 {
			continue
		}

		balances = append(balances, domain.Balance{UserID: counterpart, TotalAmount: amount})
	}

	sort.Slice(balances, func(i, j int) bool { return balances[i].UserID < balances[j].UserID })

	return balances, nil
}
