// Package userservice manages business logic layer of users.
package userservice

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-split/split-ledger/internal/domain"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, email string) (domain.User, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo Repo
}

// New returns user service struct to manage user business logic.
func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Create registers a new user with the given email.
func (s *Service) Create(ctx context.Context, email string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	user, err := s.repo.Create(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		l.Info().Err(err).Send()
		return user, err
	}

	return user, nil
}
