// Package helpers provides seed helpers used in integration tests.
package helpers

import (
	"context"
	"testing"

	"github.com/go-split/split-ledger/internal/domain"
	"github.com/go-split/split-ledger/internal/entryrepo"
	"github.com/go-split/split-ledger/internal/transactionrepo"
	"github.com/go-split/split-ledger/internal/userrepo"
	"github.com/go-split/split-ledger/pkg/dbpkg"
	"github.com/go-split/split-ledger/pkg/randompkg"
)

// SeedUser creates a user with a random email.
func SeedUser(t *testing.T, db dbpkg.SQLInterface) domain.User {
	t.Helper()

	user, err := userrepo.NewRepoPGS(db).Create(context.Background(), randompkg.Email())
	if err != nil {
		t.Fatalf("seeding user returned error: %v", err)
	}

	return user
}

// SeedTransaction creates a transaction row with a random description and total.
func SeedTransaction(t *testing.T, db dbpkg.SQLInterface) domain.Transaction {
	t.Helper()

	transaction, err := transactionrepo.NewTxRepoPGS(db).Create(
		context.Background(), randompkg.String(10), randompkg.Amount())
	if err != nil {
		t.Fatalf("seeding transaction returned error: %v", err)
	}

	return transaction
}

// SeedEntry creates a ledger entry between the given users.
func SeedEntry(t *testing.T, db dbpkg.SQLInterface, transactionID, fromUserID, toUserID, amount int64) domain.Entry {
	t.Helper()

	entry, err := entryrepo.NewRepoPGS(db).Create(context.Background(), domain.Entry{
		TransactionID: transactionID,
		FromUserID:    fromUserID,
		ToUserID:      toUserID,
		Amount:        amount,
	})
	if err != nil {
		t.Fatalf("seeding entry returned error: %v", err)
	}

	return entry
}
