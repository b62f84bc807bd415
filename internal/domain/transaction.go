package domain

import (
	"errors"
	"time"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrTransactionAlreadyVoided indicates an update of a transaction that is already voided.
	ErrTransactionAlreadyVoided = errors.New("transaction already voided")

	// ErrNonPositiveTotal indicates a non-positive transaction total.
	ErrNonPositiveTotal = errors.New("total amount must be positive")
	// ErrEmptyFromUsers indicates an empty payer list.
	ErrEmptyFromUsers = errors.New("from_users cannot be empty")
	// ErrEmptyToUsers indicates an empty beneficiary list.
	ErrEmptyToUsers = errors.New("to_users cannot be empty")
	// ErrNonPositiveSplitValue indicates a zero or negative split value.
	ErrNonPositiveSplitValue = errors.New("split values must be positive")
	// ErrFromAmountMismatch indicates that payer amounts do not sum to the total.
	ErrFromAmountMismatch = errors.New("total amount mismatch in from_users")
	// ErrToAmountMismatch indicates that beneficiary amounts do not sum to the total.
	ErrToAmountMismatch = errors.New("total amount mismatch in to_users")
	// ErrFromPercentageSum indicates that payer percentages do not sum to 100.
	ErrFromPercentageSum = errors.New("sum of from_users percentages must be 100")
	// ErrToPercentageSum indicates that beneficiary percentages do not sum to 100.
	ErrToPercentageSum = errors.New("sum of to_users percentages must be 100")
	// ErrInvalidSplitType indicates an unknown split type.
	ErrInvalidSplitType = errors.New("invalid split type")
	// ErrInvalidComputationType indicates an unknown computation type.
	ErrInvalidComputationType = errors.New("invalid computation type")
)

// SplitType tells whether a transaction is divided evenly or unevenly.
type SplitType string

// Supported split types.
const (
	SplitTypeEven   SplitType = "even"
	SplitTypeUneven SplitType = "uneven"
)

// Valid reports whether s is a supported split type.
func (s SplitType) Valid() bool {
	return s == SplitTypeEven || s == SplitTypeUneven
}

// ComputationType tells how uneven split values are expressed.
type ComputationType string

// Supported computation types.
const (
	ComputationTypePercentage ComputationType = "percentage"
	ComputationTypeAmount     ComputationType = "amount"
)

// Valid reports whether c is a supported computation type.
func (c ComputationType) Valid() bool {
	return c == ComputationTypePercentage || c == ComputationTypeAmount
}

// UserSplit is one side's assigned share of a transaction.
//
// Value is a percentage or an absolute amount in the smallest currency unit,
// depending on the computation type. It exists only in memory; normalization
// always converts it to an absolute amount before entries are generated.
type UserSplit struct {
	UserID int64 `json:"user_id"`
	Value  int64 `json:"value"`
}

// Transaction holds one recorded shared expense or payment.
//
// A transaction is never hard-deleted. Updates void the old transaction and
// create a new one; entries of a voided transaction are kept but excluded
// from balance computations.
type Transaction struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	TotalAmount int64      `json:"total_amount"`
	VoidedAt    *time.Time `json:"voided_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateTransactionParams is the input data to create a transaction.
type CreateTransactionParams struct {
	Description     string          `json:"description"`
	TotalAmount     int64           `json:"total_amount"`
	SplitType       SplitType       `json:"split_type"`
	ComputationType ComputationType `json:"computation_type"`
	FromUsers       []UserSplit     `json:"from_users"`
	ToUsers         []UserSplit     `json:"to_users"`
}

// TransactionResult is a persisted transaction together with its ledger
// entries in emitted order.
type TransactionResult struct {
	Transaction Transaction `json:"transaction"`
	Entries     []Entry     `json:"entries"`
}
