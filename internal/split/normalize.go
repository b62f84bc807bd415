// Package split implements the transaction splitting core: normalization of
// split requests into absolute per-user amounts and greedy matching of the
// payer side against the beneficiary side into pairwise ledger entries.
package split

import "github.com/go-split/split-ledger/internal/domain"

// Normalize converts the payer and beneficiary splits of arg into two lists
// of absolute amounts, each summing exactly to arg.TotalAmount.
//
// Even splits give every member the floor quotient and the last member the
// remainder. Percentage splits convert each value with truncating division
// and add any leftover to the last member. Both rules are applied to each
// side independently. Uneven amount splits pass through unchanged.
func Normalize(arg domain.CreateTransactionParams) ([]domain.UserSplit, []domain.UserSplit, error) {
	if err := validate(arg); err != nil {
		return nil, nil, err
	}

	if arg.SplitType == domain.SplitTypeEven {
		return even(arg.FromUsers, arg.TotalAmount), even(arg.ToUsers, arg.TotalAmount), nil
	}

	if arg.ComputationType == domain.ComputationTypePercentage {
		return fromPercentages(arg.FromUsers, arg.TotalAmount), fromPercentages(arg.ToUsers, arg.TotalAmount), nil
	}

	return clone(arg.FromUsers), clone(arg.ToUsers), nil
}

// Entries composes Normalize and Match into the full split pipeline.
func Entries(arg domain.CreateTransactionParams) ([]domain.Entry, error) {
	fromUsers, toUsers, err := Normalize(arg)
	if err != nil {
		return nil, err
	}

	return Match(fromUsers, toUsers), nil
}

func validate(arg domain.CreateTransactionParams) error {
	if !arg.SplitType.Valid() {
		return domain.ErrInvalidSplitType
	}

	if !arg.ComputationType.Valid() {
		return domain.ErrInvalidComputationType
	}

	if arg.TotalAmount < 1 {
		return domain.ErrNonPositiveTotal
	}

	if len(arg.FromUsers) == 0 {
		return domain.ErrEmptyFromUsers
	}

	if len(arg.ToUsers) == 0 {
		return domain.ErrEmptyToUsers
	}

	// Input values only matter for uneven splits; even splits derive them.
	if arg.SplitType == domain.SplitTypeEven {
		return nil
	}

	fromSum, err := sum(arg.FromUsers)
	if err != nil {
		return err
	}

	toSum, err := sum(arg.ToUsers)
	if err != nil {
		return err
	}

	if arg.ComputationType == domain.ComputationTypePercentage {
		if fromSum != 100 {
			return domain.ErrFromPercentageSum
		}

		if toSum != 100 {
			return domain.ErrToPercentageSum
		}

		return nil
	}

	if fromSum != arg.TotalAmount {
		return domain.ErrFromAmountMismatch
	}

	if toSum != arg.TotalAmount {
		return domain.ErrToAmountMismatch
	}

	return nil
}

func sum(users []domain.UserSplit) (int64, error) {
	var total int64

	for _, u := range users {
		if u.Value < 1 {
			return 0, domain.ErrNonPositiveSplitValue
		}

		total += u.Value
	}

	return total, nil
}

func even(users []domain.UserSplit, totalAmount int64) []domain.UserSplit {
	quotient := totalAmount / int64(len(users))

	out := make([]domain.UserSplit, len(users))
	for i, u := range users {
		out[i] = domain.UserSplit{UserID: u.UserID, Value: quotient}
	}

	out[len(out)-1].Value += totalAmount - quotient*int64(len(users))

	return out
}

func fromPercentages(users []domain.UserSplit, totalAmount int64) []domain.UserSplit {
	out := make([]domain.UserSplit, len(users))

	var assigned int64

	for i, u := range users {
		amount := totalAmount * u.Value / 100
		out[i] = domain.UserSplit{UserID: u.UserID, Value: amount}
		assigned += amount
	}

	if residual := totalAmount - assigned; residual > 0 {
		out[len(out)-1].Value += residual
	}

	return out
}

func clone(users []domain.UserSplit) []domain.UserSplit {
	out := make([]domain.UserSplit, len(users))
	copy(out, users)

	return out
}
