package split

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/go-split/split-ledger/internal/domain"
)

func users(ids ...int64) []domain.UserSplit {
	out := make([]domain.UserSplit, len(ids))
	for i, id := range ids {
		out[i] = domain.UserSplit{UserID: id}
	}

	return out
}

func valued(pairs ...int64) []domain.UserSplit {
	out := make([]domain.UserSplit, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.UserSplit{UserID: pairs[i], Value: pairs[i+1]})
	}

	return out
}

func TestNormalizeEven(t *testing.T) {
	testCases := []struct {
		name     string
		arg      domain.CreateTransactionParams
		wantFrom []domain.UserSplit
		wantTo   []domain.UserSplit
	}{
		{
			name: "RemainderGoesToLastMember",
			arg: domain.CreateTransactionParams{
				TotalAmount:     100,
				SplitType:       domain.SplitTypeEven,
				ComputationType: domain.ComputationTypeAmount,
				FromUsers:       users(1, 2, 3),
				ToUsers:         users(4),
			},
			wantFrom: valued(1, 33, 2, 33, 3, 34),
			wantTo:   valued(4, 100),
		},
		{
			name: "SingleMemberTakesTotal",
			arg: domain.CreateTransactionParams{
				TotalAmount:     77,
				SplitType:       domain.SplitTypeEven,
				ComputationType: domain.ComputationTypeAmount,
				FromUsers:       users(1),
				ToUsers:         users(2),
			},
			wantFrom: valued(1, 77),
			wantTo:   valued(2, 77),
		},
		{
			name: "BothSidesSplitIndependently",
			arg: domain.CreateTransactionParams{
				TotalAmount:     10,
				SplitType:       domain.SplitTypeEven,
				ComputationType: domain.ComputationTypeAmount,
				FromUsers:       users(1, 2, 3),
				ToUsers:         users(4, 5),
			},
			wantFrom: valued(1, 3, 2, 3, 3, 4),
			wantTo:   valued(4, 5, 5, 5),
		},
		{
			name: "TotalSmallerThanListLength",
			arg: domain.CreateTransactionParams{
				TotalAmount:     2,
				SplitType:       domain.SplitTypeEven,
				ComputationType: domain.ComputationTypeAmount,
				FromUsers:       users(1, 2, 3),
				ToUsers:         users(4),
			},
			wantFrom: valued(1, 0, 2, 0, 3, 2),
			wantTo:   valued(4, 2),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			gotFrom, gotTo, err := Normalize(tc.arg)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.wantFrom, gotFrom); diff != "" {
				t.Errorf("Normalize() from users mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tc.wantTo, gotTo); diff != "" {
				t.Errorf("Normalize() to users mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizePercentage(t *testing.T) {
	testCases := []struct {
		name     string
		arg      domain.CreateTransactionParams
		wantFrom []domain.UserSplit
		wantTo   []domain.UserSplit
	}{
		{
			name: "ExactPercentagesNoResidual",
			arg: domain.CreateTransactionParams{
				TotalAmount:     100,
				SplitType:       domain.SplitTypeUneven,
				ComputationType: domain.ComputationTypePercentage,
				FromUsers:       valued(1, 33, 2, 33, 3, 34),
				ToUsers:         valued(4, 100),
			},
			wantFrom: valued(1, 33, 2, 33, 3, 34),
			wantTo:   valued(4, 100),
		},
		{
			name: "HalfAndHalf",
			arg: domain.CreateTransactionParams{
				TotalAmount:     10,
				SplitType:       domain.SplitTypeUneven,
				ComputationType: domain.ComputationTypePercentage,
				FromUsers:       valued(1, 50, 2, 50),
				ToUsers:         valued(3, 100),
			},
			wantFrom: valued(1, 5, 2, 5),
			wantTo:   valued(3, 10),
		},
		{
			name: "TruncationResidualGoesToLastMember",
			arg: domain.CreateTransactionParams{
				TotalAmount:     101,
				SplitType:       domain.SplitTypeUneven,
				ComputationType: domain.ComputationTypePercentage,
				FromUsers:       valued(1, 50, 2, 50),
				ToUsers:         valued(3, 100),
			},
			wantFrom: valued(1, 50, 2, 51),
			wantTo:   valued(3, 101),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			gotFrom, gotTo, err := Normalize(tc.arg)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.wantFrom, gotFrom); diff != "" {
				t.Errorf("Normalize() from users mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tc.wantTo, gotTo); diff != "" {
				t.Errorf("Normalize() to users mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeUnevenAmountPassesThrough(t *testing.T) {
	arg := domain.CreateTransactionParams{
		TotalAmount:     100,
		SplitType:       domain.SplitTypeUneven,
		ComputationType: domain.ComputationTypeAmount,
		FromUsers:       valued(1, 60, 2, 40),
		ToUsers:         valued(3, 100),
	}

	gotFrom, gotTo, err := Normalize(arg)
	require.NoError(t, err)
	require.Equal(t, arg.FromUsers, gotFrom)
	require.Equal(t, arg.ToUsers, gotTo)

	// The caller's slices stay untouched by later matching.
	gotFrom[0].Value = 0
	require.EqualValues(t, 60, arg.FromUsers[0].Value)
}

func TestNormalizeValidation(t *testing.T) {
	valid := domain.CreateTransactionParams{
		TotalAmount:     100,
		SplitType:       domain.SplitTypeUneven,
		ComputationType: domain.ComputationTypeAmount,
		FromUsers:       valued(1, 60, 2, 40),
		ToUsers:         valued(3, 100),
	}

	testCases := []struct {
		name    string
		mutate  func(arg *domain.CreateTransactionParams)
		wantErr error
	}{
		{
			name:    "InvalidSplitType",
			mutate:  func(arg *domain.CreateTransactionParams) { arg.SplitType = "weird" },
			wantErr: domain.ErrInvalidSplitType,
		},
		{
			name:    "InvalidComputationType",
			mutate:  func(arg *domain.CreateTransactionParams) { arg.ComputationType = "weird" },
			wantErr: domain.ErrInvalidComputationType,
		},
		{
			name:    "NonPositiveTotal",
			mutate:  func(arg *domain.CreateTransactionParams) { arg.TotalAmount = 0 },
			wantErr: domain.ErrNonPositiveTotal,
		},
		{
			name:    "EmptyFromUsers",
			mutate:  func(arg *domain.CreateTransactionParams) { arg.FromUsers = nil },
			wantErr: domain.ErrEmptyFromUsers,
		},
		{
			name:    "EmptyToUsers",
			mutate:  func(arg *domain.CreateTransactionParams) { arg.ToUsers = nil },
			wantErr: domain.ErrEmptyToUsers,
		},
		{
			name:    "NonPositiveSplitValue",
			mutate:  func(arg *domain.CreateTransactionParams) { arg.FromUsers = valued(1, 100, 2, 0) },
			wantErr: domain.ErrNonPositiveSplitValue,
		},
		{
			name:    "FromAmountMismatch",
			mutate:  func(arg *domain.CreateTransactionParams) { arg.FromUsers = valued(1, 60, 2, 41) },
			wantErr: domain.ErrFromAmountMismatch,
		},
		{
			name:    "ToAmountMismatch",
			mutate:  func(arg *domain.CreateTransactionParams) { arg.ToUsers = valued(3, 99) },
			wantErr: domain.ErrToAmountMismatch,
		},
		{
			name: "FromPercentageSum",
			mutate: func(arg *domain.CreateTransactionParams) {
				arg.ComputationType = domain.ComputationTypePercentage
				arg.FromUsers = valued(1, 60, 2, 41)
				arg.ToUsers = valued(3, 100)
			},
			wantErr: domain.ErrFromPercentageSum,
		},
		{
			name: "ToPercentageSum",
			mutate: func(arg *domain.CreateTransactionParams) {
				arg.ComputationType = domain.ComputationTypePercentage
				arg.FromUsers = valued(1, 60, 2, 40)
				arg.ToUsers = valued(3, 99)
			},
			wantErr: domain.ErrToPercentageSum,
		},
		{
			name: "EvenSkipsValueChecks",
			mutate: func(arg *domain.CreateTransactionParams) {
				arg.SplitType = domain.SplitTypeEven
				arg.FromUsers = users(1, 2)
				arg.ToUsers = users(3)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			arg := valid
			tc.mutate(&arg)

			_, _, err := Normalize(arg)

			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
