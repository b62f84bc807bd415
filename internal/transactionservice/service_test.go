package transactionservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-split/split-ledger/internal/domain"
	"github.com/go-split/split-ledger/pkg/errorspkg"
)

func validParams() domain.CreateTransactionParams {
	return domain.CreateTransactionParams{
		Description:     "dinner",
		TotalAmount:     100,
		SplitType:       domain.SplitTypeUneven,
		ComputationType: domain.ComputationTypeAmount,
		FromUsers: []domain.UserSplit{
			{UserID: 1, Value: 60},
			{UserID: 2, Value: 40},
		},
		ToUsers: []domain.UserSplit{
			{UserID: 3, Value: 100},
		},
	}
}

func wantEntries() []domain.Entry {
	return []domain.Entry{
		{FromUserID: 1, ToUserID: 3, Amount: 60},
		{FromUserID: 2, ToUserID: 3, Amount: 40},
	}
}

func TestCreate(t *testing.T) {
	testResult := domain.TransactionResult{
		Transaction: domain.Transaction{ID: 7, Description: "dinner", TotalAmount: 100},
		Entries: []domain.Entry{
			{ID: 1, TransactionID: 7, FromUserID: 1, ToUserID: 3, Amount: 60},
			{ID: 2, TransactionID: 7, FromUserID: 2, ToUserID: 3, Amount: 40},
		},
	}

	testCases := []struct {
		name          string
		arg           func() domain.CreateTransactionParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.TransactionResult, err error)
	}{
		{
			name: "ValidationErrorSkipsPersistence",
			arg: func() domain.CreateTransactionParams {
				arg := validParams()
				arg.FromUsers[1].Value = 41

				return arg
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateWithEntries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.TransactionResult, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrFromAmountMismatch)
			},
		},
		{
			name: "RepoError",
			arg:  validParams,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					CreateWithEntries(gomock.Any(), gomock.Eq("dinner"), gomock.Eq(int64(100)), gomock.Eq(wantEntries())).
					Times(1).
					Return(domain.TransactionResult{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.TransactionResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
		{
			name: "OK",
			arg:  validParams,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					CreateWithEntries(gomock.Any(), gomock.Eq("dinner"), gomock.Eq(int64(100)), gomock.Eq(wantEntries())).
					Times(1).
					Return(testResult, nil)
			},
			checkResponse: func(res domain.TransactionResult, err error) {
				require.NoError(t, err)
				require.Equal(t, testResult, res)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			service := New(repo)

			tc.buildStubs(repo)

			res, err := service.Create(context.Background(), tc.arg())
			tc.checkResponse(res, err)
		})
	}
}

func TestUpdate(t *testing.T) {
	testCases := []struct {
		name          string
		arg           func() domain.CreateTransactionParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.TransactionResult, err error)
	}{
		{
			name: "ValidationErrorSkipsPersistence",
			arg: func() domain.CreateTransactionParams {
				arg := validParams()
				arg.ToUsers = nil

				return arg
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Replace(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.TransactionResult, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrEmptyToUsers)
			},
		},
		{
			name: "TransactionNotFound",
			arg:  validParams,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Replace(gomock.Any(), gomock.Eq(int64(42)), gomock.Eq("dinner"), gomock.Eq(int64(100)), gomock.Eq(wantEntries())).
					Times(1).
					Return(domain.TransactionResult{}, domain.ErrTransactionNotFound)
			},
			checkResponse: func(res domain.TransactionResult, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrTransactionNotFound)
			},
		},
		{
			name: "OK",
			arg:  validParams,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Replace(gomock.Any(), gomock.Eq(int64(42)), gomock.Eq("dinner"), gomock.Eq(int64(100)), gomock.Eq(wantEntries())).
					Times(1).
					Return(domain.TransactionResult{Transaction: domain.Transaction{ID: 43}}, nil)
			},
			checkResponse: func(res domain.TransactionResult, err error) {
				require.NoError(t, err)
				require.EqualValues(t, 43, res.Transaction.ID)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			service := New(repo)

			tc.buildStubs(repo)

			res, err := service.Update(context.Background(), 42, tc.arg())
			tc.checkResponse(res, err)
		})
	}
}
