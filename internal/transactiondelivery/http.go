// Package transactiondelivery manages delivery layer of transactions.
package transactiondelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-split/split-ledger/internal/domain"
	"github.com/go-split/split-ledger/pkg/errorspkg"
	"github.com/go-split/split-ledger/pkg/jsonresponse"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.TransactionResult, error)
	Update(ctx context.Context, id int64, arg domain.CreateTransactionParams) (domain.TransactionResult, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type userSplit struct {
	UserID int64 `json:"user_id" binding:"required,min=1"`
	Value  int64 `json:"value" binding:"omitempty,min=1"`
}

type request struct {
	Description     string      `json:"description" binding:"required"`
	TotalAmount     int64       `json:"total_amount" binding:"required,min=1"`
	SplitType       string      `json:"split_type" binding:"required,splittype"`
	ComputationType string      `json:"computation_type" binding:"required,computation"`
	FromUsers       []userSplit `json:"from_users" binding:"required,min=1,dive"`
	ToUsers         []userSplit `json:"to_users" binding:"required,min=1,dive"`
}

type uriRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type data struct {
	Transaction domain.TransactionResult `json:"transaction"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// Create handles http request to create a transaction with its ledger entries.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	result, err := h.service.Create(ctx, toParams(req))
	if err != nil {
		l.Info().Err(err).Send()
		respondError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}

// Update handles http request to void a transaction and create its replacement.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	result, err := h.service.Update(ctx, uri.ID, toParams(req))
	if err != nil {
		l.Info().Err(err).Send()
		respondError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}

func toParams(req request) domain.CreateTransactionParams {
	arg := domain.CreateTransactionParams{
		Description:     req.Description,
		TotalAmount:     req.TotalAmount,
		SplitType:       domain.SplitType(req.SplitType),
		ComputationType: domain.ComputationType(req.ComputationType),
		FromUsers:       make([]domain.UserSplit, len(req.FromUsers)),
		ToUsers:         make([]domain.UserSplit, len(req.ToUsers)),
	}

	for i, u := range req.FromUsers {
		arg.FromUsers[i] = domain.UserSplit{UserID: u.UserID, Value: u.Value}
	}

	for i, u := range req.ToUsers {
		arg.ToUsers[i] = domain.UserSplit{UserID: u.UserID, Value: u.Value}
	}

	return arg
}

func respondError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrTransactionNotFound:
		gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))

		return
	case
		domain.ErrTransactionAlreadyVoided,
		domain.ErrNonPositiveTotal,
		domain.ErrEmptyFromUsers,
		domain.ErrEmptyToUsers,
		domain.ErrNonPositiveSplitValue,
		domain.ErrFromAmountMismatch,
		domain.ErrToAmountMismatch,
		domain.ErrFromPercentageSum,
		domain.ErrToPercentageSum,
		domain.ErrInvalidSplitType,
		domain.ErrInvalidComputationType,
		domain.ErrUserNotFound:
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
}
