// Package balancedelivery manages delivery layer of balances and settlement.
package balancedelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-split/split-ledger/internal/domain"
	"github.com/go-split/split-ledger/pkg/errorspkg"
	"github.com/go-split/split-ledger/pkg/jsonresponse"
)

// Service provides the balance view interface needed by balance delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package balancedelivery
type Service interface {
	List(ctx context.Context, userID int64) ([]domain.Balance, error)
}

// Clearer provides the settlement interface needed by balance delivery layer.
type Clearer interface {
	Clear(ctx context.Context, userID int64) error
}

// Handler facilitates balance delivery layer logic.
type Handler struct {
	service Service
	clearer Clearer
}

// NewHandler returns balance handler.
func NewHandler(bs Service, sc Clearer) *Handler {
	return &Handler{
		service: bs,
		clearer: sc,
	}
}

type uriRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type data struct {
	Balances []domain.Balance `json:"balances"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// List handles http request to get the net balances of a user.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	balances, err := h.service.List(ctx, uri.ID)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{balances}})
}

// Clear handles http request to settle all balances of a user.
func (h *Handler) Clear(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	if err := h.clearer.Clear(ctx, uri.ID); err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, gin.H{})
}
