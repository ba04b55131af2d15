package orders

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/evgzln/iiko-transfer/internal/dto"
	"github.com/evgzln/iiko-transfer/pkg/utils"
)

//go:generate mockgen -source=orders.go -destination=orders_mock.go -package=orders

type DispatchService interface {
	Dispatch(ctx context.Context, orderID *int64) (int, error)
}

type ReconcileService interface {
	Reconcile(ctx context.Context) (int, error)
}

type OrderHandler struct {
	dispatchService  DispatchService
	reconcileService ReconcileService
}

func New(dispatchService DispatchService, reconcileService ReconcileService) *OrderHandler {
	return &OrderHandler{
		dispatchService:  dispatchService,
		reconcileService: reconcileService,
	}
}

// Dispatch godoc
//
//	@Summary		Push eligible orders to iiko
//	@Description	Submit pending orders as deliveries. An optional body narrows the run to one order.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DispatchRequest	false	"Optional single order filter"
//	@Success		200		{object}	dto.ProcessedResponse	"Number of orders processed"
//	@Failure		400		{object}	utils.Response			"Malformed body"
//	@Failure		500		{object}	utils.Response			"Dispatch failed"
//	@Router			/api/iiko/orders/dispatch [post]
func (h *OrderHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req dto.DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	processed, err := h.dispatchService.Dispatch(r.Context(), req.OrderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProcessedResponse{Processed: processed})
}

// Reconcile godoc
//
//	@Summary		Reconcile order statuses with iiko
//	@Description	Pull current delivery statuses for recent submissions and apply them locally.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	dto.ProcessedResponse	"Number of submissions processed"
//	@Failure		500	{object}	utils.Response			"Reconciliation failed"
//	@Router			/api/iiko/orders/reconcile [post]
func (h *OrderHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	processed, err := h.reconcileService.Reconcile(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProcessedResponse{Processed: processed})
}
