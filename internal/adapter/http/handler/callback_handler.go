package handler

import (
	"shop-payment-reconciler/internal/adapter/http/dto"
	"shop-payment-reconciler/internal/core/ports"
	"shop-payment-reconciler/pkg/apperror"
	"shop-payment-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
)

// CallbackHandler handles aggregator payment callbacks.
type CallbackHandler struct {
	reconcileSvc ports.ReconciliationService
}

// NewCallbackHandler creates a new CallbackHandler.
func NewCallbackHandler(reconcileSvc ports.ReconciliationService) *CallbackHandler {
	return &CallbackHandler{reconcileSvc: reconcileSvc}
}

// PayheroCallback handles POST /api/v1/callbacks/payhero.
// Ignored and duplicate callbacks are acknowledged with 200 so the
// aggregator does not redeliver them.
func (h *CallbackHandler) PayheroCallback(c *gin.Context) {
	var req dto.PayheroCallback
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	outcome, err := h.reconcileSvc.Reconcile(c.Request.Context(), ports.CallbackEvent{
		ExternalReference: req.Response.ExternalReference,
		Status:            req.Response.Status,
		Amount:            req.Response.Amount.String(),
		MpesaCode:         req.Response.MpesaReceiptNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CallbackAck{Result: string(outcome)})
}
