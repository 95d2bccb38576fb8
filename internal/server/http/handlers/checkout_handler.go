package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gpsolutions/internal/server/http/dto"
)

// CheckoutHandler opens hosted payment sessions.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Checkout handles POST /api/checkout. Without line items the session's cart is charged.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	var req dto.CheckoutRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid data")
			return
		}
	}

	ctx := c.Request.Context()
	sessionID := CurrentSessionID(c)
	var url string
	if len(req.LineItems) > 0 {
		url, err = h.facade.CheckoutItems(ctx, sessionID, fromLineItemDTOs(req.LineItems))
	} else {
		url, err = h.facade.Checkout(ctx, sessionID)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutResponse{URL: url})
}

// StripeSession handles POST /api/stripe-session; line items are mandatory.
func (h *CheckoutHandler) StripeSession(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.LineItems) == 0 {
		respondError(c, http.StatusBadRequest, "No line items provided")
		return
	}

	url, err := h.facade.CheckoutItems(c.Request.Context(), CurrentSessionID(c), fromLineItemDTOs(req.LineItems))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutResponse{URL: url})
}
