package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/denisemathewspdf/tech-with-denise-sub000/internal/app_errors"
	"github.com/denisemathewspdf/tech-with-denise-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

type CheckoutService interface {
	BuildCheckoutURL(tier string, selectedModuleID int) (string, error)
}

type CheckoutHandler struct {
	log     logger.Log
	service CheckoutService
}

func NewCheckoutHandler(log logger.Log, s CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		log:     log,
		service: s,
	}
}

// Redirect hands the browser to the external payment processor. 303 so the
// browser re-issues a GET against the payment link regardless of how the
// client got here.
func (h *CheckoutHandler) Redirect(c *gin.Context) {
	tier := c.Query("tier")
	if tier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tier is required"})
		return
	}

	moduleID := 0
	if raw := c.Query("module_id"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
			return
		}
		moduleID = v
	}

	target, err := h.service.BuildCheckoutURL(tier, moduleID)
	if err != nil {
		if errors.Is(err, app_errors.ErrUnknownTier) {
			c.JSON(http.StatusBadRequest, gin.H{"error": app_errors.ErrUnknownTier.Error()})
			return
		}
		h.log.ErrorErr("checkout redirect failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build checkout url"})
		return
	}

	c.Redirect(http.StatusSeeOther, target)
}

// Success and Cancel are the static return pages the processor navigates
// back to. Neither verifies that a payment happened; rendering is their only
// side effect.
func (h *CheckoutHandler) Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Thanks for your purchase! Your modules unlock shortly.",
	})
}

func (h *CheckoutHandler) Cancel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "cancelled",
		"message": "Checkout cancelled. Your progress is untouched.",
	})
}
