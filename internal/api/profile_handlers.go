package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verahq/vera-backend/internal/hr"
)

// LeaveBalance returns the leave balance for a profile email.
// GET /api/v1/profile/leave-balance?email=
func (h *Handler) LeaveBalance(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email"})
		return
	}

	balance, source := h.profiles.LeaveBalance(c.Request.Context(), email)
	c.JSON(http.StatusOK, gin.H{"leaveBalance": balance, "source": source})
}

// UpdateAddressRequest is the body of an address update.
type UpdateAddressRequest struct {
	Email   string      `json:"email"`
	Address *hr.Address `json:"address"`
}

// UpdateAddress persists a new address for the profile.
// POST /api/v1/profile/update-address
func (h *Handler) UpdateAddress(c *gin.Context) {
	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Address == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or address"})
		return
	}

	status, source, err := h.profiles.UpdateAddress(c.Request.Context(), req.Email, *req.Address)
	if err != nil {
		h.log.WithError(err).Error("address update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
		return
	}

	resp := gin.H{"status": status}
	if source == hr.SourceFallback {
		resp["source"] = source
	}
	c.JSON(http.StatusOK, resp)
}

// RequestPromotionReview records a promotion review request.
// POST /api/v1/promotion/request-review
func (h *Handler) RequestPromotionReview(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email"})
		return
	}

	status, source, err := h.profiles.RequestPromotionReview(c.Request.Context(), req.Email)
	if err != nil {
		h.log.WithError(err).Error("promotion request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request review"})
		return
	}

	resp := gin.H{"status": status}
	if source == hr.SourceFallback {
		resp["source"] = source
	}
	c.JSON(http.StatusOK, resp)
}
