package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PayrollSummary returns the payroll dashboard payload for a month, falling
// back to the latest month when none is given.
// GET /api/v1/payroll/summary?month=
func (h *Handler) PayrollSummary(c *gin.Context) {
	summary := h.payroll.Summary(c.Query("month"))
	c.JSON(http.StatusOK, summary)
}

// PayrollMonths lists the months a summary is available for.
// GET /api/v1/payroll/months
func (h *Handler) PayrollMonths(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"months": h.payroll.Months()})
}
