package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verahq/vera-backend/pkg/ratelimiter"
)

// SetupRouter wires the API routes onto a gin engine. limiter may be nil to
// disable rate limiting.
func SetupRouter(h *Handler, limiter ratelimiter.RateLimiter) *gin.Engine {
	r := gin.Default()
	r.Use(RequestIDMiddleware())
	if limiter != nil {
		r.Use(RateLimitMiddleware(limiter))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	{
		policies := apiV1.Group("/policy")
		{
			policies.GET("", h.ListPolicies)
			policies.POST("/ingest", h.IngestPolicies)
			policies.POST("/answer", h.AnswerPolicyQuestion)
		}

		chatGroup := apiV1.Group("/chat")
		{
			chatGroup.GET("", h.ChatStatus)
			chatGroup.POST("", h.Chat)
			chatGroup.POST("/intent", h.ClassifyIntent)
			chatGroup.POST("/prepare-docs", h.PrepareDocuments)
		}

		employees := apiV1.Group("/employees")
		{
			employees.GET("", h.ListEmployees)
			employees.POST("", h.CreateEmployee)
			employees.GET("/:id", h.GetEmployee)
			employees.PATCH("/:id", h.UpdateEmployee)
			employees.DELETE("/:id", h.DeleteEmployee)
		}

		documents := apiV1.Group("/documents")
		{
			documents.GET("", h.ListDocuments)
			documents.GET("/expiring", h.ExpiringDocuments)
			documents.GET("/unverified", h.UnverifiedDocuments)
		}

		profile := apiV1.Group("/profile")
		{
			profile.GET("/leave-balance", h.LeaveBalance)
			profile.POST("/update-address", h.UpdateAddress)
		}

		apiV1.POST("/promotion/request-review", h.RequestPromotionReview)

		payrollGroup := apiV1.Group("/payroll")
		{
			payrollGroup.GET("/summary", h.PayrollSummary)
			payrollGroup.GET("/months", h.PayrollMonths)
		}
	}

	return r
}
