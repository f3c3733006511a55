package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/verahq/vera-backend/internal/hr"
)

// ListEmployees returns all employees sorted by last name.
// GET /api/v1/employees
func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.hr.ListEmployees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// GetEmployee returns one employee record.
// GET /api/v1/employees/:id
func (h *Handler) GetEmployee(c *gin.Context) {
	employee, err := h.hr.GetEmployee(c.Request.Context(), c.Param("id"))
	if errors.Is(err, hr.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// CreateEmployee stores a new employee record.
// POST /api/v1/employees
func (h *Handler) CreateEmployee(c *gin.Context) {
	var employee hr.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if employee.FirstName == "" || employee.LastName == "" || employee.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstName, lastName and email are required"})
		return
	}

	if err := h.hr.CreateEmployee(c.Request.Context(), &employee); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee applies a partial update.
// PATCH /api/v1/employees/:id
func (h *Handler) UpdateEmployee(c *gin.Context) {
	var update hr.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.hr.UpdateEmployee(c.Request.Context(), c.Param("id"), update)
	if errors.Is(err, hr.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee removes an employee record.
// DELETE /api/v1/employees/:id
func (h *Handler) DeleteEmployee(c *gin.Context) {
	err := h.hr.DeleteEmployee(c.Request.Context(), c.Param("id"))
	if errors.Is(err, hr.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListDocuments returns compliance documents joined with their employees.
// GET /api/v1/documents
func (h *Handler) ListDocuments(c *gin.Context) {
	docs, err := h.hr.DocumentsWithEmployees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// ExpiringDocuments returns documents expiring within the requested window.
// GET /api/v1/documents/expiring?days=30
func (h *Handler) ExpiringDocuments(c *gin.Context) {
	days := hr.DefaultExpiryWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	docs, err := h.hr.ExpiringDocuments(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs, "withinDays": days})
}

// UnverifiedDocuments returns documents awaiting verification.
// GET /api/v1/documents/unverified
func (h *Handler) UnverifiedDocuments(c *gin.Context) {
	docs, err := h.hr.UnverifiedDocuments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}
