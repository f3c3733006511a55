package hr

import (
	"context"
	"fmt"
	"time"

	"github.com/verahq/vera-backend/pkg/logger"
)

// DefaultExpiryWindowDays is the dashboard's default look-ahead for expiring
// compliance documents.
const DefaultExpiryWindowDays = 30

// EmployeeUpdate carries the optional fields of a partial employee update.
type EmployeeUpdate struct {
	FirstName  *string         `json:"firstName"`
	LastName   *string         `json:"lastName"`
	Email      *string         `json:"email"`
	Role       *string         `json:"role"`
	Department *string         `json:"department"`
	Status     *EmployeeStatus `json:"status"`
	StartDate  *string         `json:"startDate"`
	Phone      *string         `json:"phone"`
	Location   *string         `json:"location"`
}

// Service exposes employee and compliance document operations over whichever
// repositories the composition root wired in.
type Service struct {
	employees EmployeeRepo
	documents DocumentRepo
	log       *logger.Logger
}

// NewService creates the HR service.
func NewService(employees EmployeeRepo, documents DocumentRepo, log *logger.Logger) *Service {
	return &Service{employees: employees, documents: documents, log: log}
}

// ListEmployees returns all employees sorted by last name.
func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.employees.List(ctx)
}

// GetEmployee returns a single employee or ErrNotFound.
func (s *Service) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	return s.employees.Get(ctx, id)
}

// CreateEmployee stores a new employee, assigning a sequential id when none
// is provided.
func (s *Service) CreateEmployee(ctx context.Context, employee *Employee) error {
	if employee.Status == "" {
		employee.Status = StatusActive
	}
	return s.employees.Create(ctx, employee)
}

// UpdateEmployee applies a partial update and returns the updated record.
func (s *Service) UpdateEmployee(ctx context.Context, id string, update EmployeeUpdate) (*Employee, error) {
	employee, err := s.employees.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		employee.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		employee.LastName = *update.LastName
	}
	if update.Email != nil {
		employee.Email = *update.Email
	}
	if update.Role != nil {
		employee.Role = *update.Role
	}
	if update.Department != nil {
		employee.Department = *update.Department
	}
	if update.Status != nil {
		employee.Status = *update.Status
	}
	if update.StartDate != nil {
		employee.StartDate = *update.StartDate
	}
	if update.Phone != nil {
		employee.Phone = *update.Phone
	}
	if update.Location != nil {
		employee.Location = *update.Location
	}

	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes an employee record.
func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	return s.employees.Delete(ctx, id)
}

// DocumentsWithEmployees returns every compliance document joined with its
// owning employee.
func (s *Service) DocumentsWithEmployees(ctx context.Context) ([]DocumentWithEmployee, error) {
	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, docs)
}

// ExpiringDocuments returns documents whose expiry date falls within the
// given number of days from now. Documents without an expiry never match.
func (s *Service) ExpiringDocuments(ctx context.Context, withinDays int) ([]DocumentWithEmployee, error) {
	if withinDays <= 0 {
		withinDays = DefaultExpiryWindowDays
	}
	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cutoff := now.Add(time.Duration(withinDays) * 24 * time.Hour)
	var expiring []ComplianceDocument
	for _, doc := range docs {
		if doc.ExpiryDate == nil {
			continue
		}
		if !doc.ExpiryDate.Before(now) && !doc.ExpiryDate.After(cutoff) {
			expiring = append(expiring, doc)
		}
	}
	return s.join(ctx, expiring)
}

// UnverifiedDocuments returns documents still awaiting verification.
func (s *Service) UnverifiedDocuments(ctx context.Context) ([]DocumentWithEmployee, error) {
	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, err
	}

	var unverified []ComplianceDocument
	for _, doc := range docs {
		if !doc.IsVerified {
			unverified = append(unverified, doc)
		}
	}
	return s.join(ctx, unverified)
}

func (s *Service) join(ctx context.Context, docs []ComplianceDocument) ([]DocumentWithEmployee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Employee, len(employees))
	for _, employee := range employees {
		byID[employee.ID] = employee
	}

	out := make([]DocumentWithEmployee, 0, len(docs))
	for _, doc := range docs {
		employee, ok := byID[doc.EmployeeID]
		if !ok {
			return nil, fmt.Errorf("document %s references unknown employee %s", doc.ID, doc.EmployeeID)
		}
		out = append(out, DocumentWithEmployee{ComplianceDocument: doc, Employee: employee})
	}
	return out, nil
}
