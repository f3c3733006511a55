package hr

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// EmployeeRepo stores employee records.
type EmployeeRepo interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id string) (*Employee, error)
	Create(ctx context.Context, employee *Employee) error
	Save(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// DocumentRepo stores compliance documents.
type DocumentRepo interface {
	List(ctx context.Context) ([]ComplianceDocument, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ComplianceDocument, error)
}

// ProfileRepo stores self-service profile data. A nil ProfileRepo in the
// service means the relational store is not configured; lookups then serve
// the static fallback values.
type ProfileRepo interface {
	LeaveBalance(ctx context.Context, email string) (int, error)
	UpdateAddress(ctx context.Context, email string, address Address) error
}

// PromotionRepo stores promotion review requests.
type PromotionRepo interface {
	Upsert(ctx context.Context, email string) (string, error)
}
