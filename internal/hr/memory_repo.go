package hr

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryEmployeeRepo is the in-memory employee repository used when MySQL is
// not configured. It starts from the demo seed so the console is populated
// on first boot.
type MemoryEmployeeRepo struct {
	mu        sync.RWMutex
	employees []Employee
	created   int // monotonic counter for generated ids
}

func NewMemoryEmployeeRepo() *MemoryEmployeeRepo {
	employees := seedEmployees()
	return &MemoryEmployeeRepo{employees: employees, created: len(employees)}
}

func (r *MemoryEmployeeRepo) List(ctx context.Context) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, len(r.employees))
	copy(out, r.employees)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastName < out[j].LastName
	})
	return out, nil
}

func (r *MemoryEmployeeRepo) Get(ctx context.Context, id string) (*Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, employee := range r.employees {
		if employee.ID == id {
			found := employee
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryEmployeeRepo) Create(ctx context.Context, employee *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if employee.ID == "" {
		r.created++
		employee.ID = fmt.Sprintf("emp-%03d", r.created)
	}
	r.employees = append(r.employees, *employee)
	return nil
}

func (r *MemoryEmployeeRepo) Save(ctx context.Context, employee *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID == employee.ID {
			r.employees[i] = *employee
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryEmployeeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryEmployeeRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.employees)), nil
}

// MemoryDocumentRepo is the in-memory compliance document repository.
type MemoryDocumentRepo struct {
	mu   sync.RWMutex
	docs []ComplianceDocument
}

func NewMemoryDocumentRepo() *MemoryDocumentRepo {
	return &MemoryDocumentRepo{docs: seedDocuments()}
}

func (r *MemoryDocumentRepo) List(ctx context.Context) ([]ComplianceDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ComplianceDocument, len(r.docs))
	copy(out, r.docs)
	return out, nil
}

func (r *MemoryDocumentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]ComplianceDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []ComplianceDocument
	for _, doc := range r.docs {
		if doc.EmployeeID == employeeID {
			out = append(out, doc)
		}
	}
	return out, nil
}
