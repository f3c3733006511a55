package hr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the HR tables and seeds them when empty.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Employee{}, &ComplianceDocument{}, &Profile{}, &PromotionRequest{}); err != nil {
		return fmt.Errorf("hr auto-migration failed: %w", err)
	}

	var count int64
	if err := db.Model(&Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(seedEmployees()).Error; err != nil {
			return fmt.Errorf("employee seed failed: %w", err)
		}
		if err := db.Create(seedDocuments()).Error; err != nil {
			return fmt.Errorf("document seed failed: %w", err)
		}
	}
	return nil
}

// GormEmployeeRepo is the MySQL-backed employee repository.
type GormEmployeeRepo struct {
	db *gorm.DB
}

func NewGormEmployeeRepo(db *gorm.DB) *GormEmployeeRepo {
	return &GormEmployeeRepo{db: db}
}

func (r *GormEmployeeRepo) List(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).Order("last_name").Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepo) Get(ctx context.Context, id string) (*Employee, error) {
	var employee Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepo) Create(ctx context.Context, employee *Employee) error {
	if employee.ID == "" {
		count, err := r.Count(ctx)
		if err != nil {
			return err
		}
		employee.ID = fmt.Sprintf("emp-%03d", count+1)
	}
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *GormEmployeeRepo) Save(ctx context.Context, employee *Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *GormEmployeeRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormEmployeeRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&count).Error
	return count, err
}

// GormDocumentRepo is the MySQL-backed compliance document repository.
type GormDocumentRepo struct {
	db *gorm.DB
}

func NewGormDocumentRepo(db *gorm.DB) *GormDocumentRepo {
	return &GormDocumentRepo{db: db}
}

func (r *GormDocumentRepo) List(ctx context.Context) ([]ComplianceDocument, error) {
	var docs []ComplianceDocument
	err := r.db.WithContext(ctx).Order("created_at").Find(&docs).Error
	return docs, err
}

func (r *GormDocumentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]ComplianceDocument, error) {
	var docs []ComplianceDocument
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).Order("created_at").Find(&docs).Error
	return docs, err
}

// GormProfileRepo is the MySQL-backed profile repository.
type GormProfileRepo struct {
	db *gorm.DB
}

func NewGormProfileRepo(db *gorm.DB) *GormProfileRepo {
	return &GormProfileRepo{db: db}
}

func (r *GormProfileRepo) LeaveBalance(ctx context.Context, email string) (int, error) {
	var profile Profile
	err := r.db.WithContext(ctx).First(&profile, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return profile.LeaveBalance, nil
}

func (r *GormProfileRepo) UpdateAddress(ctx context.Context, email string, address Address) error {
	res := r.db.WithContext(ctx).Model(&Profile{}).Where("email = ?", email).Updates(map[string]interface{}{
		"address_line1": address.Line1,
		"address_line2": address.Line2,
		"city":          address.City,
		"state":         address.State,
		"postal_code":   address.PostalCode,
		"country":       address.Country,
		"updated_at":    time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GormPromotionRepo is the MySQL-backed promotion request repository.
type GormPromotionRepo struct {
	db *gorm.DB
}

func NewGormPromotionRepo(db *gorm.DB) *GormPromotionRepo {
	return &GormPromotionRepo{db: db}
}

func (r *GormPromotionRepo) Upsert(ctx context.Context, email string) (string, error) {
	req := PromotionRequest{Email: email, Status: "pending_review", UpdatedAt: time.Now()}
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Assign(map[string]interface{}{"status": "pending_review", "updated_at": time.Now()}).
		FirstOrCreate(&req).Error
	if err != nil {
		return "", err
	}
	return req.Status, nil
}
