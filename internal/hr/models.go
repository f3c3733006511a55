package hr

import (
	"time"

	"gorm.io/datatypes"
)

// EmployeeStatus is the lifecycle state of an employee record.
type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "active"
	StatusOnLeave    EmployeeStatus = "on_leave"
	StatusTerminated EmployeeStatus = "terminated"
	StatusProbation  EmployeeStatus = "probation"
)

// DocType classifies a compliance document.
type DocType string

const (
	DocTypeMyKad       DocType = "mykad"
	DocTypePassport    DocType = "passport"
	DocTypeVisa        DocType = "visa"
	DocTypeCertificate DocType = "certificate"
)

// Employee is a staff record in the console.
type Employee struct {
	ID         string         `gorm:"primaryKey;size:32" json:"id"`
	FirstName  string         `gorm:"size:255;not null" json:"firstName"`
	LastName   string         `gorm:"size:255;not null;index" json:"lastName"`
	Email      string         `gorm:"uniqueIndex;not null" json:"email"`
	Role       string         `gorm:"size:255" json:"role"`
	Department string         `gorm:"size:64" json:"department"`
	Status     EmployeeStatus `gorm:"type:varchar(20);default:'active';not null" json:"status"`
	StartDate  string         `gorm:"size:10" json:"startDate"`
	AvatarURL  string         `json:"avatarUrl,omitempty"`
	Phone      string         `gorm:"size:32" json:"phone,omitempty"`
	Location   string         `gorm:"size:255" json:"location,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// ComplianceDocument is an identity or certification document attached to an
// employee, tracked for expiry and verification.
type ComplianceDocument struct {
	ID             string         `gorm:"primaryKey;size:32" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	EmployeeID     string         `gorm:"size:32;index;not null" json:"employee_id"`
	FileURL        string         `json:"file_url"`
	DocType        DocType        `gorm:"type:varchar(20);not null" json:"doc_type"`
	DocNumber      *string        `json:"doc_number"`
	ExpiryDate     *time.Time     `json:"expiry_date"`
	IssuingCountry string         `gorm:"size:3" json:"issuing_country"`
	IsVerified     bool           `json:"is_verified"`
	OCRData        datatypes.JSON `json:"ocr_data"`
}

// DocumentWithEmployee joins a compliance document with its owner for the
// dashboard views.
type DocumentWithEmployee struct {
	ComplianceDocument
	Employee Employee `json:"employee"`
}

// Profile carries the self-service fields the chat assistant can read and
// update.
type Profile struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	LeaveBalance int       `gorm:"default:12" json:"leaveBalance"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postalCode"`
	Country      string    `json:"country"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Address is the payload of a profile address update.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PromotionRequest tracks a review request raised from the assistant.
type PromotionRequest struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Status    string    `gorm:"size:32;default:'pending_review'" json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Employee) TableName() string           { return "employees" }
func (ComplianceDocument) TableName() string { return "compliance_documents" }
func (Profile) TableName() string            { return "profiles" }
func (PromotionRequest) TableName() string   { return "promotion_requests" }
