package hr

import (
	"time"

	"gorm.io/datatypes"
)

func strPtr(s string) *string { return &s }

func datePtr(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

func timestamp(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// seedEmployees returns the demo staff records loaded when the store is
// empty.
func seedEmployees() []Employee {
	return []Employee{
		{ID: "emp-001", FirstName: "Ahmad", LastName: "Ibrahim", Email: "ahmad.ibrahim@company.com", Role: "Senior Developer", Department: "Engineering", Status: StatusActive, StartDate: "2024-01-15", Phone: "+60 12-345 6789", Location: "Kuala Lumpur"},
		{ID: "emp-002", FirstName: "Priya", LastName: "Sharma", Email: "priya.sharma@company.com", Role: "Financial Analyst", Department: "Finance", Status: StatusActive, StartDate: "2024-02-20", Phone: "+60 12-987 6543", Location: "Kuala Lumpur"},
		{ID: "emp-003", FirstName: "Wei Ming", LastName: "Tan", Email: "weiming.tan@company.com", Role: "Marketing Manager", Department: "Marketing", Status: StatusActive, StartDate: "2024-03-10", Phone: "+60 11-222 3333", Location: "Petaling Jaya"},
		{ID: "emp-004", FirstName: "John", LastName: "Smith", Email: "john.smith@company.com", Role: "Tech Lead", Department: "Engineering", Status: StatusActive, StartDate: "2024-04-05", Phone: "+60 17-888 9999", Location: "Kuala Lumpur"},
		{ID: "emp-005", FirstName: "Nurul", LastName: "Aisyah", Email: "nurul.aisyah@company.com", Role: "HR Executive", Department: "Human Resources", Status: StatusActive, StartDate: "2024-05-12", Phone: "+60 19-555 4444", Location: "Cyberjaya"},
		{ID: "emp-006", FirstName: "Raj", LastName: "Kumar", Email: "raj.kumar@company.com", Role: "Product Manager", Department: "Product", Status: StatusOnLeave, StartDate: "2023-08-01", Phone: "+60 16-111 2222", Location: "Kuala Lumpur"},
		{ID: "emp-007", FirstName: "Sarah", LastName: "Lee", Email: "sarah.lee@company.com", Role: "UX Designer", Department: "Design", Status: StatusProbation, StartDate: "2025-01-10", Phone: "+60 18-777 6666", Location: "Bangsar"},
	}
}

// seedDocuments returns the demo compliance documents, including a passport
// and a work visa that expire soon so the dashboard alerts have data.
func seedDocuments() []ComplianceDocument {
	return []ComplianceDocument{
		{
			ID: "doc-001", CreatedAt: timestamp("2024-01-15T08:30:00Z"), EmployeeID: "emp-001",
			FileURL: "/mock/mykad-ahmad.pdf", DocType: DocTypeMyKad, DocNumber: strPtr("880515-14-5678"),
			IssuingCountry: "MYS", IsVerified: true,
			OCRData: datatypes.JSON(`{"address":"123 Jalan Bukit Bintang, 55100 Kuala Lumpur","race":"Malay","religion":"Islam"}`),
		},
		{
			ID: "doc-002", CreatedAt: timestamp("2024-02-20T10:00:00Z"), EmployeeID: "emp-002",
			FileURL: "/mock/passport-priya.pdf", DocType: DocTypePassport, DocNumber: strPtr("K1234567"),
			ExpiryDate: datePtr("2025-03-15"), IssuingCountry: "IND", IsVerified: true,
			OCRData: datatypes.JSON(`{"birthplace":"Mumbai, India","father_name":"Raj Sharma"}`),
		},
		{
			ID: "doc-003", CreatedAt: timestamp("2024-02-21T09:00:00Z"), EmployeeID: "emp-002",
			FileURL: "/mock/visa-priya.pdf", DocType: DocTypeVisa, DocNumber: strPtr("V-2024-98765"),
			ExpiryDate: datePtr("2025-03-01"), IssuingCountry: "MYS", IsVerified: true,
			OCRData: datatypes.JSON(`{"visa_type":"Employment Pass","employer":"TechCorp Sdn Bhd"}`),
		},
		{
			ID: "doc-004", CreatedAt: timestamp("2024-03-10T10:30:00Z"), EmployeeID: "emp-003",
			FileURL: "/mock/mykad-weiming.pdf", DocType: DocTypeMyKad, DocNumber: strPtr("900822-08-1234"),
			IssuingCountry: "MYS", IsVerified: false,
			OCRData: datatypes.JSON(`{"address":"45 Jalan SS2/55, 47300 Petaling Jaya, Selangor","race":"Chinese"}`),
		},
		{
			ID: "doc-005", CreatedAt: timestamp("2024-04-05T11:30:00Z"), EmployeeID: "emp-004",
			FileURL: "/mock/passport-john.pdf", DocType: DocTypePassport, DocNumber: strPtr("567890123"),
			ExpiryDate: datePtr("2028-06-20"), IssuingCountry: "USA", IsVerified: true,
			OCRData: datatypes.JSON(`{"birthplace":"California, USA"}`),
		},
		{
			ID: "doc-006", CreatedAt: timestamp("2024-04-06T08:00:00Z"), EmployeeID: "emp-004",
			FileURL: "/mock/visa-john.pdf", DocType: DocTypeVisa, DocNumber: strPtr("V-2024-11111"),
			ExpiryDate: datePtr("2026-04-05"), IssuingCountry: "MYS", IsVerified: true,
			OCRData: datatypes.JSON(`{"visa_type":"Employment Pass","employer":"TechCorp Sdn Bhd"}`),
		},
		{
			ID: "doc-007", CreatedAt: timestamp("2024-05-12T14:30:00Z"), EmployeeID: "emp-005",
			FileURL: "/mock/mykad-nurul.pdf", DocType: DocTypeMyKad, DocNumber: strPtr("950310-14-9876"),
			IssuingCountry: "MYS", IsVerified: true,
			OCRData: datatypes.JSON(`{"address":"78 Jalan Ampang, 50450 Kuala Lumpur","race":"Malay","religion":"Islam"}`),
		},
		{
			ID: "doc-008", CreatedAt: timestamp("2024-05-13T09:00:00Z"), EmployeeID: "emp-005",
			FileURL: "/mock/cert-nurul.pdf", DocType: DocTypeCertificate, DocNumber: strPtr("HRDF-2024-001"),
			ExpiryDate: datePtr("2025-05-13"), IssuingCountry: "MYS", IsVerified: false,
			OCRData: datatypes.JSON(`{"certificate_name":"HRDF Certified Trainer","issuing_body":"Human Resources Development Fund"}`),
		},
	}
}
