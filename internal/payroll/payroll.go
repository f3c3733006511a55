// Package payroll serves the payroll dashboard figures. The numbers are a
// static monthly snapshot until the payroll engine integration lands.
package payroll

import "sync"

// Run is one finalized or in-flight payroll cycle.
type Run struct {
	Month     string `json:"month"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
	Employees int    `json:"employees"`
}

// Deduction is a statutory deduction line for the current month.
type Deduction struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Rate   string `json:"rate"`
}

// Summary is the full dashboard payload for one month.
type Summary struct {
	Month         string      `json:"month"`
	TotalPayroll  string      `json:"totalPayroll"`
	EmployeesPaid int         `json:"employeesPaid"`
	Pending       int         `json:"pending"`
	NextPayDate   string      `json:"nextPayDate"`
	RecentRuns    []Run       `json:"recentRuns"`
	Deductions    []Deduction `json:"deductions"`
}

// Service hands out payroll summaries keyed by month label.
type Service struct {
	mu        sync.RWMutex
	summaries []Summary
}

// NewService loads the demo payroll dataset.
func NewService() *Service {
	return &Service{summaries: seedSummaries()}
}

// Summary returns the payroll summary for the given month label. An empty or
// unknown month falls back to the latest available summary.
func (s *Service) Summary(month string) Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, summary := range s.summaries {
		if summary.Month == month {
			return summary
		}
	}
	return s.summaries[0]
}

// Months lists the month labels a summary exists for, newest first.
func (s *Service) Months() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	months := make([]string, len(s.summaries))
	for i, summary := range s.summaries {
		months[i] = summary.Month
	}
	return months
}

func seedSummaries() []Summary {
	return []Summary{
		{
			Month:         "February 2026",
			TotalPayroll:  "RM 892,450",
			EmployeesPaid: 142,
			Pending:       3,
			NextPayDate:   "Feb 28",
			RecentRuns: []Run{
				{Month: "January 2026", Amount: "RM 848,200", Status: "completed", Employees: 141},
				{Month: "December 2025", Amount: "RM 895,600", Status: "completed", Employees: 140},
				{Month: "November 2025", Amount: "RM 842,100", Status: "completed", Employees: 140},
			},
			Deductions: []Deduction{
				{Name: "EPF Employee", Amount: "RM 98,170", Rate: "11%"},
				{Name: "EPF Employer", Amount: "RM 116,019", Rate: "13%"},
				{Name: "SOCSO", Amount: "RM 17,849", Rate: "2%"},
				{Name: "PCB", Amount: "RM 45,500", Rate: "~5%"},
			},
		},
	}
}
