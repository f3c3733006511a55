package payroll

import "testing"

func TestSummaryForKnownMonth(t *testing.T) {
	svc := NewService()

	summary := svc.Summary("February 2026")
	if summary.TotalPayroll != "RM 892,450" {
		t.Errorf("TotalPayroll = %s, want RM 892,450", summary.TotalPayroll)
	}
	if summary.EmployeesPaid != 142 || summary.Pending != 3 {
		t.Errorf("counts = %d paid, %d pending; want 142, 3", summary.EmployeesPaid, summary.Pending)
	}
	if len(summary.RecentRuns) != 3 {
		t.Fatalf("expected 3 recent runs, got %d", len(summary.RecentRuns))
	}
	if summary.RecentRuns[0].Month != "January 2026" {
		t.Errorf("recent runs out of order: %s first", summary.RecentRuns[0].Month)
	}
	if len(summary.Deductions) != 4 {
		t.Errorf("expected 4 deduction lines, got %d", len(summary.Deductions))
	}
}

func TestSummaryFallsBackToLatest(t *testing.T) {
	svc := NewService()

	for _, month := range []string{"", "July 1999"} {
		summary := svc.Summary(month)
		if summary.Month != "February 2026" {
			t.Errorf("Summary(%q).Month = %s, want February 2026", month, summary.Month)
		}
	}
}

func TestMonths(t *testing.T) {
	svc := NewService()

	months := svc.Months()
	if len(months) != 1 || months[0] != "February 2026" {
		t.Errorf("Months() = %v", months)
	}
}
