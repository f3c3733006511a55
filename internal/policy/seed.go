package policy

// seedDocuments returns the built-in policy documents loaded at process
// start. They remain available until an ingestion with a colliding id
// replaces them.
func seedDocuments() []Document {
	return []Document{
		{
			ID:    "expense-policy",
			Title: "Expense Policy",
			Clauses: []Clause{
				{
					ID:     "expense-coworking",
					Text:   "Coworking space fees are reimbursable up to $350 per month when pre-approved by a manager and supported by a receipt.",
					Source: "Expense Policy · Section 4.2 · Workspace Expenses",
					Page:   6,
				},
				{
					ID:     "expense-travel",
					Text:   "Employees must submit travel receipts within 10 business days of the trip for reimbursement processing.",
					Source: "Expense Policy · Section 5.1 · Travel",
					Page:   8,
				},
			},
		},
		{
			ID:    "remote-work-policy",
			Title: "Remote Work Policy",
			Clauses: []Clause{
				{
					ID:     "remote-eligibility",
					Text:   "Remote work is available up to 3 days per week for eligible roles with director approval.",
					Source: "Remote Work Policy · Section 2.1 · Eligibility",
					Page:   2,
				},
				{
					ID:     "remote-equipment",
					Text:   "The company provides a one-time stipend of $500 for home office equipment and ergonomic setup.",
					Source: "Remote Work Policy · Section 3.3 · Equipment",
					Page:   4,
				},
			},
		},
	}
}
