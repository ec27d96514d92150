package domain

import "context"

// CompanyNameUnknown is the display sentinel for a job whose company_id
// does not resolve to an existing company.
const CompanyNameUnknown = "N/A"

type Company struct {
	ID       string `json:"company_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type CompanyRepository interface {
	Fetch(ctx context.Context) ([]Company, error)
}
