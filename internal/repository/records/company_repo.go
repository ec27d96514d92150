// Package records implements the typed repositories on top of the
// generic record store. String-typed booleans and dates are parsed here;
// raw field values never reach the business layer.
package records

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/store"
)

type companyRepo struct {
	store store.RecordStore
}

func NewCompanyRepository(s store.RecordStore) domain.CompanyRepository {
	return &companyRepo{store: s}
}

func (r *companyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	recs, err := r.store.LoadAll(ctx, store.Companies)
	if err != nil {
		return nil, err
	}
	companies := make([]domain.Company, 0, len(recs))
	for _, rec := range recs {
		companies = append(companies, domain.Company{
			ID:       rec["company_id"],
			Name:     rec["name"],
			Location: rec["location"],
		})
	}
	return companies, nil
}
