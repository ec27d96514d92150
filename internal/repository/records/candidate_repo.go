package records

import (
	"context"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/store"
)

type candidateRepo struct {
	store store.RecordStore
}

func NewCandidateRepository(s store.RecordStore) domain.CandidateRepository {
	return &candidateRepo{store: s}
}

// Fetch excludes administrators: admin accounts are not candidates for
// display purposes.
func (r *candidateRepo) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	recs, err := r.store.LoadAll(ctx, store.Candidates)
	if err != nil {
		return nil, err
	}
	candidates := make([]domain.Candidate, 0, len(recs))
	for _, rec := range recs {
		c := candidateFromRecord(rec)
		if c.IsAdmin {
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	recs, err := r.store.LoadAll(ctx, store.Candidates)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if rec["candidate_id"] == id {
			c := candidateFromRecord(rec)
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *candidateRepo) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	recs, err := r.store.LoadAll(ctx, store.Candidates)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if rec["email"] == email {
			c := candidateFromRecord(rec)
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func candidateFromRecord(rec store.Record) domain.Candidate {
	return domain.Candidate{
		ID:        rec["candidate_id"],
		Email:     rec["email"],
		FirstName: rec["first_name"],
		LastName:  rec["last_name"],
		// Anything other than "true" (case-insensitive) is not an admin.
		IsAdmin: strings.EqualFold(rec["is_admin"], "true"),
	}
}
