package records

import (
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/store"
)

type jobRepo struct {
	store store.RecordStore
}

func NewJobRepository(s store.RecordStore) domain.JobRepository {
	return &jobRepo{store: s}
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	recs, err := r.store.LoadAll(ctx, store.Jobs)
	if err != nil {
		return nil, err
	}
	jobs := make([]domain.Job, 0, len(recs))
	for _, rec := range recs {
		job, err := jobFromRecord(rec)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	recs, err := r.store.LoadAll(ctx, store.Jobs)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if rec["job_id"] != id {
			continue
		}
		job, err := jobFromRecord(rec)
		if err != nil {
			return nil, err
		}
		return &job, nil
	}
	return nil, domain.ErrNotFound
}

func jobFromRecord(rec store.Record) (domain.Job, error) {
	deadline, err := domain.ParseDate(rec["deadline"])
	if err != nil {
		return domain.Job{}, fmt.Errorf("job %s: %w", rec["job_id"], err)
	}
	return domain.Job{
		ID:        rec["job_id"],
		CompanyID: rec["company_id"],
		Title:     rec["title"],
		Status:    rec["status"],
		Deadline:  deadline,
	}, nil
}
