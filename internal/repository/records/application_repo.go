package records

import (
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/store"
)

// applicationFieldOrder is the schema the applications collection is
// rewritten with. This is the only collection the core writes.
var applicationFieldOrder = []string{"job_id", "candidate_id", "application_date"}

type applicationRepo struct {
	store store.RecordStore
}

func NewApplicationRepository(s store.RecordStore) domain.ApplicationRepository {
	return &applicationRepo{store: s}
}

func (r *applicationRepo) Fetch(ctx context.Context) ([]domain.Application, error) {
	recs, err := r.store.LoadAll(ctx, store.Applications)
	if err != nil {
		return nil, err
	}
	apps := make([]domain.Application, 0, len(recs))
	for _, rec := range recs {
		app, err := applicationFromRecord(rec)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (r *applicationRepo) FetchByCandidate(ctx context.Context, candidateID string) ([]domain.Application, error) {
	apps, err := r.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Application, 0, len(apps))
	for _, app := range apps {
		if app.CandidateID == candidateID {
			matched = append(matched, app)
		}
	}
	return matched, nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, candidateID string) (bool, error) {
	recs, err := r.store.LoadAll(ctx, store.Applications)
	if err != nil {
		return false, err
	}
	for _, rec := range recs {
		if rec["job_id"] == jobID && rec["candidate_id"] == candidateID {
			return true, nil
		}
	}
	return false, nil
}

// Create appends the application to a fresh read of the collection and
// rewrites the whole collection. Callers needing isolation against
// concurrent submissions must serialize around this.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	recs, err := r.store.LoadAll(ctx, store.Applications)
	if err != nil {
		return err
	}
	recs = append(recs, store.Record{
		"job_id":           app.JobID,
		"candidate_id":     app.CandidateID,
		"application_date": app.Date.String(),
	})
	return r.store.SaveAll(ctx, store.Applications, recs, applicationFieldOrder)
}

func applicationFromRecord(rec store.Record) (domain.Application, error) {
	date, err := domain.ParseDate(rec["application_date"])
	if err != nil {
		return domain.Application{}, fmt.Errorf("application %s/%s: %w", rec["job_id"], rec["candidate_id"], err)
	}
	return domain.Application{
		JobID:       rec["job_id"],
		CandidateID: rec["candidate_id"],
		Date:        date,
	}, nil
}
