package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type candidateUsecase struct {
	candidateRepo   domain.CandidateRepository
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	companyRepo     domain.CompanyRepository
}

func NewCandidateUsecase(
	candidateRepo domain.CandidateRepository,
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	companyRepo domain.CompanyRepository,
) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo:   candidateRepo,
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		companyRepo:     companyRepo,
	}
}

func (uc *candidateUsecase) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	return uc.candidateRepo.Fetch(ctx)
}

func (uc *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	return uc.candidateRepo.GetByID(ctx, id)
}

// ListApplications joins the candidate's applications to their jobs and
// companies. An application whose job no longer resolves is dropped
// entirely rather than emitted as a partial row; a missing company only
// degrades the company name to "N/A".
func (uc *candidateUsecase) ListApplications(ctx context.Context, candidateID string) ([]domain.ApplicationSummary, error) {
	apps, err := uc.applicationRepo.FetchByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	jobs, err := uc.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := uc.companyRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	jobByID := make(map[string]domain.Job, len(jobs))
	for _, job := range jobs {
		jobByID[job.ID] = job
	}
	companyByID := make(map[string]domain.Company, len(companies))
	for _, company := range companies {
		companyByID[company.ID] = company
	}

	summaries := make([]domain.ApplicationSummary, 0, len(apps))
	for _, app := range apps {
		job, ok := jobByID[app.JobID]
		if !ok {
			continue
		}
		name := domain.CompanyNameUnknown
		if company, ok := companyByID[job.CompanyID]; ok {
			name = company.Name
		}
		summaries = append(summaries, domain.ApplicationSummary{
			JobTitle:        job.Title,
			CompanyName:     name,
			ApplicationDate: app.Date,
		})
	}
	return summaries, nil
}
