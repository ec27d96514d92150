package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type jobUsecase struct {
	jobRepo         domain.JobRepository
	companyRepo     domain.CompanyRepository
	applicationRepo domain.ApplicationRepository
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	companyRepo domain.CompanyRepository,
	applicationRepo domain.ApplicationRepository,
) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:         jobRepo,
		companyRepo:     companyRepo,
		applicationRepo: applicationRepo,
	}
}

// ListOpenJobs returns open jobs with company name and applicant count.
// Output order follows storage order; sorting is a presentation concern.
func (uc *jobUsecase) ListOpenJobs(ctx context.Context) ([]domain.JobWithDetails, error) {
	return uc.listWithDetails(ctx, true)
}

// ListAllJobs is the administrative view: every job regardless of status.
func (uc *jobUsecase) ListAllJobs(ctx context.Context) ([]domain.JobWithDetails, error) {
	return uc.listWithDetails(ctx, false)
}

func (uc *jobUsecase) listWithDetails(ctx context.Context, openOnly bool) ([]domain.JobWithDetails, error) {
	jobs, err := uc.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := uc.companyByID(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := uc.applicationRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	// One pass over applications instead of a scan per job.
	counts := make(map[string]int, len(jobs))
	for _, app := range apps {
		counts[app.JobID]++
	}

	details := make([]domain.JobWithDetails, 0, len(jobs))
	for _, job := range jobs {
		if openOnly && job.Status != domain.JobStatusOpen {
			continue
		}
		name := domain.CompanyNameUnknown
		if company, ok := companies[job.CompanyID]; ok {
			name = company.Name
		}
		details = append(details, domain.JobWithDetails{
			Job:            job,
			CompanyName:    name,
			ApplicantCount: counts[job.ID],
		})
	}
	return details, nil
}

// GetJobDetails resolves one job and joins its company's name and
// location, each degrading to "N/A" when the company does not resolve.
func (uc *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.JobDetail, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	companies, err := uc.companyByID(ctx)
	if err != nil {
		return nil, err
	}
	detail := &domain.JobDetail{
		Job:             *job,
		CompanyName:     domain.CompanyNameUnknown,
		CompanyLocation: domain.CompanyNameUnknown,
	}
	if company, ok := companies[job.CompanyID]; ok {
		detail.CompanyName = company.Name
		detail.CompanyLocation = company.Location
	}
	return detail, nil
}

func (uc *jobUsecase) companyByID(ctx context.Context) (map[string]domain.Company, error) {
	companies, err := uc.companyRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Company, len(companies))
	for _, company := range companies {
		byID[company.ID] = company
	}
	return byID, nil
}
