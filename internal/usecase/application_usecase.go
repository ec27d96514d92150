package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	now             func() time.Time

	// mu serializes the duplicate-check plus full-collection rewrite so
	// concurrent submissions cannot drop each other's writes.
	mu sync.Mutex
}

// NewApplicationUsecase creates the submission rule engine. now supplies
// the caller's clock; pass time.Now outside of tests.
func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	now func() time.Time,
) domain.ApplicationUsecase {
	if now == nil {
		now = time.Now
	}
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		now:             now,
	}
}

// SubmitApplication validates and commits a new application. The checks
// run in a fixed order — job existence, deadline, duplicate — so the
// caller sees a deterministic message when several conditions fail at
// once. Rule rejections come back in the result; the error return is
// reserved for storage failures.
func (uc *applicationUsecase) SubmitApplication(ctx context.Context, jobID, candidateID string) (*domain.SubmitResult, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return rejected(domain.SubmitOutcomeJobNotFound, "Job not found."), nil
	}
	if err != nil {
		return nil, err
	}

	today := domain.DateOf(uc.now())
	if today.After(job.Deadline) {
		return rejected(domain.SubmitOutcomeDeadlinePassed, "The application deadline has passed."), nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	applied, err := uc.applicationRepo.Exists(ctx, jobID, candidateID)
	if err != nil {
		return nil, err
	}
	if applied {
		return rejected(domain.SubmitOutcomeAlreadyApplied, "You have already applied for this job."), nil
	}

	app := &domain.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		Date:        today,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	return &domain.SubmitResult{
		Success: true,
		Outcome: domain.SubmitOutcomeSubmitted,
		Message: "Application submitted successfully!",
	}, nil
}

func (uc *applicationUsecase) HasApplied(ctx context.Context, candidateID, jobID string) (bool, error) {
	return uc.applicationRepo.Exists(ctx, jobID, candidateID)
}

func rejected(outcome, message string) *domain.SubmitResult {
	return &domain.SubmitResult{
		Success: false,
		Outcome: outcome,
		Message: message,
	}
}
