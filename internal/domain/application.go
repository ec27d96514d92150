package domain

import "context"

// Application is identified by its (job_id, candidate_id) pair; at most
// one application exists per pair.
type Application struct {
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
	Date        Date   `json:"application_date"`
}

// ApplicationSummary is one row of a candidate's application history.
type ApplicationSummary struct {
	JobTitle        string `json:"job_title"`
	CompanyName     string `json:"company_name"`
	ApplicationDate Date   `json:"application_date"`
}

// Submission outcome discriminants
const (
	SubmitOutcomeSubmitted      = "submitted"
	SubmitOutcomeJobNotFound    = "job_not_found"
	SubmitOutcomeDeadlinePassed = "deadline_passed"
	SubmitOutcomeAlreadyApplied = "already_applied"
)

// SubmitResult is the structured outcome of a submission attempt.
// Business-rule rejections are carried here, not on the error channel;
// callers must check Success.
type SubmitResult struct {
	Success bool   `json:"success"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

type ApplicationRepository interface {
	Fetch(ctx context.Context) ([]Application, error)
	FetchByCandidate(ctx context.Context, candidateID string) ([]Application, error)
	// Exists reports whether an application for the (job, candidate)
	// pair is already on record.
	Exists(ctx context.Context, jobID, candidateID string) (bool, error)
	// Create appends the application and rewrites the full collection.
	Create(ctx context.Context, app *Application) error
}

type ApplicationUsecase interface {
	// SubmitApplication validates and commits a new application. Checks
	// run in order: job existence, deadline, duplicate. The returned
	// error is reserved for storage failures.
	SubmitApplication(ctx context.Context, jobID, candidateID string) (*SubmitResult, error)
	HasApplied(ctx context.Context, candidateID, jobID string) (bool, error)
}
