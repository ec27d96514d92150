package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job status values
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

type Job struct {
	ID        string `json:"job_id"`
	CompanyID string `json:"company_id"`
	Title     string `json:"title"`
	Status    string `json:"status"` // open / closed
	Deadline  Date   `json:"deadline"`
}

// JobWithDetails extends Job with the joined company name and the number
// of applications referencing the job.
type JobWithDetails struct {
	Job
	CompanyName    string `json:"company_name"`
	ApplicantCount int    `json:"applicant_count"`
}

// JobDetail extends Job with the joined company name and location for the
// single-job view.
type JobDetail struct {
	Job
	CompanyName     string `json:"company_name"`
	CompanyLocation string `json:"location"`
}

type JobRepository interface {
	Fetch(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id string) (*Job, error)
}

type JobUsecase interface {
	// ListOpenJobs returns open jobs with company name and applicant
	// count attached, in storage order.
	ListOpenJobs(ctx context.Context) ([]JobWithDetails, error)
	// ListAllJobs is the admin variant: every job regardless of status.
	ListAllJobs(ctx context.Context) ([]JobWithDetails, error)
	GetJobDetails(ctx context.Context, id string) (*JobDetail, error)
}
