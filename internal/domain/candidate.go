package domain

import "context"

type Candidate struct {
	ID        string `json:"candidate_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
}

type CandidateRepository interface {
	// Fetch returns every non-admin candidate, in storage order.
	Fetch(ctx context.Context) ([]Candidate, error)
	// GetByID resolves any candidate, admins included.
	GetByID(ctx context.Context, id string) (*Candidate, error)
	// GetByEmail resolves a candidate by exact, case-sensitive email match.
	GetByEmail(ctx context.Context, email string) (*Candidate, error)
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context) ([]Candidate, error)
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	// ListApplications returns the candidate's application history with
	// job title and company name joined in. Applications whose job no
	// longer resolves are skipped entirely.
	ListApplications(ctx context.Context, candidateID string) ([]ApplicationSummary, error)
}

// AuthUsecase is login-by-email: there are no passwords or tokens in
// this system. A malformed or unknown email resolves to ErrNotFound.
type AuthUsecase interface {
	Login(ctx context.Context, email string) (*Candidate, error)
}
