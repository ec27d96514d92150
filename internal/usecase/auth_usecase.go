package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type authUsecase struct {
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
}

// NewAuthUsecase expects a validator with the custom rules from
// pkg/validation registered.
func NewAuthUsecase(candidateRepo domain.CandidateRepository, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		candidateRepo: candidateRepo,
		validate:      validate,
	}
}

// Login resolves a candidate by email. A malformed email short-circuits
// to ErrNotFound before any store read; a well-formed one is matched
// exactly (case-sensitive) against the candidates collection.
func (uc *authUsecase) Login(ctx context.Context, email string) (*domain.Candidate, error) {
	if err := uc.validate.Var(email, "required,record_email"); err != nil {
		return nil, domain.ErrNotFound
	}
	return uc.candidateRepo.GetByEmail(ctx, email)
}
