package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Fetch(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Fetch(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) FetchByCandidate(ctx context.Context, candidateID string) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Exists(ctx context.Context, jobID, candidateID string) (bool, error) {
	args := m.Called(ctx, jobID, candidateID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestLogin(t *testing.T) {
	t.Run("Should return candidate on exact email match", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newValidator())

		want := &domain.Candidate{ID: "C1", Email: "ann@example.com", FirstName: "Ann", LastName: "Chan"}
		mockRepo.On("GetByEmail", mock.Anything, "ann@example.com").Return(want, nil)

		got, err := uc.Login(context.Background(), "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Should resolve admin accounts too", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newValidator())

		admin := &domain.Candidate{ID: "C9", Email: "boss@example.com", IsAdmin: true}
		mockRepo.On("GetByEmail", mock.Anything, "boss@example.com").Return(admin, nil)

		got, err := uc.Login(context.Background(), "boss@example.com")
		require.NoError(t, err)
		assert.True(t, got.IsAdmin)
	})

	t.Run("Should be absent for unknown email", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newValidator())

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, err := uc.Login(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should short-circuit malformed email without scanning", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newValidator())

		for _, email := range []string{"not-an-email", "", "a@b", "@example.com", "ann @example.com"} {
			_, err := uc.Login(context.Background(), email)
			assert.ErrorIs(t, err, domain.ErrNotFound, "email %q", email)
		}
		mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}
