package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/store"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(s string) func() time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return func() time.Time { return t }
}

func openJob(t *testing.T, id, deadline string) *domain.Job {
	t.Helper()
	return &domain.Job{
		ID:        id,
		CompanyID: "CO1",
		Title:     "Backend Engineer",
		Status:    domain.JobStatusOpen,
		Deadline:  mustDate(t, deadline),
	}
}

func TestSubmitApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("Should succeed and persist today's date", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, fixedClock("2024-03-10"))

		mockJobs.On("GetByID", mock.Anything, "J2").Return(openJob(t, "J2", "2024-06-30"), nil)
		mockApps.On("Exists", mock.Anything, "J2", "C1").Return(false, nil)
		mockApps.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.Equal(t, "J2", app.JobID)
			assert.Equal(t, "C1", app.CandidateID)
			assert.Equal(t, "2024-03-10", app.Date.String())
		})

		result, err := uc.SubmitApplication(ctx, "J2", "C1")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, domain.SubmitOutcomeSubmitted, result.Outcome)
		assert.Equal(t, "Application submitted successfully!", result.Message)
		mockApps.AssertExpectations(t)
	})

	t.Run("Should reject a missing job", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, fixedClock("2024-03-10"))

		mockJobs.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		result, err := uc.SubmitApplication(ctx, "missing", "C1")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, domain.SubmitOutcomeJobNotFound, result.Outcome)
		assert.Equal(t, "Job not found.", result.Message)
	})

	t.Run("Should reject after the deadline regardless of duplicate status", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, fixedClock("2024-01-02"))

		mockJobs.On("GetByID", mock.Anything, "J1").Return(openJob(t, "J1", "2024-01-01"), nil)

		result, err := uc.SubmitApplication(ctx, "J1", "C1")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, domain.SubmitOutcomeDeadlinePassed, result.Outcome)
		assert.Equal(t, "The application deadline has passed.", result.Message)
		// Deadline is checked before the duplicate scan.
		mockApps.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should accept on the deadline day itself", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, fixedClock("2024-01-01"))

		mockJobs.On("GetByID", mock.Anything, "J1").Return(openJob(t, "J1", "2024-01-01"), nil)
		mockApps.On("Exists", mock.Anything, "J1", "C1").Return(false, nil)
		mockApps.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)

		result, err := uc.SubmitApplication(ctx, "J1", "C1")
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("Should reject a duplicate application", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, fixedClock("2024-03-10"))

		mockJobs.On("GetByID", mock.Anything, "J2").Return(openJob(t, "J2", "2024-06-30"), nil)
		mockApps.On("Exists", mock.Anything, "J2", "C1").Return(true, nil)

		result, err := uc.SubmitApplication(ctx, "J2", "C1")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, domain.SubmitOutcomeAlreadyApplied, result.Outcome)
		assert.Equal(t, "You have already applied for this job.", result.Message)
		mockApps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should surface storage failures on the error channel", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, fixedClock("2024-03-10"))

		mockJobs.On("GetByID", mock.Anything, "J2").Return(openJob(t, "J2", "2024-06-30"), nil)
		mockApps.On("Exists", mock.Anything, "J2", "C1").Return(false, nil)
		mockApps.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		result, err := uc.SubmitApplication(ctx, "J2", "C1")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestSubmitThenHasApplied(t *testing.T) {
	// End-to-end over the real repositories and the in-memory store:
	// submission is visible to the duplicate check immediately, and a
	// second submission is rejected.
	ctx := context.Background()
	s := seededJoinStore()
	uc := usecase.NewApplicationUsecase(
		newApplicationRepo(s), newJobRepo(s), fixedClock("2024-03-10"),
	)

	applied, err := uc.HasApplied(ctx, "C2", "J3")
	require.NoError(t, err)
	assert.False(t, applied)

	first, err := uc.SubmitApplication(ctx, "J3", "C2")
	require.NoError(t, err)
	assert.True(t, first.Success)

	applied, err = uc.HasApplied(ctx, "C2", "J3")
	require.NoError(t, err)
	assert.True(t, applied)

	second, err := uc.SubmitApplication(ctx, "J3", "C2")
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, domain.SubmitOutcomeAlreadyApplied, second.Outcome)
}

func TestSubmitApplicationConcurrent(t *testing.T) {
	// Every submission is an append plus full-collection rewrite, so two
	// unsynchronized writers could erase each other's rows. Fire a batch
	// of distinct submissions at once and require that none are lost.
	ctx := context.Background()
	s := store.NewMemoryStore()
	s.Seed(store.Jobs, []store.Record{
		{"job_id": "J1", "company_id": "CO1", "title": "Backend Engineer", "status": "open", "deadline": "2030-06-30"},
	})
	s.Seed(store.Applications, nil)

	appRepo := newApplicationRepo(s)
	uc := usecase.NewApplicationUsecase(appRepo, newJobRepo(s), fixedClock("2024-03-10"))

	const submitters = 16
	var wg sync.WaitGroup
	errs := make(chan error, submitters)
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func(candidateID string) {
			defer wg.Done()
			result, err := uc.SubmitApplication(ctx, "J1", candidateID)
			if err != nil {
				errs <- err
				return
			}
			if !result.Success {
				errs <- fmt.Errorf("submission for %s rejected: %s", candidateID, result.Message)
			}
		}(fmt.Sprintf("C%02d", i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	apps, err := appRepo.Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, submitters)
}
