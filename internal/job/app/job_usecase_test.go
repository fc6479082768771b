package app

import (
	"context"
	"errors"
	"testing"

	"workzup_backend/internal/job/domain"
	errprocess "workzup_backend/pkg/err"
	"workzup_backend/pkg/logger"
	token "workzup_backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockJobRepo Mock JobRepo
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockJobRepo) Create(job *domain.Job) error {
	args := m.Called(job)
	return args.Error(0)
}
func (m *MockJobRepo) GetByID(id uint) (*domain.Job, error) {
	args := m.Called(id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Job), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockJobRepo) Update(job *domain.Job) error {
	args := m.Called(job)
	return args.Error(0)
}
func (m *MockJobRepo) FindByStatus(status domain.JobStatus) ([]domain.Job, error) {
	args := m.Called(status)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Job), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockJobRepo) SearchJobs(keyword string) ([]domain.Job, error) {
	args := m.Called(keyword)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Job), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockJobEventPublisher Mock JobEventPublisher
type MockJobEventPublisher struct {
	mock.Mock
}

func (m *MockJobEventPublisher) Publish(ctx context.Context, event domain.JobEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func TestJobUseCase_CreateJob(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("create ok", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockEvents := new(MockJobEventPublisher)

		mockRepo.On("Create", mock.Anything).Return(nil).Once()

		uc := NewJobUseCase(mockRepo, mockEvents)
		job, err := uc.CreateJob(ctx, "recruiter-1", string(token.RoleRecruiter), CreateJobReq{
			Title: "Barista", Pay: "NT$190/hr", Schedule: "weekend mornings",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.JobDraft, job.Status)
		assert.Equal(t, "recruiter-1", job.RecruiterID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("seeker cannot post", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockEvents := new(MockJobEventPublisher)

		uc := NewJobUseCase(mockRepo, mockEvents)
		_, err := uc.CreateJob(ctx, "seeker-1", string(token.RoleSeeker), CreateJobReq{Title: "Barista"})

		assert.True(t, errprocess.IsForbidden(err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("empty title", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockEvents := new(MockJobEventPublisher)

		uc := NewJobUseCase(mockRepo, mockEvents)
		_, err := uc.CreateJob(ctx, "recruiter-1", string(token.RoleRecruiter), CreateJobReq{Title: "   "})

		assert.True(t, errprocess.IsValidation(err))
	})
}

func TestJobUseCase_UpdateJob(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	existing := func() *domain.Job {
		return &domain.Job{ID: 7, RecruiterID: "recruiter-1", Title: "Barista", Status: domain.JobDraft}
	}

	t.Run("owner updates", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockEvents := new(MockJobEventPublisher)

		mockRepo.On("GetByID", uint(7)).Return(existing(), nil).Once()
		mockRepo.On("Update", mock.Anything).Return(nil).Once()

		uc := NewJobUseCase(mockRepo, mockEvents)
		job, err := uc.UpdateJob(ctx, "recruiter-1", 7, CreateJobReq{Title: "Senior Barista"})

		assert.NoError(t, err)
		assert.Equal(t, "Senior Barista", job.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockEvents := new(MockJobEventPublisher)

		mockRepo.On("GetByID", uint(7)).Return(existing(), nil).Once()

		uc := NewJobUseCase(mockRepo, mockEvents)
		_, err := uc.UpdateJob(ctx, "recruiter-2", 7, CreateJobReq{Title: "Stolen"})

		assert.True(t, errprocess.IsForbidden(err))
		mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestJobUseCase_PublishJob(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("draft goes public with event", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockEvents := new(MockJobEventPublisher)

		draft := &domain.Job{ID: 7, RecruiterID: "recruiter-1", Title: "Barista", Status: domain.JobDraft}
		mockRepo.On("GetByID", uint(7)).Return(draft, nil).Once()
		mockRepo.On("Update", mock.Anything).Return(nil).Once()
		mockEvents.On("Publish", ctx, mock.Anything).Return(nil).Once()

		uc := NewJobUseCase(mockRepo, mockEvents)
		job, err := uc.PublishJob(ctx, "recruiter-1", 7)

		assert.NoError(t, err)
		assert.Equal(t, domain.JobPublic, job.Status)
		mockRepo.AssertExpectations(t)
		mockEvents.AssertExpectations(t)
	})

	t.Run("already public is a no-op", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockEvents := new(MockJobEventPublisher)

		public := &domain.Job{ID: 7, RecruiterID: "recruiter-1", Title: "Barista", Status: domain.JobPublic}
		mockRepo.On("GetByID", uint(7)).Return(public, nil).Once()

		uc := NewJobUseCase(mockRepo, mockEvents)
		job, err := uc.PublishJob(ctx, "recruiter-1", 7)

		assert.NoError(t, err)
		assert.Equal(t, domain.JobPublic, job.Status)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything)
		mockEvents.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("missing job", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		mockEvents := new(MockJobEventPublisher)

		mockRepo.On("GetByID", uint(9)).Return(nil, errors.New("record not found")).Once()

		uc := NewJobUseCase(mockRepo, mockEvents)
		_, err := uc.PublishJob(ctx, "recruiter-1", 9)

		assert.True(t, errprocess.IsNotFound(err))
	})
}

func TestJobUseCase_GetJob_Visibility(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	mockRepo := new(MockJobRepo)
	mockEvents := new(MockJobEventPublisher)

	draft := &domain.Job{ID: 7, RecruiterID: "recruiter-1", Title: "Barista", Status: domain.JobDraft}
	mockRepo.On("GetByID", uint(7)).Return(draft, nil)

	uc := NewJobUseCase(mockRepo, mockEvents)

	job, err := uc.GetJob(ctx, "recruiter-1", 7)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), job.ID)

	// a draft hides from everyone but its owner
	_, err = uc.GetJob(ctx, "seeker-1", 7)
	assert.True(t, errprocess.IsNotFound(err))
}

func TestJobUseCase_SearchJobs(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	mockRepo := new(MockJobRepo)
	mockEvents := new(MockJobEventPublisher)

	uc := NewJobUseCase(mockRepo, mockEvents)

	_, err := uc.SearchJobs(ctx, "b")
	assert.True(t, errprocess.IsValidation(err))

	mockRepo.On("SearchJobs", "barista").Return([]domain.Job{{ID: 7, Title: "Barista"}}, nil).Once()
	jobs, err := uc.SearchJobs(ctx, "barista")
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	mockRepo.AssertExpectations(t)
}
