package app

import (
	"context"
	"errors"
	"testing"

	"workzup_backend/internal/recruiter/domain"
	errprocess "workzup_backend/pkg/err"
	"workzup_backend/pkg/logger"
	token "workzup_backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepo Mock ProfileRepository
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) UpsertProfile(ctx context.Context, profile *domain.RecruiterProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockProfileRepo) FindProfile(ctx context.Context, memberID string) (*domain.RecruiterProfile, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.RecruiterProfile), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockProfileRepo) UpdateRating(ctx context.Context, memberID string, avg float64, count int) error {
	args := m.Called(ctx, memberID, avg, count)
	return args.Error(0)
}

// MockReviewRepo Mock ReviewRepository
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) UpsertReview(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) FindByRecruiter(ctx context.Context, recruiterID string) ([]domain.Review, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockReviewRepo) RatingSummary(ctx context.Context, recruiterID string) (*domain.RatingSummary, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.RatingSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestRecruiterUseCase_UpsertProfile(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("recruiter upserts", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		mockReviews := new(MockReviewRepo)

		stored := &domain.RecruiterProfile{MemberID: "recruiter-1", CompanyName: "Cafe Work"}
		mockProfiles.On("UpsertProfile", ctx, mock.Anything).Return(nil).Once()
		mockProfiles.On("FindProfile", ctx, "recruiter-1").Return(stored, nil).Once()

		uc := NewRecruiterUseCase(mockProfiles, mockReviews)
		profile, err := uc.UpsertProfile(ctx, "recruiter-1", string(token.RoleRecruiter), UpsertProfileReq{
			CompanyName: "Cafe Work",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Cafe Work", profile.CompanyName)
		mockProfiles.AssertExpectations(t)
	})

	t.Run("seeker rejected", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		mockReviews := new(MockReviewRepo)

		uc := NewRecruiterUseCase(mockProfiles, mockReviews)
		_, err := uc.UpsertProfile(ctx, "seeker-1", string(token.RoleSeeker), UpsertProfileReq{CompanyName: "X"})

		assert.True(t, errprocess.IsForbidden(err))
		mockProfiles.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything)
	})

	t.Run("empty company name", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		mockReviews := new(MockReviewRepo)

		uc := NewRecruiterUseCase(mockProfiles, mockReviews)
		_, err := uc.UpsertProfile(ctx, "recruiter-1", string(token.RoleRecruiter), UpsertProfileReq{CompanyName: "  "})

		assert.True(t, errprocess.IsValidation(err))
	})
}

func TestRecruiterUseCase_AddReview(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	profile := &domain.RecruiterProfile{MemberID: "recruiter-1", CompanyName: "Cafe Work"}

	t.Run("seeker reviews and rating recomputes", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		mockReviews := new(MockReviewRepo)

		mockProfiles.On("FindProfile", ctx, "recruiter-1").Return(profile, nil).Once()
		mockReviews.On("UpsertReview", ctx, mock.Anything).Return(nil).Once()
		mockReviews.On("RatingSummary", ctx, "recruiter-1").Return(&domain.RatingSummary{
			RecruiterID: "recruiter-1", AvgRating: 4.5, ReviewCount: 2,
		}, nil).Once()
		mockProfiles.On("UpdateRating", ctx, "recruiter-1", 4.5, 2).Return(nil).Once()

		uc := NewRecruiterUseCase(mockProfiles, mockReviews)
		review, err := uc.AddReview(ctx, "seeker-1", string(token.RoleSeeker), "recruiter-1", AddReviewReq{
			Rating: 5, Comment: "great workplace",
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
		mockProfiles.AssertExpectations(t)
		mockReviews.AssertExpectations(t)
	})

	t.Run("recruiter cannot review", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		mockReviews := new(MockReviewRepo)

		uc := NewRecruiterUseCase(mockProfiles, mockReviews)
		_, err := uc.AddReview(ctx, "recruiter-2", string(token.RoleRecruiter), "recruiter-1", AddReviewReq{Rating: 5})

		assert.True(t, errprocess.IsForbidden(err))
	})

	t.Run("rating out of bounds", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		mockReviews := new(MockReviewRepo)

		uc := NewRecruiterUseCase(mockProfiles, mockReviews)
		_, err := uc.AddReview(ctx, "seeker-1", string(token.RoleSeeker), "recruiter-1", AddReviewReq{Rating: 6})

		assert.True(t, errprocess.IsValidation(err))
		mockReviews.AssertNotCalled(t, "UpsertReview", mock.Anything, mock.Anything)
	})

	t.Run("unknown recruiter", func(t *testing.T) {
		mockProfiles := new(MockProfileRepo)
		mockReviews := new(MockReviewRepo)

		mockProfiles.On("FindProfile", ctx, "ghost").Return(nil, errors.New("not found")).Once()

		uc := NewRecruiterUseCase(mockProfiles, mockReviews)
		_, err := uc.AddReview(ctx, "seeker-1", string(token.RoleSeeker), "ghost", AddReviewReq{Rating: 3})

		assert.True(t, errprocess.IsNotFound(err))
	})
}

func TestRecruiterUseCase_GetProfile(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	mockProfiles := new(MockProfileRepo)
	mockReviews := new(MockReviewRepo)

	mockProfiles.On("FindProfile", ctx, "ghost").Return(nil, errors.New("not found")).Once()

	uc := NewRecruiterUseCase(mockProfiles, mockReviews)
	_, err := uc.GetProfile(ctx, "ghost")

	assert.True(t, errprocess.IsNotFound(err))
}
