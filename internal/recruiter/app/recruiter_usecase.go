package app

import (
	"context"
	"strings"
	"time"

	"workzup_backend/internal/recruiter/domain"
	"workzup_backend/internal/recruiter/repository"
	errprocess "workzup_backend/pkg/err"
	token "workzup_backend/pkg/token"

	"github.com/google/uuid"
)

// UpsertProfileReq usecase upsert profile request
type UpsertProfileReq struct {
	CompanyName string
	Bio         string
	Website     string
}

// AddReviewReq usecase add review request
type AddReviewReq struct {
	Rating  int
	Comment string
}

// RecruiterUseCase application services around recruiter profiles and reviews
type RecruiterUseCase interface {
	UpsertProfile(ctx context.Context, callerID, callerRole string, req UpsertProfileReq) (*domain.RecruiterProfile, error)
	GetProfile(ctx context.Context, recruiterID string) (*domain.RecruiterProfile, error)
	AddReview(ctx context.Context, callerID, callerRole, recruiterID string, req AddReviewReq) (*domain.Review, error)
	ListReviews(ctx context.Context, recruiterID string) ([]domain.Review, error)
}

type recruiterUseCase struct {
	profileRepo repository.ProfileRepository
	reviewRepo  repository.ReviewRepository
}

// NewRecruiterUseCase create a new RecruiterUseCase
func NewRecruiterUseCase(profileRepo repository.ProfileRepository, reviewRepo repository.ReviewRepository) RecruiterUseCase {
	return &recruiterUseCase{
		profileRepo: profileRepo,
		reviewRepo:  reviewRepo,
	}
}

// UpsertProfile recruiters edit their own profile only
func (uc *recruiterUseCase) UpsertProfile(ctx context.Context, callerID, callerRole string, req UpsertProfileReq) (*domain.RecruiterProfile, error) {
	if callerRole != string(token.RoleRecruiter) {
		return nil, errprocess.Forbidden("only recruiters have a profile")
	}
	if strings.TrimSpace(req.CompanyName) == "" {
		return nil, errprocess.Validation("company name is empty")
	}

	profile := &domain.RecruiterProfile{
		MemberID:    callerID,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Bio:         req.Bio,
		Website:     req.Website,
		UpdatedAt:   time.Now(),
	}
	if err := uc.profileRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}
	return uc.GetProfile(ctx, callerID)
}

func (uc *recruiterUseCase) GetProfile(ctx context.Context, recruiterID string) (*domain.RecruiterProfile, error) {
	profile, err := uc.profileRepo.FindProfile(ctx, recruiterID)
	if err != nil {
		return nil, errprocess.NotFound("recruiter %s", recruiterID)
	}
	return profile, nil
}

// AddReview seekers only, rating 1..5, and the recruiter's stored
// aggregate is recomputed from the review collection afterwards
func (uc *recruiterUseCase) AddReview(ctx context.Context, callerID, callerRole, recruiterID string, req AddReviewReq) (*domain.Review, error) {
	if callerRole != string(token.RoleSeeker) {
		return nil, errprocess.Forbidden("only seekers can review recruiters")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errprocess.Validation("rating must be between 1 and 5")
	}
	if callerID == recruiterID {
		return nil, errprocess.Validation("cannot review yourself")
	}
	if _, err := uc.profileRepo.FindProfile(ctx, recruiterID); err != nil {
		return nil, errprocess.NotFound("recruiter %s", recruiterID)
	}

	review := &domain.Review{
		ID:          uuid.New().String(),
		RecruiterID: recruiterID,
		AuthorID:    callerID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		CreatedAt:   time.Now(),
	}
	if err := uc.reviewRepo.UpsertReview(ctx, review); err != nil {
		return nil, err
	}

	summary, err := uc.reviewRepo.RatingSummary(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	if err := uc.profileRepo.UpdateRating(ctx, recruiterID, summary.AvgRating, summary.ReviewCount); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *recruiterUseCase) ListReviews(ctx context.Context, recruiterID string) ([]domain.Review, error) {
	return uc.reviewRepo.FindByRecruiter(ctx, recruiterID)
}
