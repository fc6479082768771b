package app

import (
	"context"
	"strings"
	"time"

	"workzup_backend/internal/job/domain"
	"workzup_backend/internal/job/repository"
	errprocess "workzup_backend/pkg/err"
	token "workzup_backend/pkg/token"
)

// CreateJobReq usecase create job request
type CreateJobReq struct {
	Title       string
	Description string
	Pay         string
	Schedule    string
	Location    string
}

// JobUseCase application services around job postings
type JobUseCase interface {
	CreateJob(ctx context.Context, callerID, callerRole string, req CreateJobReq) (*domain.Job, error)
	GetJob(ctx context.Context, callerID string, jobID uint) (*domain.Job, error)
	UpdateJob(ctx context.Context, callerID string, jobID uint, req CreateJobReq) (*domain.Job, error)
	PublishJob(ctx context.Context, callerID string, jobID uint) (*domain.Job, error)
	ListPublicJobs(ctx context.Context) ([]domain.Job, error)
	SearchJobs(ctx context.Context, keyword string) ([]domain.Job, error)
	JobSummary(ctx context.Context, jobID uint) (*domain.JobSummary, error)
}

type jobUseCase struct {
	jobRepo repository.JobRepo
	events  repository.JobEventPublisher
}

// NewJobUseCase create a new JobUseCase
func NewJobUseCase(jobRepo repository.JobRepo, events repository.JobEventPublisher) JobUseCase {
	return &jobUseCase{
		jobRepo: jobRepo,
		events:  events,
	}
}

// CreateJob only recruiters post jobs, new postings start as DRAFT
func (uc *jobUseCase) CreateJob(ctx context.Context, callerID, callerRole string, req CreateJobReq) (*domain.Job, error) {
	if callerRole != string(token.RoleRecruiter) {
		return nil, errprocess.Forbidden("only recruiters can post jobs")
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, errprocess.Validation("job title is empty")
	}

	job := &domain.Job{
		RecruiterID: callerID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Pay:         req.Pay,
		Schedule:    req.Schedule,
		Location:    req.Location,
		Status:      domain.JobDraft,
	}
	if err := uc.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

// GetJob drafts and private postings are visible to the owner only
func (uc *jobUseCase) GetJob(ctx context.Context, callerID string, jobID uint) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, errprocess.NotFound("job %d", jobID)
	}
	if job.Status != domain.JobPublic && job.RecruiterID != callerID {
		return nil, errprocess.NotFound("job %d", jobID)
	}
	return job, nil
}

// UpdateJob owner only
func (uc *jobUseCase) UpdateJob(ctx context.Context, callerID string, jobID uint, req CreateJobReq) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, errprocess.NotFound("job %d", jobID)
	}
	if job.RecruiterID != callerID {
		return nil, errprocess.Forbidden("only the owner can edit a job")
	}

	if strings.TrimSpace(req.Title) != "" {
		job.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Pay != "" {
		job.Pay = req.Pay
	}
	if req.Schedule != "" {
		job.Schedule = req.Schedule
	}
	if req.Location != "" {
		job.Location = req.Location
	}

	if err := uc.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

// PublishJob DRAFT goes PUBLIC and the event stream hears about it
func (uc *jobUseCase) PublishJob(ctx context.Context, callerID string, jobID uint) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, errprocess.NotFound("job %d", jobID)
	}
	if job.RecruiterID != callerID {
		return nil, errprocess.Forbidden("only the owner can publish a job")
	}
	if job.Status == domain.JobPublic {
		return job, nil
	}

	job.Status = domain.JobPublic
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, err
	}

	if uc.events != nil {
		// best effort, the posting is already public
		_ = uc.events.Publish(ctx, domain.JobEvent{
			Kind:        domain.EventJobPublished,
			JobID:       job.ID,
			RecruiterID: job.RecruiterID,
			OccurredAt:  time.Now(),
		})
	}
	return job, nil
}

func (uc *jobUseCase) ListPublicJobs(ctx context.Context) ([]domain.Job, error) {
	return uc.jobRepo.FindByStatus(domain.JobPublic)
}

func (uc *jobUseCase) SearchJobs(ctx context.Context, keyword string) ([]domain.Job, error) {
	if len(strings.TrimSpace(keyword)) < 2 {
		return nil, errprocess.Validation("search keyword needs at least 2 characters")
	}
	return uc.jobRepo.SearchJobs(keyword)
}

// JobSummary title, pay and schedule for conversation display
func (uc *jobUseCase) JobSummary(ctx context.Context, jobID uint) (*domain.JobSummary, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, errprocess.NotFound("job %d", jobID)
	}
	summary := job.Summarize()
	return &summary, nil
}
