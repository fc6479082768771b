package repository

import (
	"workzup_backend/internal/job/domain"

	"gorm.io/gorm"
)

// JobRepo definition job posting persistence
type JobRepo interface {
	AutoMigrate() error
	Create(job *domain.Job) error
	GetByID(id uint) (*domain.Job, error)
	Update(job *domain.Job) error
	FindByStatus(status domain.JobStatus) ([]domain.Job, error)
	SearchJobs(keyword string) ([]domain.Job, error)
}

type jobRepo struct {
	db *gorm.DB
}

// NewJobRepo create JobRepo
func NewJobRepo(db *gorm.DB) JobRepo {
	return &jobRepo{db: db}
}

func (r *jobRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Job{})
}

func (r *jobRepo) Create(job *domain.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepo) GetByID(id uint) (*domain.Job, error) {
	var j domain.Job
	if err := r.db.First(&j, id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) Update(job *domain.Job) error {
	return r.db.Save(job).Error
}

func (r *jobRepo) FindByStatus(status domain.JobStatus) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.Where("status = ?", status).Order("updated_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// SearchJobs ILIKE over title and description, public postings only
func (r *jobRepo) SearchJobs(keyword string) ([]domain.Job, error) {
	var jobs []domain.Job
	like := "%" + keyword + "%"
	if err := r.db.Where("(title ILIKE ? OR description ILIKE ?) AND status = ?", like, like, domain.JobPublic).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
