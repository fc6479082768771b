package domain

import "time"

// JobStatus definition job posting status
type JobStatus string

const (
	// JobDraft posting is being edited, only the owner sees it
	JobDraft JobStatus = "DRAFT"
	// JobPublic posting is browsable by everyone
	JobPublic JobStatus = "PUBLIC"
	// JobPrivate posting is taken off the public listing
	JobPrivate JobStatus = "PRIVATE"
)

// Job a job posting owned by a recruiter
type Job struct {
	ID          uint `gorm:"primaryKey"`
	RecruiterID string
	Title       string
	Description string
	Pay         string
	Schedule    string
	Location    string
	Status      JobStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JobSummary the fields a conversation header shows about a job
type JobSummary struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Pay      string `json:"pay"`
	Schedule string `json:"schedule"`
}

// Summarize trim the posting down for conversation display
func (j *Job) Summarize() JobSummary {
	return JobSummary{
		ID:       j.ID,
		Title:    j.Title,
		Pay:      j.Pay,
		Schedule: j.Schedule,
	}
}

// JobEvent posting lifecycle event published to the event stream
type JobEvent struct {
	Kind        string    `json:"kind"`
	JobID       uint      `json:"job_id"`
	RecruiterID string    `json:"recruiter_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventJobPublished a DRAFT posting went PUBLIC
const EventJobPublished = "job.published"
