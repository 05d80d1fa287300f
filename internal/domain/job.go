package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job types
const (
	JobTypeFullTime       = "full-time"
	JobTypePartTime       = "part-time"
	JobTypeContract       = "contract"
	JobTypeInternship     = "internship"
	JobTypeApprenticeship = "apprenticeship"
)

// ValidJobType reports whether t is one of the known job types.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeApprenticeship:
		return true
	}
	return false
}

type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Skills      []string  `json:"skills"`
	SalaryRange *string   `json:"salary_range,omitempty"`
	PostedBy    int64     `json:"posted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobFilters narrows a job listing. Empty fields are ignored; present fields
// combine with AND. Search matches title, description or company.
type JobFilters struct {
	Search   string
	Location string
	Type     string
}

// JobDetail extends Job with the number of applications received. The count
// is a view-model concern attached by the usecase, not a column.
type JobDetail struct {
	Job
	ApplicationCount int64 `json:"application_count"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, filters JobFilters) ([]Job, error)
	FetchByEmployer(ctx context.Context, userID int64) ([]Job, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) (*Job, error)
	GetJobDetail(ctx context.Context, id int64) (*JobDetail, error)
	ListJobs(ctx context.Context, filters JobFilters) ([]Job, error)
}
