package domain

import (
	"context"
	"errors"
	"time"
)

// Application status values. There is no enforced ordering between them:
// any status may transition to any other via an explicit update.
const (
	ApplicationStatusApplied     = "Applied"
	ApplicationStatusUnderReview = "Under Review"
	ApplicationStatusAccepted    = "Accepted"
	ApplicationStatusRejected    = "Rejected"
)

// ValidApplicationStatus reports whether s is one of the four known statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusUnderReview,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application represents a student's application to a job. At most one
// application exists per (job, applicant) pair; the store enforces this
// with a unique index in addition to the usecase-level existence check.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	ApplicantID int64     `json:"applicant_id"`
	Status      string    `json:"status"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined data for enriched list responses
	Job       *Job  `json:"job,omitempty"`
	Applicant *User `json:"applicant,omitempty"`
}

// ErrDuplicateApplication is returned by Create when the (job, applicant)
// pair already has an application.
var ErrDuplicateApplication = errors.New("application already exists")

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	// GetByUser returns the applicant's applications, each enriched with
	// its parent job, newest first.
	GetByUser(ctx context.Context, userID int64) ([]Application, error)
	// GetByEmployer returns applications across every job posted by the
	// given user, enriched with both job and applicant, newest first.
	GetByEmployer(ctx context.Context, userID int64) ([]Application, error)
	CountByJob(ctx context.Context, jobID int64) (int64, error)
	CheckExists(ctx context.Context, jobID, applicantID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Application, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID, jobID int64, coverLetter, resumeURL string) (*Application, error)
	// ListForUser branches on role: students see their own applications,
	// employers and NGOs see applications across the jobs they posted.
	ListForUser(ctx context.Context, userID int64, role string) ([]Application, error)
	UpdateStatus(ctx context.Context, role string, id int64, status string) (*Application, error)
}
