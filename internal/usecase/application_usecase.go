package usecase

import (
	"context"
	"errors"

	"riseup-backend/internal/domain"
	"riseup-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(applicationRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{applicationRepo: applicationRepo, jobRepo: jobRepo}
}

// Apply submits an application for a job. The pre-check gives a clean
// message for the common case; the unique index on (job_id, applicant_id)
// is what actually prevents concurrent duplicates.
func (u *applicationUsecase) Apply(ctx context.Context, applicantID, jobID int64, coverLetter, resumeURL string) (*domain.Application, error) {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	exists, err := u.applicationRepo.CheckExists(ctx, jobID, applicantID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You have already applied for this job")
	}

	app := &domain.Application{JobID: jobID, ApplicantID: applicantID}
	if coverLetter != "" {
		app.CoverLetter = &coverLetter
	}
	if resumeURL != "" {
		app.ResumeURL = &resumeURL
	}
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.BadRequest("You have already applied for this job")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// ListForUser branches on role: students see their own applications with
// the job attached, employers see applications to their postings with the
// applicant attached.
func (u *applicationUsecase) ListForUser(ctx context.Context, userID int64, role string) ([]domain.Application, error) {
	var (
		apps []domain.Application
		err  error
	)
	if role == domain.RoleStudent {
		apps, err = u.applicationRepo.GetByUser(ctx, userID)
	} else {
		apps, err = u.applicationRepo.GetByEmployer(ctx, userID)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, role string, id int64, status string) (*domain.Application, error) {
	if role == domain.RoleStudent {
		return nil, apperror.Unauthorized("Students cannot update application status")
	}
	if !domain.ValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Invalid application status")
	}

	app, err := u.applicationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}
