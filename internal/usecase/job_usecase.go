package usecase

import (
	"context"
	"errors"

	"riseup-backend/internal/domain"
	"riseup-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo         domain.JobRepository
	applicationRepo domain.ApplicationRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, applicationRepo domain.ApplicationRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, applicationRepo: applicationRepo}
}

// CreateJob persists a job posting. Students cannot post; the role gate
// lives here so every delivery path enforces it.
func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role == domain.RoleStudent {
		return nil, apperror.Unauthorized("Students cannot post jobs")
	}

	if !domain.ValidJobType(job.Type) {
		return nil, apperror.BadRequest("Invalid job type")
	}
	if job.PostedBy == 0 {
		return nil, apperror.BadRequest("Job must have a poster")
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// GetJobDetail returns the job with its application count attached.
func (u *jobUsecase) GetJobDetail(ctx context.Context, id int64) (*domain.JobDetail, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	count, err := u.applicationRepo.CountByJob(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.JobDetail{Job: *job, ApplicationCount: count}, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filters domain.JobFilters) ([]domain.Job, error) {
	if filters.Type != "" && !domain.ValidJobType(filters.Type) {
		return nil, apperror.BadRequest("Invalid job type filter")
	}

	jobs, err := u.jobRepo.Fetch(ctx, filters)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
