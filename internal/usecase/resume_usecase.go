package usecase

import (
	"context"
	"errors"

	"riseup-backend/internal/domain"
	"riseup-backend/pkg/apperror"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo}
}

func (u *resumeUsecase) GetResume(ctx context.Context, userID int64) (*domain.Resume, error) {
	resume, err := u.resumeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Internal(err)
	}
	return resume, nil
}

// SaveResume creates or replaces the caller's resume. One resume per user;
// the repository upserts on user_id.
func (u *resumeUsecase) SaveResume(ctx context.Context, userID int64, resume *domain.Resume) (*domain.Resume, error) {
	if userID == 0 {
		return nil, apperror.BadRequest("Resume must belong to a user")
	}
	resume.UserID = userID
	if err := u.resumeRepo.Upsert(ctx, resume); err != nil {
		return nil, apperror.Internal(err)
	}
	return resume, nil
}
