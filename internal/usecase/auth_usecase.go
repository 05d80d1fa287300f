package usecase

import (
	"context"
	"errors"

	"riseup-backend/internal/domain"
	"riseup-backend/pkg/apperror"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo   domain.UserRepository
	resumeRepo domain.ResumeRepository
}

func NewAuthUsecase(userRepo domain.UserRepository, resumeRepo domain.ResumeRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, resumeRepo: resumeRepo}
}

func (u *authUsecase) Register(ctx context.Context, user *domain.User, plainPassword string) (*domain.User, error) {
	if user.Role == "" {
		user.Role = domain.RoleStudent
	}
	if !domain.ValidRole(user.Role) {
		return nil, apperror.BadRequest("Role must be student, employer or ngo")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.Password = string(hash)

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, apperror.BadRequest("Username already taken")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid username or password")
		}
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid username or password")
	}
	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields of updates. Username, password
// and role never change here.
func (u *authUsecase) UpdateProfile(ctx context.Context, id int64, updates *domain.ProfileUpdate) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Email != nil {
		user.Email = *updates.Email
	}
	if updates.Bio != nil {
		user.Bio = updates.Bio
	}
	if updates.Location != nil {
		user.Location = updates.Location
	}
	if updates.Skills != nil {
		user.Skills = updates.Skills
	}
	if updates.Interests != nil {
		user.Interests = updates.Interests
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// GetPublicProfile returns the user together with their resume, if any.
func (u *authUsecase) GetPublicProfile(ctx context.Context, username string) (*domain.PublicProfile, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}

	profile := &domain.PublicProfile{User: *user}

	resume, err := u.resumeRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	profile.Resume = resume

	return profile, nil
}
