package usecase

import (
	"context"
	"log/slog"

	"riseup-backend/internal/domain"
	"riseup-backend/pkg/apperror"
	"riseup-backend/pkg/logger"
)

type courseUsecase struct {
	courseRepo domain.CourseRepository
}

func NewCourseUsecase(courseRepo domain.CourseRepository) domain.CourseUsecase {
	return &courseUsecase{courseRepo: courseRepo}
}

func (u *courseUsecase) ListCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := u.courseRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return courses, nil
}

// RecommendedCourses currently ignores the skills and returns the whole
// catalog. Skill matching needs a bigger catalog than the one we seed.
func (u *courseUsecase) RecommendedCourses(ctx context.Context, skills []string) ([]domain.Course, error) {
	return u.ListCourses(ctx)
}

// SeedCourses inserts the starter catalog when the table is empty. Called
// once at startup so a fresh deployment is never blank.
func (u *courseUsecase) SeedCourses(ctx context.Context) error {
	count, err := u.courseRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	eightWeeks := "8 weeks"
	fourWeeks := "4 weeks"
	seeds := []domain.Course{
		{
			Title:       "Web Development Bootcamp",
			Description: "Learn HTML, CSS, and JavaScript from scratch. Build real projects and start your career in tech.",
			Provider:    "RiseUp Academy",
			Category:    "Technology",
			Duration:    &eightWeeks,
			Skills:      []string{"HTML", "CSS", "JavaScript"},
		},
		{
			Title:       "Financial Literacy 101",
			Description: "Master budgeting, saving, and investing basics to take control of your financial future.",
			Provider:    "RiseUp Academy",
			Category:    "Finance",
			Duration:    &fourWeeks,
			Skills:      []string{"Budgeting", "Investing"},
		},
	}

	for i := range seeds {
		if err := u.courseRepo.Create(ctx, &seeds[i]); err != nil {
			return err
		}
	}

	logger.Log.Info("seeded starter courses", slog.Int("count", len(seeds)))
	return nil
}
