package postgres

import (
	"context"
	"time"

	"riseup-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type courseRepo struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) domain.CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) error {
	query := `INSERT INTO courses (title, description, provider, category, url, duration, skills, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              RETURNING id`

	course.CreatedAt = time.Now()
	if course.Skills == nil {
		course.Skills = []string{}
	}

	return r.db.QueryRow(ctx, query,
		course.Title, course.Description, course.Provider, course.Category,
		course.URL, course.Duration, course.Skills, course.CreatedAt,
	).Scan(&course.ID)
}

func (r *courseRepo) Fetch(ctx context.Context) ([]domain.Course, error) {
	query := `SELECT id, title, description, provider, category, url, duration, skills, created_at
              FROM courses ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.Provider, &course.Category,
			&course.URL, &course.Duration, &course.Skills, &course.CreatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (r *courseRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count)
	return count, err
}
