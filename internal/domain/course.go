package domain

import (
	"context"
	"time"
)

type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Provider    string    `json:"provider"`
	Category    string    `json:"category"`
	URL         *string   `json:"url,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
}

type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	Fetch(ctx context.Context) ([]Course, error)
	Count(ctx context.Context) (int64, error)
}

type CourseUsecase interface {
	ListCourses(ctx context.Context) ([]Course, error)
	// RecommendedCourses returns courses for the given user skills. The
	// current matching is intentionally naive: every course is returned.
	RecommendedCourses(ctx context.Context, skills []string) ([]Course, error)
	SeedCourses(ctx context.Context) error
}
