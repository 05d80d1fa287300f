package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"riseup-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Resume, error) {
	query := `SELECT id, user_id, personal_info, education, skills, projects, experience, certifications, updated_at
              FROM resumes WHERE user_id = $1`

	var resume domain.Resume
	var personalInfo, education, skills, projects, experience, certifications []byte

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&resume.ID, &resume.UserID,
		&personalInfo, &education, &skills, &projects, &experience, &certifications,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	for _, section := range []struct {
		raw []byte
		dst interface{}
	}{
		{personalInfo, &resume.PersonalInfo},
		{education, &resume.Education},
		{skills, &resume.Skills},
		{projects, &resume.Projects},
		{experience, &resume.Experience},
		{certifications, &resume.Certifications},
	} {
		if err := json.Unmarshal(section.raw, section.dst); err != nil {
			return nil, err
		}
	}

	return &resume, nil
}

// Upsert creates or replaces the user's resume in one statement, keyed by
// the unique user_id, refreshing updated_at on conflict.
func (r *resumeRepo) Upsert(ctx context.Context, resume *domain.Resume) error {
	query := `
		INSERT INTO resumes (user_id, personal_info, education, skills, projects, experience, certifications, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			personal_info = EXCLUDED.personal_info,
			education = EXCLUDED.education,
			skills = EXCLUDED.skills,
			projects = EXCLUDED.projects,
			experience = EXCLUDED.experience,
			certifications = EXCLUDED.certifications,
			updated_at = EXCLUDED.updated_at
		RETURNING id`

	sections := make([][]byte, 0, 6)
	for _, src := range []interface{}{
		resume.PersonalInfo,
		emptySlice(resume.Education),
		emptySlice(resume.Skills),
		emptySlice(resume.Projects),
		emptySlice(resume.Experience),
		emptySlice(resume.Certifications),
	} {
		raw, err := json.Marshal(src)
		if err != nil {
			return err
		}
		sections = append(sections, raw)
	}

	resume.UpdatedAt = time.Now()

	return r.db.QueryRow(ctx, query,
		resume.UserID,
		sections[0], sections[1], sections[2], sections[3], sections[4], sections[5],
		resume.UpdatedAt,
	).Scan(&resume.ID)
}

// emptySlice keeps jsonb sections as [] instead of null for absent slices.
func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
