package postgres

import (
	"context"
	"errors"
	"time"

	"riseup-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. A unique index on (job_id, applicant_id)
// backs the duplicate check, so a concurrent duplicate surfaces here even if
// it slipped past CheckExists.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, applicant_id, status, cover_letter, resume_url, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)
              RETURNING id`

	app.CreatedAt = time.Now()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.ApplicantID, app.Status, app.CoverLetter, app.ResumeURL, app.CreatedAt,
	).Scan(&app.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT id, job_id, applicant_id, status, cover_letter, resume_url, created_at
              FROM applications WHERE id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CoverLetter, &app.ResumeURL, &app.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByUser returns the applicant's applications enriched with the parent job.
func (r *applicationRepo) GetByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.status, a.cover_letter, a.resume_url, a.created_at,
			j.id, j.title, j.description, j.company, j.location, j.type, j.skills, j.salary_range, j.posted_by, j.created_at
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		var job domain.Job
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CoverLetter, &app.ResumeURL, &app.CreatedAt,
			&job.ID, &job.Title, &job.Description, &job.Company, &job.Location, &job.Type,
			&job.Skills, &job.SalaryRange, &job.PostedBy, &job.CreatedAt,
		); err != nil {
			return nil, err
		}
		app.Job = &job
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByEmployer returns applications across every job the user posted,
// enriched with both the job and the applicant.
func (r *applicationRepo) GetByEmployer(ctx context.Context, userID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.applicant_id, a.status, a.cover_letter, a.resume_url, a.created_at,
			j.id, j.title, j.description, j.company, j.location, j.type, j.skills, j.salary_range, j.posted_by, j.created_at,
			u.id, u.username, u.role, u.name, u.email, u.bio, u.location, u.skills, u.interests, u.created_at
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN users u ON a.applicant_id = u.id
		WHERE j.posted_by = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		var job domain.Job
		var applicant domain.User
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CoverLetter, &app.ResumeURL, &app.CreatedAt,
			&job.ID, &job.Title, &job.Description, &job.Company, &job.Location, &job.Type,
			&job.Skills, &job.SalaryRange, &job.PostedBy, &job.CreatedAt,
			&applicant.ID, &applicant.Username, &applicant.Role, &applicant.Name, &applicant.Email,
			&applicant.Bio, &applicant.Location, &applicant.Skills, &applicant.Interests, &applicant.CreatedAt,
		); err != nil {
			return nil, err
		}
		app.Job = &job
		app.Applicant = &applicant
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) CountByJob(ctx context.Context, jobID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID).Scan(&count)
	return count, err
}

func (r *applicationRepo) CheckExists(ctx context.Context, jobID, applicantID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists)
	return exists, err
}

// UpdateStatus overwrites the status unconditionally; there is no legal
// transition ordering between statuses.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	query := `UPDATE applications SET status = $2 WHERE id = $1
              RETURNING id, job_id, applicant_id, status, cover_letter, resume_url, created_at`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id, status).Scan(
		&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CoverLetter, &app.ResumeURL, &app.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}
