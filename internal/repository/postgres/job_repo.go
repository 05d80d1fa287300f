package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"riseup-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, description, company, location, type, skills, salary_range, posted_by, created_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, description, company, location, type, skills, salary_range, posted_by, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
              RETURNING id`

	job.CreatedAt = time.Now()
	if job.Skills == nil {
		job.Skills = []string{}
	}

	return r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.Company, job.Location, job.Type,
		job.Skills, job.SalaryRange, job.PostedBy, job.CreatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, &job.Company, &job.Location, &job.Type,
		&job.Skills, &job.SalaryRange, &job.PostedBy, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Fetch returns jobs matching the filters, newest first. Search matches
// title, description or company case-insensitively; location is a
// case-insensitive substring match; type is exact. Filters AND together.
func (r *jobRepo) Fetch(ctx context.Context, filters domain.JobFilters) ([]domain.Job, error) {
	var conditions []string
	var args []interface{}

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR company ILIKE $%d)", n, n, n))
	}
	if filters.Location != "" {
		args = append(args, "%"+filters.Location+"%")
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filters.Type != "" {
		args = append(args, filters.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

func (r *jobRepo) FetchByEmployer(ctx context.Context, userID int64) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE posted_by = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.Company, &job.Location, &job.Type,
			&job.Skills, &job.SalaryRange, &job.PostedBy, &job.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
