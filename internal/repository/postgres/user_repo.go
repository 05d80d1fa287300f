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

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, password, role, name, email, bio, location, skills, interests, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
              RETURNING id`

	user.CreatedAt = time.Now()
	if user.Skills == nil {
		user.Skills = []string{}
	}
	if user.Interests == nil {
		user.Interests = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		user.Username, user.Password, user.Role, user.Name, user.Email,
		user.Bio, user.Location, user.Skills, user.Interests, user.CreatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, username, password, role, name, email, bio, location, skills, interests, created_at
              FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, username, password, role, name, email, bio, location, skills, interests, created_at
              FROM users WHERE username = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, username))
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $2, email = $3, bio = $4, location = $5, skills = $6, interests = $7
              WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Bio, user.Location, user.Skills, user.Interests,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.Role, &user.Name, &user.Email,
		&user.Bio, &user.Location, &user.Skills, &user.Interests, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
