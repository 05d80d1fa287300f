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

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

func (r *interviewRepo) Create(ctx context.Context, interview *domain.Interview) error {
	query := `INSERT INTO interviews (user_id, conversation_id, job_title, created_at)
              VALUES ($1, $2, $3, $4)
              RETURNING id`

	interview.CreatedAt = time.Now()

	return r.db.QueryRow(ctx, query,
		interview.UserID, interview.ConversationID, interview.JobTitle, interview.CreatedAt,
	).Scan(&interview.ID)
}

func (r *interviewRepo) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	query := `SELECT id, user_id, conversation_id, job_title, transcript, feedback, score, created_at
              FROM interviews WHERE id = $1`
	return scanInterview(r.db.QueryRow(ctx, query, id))
}

func (r *interviewRepo) GetByUser(ctx context.Context, userID int64) ([]domain.Interview, error) {
	query := `SELECT id, user_id, conversation_id, job_title, transcript, feedback, score, created_at
              FROM interviews WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		interview, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *interview)
	}
	return interviews, rows.Err()
}

// SetResults persists transcript, feedback and score together. Calling it
// again overwrites the previous result.
func (r *interviewRepo) SetResults(ctx context.Context, id int64, transcript []domain.TranscriptEntry, feedback *domain.FeedbackReport, score int) (*domain.Interview, error) {
	query := `UPDATE interviews SET transcript = $2, feedback = $3, score = $4 WHERE id = $1
              RETURNING id, user_id, conversation_id, job_title, transcript, feedback, score, created_at`

	if transcript == nil {
		transcript = []domain.TranscriptEntry{}
	}
	transcriptJSON, err := json.Marshal(transcript)
	if err != nil {
		return nil, err
	}
	feedbackJSON, err := json.Marshal(feedback)
	if err != nil {
		return nil, err
	}

	return scanInterview(r.db.QueryRow(ctx, query, id, transcriptJSON, feedbackJSON, score))
}

func scanInterview(row pgx.Row) (*domain.Interview, error) {
	var interview domain.Interview
	var transcript, feedback []byte

	err := row.Scan(
		&interview.ID, &interview.UserID, &interview.ConversationID, &interview.JobTitle,
		&transcript, &feedback, &interview.Score, &interview.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if transcript != nil {
		if err := json.Unmarshal(transcript, &interview.Transcript); err != nil {
			return nil, err
		}
	}
	if feedback != nil {
		if err := json.Unmarshal(feedback, &interview.Feedback); err != nil {
			return nil, err
		}
	}
	return &interview, nil
}
