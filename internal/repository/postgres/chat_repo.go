package postgres

import (
	"context"
	"errors"
	"time"

	"riseup-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type chatRepo struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) domain.ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) CreateConversation(ctx context.Context, title string) (*domain.Conversation, error) {
	query := `INSERT INTO conversations (title, created_at) VALUES ($1, $2) RETURNING id`

	conversation := &domain.Conversation{
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := r.db.QueryRow(ctx, query, conversation.Title, conversation.CreatedAt).Scan(&conversation.ID); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (r *chatRepo) GetConversation(ctx context.Context, id int64) (*domain.Conversation, error) {
	query := `SELECT id, title, created_at FROM conversations WHERE id = $1`

	var conversation domain.Conversation
	err := r.db.QueryRow(ctx, query, id).Scan(&conversation.ID, &conversation.Title, &conversation.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

// DeleteConversation removes the conversation; messages cascade via the
// foreign key.
func (r *chatRepo) DeleteConversation(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM conversations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *chatRepo) CreateMessage(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO messages (conversation_id, role, content, audio, created_at)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`

	msg.CreatedAt = time.Now()

	return r.db.QueryRow(ctx, query,
		msg.ConversationID, msg.Role, msg.Content, msg.Audio, msg.CreatedAt,
	).Scan(&msg.ID)
}

func (r *chatRepo) GetMessages(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	query := `SELECT id, conversation_id, role, content, audio, created_at
              FROM messages WHERE conversation_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content, &msg.Audio, &msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// ClearAudioBefore nulls audio payloads on messages older than the cutoff.
func (r *chatRepo) ClearAudioBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE messages SET audio = NULL WHERE created_at < $1 AND audio IS NOT NULL`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
