package domain

import (
	"context"
	"time"
)

// TranscriptEntry is one turn of a mock interview, copied from the linked
// conversation's messages when feedback is generated.
type TranscriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FeedbackReport is the structured coaching result produced by the
// completion service.
type FeedbackReport struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Summary      string   `json:"summary"`
}

// Interview starts with nil transcript, feedback and score; all three are
// populated together by feedback generation. Regenerating overwrites the
// previous result.
type Interview struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	ConversationID *int64            `json:"conversation_id,omitempty"`
	JobTitle       *string           `json:"job_title,omitempty"`
	Transcript     []TranscriptEntry `json:"transcript,omitempty"`
	Feedback       *FeedbackReport   `json:"feedback,omitempty"`
	Score          *int              `json:"score,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

type InterviewRepository interface {
	Create(ctx context.Context, interview *Interview) error
	GetByID(ctx context.Context, id int64) (*Interview, error)
	GetByUser(ctx context.Context, userID int64) ([]Interview, error)
	// SetResults stores transcript, feedback and score in one update.
	SetResults(ctx context.Context, id int64, transcript []TranscriptEntry, feedback *FeedbackReport, score int) (*Interview, error)
}

type InterviewUsecase interface {
	StartInterview(ctx context.Context, userID int64, jobTitle string) (*Interview, error)
	GetInterview(ctx context.Context, id int64) (*Interview, error)
	ListByUser(ctx context.Context, userID int64) ([]Interview, error)
	GenerateFeedback(ctx context.Context, id int64) (*Interview, error)
}
