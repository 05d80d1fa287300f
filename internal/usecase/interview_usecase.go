package usecase

import (
	"context"
	"errors"
	"fmt"

	"riseup-backend/internal/domain"
	"riseup-backend/pkg/ai"
	"riseup-backend/pkg/apperror"
)

type interviewUsecase struct {
	interviewRepo domain.InterviewRepository
	chatRepo      domain.ChatRepository
	feedbackGen   ai.FeedbackGenerator
}

func NewInterviewUsecase(interviewRepo domain.InterviewRepository, chatRepo domain.ChatRepository, feedbackGen ai.FeedbackGenerator) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo: interviewRepo,
		chatRepo:      chatRepo,
		feedbackGen:   feedbackGen,
	}
}

// StartInterview creates an interview record plus a backing conversation
// whose messages become the transcript at feedback time.
func (u *interviewUsecase) StartInterview(ctx context.Context, userID int64, jobTitle string) (*domain.Interview, error) {
	title := "General"
	if jobTitle != "" {
		title = jobTitle
	}
	conv, err := u.chatRepo.CreateConversation(ctx, fmt.Sprintf("Interview: %s", title))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	interview := &domain.Interview{
		UserID:         userID,
		ConversationID: &conv.ID,
	}
	if jobTitle != "" {
		interview.JobTitle = &jobTitle
	}
	if err := u.interviewRepo.Create(ctx, interview); err != nil {
		return nil, apperror.Internal(err)
	}
	return interview, nil
}

func (u *interviewUsecase) GetInterview(ctx context.Context, id int64) (*domain.Interview, error) {
	interview, err := u.interviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview not found")
		}
		return nil, apperror.Internal(err)
	}
	return interview, nil
}

func (u *interviewUsecase) ListByUser(ctx context.Context, userID int64) ([]domain.Interview, error) {
	interviews, err := u.interviewRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return interviews, nil
}

// GenerateFeedback snapshots the linked conversation into a transcript,
// asks the completion service to grade it, and stores transcript, feedback
// and score together. Audio payloads never leave the messages table.
func (u *interviewUsecase) GenerateFeedback(ctx context.Context, id int64) (*domain.Interview, error) {
	interview, err := u.interviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview not found")
		}
		return nil, apperror.Internal(err)
	}
	if interview.ConversationID == nil {
		return nil, apperror.BadRequest("Interview has no conversation to grade")
	}

	messages, err := u.chatRepo.GetMessages(ctx, *interview.ConversationID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(messages) == 0 {
		return nil, apperror.BadRequest("Interview conversation has no messages yet")
	}

	turns := make([]ai.Turn, 0, len(messages))
	transcript := make([]domain.TranscriptEntry, 0, len(messages))
	for _, msg := range messages {
		turns = append(turns, ai.Turn{Role: msg.Role, Content: msg.Content})
		transcript = append(transcript, domain.TranscriptEntry{Role: msg.Role, Content: msg.Content})
	}

	jobTitle := ""
	if interview.JobTitle != nil {
		jobTitle = *interview.JobTitle
	}
	result, err := u.feedbackGen.GenerateInterviewFeedback(ctx, jobTitle, turns)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	feedback := &domain.FeedbackReport{
		Strengths:    result.Feedback.Strengths,
		Improvements: result.Feedback.Improvements,
		Summary:      result.Feedback.Summary,
	}
	updated, err := u.interviewRepo.SetResults(ctx, id, transcript, feedback, result.Score)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return updated, nil
}
