// Package ai wraps the completion service used to grade mock interviews.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Turn is one transcript line handed to the grader.
type Turn struct {
	Role    string
	Content string
}

// FeedbackContent is the structured coaching section of a result.
type FeedbackContent struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Summary      string   `json:"summary"`
}

// FeedbackResult is the parsed grader output.
type FeedbackResult struct {
	Score    int             `json:"score"`
	Feedback FeedbackContent `json:"feedback"`
}

// FeedbackGenerator produces interview feedback from a transcript.
type FeedbackGenerator interface {
	GenerateInterviewFeedback(ctx context.Context, jobTitle string, turns []Turn) (*FeedbackResult, error)
}

const requestTimeout = 60 * time.Second

type openAIGenerator struct {
	client *openai.Client
	model  string
}

// NewFeedbackGenerator creates a generator backed by the OpenAI chat
// completion API. Model defaults to gpt-4o when empty.
func NewFeedbackGenerator(apiKey, model string) FeedbackGenerator {
	if model == "" {
		model = openai.GPT4o
	}
	g := &openAIGenerator{model: model}
	if apiKey != "" {
		g.client = openai.NewClient(apiKey)
	}
	return g
}

func (g *openAIGenerator) GenerateInterviewFeedback(ctx context.Context, jobTitle string, turns []Turn) (*FeedbackResult, error) {
	if g.client == nil {
		return nil, errors.New("ai: OPENAI_API_KEY not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(jobTitle, turns),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ai: completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("ai: completion returned no choices")
	}

	return ParseFeedback(resp.Choices[0].Message.Content)
}

// BuildPrompt assembles the grading prompt. The transcript is concatenated
// as "ROLE: content" lines.
func BuildPrompt(jobTitle string, turns []Turn) string {
	if jobTitle == "" {
		jobTitle = "General Software Engineer"
	}

	var transcript strings.Builder
	for i, turn := range turns {
		if i > 0 {
			transcript.WriteByte('\n')
		}
		transcript.WriteString(strings.ToUpper(turn.Role))
		transcript.WriteString(": ")
		transcript.WriteString(turn.Content)
	}

	return fmt.Sprintf(`You are an expert career coach. Analyze the following mock interview transcript for the position of %q.

Transcript:
%s

Provide feedback in JSON format with two fields:
1. "score": a number from 0-100
2. "feedback": an object with "strengths" (array of strings), "improvements" (array of strings), and "summary" (string).`,
		jobTitle, transcript.String())
}

// ParseFeedback decodes the grader's JSON reply and clamps the score into
// the documented 0-100 range.
func ParseFeedback(raw string) (*FeedbackResult, error) {
	var result FeedbackResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("ai: malformed feedback payload: %w", err)
	}
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}
	return &result, nil
}
