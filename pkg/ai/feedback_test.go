package ai_test

import (
	"testing"

	"riseup-backend/pkg/ai"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	turns := []ai.Turn{
		{Role: "assistant", Content: "Tell me about yourself."},
		{Role: "user", Content: "I build backends."},
	}

	t.Run("Should include the job title and transcript", func(t *testing.T) {
		prompt := ai.BuildPrompt("Backend Engineer", turns)
		assert.Contains(t, prompt, `"Backend Engineer"`)
		assert.Contains(t, prompt, "ASSISTANT: Tell me about yourself.")
		assert.Contains(t, prompt, "USER: I build backends.")
	})

	t.Run("Should default the job title", func(t *testing.T) {
		prompt := ai.BuildPrompt("", turns)
		assert.Contains(t, prompt, "General Software Engineer")
	})
}

func TestParseFeedback(t *testing.T) {
	t.Run("Should decode a well-formed reply", func(t *testing.T) {
		raw := `{"score": 82, "feedback": {"strengths": ["clear answers"], "improvements": ["slow down"], "summary": "Good."}}`
		result, err := ai.ParseFeedback(raw)
		assert.NoError(t, err)
		assert.Equal(t, 82, result.Score)
		assert.Equal(t, []string{"clear answers"}, result.Feedback.Strengths)
		assert.Equal(t, "Good.", result.Feedback.Summary)
	})

	t.Run("Should clamp out-of-range scores", func(t *testing.T) {
		result, err := ai.ParseFeedback(`{"score": 140, "feedback": {"summary": "x"}}`)
		assert.NoError(t, err)
		assert.Equal(t, 100, result.Score)

		result, err = ai.ParseFeedback(`{"score": -5, "feedback": {"summary": "x"}}`)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Score)
	})

	t.Run("Should reject malformed payloads", func(t *testing.T) {
		_, err := ai.ParseFeedback("not json")
		assert.Error(t, err)
	})
}
