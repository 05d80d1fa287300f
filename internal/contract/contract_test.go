package contract_test

import (
	"testing"

	"riseup-backend/internal/contract"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	t.Run("Should substitute a single param", func(t *testing.T) {
		url := contract.BuildURL(contract.API.Jobs.Get.Path, map[string]any{"id": 42})
		assert.Equal(t, "/api/jobs/42", url)
	})

	t.Run("Should substitute string params", func(t *testing.T) {
		url := contract.BuildURL(contract.API.Profiles.Get.Path, map[string]any{"username": "amina"})
		assert.Equal(t, "/api/profiles/amina", url)
	})

	t.Run("Should ignore params with no placeholder", func(t *testing.T) {
		url := contract.BuildURL(contract.API.Jobs.List.Path, map[string]any{"id": 42})
		assert.Equal(t, "/api/jobs", url)
	})

	t.Run("Should leave unfilled placeholders literal", func(t *testing.T) {
		url := contract.BuildURL(contract.API.Jobs.Get.Path, nil)
		assert.Equal(t, "/api/jobs/:id", url)
	})

	t.Run("Should handle nested paths", func(t *testing.T) {
		url := contract.BuildURL(contract.API.Conversations.PostMessage.Path, map[string]any{"id": 7})
		assert.Equal(t, "/api/conversations/7/messages", url)
	})
}

func TestRegistryShape(t *testing.T) {
	t.Run("Every endpoint has a method, an /api path and responses", func(t *testing.T) {
		endpoints := []contract.Endpoint{
			contract.API.Auth.Register,
			contract.API.Auth.Login,
			contract.API.Auth.Logout,
			contract.API.Auth.Me,
			contract.API.Auth.UpdateProfile,
			contract.API.Jobs.List,
			contract.API.Jobs.Get,
			contract.API.Jobs.Create,
			contract.API.Jobs.Apply,
			contract.API.Courses.List,
			contract.API.Courses.Recommended,
			contract.API.Interviews.Create,
			contract.API.Interviews.List,
			contract.API.Interviews.Get,
			contract.API.Interviews.GenerateFeedback,
			contract.API.Applications.List,
			contract.API.Applications.UpdateStatus,
			contract.API.Resumes.Get,
			contract.API.Resumes.Save,
			contract.API.Profiles.Get,
			contract.API.Conversations.PostMessage,
			contract.API.Conversations.ListMessages,
			contract.API.Conversations.Delete,
		}

		for _, ep := range endpoints {
			assert.NotEmpty(t, ep.Method)
			assert.Regexp(t, `^/api/`, ep.Path)
			assert.NotEmpty(t, ep.Responses)
		}
	})

	t.Run("Mutating auth routes use POST", func(t *testing.T) {
		assert.Equal(t, "POST", contract.API.Auth.Register.Method)
		assert.Equal(t, "POST", contract.API.Auth.Login.Method)
		assert.Equal(t, "POST", contract.API.Auth.Logout.Method)
		assert.Equal(t, "PUT", contract.API.Auth.UpdateProfile.Method)
	})

	t.Run("Status updates use PATCH", func(t *testing.T) {
		assert.Equal(t, "PATCH", contract.API.Applications.UpdateStatus.Method)
	})
}
