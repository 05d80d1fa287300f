// Package contract declares the HTTP surface shared by the server and its
// clients: one Endpoint per route with its method, path template and the
// response payload per status code, plus the request DTOs the routes bind.
// The response mapping is documentation; the server does not re-validate
// its own output against it.
package contract

import (
	"fmt"
	"strings"
)

// Endpoint describes a single route. Path uses :param placeholders.
type Endpoint struct {
	Method    string
	Path      string
	Responses map[int]string // status code -> payload type
}

// API is the route registry. Handler registration and client URL building
// both go through it so the two sides cannot drift apart.
var API = struct {
	Auth struct {
		Register, Login, Logout, Me, UpdateProfile Endpoint
	}
	Jobs struct {
		List, Get, Create, Apply Endpoint
	}
	Courses struct {
		List, Recommended Endpoint
	}
	Interviews struct {
		Create, List, Get, GenerateFeedback Endpoint
	}
	Applications struct {
		List, UpdateStatus Endpoint
	}
	Resumes struct {
		Get, Save Endpoint
	}
	Profiles struct {
		Get Endpoint
	}
	Conversations struct {
		PostMessage, ListMessages, Delete Endpoint
	}
}{
	Auth: struct {
		Register, Login, Logout, Me, UpdateProfile Endpoint
	}{
		Register: Endpoint{
			Method:    "POST",
			Path:      "/api/register",
			Responses: map[int]string{201: "domain.User", 400: "validation"},
		},
		Login: Endpoint{
			Method:    "POST",
			Path:      "/api/login",
			Responses: map[int]string{200: "domain.User", 401: "unauthorized"},
		},
		Logout: Endpoint{
			Method:    "POST",
			Path:      "/api/logout",
			Responses: map[int]string{200: "empty"},
		},
		Me: Endpoint{
			Method:    "GET",
			Path:      "/api/user",
			Responses: map[int]string{200: "domain.User", 401: "unauthorized"},
		},
		UpdateProfile: Endpoint{
			Method:    "PUT",
			Path:      "/api/user",
			Responses: map[int]string{200: "domain.User", 400: "validation", 401: "unauthorized"},
		},
	},
	Jobs: struct {
		List, Get, Create, Apply Endpoint
	}{
		List: Endpoint{
			Method:    "GET",
			Path:      "/api/jobs",
			Responses: map[int]string{200: "[]domain.Job"},
		},
		Get: Endpoint{
			Method:    "GET",
			Path:      "/api/jobs/:id",
			Responses: map[int]string{200: "domain.JobDetail", 404: "notFound"},
		},
		Create: Endpoint{
			Method:    "POST",
			Path:      "/api/jobs",
			Responses: map[int]string{201: "domain.Job", 400: "validation", 401: "unauthorized"},
		},
		Apply: Endpoint{
			Method:    "POST",
			Path:      "/api/jobs/:id/apply",
			Responses: map[int]string{201: "domain.Application", 400: "validation", 401: "unauthorized"},
		},
	},
	Courses: struct {
		List, Recommended Endpoint
	}{
		List: Endpoint{
			Method:    "GET",
			Path:      "/api/courses",
			Responses: map[int]string{200: "[]domain.Course"},
		},
		Recommended: Endpoint{
			Method:    "GET",
			Path:      "/api/courses/recommended",
			Responses: map[int]string{200: "[]domain.Course", 401: "unauthorized"},
		},
	},
	Interviews: struct {
		Create, List, Get, GenerateFeedback Endpoint
	}{
		Create: Endpoint{
			Method:    "POST",
			Path:      "/api/interviews",
			Responses: map[int]string{201: "domain.Interview", 400: "validation", 401: "unauthorized"},
		},
		List: Endpoint{
			Method:    "GET",
			Path:      "/api/interviews",
			Responses: map[int]string{200: "[]domain.Interview", 401: "unauthorized"},
		},
		Get: Endpoint{
			Method:    "GET",
			Path:      "/api/interviews/:id",
			Responses: map[int]string{200: "domain.Interview", 404: "notFound"},
		},
		GenerateFeedback: Endpoint{
			Method:    "POST",
			Path:      "/api/interviews/:id/feedback",
			Responses: map[int]string{200: "domain.Interview", 400: "validation", 404: "notFound"},
		},
	},
	Applications: struct {
		List, UpdateStatus Endpoint
	}{
		List: Endpoint{
			Method:    "GET",
			Path:      "/api/applications",
			Responses: map[int]string{200: "[]domain.Application", 401: "unauthorized"},
		},
		UpdateStatus: Endpoint{
			Method:    "PATCH",
			Path:      "/api/applications/:id/status",
			Responses: map[int]string{200: "domain.Application", 400: "validation", 401: "unauthorized"},
		},
	},
	Resumes: struct {
		Get, Save Endpoint
	}{
		Get: Endpoint{
			Method:    "GET",
			Path:      "/api/resumes/:userId",
			Responses: map[int]string{200: "domain.Resume", 404: "notFound"},
		},
		Save: Endpoint{
			Method:    "POST",
			Path:      "/api/resumes",
			Responses: map[int]string{200: "domain.Resume", 400: "validation", 401: "unauthorized"},
		},
	},
	Profiles: struct {
		Get Endpoint
	}{
		Get: Endpoint{
			Method:    "GET",
			Path:      "/api/profiles/:username",
			Responses: map[int]string{200: "domain.PublicProfile", 404: "notFound"},
		},
	},
	Conversations: struct {
		PostMessage, ListMessages, Delete Endpoint
	}{
		PostMessage: Endpoint{
			Method:    "POST",
			Path:      "/api/conversations/:id/messages",
			Responses: map[int]string{201: "domain.Message", 400: "validation", 401: "unauthorized"},
		},
		ListMessages: Endpoint{
			Method:    "GET",
			Path:      "/api/conversations/:id/messages",
			Responses: map[int]string{200: "[]domain.Message", 401: "unauthorized"},
		},
		Delete: Endpoint{
			Method:    "DELETE",
			Path:      "/api/conversations/:id",
			Responses: map[int]string{200: "empty", 404: "notFound"},
		},
	},
}

// BuildURL substitutes :param placeholders in a path template. Params with
// no matching placeholder are ignored; placeholders with no param stay as
// literal :key tokens, which is a caller error the server will 404 on.
func BuildURL(path string, params map[string]any) string {
	url := path
	for key, value := range params {
		token := ":" + key
		if strings.Contains(url, token) {
			url = strings.Replace(url, token, fmt.Sprint(value), 1)
		}
	}
	return url
}
