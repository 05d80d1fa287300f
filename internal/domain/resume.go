package domain

import (
	"context"
	"time"
)

// Resume sub-sections are stored as jsonb columns but modeled as explicit
// value types so consumers get compile-time coverage of the shapes.

type PersonalInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	Summary     string `json:"summary,omitempty"`
	ProfileLink string `json:"profileLink,omitempty"`
}

type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field,omitempty"`
	StartYear string `json:"startYear,omitempty"`
	EndYear   string `json:"endYear,omitempty"`
}

type ProjectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

type ExperienceEntry struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Description string `json:"description,omitempty"`
	StartYear   string `json:"startYear,omitempty"`
	EndYear     string `json:"endYear,omitempty"`
}

type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

// Resume is 1-1 with a user. Saving uses upsert semantics keyed by user_id.
type Resume struct {
	ID             int64                `json:"id"`
	UserID         int64                `json:"user_id"`
	PersonalInfo   PersonalInfo         `json:"personal_info"`
	Education      []EducationEntry     `json:"education"`
	Skills         []string             `json:"skills"`
	Projects       []ProjectEntry       `json:"projects"`
	Experience     []ExperienceEntry    `json:"experience"`
	Certifications []CertificationEntry `json:"certifications"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type ResumeRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*Resume, error)
	// Upsert creates the user's resume or replaces it in place,
	// refreshing updated_at.
	Upsert(ctx context.Context, resume *Resume) error
}

type ResumeUsecase interface {
	GetResume(ctx context.Context, userID int64) (*Resume, error)
	SaveResume(ctx context.Context, userID int64, resume *Resume) (*Resume, error)
}
