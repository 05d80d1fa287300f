package contract

import "riseup-backend/internal/domain"

// Request DTOs bound by the handlers. Validation rules live here so client
// and server agree on the input shape of every route.

type RegisterRequest struct {
	Username  string   `json:"username" binding:"required,min=3,max=50"`
	Password  string   `json:"password" binding:"required,min=6"`
	Role      string   `json:"role" binding:"omitempty,oneof=student employer ngo"`
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Bio       *string  `json:"bio"`
	Location  *string  `json:"location"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1"`
	Email     *string  `json:"email" binding:"omitempty,email"`
	Bio       *string  `json:"bio"`
	Location  *string  `json:"location"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Company     string   `json:"company" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=full-time part-time contract internship apprenticeship"`
	Skills      []string `json:"skills"`
	SalaryRange *string  `json:"salary_range"`
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url" binding:"omitempty,url"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Applied 'Under Review' Accepted Rejected"`
}

type SaveResumeRequest struct {
	PersonalInfo   domain.PersonalInfo         `json:"personal_info" binding:"required"`
	Education      []domain.EducationEntry     `json:"education"`
	Skills         []string                    `json:"skills"`
	Projects       []domain.ProjectEntry       `json:"projects"`
	Experience     []domain.ExperienceEntry    `json:"experience"`
	Certifications []domain.CertificationEntry `json:"certifications"`
}

type StartInterviewRequest struct {
	JobTitle string `json:"job_title"`
}

type PostMessageRequest struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
	Audio   string `json:"audio"`
}
