package v1

import (
	"net/http"
	"strconv"

	"riseup-backend/internal/contract"
	"riseup-backend/internal/delivery/http/response"
	"riseup-backend/internal/domain"
	"riseup-backend/pkg/apperror"
	"riseup-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(public *gin.RouterGroup, protected *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	// Resumes are readable by anyone, matching the public profile view
	handle(public, contract.API.Resumes.Get, handler.Get)
	handle(protected, contract.API.Resumes.Save, handler.Save)
}

// Get godoc
// @Summary      Get a resume
// @Description  Get the resume of the given user
// @Tags         resumes
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{userId} [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	resume, err := h.resumeUC.GetResume(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume", resume)
}

// Save godoc
// @Summary      Save resume
// @Description  Create or replace the authenticated user's resume
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        resume  body      contract.SaveResumeRequest  true  "Resume JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /resumes [post]
// @Security     CookieAuth
func (h *ResumeHandler) Save(c *gin.Context) {
	var req contract.SaveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatFieldErrors(err)))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	resume := &domain.Resume{
		PersonalInfo:   req.PersonalInfo,
		Education:      req.Education,
		Skills:         req.Skills,
		Projects:       req.Projects,
		Experience:     req.Experience,
		Certifications: req.Certifications,
	}

	saved, err := h.resumeUC.SaveResume(c.Request.Context(), userID, resume)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume saved", saved)
}
