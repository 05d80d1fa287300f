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

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(public *gin.RouterGroup, protected *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	handle(protected, contract.API.Interviews.Create, handler.Create)
	handle(protected, contract.API.Interviews.List, handler.List)
	// Single interviews are shareable by ID, results included
	handle(public, contract.API.Interviews.Get, handler.Get)
	handle(protected, contract.API.Interviews.GenerateFeedback, handler.GenerateFeedback)
}

// Create godoc
// @Summary      Start a mock interview
// @Description  Create an interview session with a linked conversation
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview  body      contract.StartInterviewRequest  false  "Interview JSON"
// @Success      201  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /interviews [post]
// @Security     CookieAuth
func (h *InterviewHandler) Create(c *gin.Context) {
	var req contract.StartInterviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.Validation("Validation failed", validation.FormatFieldErrors(err)))
			return
		}
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	interview, err := h.interviewUC.StartInterview(c.Request.Context(), userID, req.JobTitle)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview started", interview)
}

// List godoc
// @Summary      List interviews
// @Description  Get the authenticated user's mock interviews, newest first
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /interviews [get]
// @Security     CookieAuth
func (h *InterviewHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	interviews, err := h.interviewUC.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview list", interviews)
}

// Get godoc
// @Summary      Get an interview
// @Description  Get a mock interview with its transcript and feedback when present
// @Tags         interviews
// @Produce      json
// @Param        id   path      int  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [get]
func (h *InterviewHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	interview, err := h.interviewUC.GetInterview(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview", interview)
}

// GenerateFeedback godoc
// @Summary      Generate interview feedback
// @Description  Grade the interview's conversation and store transcript, feedback and score
// @Tags         interviews
// @Produce      json
// @Param        id   path      int  true  "Interview ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id}/feedback [post]
// @Security     CookieAuth
func (h *InterviewHandler) GenerateFeedback(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	interview, err := h.interviewUC.GenerateFeedback(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Feedback generated", interview)
}
