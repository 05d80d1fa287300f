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

type JobHandler struct {
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase, applicationUC domain.ApplicationUsecase) {
	handler := &JobHandler{jobUC: jobUC, applicationUC: applicationUC}

	// Browsing is public; posting and applying require a session
	handle(public, contract.API.Jobs.List, handler.List)
	handle(public, contract.API.Jobs.Get, handler.GetDetails)

	handle(protected, contract.API.Jobs.Create, handler.Create)
	handle(protected, contract.API.Jobs.Apply, handler.Apply)
}

// List godoc
// @Summary      List jobs
// @Description  Get job postings, optionally filtered by search, location and type
// @Tags         jobs
// @Produce      json
// @Param        search    query     string  false  "Match against title, description or company"
// @Param        location  query     string  false  "Location substring"
// @Param        type      query     string  false  "Job type"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filters := domain.JobFilters{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), filters)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", jobs)
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Get a job posting with its application count
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.GetJobDetail(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Create godoc
// @Summary      Create a job
// @Description  Create a job posting (employer and NGO accounts only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      contract.CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobs [post]
// @Security     CookieAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req contract.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatFieldErrors(err)))
		return
	}

	job := &domain.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Type:        req.Type,
		Skills:      req.Skills,
		SalaryRange: req.SalaryRange,
		PostedBy:    c.GetInt64(string(domain.KeyUserID)),
	}

	created, err := h.jobUC.CreateJob(c.Request.Context(), job)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", created)
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application; one per job per user
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id           path      int                    true   "Job ID"
// @Param        application  body      contract.ApplyRequest  false  "Application JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     CookieAuth
func (h *JobHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	// Body is optional; both fields may be empty
	var req contract.ApplyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.Validation("Validation failed", validation.FormatFieldErrors(err)))
			return
		}
	}

	applicantID := c.GetInt64(string(domain.KeyUserID))
	app, err := h.applicationUC.Apply(c.Request.Context(), applicantID, jobID, req.CoverLetter, req.ResumeURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}
