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

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	handle(protected, contract.API.Applications.List, handler.List)
	handle(protected, contract.API.Applications.UpdateStatus, handler.UpdateStatus)
}

// List godoc
// @Summary      List applications
// @Description  Students see their own applications; employers and NGOs see applications to their postings
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /applications [get]
// @Security     CookieAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	apps, err := h.applicationUC.ListForUser(c.Request.Context(), userID, role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application list", apps)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Move an application to a new status (employer and NGO accounts only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      int                                      true  "Application ID"
// @Param        status  body      contract.UpdateApplicationStatusRequest  true  "Status JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     CookieAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req contract.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatFieldErrors(err)))
		return
	}

	role := c.GetString(string(domain.KeyUserRole))
	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), role, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
