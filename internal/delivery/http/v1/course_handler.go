package v1

import (
	"net/http"

	"riseup-backend/internal/contract"
	"riseup-backend/internal/delivery/http/response"
	"riseup-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC domain.CourseUsecase
	authUC   domain.AuthUsecase
}

func NewCourseHandler(public *gin.RouterGroup, protected *gin.RouterGroup, courseUC domain.CourseUsecase, authUC domain.AuthUsecase) {
	handler := &CourseHandler{courseUC: courseUC, authUC: authUC}

	handle(public, contract.API.Courses.List, handler.List)
	handle(protected, contract.API.Courses.Recommended, handler.Recommended)
}

// List godoc
// @Summary      List courses
// @Description  Get the course catalog
// @Tags         courses
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseUC.ListCourses(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course list", courses)
}

// Recommended godoc
// @Summary      Recommended courses
// @Description  Get courses recommended for the authenticated user's skills
// @Tags         courses
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /courses/recommended [get]
// @Security     CookieAuth
func (h *CourseHandler) Recommended(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	courses, err := h.courseUC.RecommendedCourses(c.Request.Context(), user.Skills)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommended courses", courses)
}
