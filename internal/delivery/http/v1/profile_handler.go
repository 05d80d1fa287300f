package v1

import (
	"net/http"

	"riseup-backend/internal/contract"
	"riseup-backend/internal/delivery/http/response"
	"riseup-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	authUC domain.AuthUsecase
}

func NewProfileHandler(public *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &ProfileHandler{authUC: authUC}

	handle(public, contract.API.Profiles.Get, handler.Get)
}

// Get godoc
// @Summary      Get a public profile
// @Description  Get a user's public profile with their resume when one exists
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/{username} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.authUC.GetPublicProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Public profile", profile)
}
