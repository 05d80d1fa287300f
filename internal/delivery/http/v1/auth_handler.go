package v1

import (
	"net/http"
	"os"

	"riseup-backend/internal/contract"
	"riseup-backend/internal/delivery/http/response"
	"riseup-backend/internal/domain"
	"riseup-backend/pkg/apperror"
	"riseup-backend/pkg/session"
	"riseup-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC   domain.AuthUsecase
	sessions *session.Manager
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, sessions *session.Manager) {
	handler := &AuthHandler{authUC: authUC, sessions: sessions}

	handle(public, contract.API.Auth.Register, handler.Register)
	handle(public, contract.API.Auth.Login, handler.Login)

	handle(protected, contract.API.Auth.Logout, handler.Logout)
	handle(protected, contract.API.Auth.Me, handler.Me)
	handle(protected, contract.API.Auth.UpdateProfile, handler.UpdateProfile)
}

// setSessionCookie writes the session cookie. Secure is tied to release
// mode so local development over plain HTTP keeps working.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", secure, true)
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account and start a session for it
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body      contract.RegisterRequest  true  "User JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req contract.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatFieldErrors(err)))
		return
	}

	user := &domain.User{
		Username:  req.Username,
		Role:      req.Role,
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		Location:  req.Location,
		Skills:    req.Skills,
		Interests: req.Interests,
	}

	created, err := h.authUC.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.sessions.Issue(c.Request.Context(), created.ID, created.Username, created.Role)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	h.setSessionCookie(c, token, int(h.sessions.TTL().Seconds()))

	response.Success(c, http.StatusCreated, "Account created", created)
}

// Login godoc
// @Summary      Log in
// @Description  Verify credentials and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      contract.LoginRequest  true  "Credentials JSON"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req contract.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatFieldErrors(err)))
		return
	}

	user, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.sessions.Issue(c.Request.Context(), user.ID, user.Username, user.Role)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	h.setSessionCookie(c, token, int(h.sessions.TTL().Seconds()))

	response.Success(c, http.StatusOK, "Logged in", user)
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke the session server-side and clear the cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /logout [post]
// @Security     CookieAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	sid := c.GetString(string(domain.KeySessionID))
	if sid != "" {
		if err := h.sessions.Revoke(c.Request.Context(), sid); err != nil {
			c.Error(apperror.Internal(err))
			return
		}
	}
	h.setSessionCookie(c, "", -1)

	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Get current user
// @Description  Return the authenticated user's account
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /user [get]
// @Security     CookieAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Update the authenticated user's profile fields
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        profile  body      contract.UpdateProfileRequest  true  "Profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /user [put]
// @Security     CookieAuth
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req contract.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatFieldErrors(err)))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	updates := &domain.ProfileUpdate{
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		Location:  req.Location,
		Skills:    req.Skills,
		Interests: req.Interests,
	}

	user, err := h.authUC.UpdateProfile(c.Request.Context(), userID, updates)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", user)
}
