package api

import (
	"errors"
	"net/http"

	reqdto "renthub/internal/handler/dto/request"
	resdto "renthub/internal/handler/dto/response"
	"renthub/internal/handler/httperr"
	"renthub/internal/handler/middleware"
	"renthub/internal/pkg/config"
	"renthub/internal/pkg/cookie"
	"renthub/internal/pkg/jwt"
	"renthub/internal/usecase/commands"
	"renthub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	jwtSvc       *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, jwtSvc *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtSvc:       jwtSvc,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	pair, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrInactiveUser):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtSvc.AccessTokenDuration(), h.jwtSvc.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{AccessToken: pair.AccessToken})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Refresh token required", nil)
		return
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRefreshToken):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		case errors.Is(err, commands.ErrInactiveUser):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtSvc.AccessTokenDuration(), h.jwtSvc.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{AccessToken: pair.AccessToken})
}

// @Summary User logout
// @Description Clear token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	user, err := h.userQueries.GetAuthorizedUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MeResponse{User: user})
}
