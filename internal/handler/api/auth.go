package api

import (
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/cookie"
	"car-rental-api/internal/pkg/jwt"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		q:          q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary Register
// @Description Create a user account. role defaults to user; merchants must provide company_name
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email, password, name and surname are required", nil)
		return
	}

	view, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	userResp, err := resdto.FromUserView(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.RegisterResponse{
		Message: "User registered successfully",
		User:    userResp,
	})
}

// @Summary User login
// @Description Login with email and password. Tokens are set as HttpOnly cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	userResp, err := resdto.FromUserView(result.User)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.setTokens(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Message: "Login successful",
		User:    userResp,
	})
}

// @Summary Refresh tokens
// @Description Issue a new token pair from the refresh_token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	tokens, err := h.cmds.RefreshToken(c.Request.Context(), cookie.GetRefreshToken(c))
	if err != nil {
		cookie.ClearTokenCookies(c, h.cfg.Cookie)
		httperr.FromError(c, err)
		return
	}

	h.setTokens(c, tokens)
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Token refreshed"})
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; dropping the cookies ends the browser session.
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Logout successful"})
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	resp, err := resdto.FromUserView(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) setTokens(c *gin.Context, tokens *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cfg.Cookie,
		tokens.AccessToken, tokens.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration(),
	)
}
