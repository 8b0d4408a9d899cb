package v1

import (
	"net/http"

	"go-skillmarket-backend/config"
	"go-skillmarket-backend/internal/delivery/http/response"
	"go-skillmarket-backend/internal/domain"
	"go-skillmarket-backend/pkg/apperror"
	"go-skillmarket-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	tokens *auth.TokenManager
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokens *auth.TokenManager, cfg *config.Config, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC: authUC,
		tokens: tokens,
		config: cfg,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", loginLimiter, handler.Login)
		publicAuth.POST("/logout", handler.Logout)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=candidate employer"`
	// Candidate extras
	Headline  string   `json:"headline"`
	Location  string   `json:"location"`
	Skills    []string `json:"skills"`
	ResumeURL string   `json:"resume_url"`
	// Employer extras
	CompanyName string `json:"company_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new candidate or employer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user := &domain.User{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Role:        req.Role,
		Headline:    req.Headline,
		Location:    req.Location,
		Skills:      req.Skills,
		ResumeURL:   req.ResumeURL,
		CompanyName: req.CompanyName,
	}

	created, err := h.authUC.Register(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.tokens.Generate(created.ID, created.Role)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	h.setAuthCookie(c, token)

	response.Success(c, http.StatusCreated, "Registered", gin.H{
		"user":  created,
		"token": token,
	})
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password, returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Role)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	h.setAuthCookie(c, token)

	response.Success(c, http.StatusOK, "Logged in", gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout godoc
// @Summary      User Logout
// @Description  Clears the auth cookie; bearer tokens simply expire
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// Me godoc
// @Summary      Current user
// @Description  Returns the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	maxAge := h.config.TokenTTLMinutes * 60
	c.SetCookie("auth_token", token, maxAge, "/", "", false, true)
}
