package auth

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/keeperzone/keeperzone/config"
	"github.com/keeperzone/keeperzone/internal/coach"
	"github.com/keeperzone/keeperzone/internal/middleware"
	"github.com/keeperzone/keeperzone/pkg/responses"
	"github.com/keeperzone/keeperzone/pkg/token"
	"github.com/keeperzone/keeperzone/pkg/utils"
	"github.com/keeperzone/keeperzone/pkg/validator"
)

// AuthController handles coach registration and session management.
type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

// NewAuthController creates a new AuthController.
func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, config: cfg}
}

// --- DTOs ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Club     string `json:"club" binding:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register godoc
// @Summary Register a new coach account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration request"
// @Success 201 {object} responses.SuccessResponse{data=coach.Coach}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Email already registered"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, err := ac.repo.FindCoachByEmail(req.Email)
	if err != nil {
		log.Error("register: email lookup failed", "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to register coach", nil)
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "A coach with this email already exists", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Error("register: password hashing failed", "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to register coach", nil)
		return
	}

	newCoach := coach.Coach{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Club:     req.Club,
	}
	if err := ac.repo.CreateCoach(&newCoach); err != nil {
		log.Error("register: create coach failed", "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to register coach", nil)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Coach registered successfully", newCoach)
}

// Login godoc
// @Summary Log in and receive an access/refresh token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login request"
// @Success 200 {object} responses.SuccessResponse{data=TokenPairResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 401 {object} responses.ErrorResponse "Invalid credentials"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	coachRow, err := ac.repo.FindCoachByEmail(req.Email)
	if err != nil {
		log.Error("login: email lookup failed", "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to log in", nil)
		return
	}
	if coachRow == nil || !utils.CheckPasswordHash(req.Password, coachRow.Password) {
		responses.SendError(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	pair, err := ac.issueTokenPair(coachRow.ID)
	if err != nil {
		log.Error("login: token issuance failed", "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to log in", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", pair)
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest true "Refresh request"
// @Success 200 {object} responses.SuccessResponse{data=TokenPairResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 401 {object} responses.ErrorResponse "Invalid or expired refresh token"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	stored, err := ac.repo.FindRefreshToken(req.RefreshToken)
	if err != nil {
		log.Error("refresh: token lookup failed", "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to refresh session", nil)
		return
	}
	if stored == nil {
		responses.SendError(c, http.StatusUnauthorized, "Invalid or expired refresh token", nil)
		return
	}

	// Rotate: the presented token is single-use.
	if err := ac.repo.RevokeRefreshToken(req.RefreshToken); err != nil {
		log.Error("refresh: token rotation failed", "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to refresh session", nil)
		return
	}

	pair, err := ac.issueTokenPair(stored.CoachID)
	if err != nil {
		log.Error("refresh: token issuance failed", "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to refresh session", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Session refreshed successfully", pair)
}

// Logout godoc
// @Summary Revoke all refresh tokens for the logged-in coach
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
// @Security BearerAuth
func (ac *AuthController) Logout(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	if err := ac.repo.RevokeAllForCoach(coachID); err != nil {
		log.Error("logout: token revocation failed", "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to log out", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// GetProfile godoc
// @Summary Get the logged-in coach's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=coach.Coach}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/me [get]
// @Security BearerAuth
func (ac *AuthController) GetProfile(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	coachRow, err := ac.repo.GetCoachByID(coachID)
	if err != nil || coachRow == nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load profile", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", coachRow)
}

func (ac *AuthController) issueTokenPair(coachID uint) (*TokenPairResponse, error) {
	access, err := token.GenerateAccessToken(coachID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, err
	}

	refresh := RefreshToken{
		CoachID:   coachID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Duration(ac.config.JWT.RefreshTokenExpiryDays) * 24 * time.Hour),
	}
	if err := ac.repo.CreateRefreshToken(&refresh); err != nil {
		return nil, err
	}

	return &TokenPairResponse{AccessToken: access, RefreshToken: refresh.Token}, nil
}
