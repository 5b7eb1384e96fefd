package session

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/keeperzone/keeperzone/internal/middleware"
	"github.com/keeperzone/keeperzone/internal/team"
	"github.com/keeperzone/keeperzone/pkg/responses"
	"github.com/keeperzone/keeperzone/pkg/validator"
)

// SessionController handles API requests for training sessions.
type SessionController struct {
	repo     SessionRepository
	teamRepo team.TeamRepository
}

// NewSessionController creates a new SessionController.
func NewSessionController(repo SessionRepository, teamRepo team.TeamRepository) *SessionController {
	return &SessionController{repo: repo, teamRepo: teamRepo}
}

type CreateSessionRequest struct {
	Date            time.Time `json:"date" binding:"required"`
	Focus           string    `json:"focus" binding:"omitempty,max=200"`
	DurationMinutes int       `json:"duration_minutes" binding:"omitempty,min=0,max=600"`
	Notes           string    `json:"notes" binding:"omitempty,max=5000"`
}

type UpdateSessionRequest struct {
	Date            *time.Time `json:"date" binding:"omitempty"`
	Focus           string     `json:"focus" binding:"omitempty,max=200"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty"`
	Notes           string     `json:"notes" binding:"omitempty,max=5000"`
}

// CreateSession godoc
// @Summary Record a training session for a team
// @Tags Sessions
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param session body CreateSessionRequest true "Session creation request"
// @Success 201 {object} responses.SuccessResponse{data=Session}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id}/sessions [post]
// @Security BearerAuth
func (sc *SessionController) CreateSession(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID format", nil)
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	ownedTeam, err := sc.teamRepo.GetTeamByID(coachID, uint(teamID))
	if err != nil || ownedTeam == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	s := Session{
		TeamID:          uint(teamID),
		Date:            req.Date,
		Focus:           req.Focus,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if err := sc.repo.CreateSession(&s); err != nil {
		log.Error("create session failed", "team_id", teamID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create session", nil)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Session created successfully", s)
}

// GetSessionsForTeam godoc
// @Summary List training sessions for a team, newest first
// @Tags Sessions
// @Produce json
// @Param team_id path int true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Session}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id}/sessions [get]
// @Security BearerAuth
func (sc *SessionController) GetSessionsForTeam(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID format", nil)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	ownedTeam, err := sc.teamRepo.GetTeamByID(coachID, uint(teamID))
	if err != nil || ownedTeam == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	sessions, total, err := sc.repo.GetSessionsByTeam(coachID, uint(teamID), page, pageSize)
	if err != nil {
		log.Error("list sessions failed", "team_id", teamID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve sessions", nil)
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Sessions retrieved successfully", sessions, total, page, pageSize)
}

// UpdateSession godoc
// @Summary Update a training session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path int true "Session ID"
// @Param session body UpdateSessionRequest true "Session update request"
// @Success 200 {object} responses.SuccessResponse{data=Session}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Session not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /sessions/{session_id} [put]
// @Security BearerAuth
func (sc *SessionController) UpdateSession(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	sessionID, err := strconv.ParseUint(c.Param("session_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid session ID format", nil)
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	s, err := sc.repo.GetSessionByID(coachID, uint(sessionID))
	if err != nil || s == nil {
		responses.SendError(c, http.StatusNotFound, "Session not found", nil)
		return
	}

	if req.Date != nil {
		s.Date = *req.Date
	}
	if req.Focus != "" {
		s.Focus = req.Focus
	}
	if req.DurationMinutes != nil {
		s.DurationMinutes = *req.DurationMinutes
	}
	if req.Notes != "" {
		s.Notes = req.Notes
	}

	if err := sc.repo.UpdateSession(s); err != nil {
		log.Error("update session failed", "session_id", sessionID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update session", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Session updated successfully", s)
}

// DeleteSession godoc
// @Summary Delete a training session
// @Tags Sessions
// @Produce json
// @Param session_id path int true "Session ID"
// @Success 200 {object} responses.SuccessResponse "Session deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Session not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /sessions/{session_id} [delete]
// @Security BearerAuth
func (sc *SessionController) DeleteSession(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	sessionID, err := strconv.ParseUint(c.Param("session_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid session ID format", nil)
		return
	}

	s, err := sc.repo.GetSessionByID(coachID, uint(sessionID))
	if err != nil || s == nil {
		responses.SendError(c, http.StatusNotFound, "Session not found", nil)
		return
	}

	if err := sc.repo.DeleteSession(uint(sessionID)); err != nil {
		log.Error("delete session failed", "session_id", sessionID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete session", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Session deleted successfully", nil)
}
