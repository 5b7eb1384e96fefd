package team

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/keeperzone/keeperzone/internal/middleware"
	"github.com/keeperzone/keeperzone/pkg/responses"
	"github.com/keeperzone/keeperzone/pkg/validator"
)

// TeamController handles API requests for the coach's teams.
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new TeamController.
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

type CreateTeamRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Club     string `json:"club" binding:"omitempty,max=100"`
	AgeGroup string `json:"age_group" binding:"omitempty,max=50"`
	Notes    string `json:"notes" binding:"omitempty,max=2000"`
}

type UpdateTeamRequest struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=100"`
	Club     string `json:"club" binding:"omitempty,max=100"`
	AgeGroup string `json:"age_group" binding:"omitempty,max=50"`
	Notes    string `json:"notes" binding:"omitempty,max=2000"`
}

// CreateTeam godoc
// @Summary Create a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team creation request"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [post]
// @Security BearerAuth
func (tc *TeamController) CreateTeam(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	team := Team{
		CoachID:  coachID,
		Name:     req.Name,
		Club:     req.Club,
		AgeGroup: req.AgeGroup,
		Notes:    req.Notes,
	}
	if err := tc.repo.CreateTeam(&team); err != nil {
		log.Error("create team failed", "coach_id", coachID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create team", nil)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetTeams godoc
// @Summary List the coach's teams
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Team}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [get]
// @Security BearerAuth
func (tc *TeamController) GetTeams(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	teams, total, err := tc.repo.GetTeamsByCoach(coachID, page, pageSize)
	if err != nil {
		log.Error("list teams failed", "coach_id", coachID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve teams", nil)
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, pageSize)
}

// GetTeamByID godoc
// @Summary Get one of the coach's teams
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [get]
// @Security BearerAuth
func (tc *TeamController) GetTeamByID(c *gin.Context) {
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

	team, err := tc.repo.GetTeamByID(coachID, uint(teamID))
	if err != nil {
		log.Error("get team failed", "coach_id", coachID, "team_id", teamID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team", nil)
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param team body UpdateTeamRequest true "Team update request"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [put]
// @Security BearerAuth
func (tc *TeamController) UpdateTeam(c *gin.Context) {
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

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	team, err := tc.repo.GetTeamByID(coachID, uint(teamID))
	if err != nil || team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	if req.Name != "" {
		team.Name = req.Name
	}
	if req.Club != "" {
		team.Club = req.Club
	}
	if req.AgeGroup != "" {
		team.AgeGroup = req.AgeGroup
	}
	if req.Notes != "" {
		team.Notes = req.Notes
	}

	if err := tc.repo.UpdateTeam(team); err != nil {
		log.Error("update team failed", "coach_id", coachID, "team_id", teamID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update team", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Deletes a team; refused while goalkeepers are still attached.
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Team deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 409 {object} responses.ErrorResponse "Team still has goalkeepers"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [delete]
// @Security BearerAuth
func (tc *TeamController) DeleteTeam(c *gin.Context) {
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

	team, err := tc.repo.GetTeamByID(coachID, uint(teamID))
	if err != nil || team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	keepers, err := tc.repo.CountGoalkeepers(uint(teamID))
	if err != nil {
		log.Error("delete team: goalkeeper count failed", "team_id", teamID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete team", nil)
		return
	}
	if keepers > 0 {
		responses.SendError(c, http.StatusConflict, "Team still has goalkeepers attached", nil)
		return
	}

	if err := tc.repo.DeleteTeam(coachID, uint(teamID)); err != nil {
		log.Error("delete team failed", "coach_id", coachID, "team_id", teamID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete team", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}
