package goalkeeper

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/keeperzone/keeperzone/internal/middleware"
	"github.com/keeperzone/keeperzone/internal/team"
	"github.com/keeperzone/keeperzone/pkg/responses"
	"github.com/keeperzone/keeperzone/pkg/validator"
)

// GoalkeeperController handles API requests for a coach's goalkeepers.
type GoalkeeperController struct {
	repo     GoalkeeperRepository
	teamRepo team.TeamRepository
}

// NewGoalkeeperController creates a new GoalkeeperController.
func NewGoalkeeperController(repo GoalkeeperRepository, teamRepo team.TeamRepository) *GoalkeeperController {
	return &GoalkeeperController{repo: repo, teamRepo: teamRepo}
}

type CreateGoalkeeperRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	BirthYear    int    `json:"birth_year" binding:"omitempty,min=1950,max=2100"`
	HeightCM     int    `json:"height_cm" binding:"omitempty,min=0,max=250"`
	WeightKG     int    `json:"weight_kg" binding:"omitempty,min=0,max=200"`
	Foot         string `json:"foot" binding:"omitempty,oneof=left right both"`
	JerseyNumber int    `json:"jersey_number" binding:"omitempty,min=0,max=99"`
}

type UpdateGoalkeeperRequest struct {
	Name         string `json:"name" binding:"omitempty,min=2,max=100"`
	BirthYear    *int   `json:"birth_year" binding:"omitempty"`
	HeightCM     *int   `json:"height_cm" binding:"omitempty"`
	WeightKG     *int   `json:"weight_kg" binding:"omitempty"`
	Foot         string `json:"foot" binding:"omitempty,oneof=left right both"`
	JerseyNumber *int   `json:"jersey_number" binding:"omitempty"`
}

// CreateGoalkeeper godoc
// @Summary Add a goalkeeper to one of the coach's teams
// @Tags Goalkeepers
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param goalkeeper body CreateGoalkeeperRequest true "Goalkeeper creation request"
// @Success 201 {object} responses.SuccessResponse{data=Goalkeeper}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id}/goalkeepers [post]
// @Security BearerAuth
func (gc *GoalkeeperController) CreateGoalkeeper(c *gin.Context) {
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

	var req CreateGoalkeeperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	// The team must belong to the requesting coach before anything is attached.
	ownedTeam, err := gc.teamRepo.GetTeamByID(coachID, uint(teamID))
	if err != nil {
		log.Error("create goalkeeper: team lookup failed", "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create goalkeeper", nil)
		return
	}
	if ownedTeam == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	gk := Goalkeeper{
		TeamID:       uint(teamID),
		Name:         req.Name,
		BirthYear:    req.BirthYear,
		HeightCM:     req.HeightCM,
		WeightKG:     req.WeightKG,
		Foot:         req.Foot,
		JerseyNumber: req.JerseyNumber,
	}
	if err := gc.repo.CreateGoalkeeper(&gk); err != nil {
		log.Error("create goalkeeper failed", "team_id", teamID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create goalkeeper", nil)
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Goalkeeper created successfully", gk)
}

// GetGoalkeepersForTeam godoc
// @Summary List goalkeepers of one of the coach's teams
// @Tags Goalkeepers
// @Produce json
// @Param team_id path int true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Goalkeeper}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id}/goalkeepers [get]
// @Security BearerAuth
func (gc *GoalkeeperController) GetGoalkeepersForTeam(c *gin.Context) {
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

	ownedTeam, err := gc.teamRepo.GetTeamByID(coachID, uint(teamID))
	if err != nil || ownedTeam == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found", nil)
		return
	}

	gks, total, err := gc.repo.GetGoalkeepersByTeam(coachID, uint(teamID), page, pageSize)
	if err != nil {
		log.Error("list goalkeepers failed", "team_id", teamID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve goalkeepers", nil)
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Goalkeepers retrieved successfully", gks, total, page, pageSize)
}

// GetGoalkeeperByID godoc
// @Summary Get a goalkeeper
// @Tags Goalkeepers
// @Produce json
// @Param goalkeeper_id path int true "Goalkeeper ID"
// @Success 200 {object} responses.SuccessResponse{data=Goalkeeper}
// @Failure 404 {object} responses.ErrorResponse "Goalkeeper not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /goalkeepers/{goalkeeper_id} [get]
// @Security BearerAuth
func (gc *GoalkeeperController) GetGoalkeeperByID(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	gkID, err := strconv.ParseUint(c.Param("goalkeeper_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid goalkeeper ID format", nil)
		return
	}

	gk, err := gc.repo.GetGoalkeeperByID(coachID, uint(gkID))
	if err != nil {
		log.Error("get goalkeeper failed", "goalkeeper_id", gkID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve goalkeeper", nil)
		return
	}
	if gk == nil {
		responses.SendError(c, http.StatusNotFound, "Goalkeeper not found", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Goalkeeper retrieved successfully", gk)
}

// UpdateGoalkeeper godoc
// @Summary Update a goalkeeper
// @Tags Goalkeepers
// @Accept json
// @Produce json
// @Param goalkeeper_id path int true "Goalkeeper ID"
// @Param goalkeeper body UpdateGoalkeeperRequest true "Goalkeeper update request"
// @Success 200 {object} responses.SuccessResponse{data=Goalkeeper}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Goalkeeper not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /goalkeepers/{goalkeeper_id} [put]
// @Security BearerAuth
func (gc *GoalkeeperController) UpdateGoalkeeper(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	gkID, err := strconv.ParseUint(c.Param("goalkeeper_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid goalkeeper ID format", nil)
		return
	}

	var req UpdateGoalkeeperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	gk, err := gc.repo.GetGoalkeeperByID(coachID, uint(gkID))
	if err != nil || gk == nil {
		responses.SendError(c, http.StatusNotFound, "Goalkeeper not found", nil)
		return
	}

	if req.Name != "" {
		gk.Name = req.Name
	}
	if req.BirthYear != nil {
		gk.BirthYear = *req.BirthYear
	}
	if req.HeightCM != nil {
		gk.HeightCM = *req.HeightCM
	}
	if req.WeightKG != nil {
		gk.WeightKG = *req.WeightKG
	}
	if req.Foot != "" {
		gk.Foot = req.Foot
	}
	if req.JerseyNumber != nil {
		gk.JerseyNumber = *req.JerseyNumber
	}

	if err := gc.repo.UpdateGoalkeeper(gk); err != nil {
		log.Error("update goalkeeper failed", "goalkeeper_id", gkID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update goalkeeper", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Goalkeeper updated successfully", gk)
}

// DeleteGoalkeeper godoc
// @Summary Delete a goalkeeper
// @Tags Goalkeepers
// @Produce json
// @Param goalkeeper_id path int true "Goalkeeper ID"
// @Success 200 {object} responses.SuccessResponse "Goalkeeper deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Goalkeeper not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /goalkeepers/{goalkeeper_id} [delete]
// @Security BearerAuth
func (gc *GoalkeeperController) DeleteGoalkeeper(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	gkID, err := strconv.ParseUint(c.Param("goalkeeper_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid goalkeeper ID format", nil)
		return
	}

	gk, err := gc.repo.GetGoalkeeperByID(coachID, uint(gkID))
	if err != nil || gk == nil {
		responses.SendError(c, http.StatusNotFound, "Goalkeeper not found", nil)
		return
	}

	if err := gc.repo.DeleteGoalkeeper(uint(gkID)); err != nil {
		log.Error("delete goalkeeper failed", "goalkeeper_id", gkID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete goalkeeper", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Goalkeeper deleted successfully", nil)
}
