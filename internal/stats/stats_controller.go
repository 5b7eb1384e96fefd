package stats

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/keeperzone/keeperzone/config"
	"github.com/keeperzone/keeperzone/internal/middleware"
	"github.com/keeperzone/keeperzone/pkg/responses"
	"github.com/keeperzone/keeperzone/pkg/validator"
)

// StatsController handles API requests for goalkeeper statistics records and
// the derived ranking/comparison views.
type StatsController struct {
	repo   StatsRepository
	guard  *OwnershipGuard
	config *config.Config
}

// NewStatsController creates a new StatsController.
func NewStatsController(repo StatsRepository, guard *OwnershipGuard, cfg *config.Config) *StatsController {
	return &StatsController{repo: repo, guard: guard, config: cfg}
}

// --- DTOs ---

type CreateStatsRequest struct {
	Season         string `json:"season" binding:"required,min=1,max=50"`
	MatchesPlayed  *int   `json:"matches_played" binding:"omitempty,min=0"`
	MinutesPlayed  *int   `json:"minutes_played" binding:"omitempty,min=0"`
	GoalsConceded  *int   `json:"goals_conceded" binding:"omitempty,min=0"`
	CleanSheets    *int   `json:"clean_sheets" binding:"omitempty,min=0"`
	Saves          *int   `json:"saves" binding:"omitempty,min=0"`
	PenaltiesSaved *int   `json:"penalties_saved" binding:"omitempty,min=0"`
	PenaltiesFaced *int   `json:"penalties_faced" binding:"omitempty,min=0"`
	YellowCards    *int   `json:"yellow_cards" binding:"omitempty,min=0"`
	RedCards       *int   `json:"red_cards" binding:"omitempty,min=0"`
}

type UpdateStatsRequest struct {
	Season         *string `json:"season" binding:"omitempty,min=1,max=50"`
	MatchesPlayed  *int    `json:"matches_played" binding:"omitempty,min=0"`
	MinutesPlayed  *int    `json:"minutes_played" binding:"omitempty,min=0"`
	GoalsConceded  *int    `json:"goals_conceded" binding:"omitempty,min=0"`
	CleanSheets    *int    `json:"clean_sheets" binding:"omitempty,min=0"`
	Saves          *int    `json:"saves" binding:"omitempty,min=0"`
	PenaltiesSaved *int    `json:"penalties_saved" binding:"omitempty,min=0"`
	PenaltiesFaced *int    `json:"penalties_faced" binding:"omitempty,min=0"`
	YellowCards    *int    `json:"yellow_cards" binding:"omitempty,min=0"`
	RedCards       *int    `json:"red_cards" binding:"omitempty,min=0"`
}

type CompareRequest struct {
	GoalkeeperIDs []uint `json:"goalkeeper_ids" binding:"required,min=2"`
	Season        string `json:"season" binding:"required,min=1,max=50"`
}

// fields collects only the counters present in the partial into an update map.
func (req *UpdateStatsRequest) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if req.Season != nil {
		fields["season"] = *req.Season
	}
	if req.MatchesPlayed != nil {
		fields["matches_played"] = *req.MatchesPlayed
	}
	if req.MinutesPlayed != nil {
		fields["minutes_played"] = *req.MinutesPlayed
	}
	if req.GoalsConceded != nil {
		fields["goals_conceded"] = *req.GoalsConceded
	}
	if req.CleanSheets != nil {
		fields["clean_sheets"] = *req.CleanSheets
	}
	if req.Saves != nil {
		fields["saves"] = *req.Saves
	}
	if req.PenaltiesSaved != nil {
		fields["penalties_saved"] = *req.PenaltiesSaved
	}
	if req.PenaltiesFaced != nil {
		fields["penalties_faced"] = *req.PenaltiesFaced
	}
	if req.YellowCards != nil {
		fields["yellow_cards"] = *req.YellowCards
	}
	if req.RedCards != nil {
		fields["red_cards"] = *req.RedCards
	}
	return fields
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// sendDecision translates a non-authorized guard outcome into 403/404.
func sendDecision(c *gin.Context, decision AccessDecision, resource string) {
	switch decision {
	case DecisionForbidden:
		responses.SendError(c, http.StatusForbidden, "You do not have access to this "+resource, nil)
	default:
		responses.SendError(c, http.StatusNotFound, resource+" not found", nil)
	}
}

// CreateStats godoc
// @Summary Create a season statistics record for a goalkeeper
// @Description Creates the record, or overwrites the counters when a record for the same (goalkeeper, season) already exists.
// @Tags Statistics
// @Accept json
// @Produce json
// @Param goalkeeper_id path int true "Goalkeeper ID"
// @Param stats body CreateStatsRequest true "Statistics creation request"
// @Success 201 {object} responses.SuccessResponse{data=StatisticsRecord}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 403 {object} responses.ErrorResponse "Goalkeeper owned by another coach"
// @Failure 404 {object} responses.ErrorResponse "Goalkeeper not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /goalkeepers/{goalkeeper_id}/stats [post]
// @Security BearerAuth
func (sc *StatsController) CreateStats(c *gin.Context) {
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

	var req CreateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	// Forward ownership check: nothing is written for a goalkeeper the coach
	// does not own.
	decision, err := sc.guard.CheckGoalkeeperAccess(coachID, uint(gkID))
	if err != nil {
		log.Error("create stats: ownership check failed", "goalkeeper_id", gkID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create statistics record", nil)
		return
	}
	if decision != DecisionAuthorized {
		sendDecision(c, decision, "Goalkeeper")
		return
	}

	rec := StatisticsRecord{
		GoalkeeperID:   uint(gkID),
		Season:         req.Season,
		MatchesPlayed:  intOrZero(req.MatchesPlayed),
		MinutesPlayed:  intOrZero(req.MinutesPlayed),
		GoalsConceded:  intOrZero(req.GoalsConceded),
		CleanSheets:    intOrZero(req.CleanSheets),
		Saves:          intOrZero(req.Saves),
		PenaltiesSaved: intOrZero(req.PenaltiesSaved),
		PenaltiesFaced: intOrZero(req.PenaltiesFaced),
		YellowCards:    intOrZero(req.YellowCards),
		RedCards:       intOrZero(req.RedCards),
	}
	if err := sc.repo.CreateRecord(&rec); err != nil {
		log.Error("create stats failed", "goalkeeper_id", gkID, "season", req.Season, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to create statistics record", nil)
		return
	}

	ComputeDerivedMetrics(&rec)
	responses.SendSuccess(c, http.StatusCreated, "Statistics record created successfully", rec)
}

// GetStatsForGoalkeeper godoc
// @Summary List a goalkeeper's statistics records, newest season first
// @Tags Statistics
// @Produce json
// @Param goalkeeper_id path int true "Goalkeeper ID"
// @Success 200 {object} responses.SuccessResponse{data=[]StatisticsRecord}
// @Failure 403 {object} responses.ErrorResponse "Goalkeeper owned by another coach"
// @Failure 404 {object} responses.ErrorResponse "Goalkeeper not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /goalkeepers/{goalkeeper_id}/stats [get]
// @Security BearerAuth
func (sc *StatsController) GetStatsForGoalkeeper(c *gin.Context) {
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

	decision, err := sc.guard.CheckGoalkeeperAccess(coachID, uint(gkID))
	if err != nil {
		log.Error("list stats: ownership check failed", "goalkeeper_id", gkID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve statistics", nil)
		return
	}
	if decision != DecisionAuthorized {
		sendDecision(c, decision, "Goalkeeper")
		return
	}

	recs, err := sc.repo.ListByGoalkeeper(uint(gkID))
	if err != nil {
		log.Error("list stats failed", "goalkeeper_id", gkID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve statistics", nil)
		return
	}
	for i := range recs {
		ComputeDerivedMetrics(&recs[i])
	}

	responses.SendSuccess(c, http.StatusOK, "Statistics retrieved successfully", recs)
}

// GetRecord godoc
// @Summary Get a statistics record with derived metrics
// @Tags Statistics
// @Produce json
// @Param record_id path int true "Record ID"
// @Success 200 {object} responses.SuccessResponse{data=StatisticsRecord}
// @Failure 403 {object} responses.ErrorResponse "Record owned by another coach"
// @Failure 404 {object} responses.ErrorResponse "Record not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /stats/records/{record_id} [get]
// @Security BearerAuth
func (sc *StatsController) GetRecord(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	recordID, err := strconv.ParseUint(c.Param("record_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid record ID format", nil)
		return
	}

	decision, rec, err := sc.guard.CheckRecordAccess(coachID, uint(recordID))
	if err != nil {
		log.Error("get record: ownership check failed", "record_id", recordID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve statistics record", nil)
		return
	}
	if decision != DecisionAuthorized {
		sendDecision(c, decision, "Statistics record")
		return
	}

	ComputeDerivedMetrics(rec)
	responses.SendSuccess(c, http.StatusOK, "Statistics record retrieved successfully", rec)
}

// UpdateRecord godoc
// @Summary Partially update a statistics record
// @Description Merges only the supplied fields; omitted counters keep their values.
// @Tags Statistics
// @Accept json
// @Produce json
// @Param record_id path int true "Record ID"
// @Param stats body UpdateStatsRequest true "Partial update request"
// @Success 200 {object} responses.SuccessResponse{data=StatisticsRecord}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 403 {object} responses.ErrorResponse "Record owned by another coach"
// @Failure 404 {object} responses.ErrorResponse "Record not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /stats/records/{record_id} [put]
// @Security BearerAuth
func (sc *StatsController) UpdateRecord(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	recordID, err := strconv.ParseUint(c.Param("record_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid record ID format", nil)
		return
	}

	var req UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	decision, _, err := sc.guard.CheckRecordAccess(coachID, uint(recordID))
	if err != nil {
		log.Error("update record: ownership check failed", "record_id", recordID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update statistics record", nil)
		return
	}
	if decision != DecisionAuthorized {
		sendDecision(c, decision, "Statistics record")
		return
	}

	updated, err := sc.repo.UpdateRecord(uint(recordID), req.fields())
	if err != nil || updated == nil {
		log.Error("update record failed", "record_id", recordID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to update statistics record", nil)
		return
	}

	ComputeDerivedMetrics(updated)
	responses.SendSuccess(c, http.StatusOK, "Statistics record updated successfully", updated)
}

// DeleteRecord godoc
// @Summary Delete a statistics record
// @Tags Statistics
// @Produce json
// @Param record_id path int true "Record ID"
// @Success 200 {object} responses.SuccessResponse "Record deleted successfully"
// @Failure 403 {object} responses.ErrorResponse "Record owned by another coach"
// @Failure 404 {object} responses.ErrorResponse "Record not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /stats/records/{record_id} [delete]
// @Security BearerAuth
func (sc *StatsController) DeleteRecord(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	recordID, err := strconv.ParseUint(c.Param("record_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid record ID format", nil)
		return
	}

	decision, _, err := sc.guard.CheckRecordAccess(coachID, uint(recordID))
	if err != nil {
		log.Error("delete record: ownership check failed", "record_id", recordID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete statistics record", nil)
		return
	}
	if decision != DecisionAuthorized {
		sendDecision(c, decision, "Statistics record")
		return
	}

	if err := sc.repo.DeleteRecord(uint(recordID)); err != nil {
		log.Error("delete record failed", "record_id", recordID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete statistics record", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Statistics record deleted successfully", nil)
}

// GetSeasons godoc
// @Summary List distinct season labels across the coach's roster, newest first
// @Tags Statistics
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]string}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /stats/seasons [get]
// @Security BearerAuth
func (sc *StatsController) GetSeasons(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	seasons, err := sc.repo.ListSeasons(coachID)
	if err != nil {
		log.Error("list seasons failed", "coach_id", coachID, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve seasons", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Seasons retrieved successfully", seasons)
}

// GetSeasonOverview godoc
// @Summary List the coach's roster records for a season, most matches first
// @Tags Statistics
// @Produce json
// @Param season path string true "Season label"
// @Success 200 {object} responses.SuccessResponse{data=[]StatisticsRecord}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /stats/seasons/{season} [get]
// @Security BearerAuth
func (sc *StatsController) GetSeasonOverview(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	season := c.Param("season")

	recs, err := sc.repo.ListBySeason(coachID, season)
	if err != nil {
		log.Error("season overview failed", "coach_id", coachID, "season", season, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve season overview", nil)
		return
	}
	for i := range recs {
		ComputeDerivedMetrics(&recs[i])
	}

	responses.SendSuccess(c, http.StatusOK, "Season overview retrieved successfully", recs)
}

// GetTopPerformers godoc
// @Summary Rank the coach's goalkeepers for a season
// @Description Goalkeepers below the minimum matches-played sample are excluded. An empty list is a valid result.
// @Tags Statistics
// @Produce json
// @Param season query string true "Season label"
// @Param limit query int false "Maximum entries" default(10)
// @Success 200 {object} responses.SuccessResponse{data=[]StatisticsRecord}
// @Failure 400 {object} responses.ErrorResponse "Missing season or invalid limit"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /stats/top-performers [get]
// @Security BearerAuth
func (sc *StatsController) GetTopPerformers(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	season := c.Query("season")
	if season == "" {
		responses.SendError(c, http.StatusBadRequest, "Query parameter 'season' is required", nil)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		responses.SendError(c, http.StatusBadRequest, "Query parameter 'limit' must be a positive integer", nil)
		return
	}

	recs, err := sc.repo.TopPerformers(coachID, season, limit, sc.config.Stats.MinMatches)
	if err != nil {
		log.Error("top performers failed", "coach_id", coachID, "season", season, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve top performers", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Top performers retrieved successfully", recs)
}

// CompareGoalkeepers godoc
// @Summary Compare derived metrics of a set of goalkeepers for one season
// @Description Goalkeepers without a record for the season are omitted from the result.
// @Tags Statistics
// @Accept json
// @Produce json
// @Param body body CompareRequest true "Comparison request"
// @Success 200 {object} responses.SuccessResponse{data=[]StatisticsRecord}
// @Failure 400 {object} responses.ErrorResponse "Fewer than two goalkeeper ids"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /stats/compare [post]
// @Security BearerAuth
func (sc *StatsController) CompareGoalkeepers(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "At least two goalkeeper ids and a season are required", validator.ParseError(err))
		return
	}

	recs, err := sc.repo.CompareRecords(coachID, req.GoalkeeperIDs, req.Season)
	if err != nil {
		log.Error("compare failed", "coach_id", coachID, "season", req.Season, "error", err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to compare goalkeepers", nil)
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Comparison retrieved successfully", recs)
}
