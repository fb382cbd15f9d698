package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flashlearn/internal/models/request_models"
	"flashlearn/internal/services"
	"flashlearn/pkg/utils"
)

type ProgressController struct {
	progressService services.ProgressServiceInterface
	statsService    services.StatsServiceInterface
}

func NewProgressController(progressService services.ProgressServiceInterface, statsService services.StatsServiceInterface) *ProgressController {
	return &ProgressController{
		progressService: progressService,
		statsService:    statsService,
	}
}

// Record godoc
// @Summary Record a study attempt for a flashcard
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.RecordProgressRequest true "Study attempt"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /progress [post]
func (p *ProgressController) Record(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.RecordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.progressService.RecordProgress(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Progress recorded")
}

// List godoc
// @Summary List all progress entries for the account
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /progress [get]
func (p *ProgressController) List(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	resp, err := p.progressService.ListProgress(c.Request.Context(), accountID, nil, nil)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// ListByDeck godoc
// @Summary List progress entries for one deck
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deck id"
// @Success 200 {object} utils.APIResponse
// @Router /progress/deck/{id} [get]
func (p *ProgressController) ListByDeck(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	deckID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := p.progressService.ListProgress(c.Request.Context(), accountID, &deckID, nil)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// ListByFlashcard godoc
// @Summary List progress for one flashcard
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flashcard id"
// @Success 200 {object} utils.APIResponse
// @Router /progress/flashcard/{id} [get]
func (p *ProgressController) ListByFlashcard(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	cardID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var ptr *uuid.UUID = &cardID
	resp, err := p.progressService.ListProgress(c.Request.Context(), accountID, nil, ptr)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// GetStats godoc
// @Summary Get the account's study statistics
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /user/stats [get]
func (p *ProgressController) GetStats(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	resp, err := p.statsService.GetStats(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// UpdateStats godoc
// @Summary Partially update study statistics
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.UpdateStatsRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Router /user/stats [put]
func (p *ProgressController) UpdateStats(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.statsService.UpdateStats(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Stats updated")
}
