package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flashlearn/internal/models/request_models"
	"flashlearn/internal/services"
	"flashlearn/pkg/utils"
)

type FlashcardController struct {
	flashcardService services.FlashcardServiceInterface
}

func NewFlashcardController(flashcardService services.FlashcardServiceInterface) *FlashcardController {
	return &FlashcardController{
		flashcardService: flashcardService,
	}
}

// Create godoc
// @Summary Create a flashcard in an owned deck
// @Tags Flashcards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateFlashcardRequest true "Flashcard payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /flashcards [post]
func (f *FlashcardController) Create(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreateFlashcardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := f.flashcardService.CreateFlashcard(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Flashcard created successfully")
}

// Get godoc
// @Summary Get a single flashcard
// @Tags Flashcards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flashcard id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /flashcards/{id} [get]
func (f *FlashcardController) Get(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	cardID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := f.flashcardService.GetFlashcard(c.Request.Context(), accountID, cardID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// ListByDeck godoc
// @Summary List flashcards in a deck
// @Tags Flashcards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deck id"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /decks/{id}/flashcards [get]
func (f *FlashcardController) ListByDeck(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	deckID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 20)

	resp, err := f.flashcardService.ListByDeck(c.Request.Context(), accountID, deckID, page, perPage)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// Update godoc
// @Summary Update a flashcard
// @Tags Flashcards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flashcard id"
// @Param request body request_models.UpdateFlashcardRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /flashcards/{id} [put]
func (f *FlashcardController) Update(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	cardID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateFlashcardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := f.flashcardService.UpdateFlashcard(c.Request.Context(), accountID, cardID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Flashcard updated successfully")
}

// Delete godoc
// @Summary Delete a flashcard
// @Tags Flashcards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flashcard id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /flashcards/{id} [delete]
func (f *FlashcardController) Delete(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	cardID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := f.flashcardService.DeleteFlashcard(c.Request.Context(), accountID, cardID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Flashcard deleted successfully")
}
