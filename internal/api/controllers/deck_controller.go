package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flashlearn/internal/models/request_models"
	"flashlearn/internal/services"
	"flashlearn/pkg/utils"
)

type DeckController struct {
	deckService services.DeckServiceInterface
}

func NewDeckController(deckService services.DeckServiceInterface) *DeckController {
	return &DeckController{
		deckService: deckService,
	}
}

// Create godoc
// @Summary Create a deck
// @Tags Decks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateDeckRequest true "Deck payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /decks [post]
func (d *DeckController) Create(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := d.deckService.CreateDeck(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Deck created successfully")
}

// List godoc
// @Summary List the account's decks
// @Tags Decks
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.APIResponse
// @Router /decks [get]
func (d *DeckController) List(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 20)

	resp, err := d.deckService.ListDecks(c.Request.Context(), accountID, page, perPage)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// Get godoc
// @Summary Get a single deck
// @Tags Decks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deck id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /decks/{id} [get]
func (d *DeckController) Get(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	deckID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resp, err := d.deckService.GetDeck(c.Request.Context(), accountID, deckID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// Update godoc
// @Summary Update a deck
// @Tags Decks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deck id"
// @Param request body request_models.UpdateDeckRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /decks/{id} [put]
func (d *DeckController) Update(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	deckID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := d.deckService.UpdateDeck(c.Request.Context(), accountID, deckID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Deck updated successfully")
}

// Delete godoc
// @Summary Delete a deck and its flashcards
// @Tags Decks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deck id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /decks/{id} [delete]
func (d *DeckController) Delete(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}
	deckID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := d.deckService.DeleteDeck(c.Request.Context(), accountID, deckID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Deck deleted successfully")
}
