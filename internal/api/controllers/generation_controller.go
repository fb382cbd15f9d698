package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flashlearn/internal/models/request_models"
	"flashlearn/internal/services"
	"flashlearn/pkg/utils"
)

type GenerationController struct {
	generationService services.GenerationServiceInterface
}

func NewGenerationController(generationService services.GenerationServiceInterface) *GenerationController {
	return &GenerationController{
		generationService: generationService,
	}
}

// Generate godoc
// @Summary Generate flashcards from study material
// @Description Metered AI operation; counts against the free monthly quota unless subscribed
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.GenerateFlashcardsRequest true "Source material"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /ai/generate [post]
func (g *GenerationController) Generate(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.GenerateFlashcardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := g.generationService.GenerateFlashcards(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Flashcards generated")
}
