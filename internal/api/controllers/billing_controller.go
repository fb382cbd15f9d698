package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"flashlearn/internal/services"
	"flashlearn/pkg/utils"
)

type BillingController struct {
	billingService services.BillingServiceInterface
	planService    services.PlanServiceInterface
}

func NewBillingController(billingService services.BillingServiceInterface, planService services.PlanServiceInterface) *BillingController {
	return &BillingController{
		billingService: billingService,
		planService:    planService,
	}
}

// Status godoc
// @Summary Get subscription and quota status
// @Description Current subscription state, period usage and remaining free quota
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /billing/status [get]
func (b *BillingController) Status(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	resp, err := b.billingService.UsageStatus(c.Request.Context(), accountID, time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}

// Plans godoc
// @Summary List purchasable plans
// @Tags Billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (b *BillingController) Plans(c *gin.Context) {
	resp, err := b.planService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}
