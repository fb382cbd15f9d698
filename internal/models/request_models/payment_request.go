package request_models

type CreateCheckoutRequest struct {
	PlanCode string `json:"plan_code" binding:"required"`
	// Amount/Currency are optional client echoes. When present they must
	// match the server-configured plan price or the request fails closed;
	// they never override it.
	AmountMinor *int64 `json:"amount_minor"`
	Currency    string `json:"currency"`
}
