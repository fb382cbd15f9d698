package response_models

// SubscriptionStatus is the derived view of an account's subscription at a
// given instant. Status "none" means no subscription was ever activated.
type SubscriptionStatus struct {
	Status    string `json:"status"` // none | active | expired | canceled
	PlanCode  string `json:"plan,omitempty"`
	PeriodEnd string `json:"period_end,omitempty"` // RFC3339 UTC
}

type UsageStatusResponse struct {
	SubscriptionStatus string `json:"subscription_status"`
	PlanCode           string `json:"plan,omitempty"`
	PeriodEnd          string `json:"period_end,omitempty"`
	PeriodKey          string `json:"period_key"`
	FreeQuota          int    `json:"free_quota"`
	Used               int    `json:"used"`
	Remaining          int    `json:"remaining"`
}

type CreateCheckoutResponse struct {
	ClientReference string `json:"client_reference"`
	CheckoutURL     string `json:"checkout_url"`
	AmountMinor     int64  `json:"amount_minor"`
	Currency        string `json:"currency"`
	Provider        string `json:"provider"`
}

type PlanResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Period     string `json:"period"`
	PriceMinor int64  `json:"price_minor"`
	Currency   string `json:"currency"`
}
