package response_models

type LoginResponse struct {
	Token     string `json:"token"`
	IsPremium bool   `json:"is_premium"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsPremium bool   `json:"is_premium"`
	CreatedAt string `json:"created_at"`
}
