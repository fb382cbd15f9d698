package request_models

type CreateDeckRequest struct {
	Title       string      `json:"title" binding:"required,max=100"`
	Description string      `json:"description" binding:"required"`
	Subject     string      `json:"subject" binding:"required,max=50"`
	Category    string      `json:"category" binding:"required,max=50"`
	Difficulty  interface{} `json:"difficulty" binding:"required"` // int 1..5 or a name like "beginner"
}

type UpdateDeckRequest struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Subject     *string     `json:"subject"`
	Category    *string     `json:"category"`
	Difficulty  interface{} `json:"difficulty"`
}
