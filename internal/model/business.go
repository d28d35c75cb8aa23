package model

// Business is a user-owned business profile managed through the backend API.
type Business struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"business_name"`
	URL         string `json:"business_url"`
	Description string `json:"business_description"`
}
