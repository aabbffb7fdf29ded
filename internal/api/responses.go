package api

type ErrorResponse struct {
	Message string             `json:"message" example:"Member not found"`
	Details []ValidationDetail `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
