package dto

type WebhookRequestDTO struct {
	OrderID string  `json:"order_id" example:"DEP-20250114-8842"`
	Status  string  `json:"status" example:"completed"`
	Amount  float64 `json:"amount" example:"150000"`
}

type WebhookResponseDTO struct {
	Success bool   `json:"success"`
	Type    string `json:"type,omitempty" example:"DEPOSIT"`
	Status  string `json:"status,omitempty" example:"PAID"`
	Message string `json:"message,omitempty"`
}
