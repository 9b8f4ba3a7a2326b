package dto

import "time"

type LoginRequestDTO struct {
	Key string `json:"key" example:"super-secret-admin-key"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}

type SyncResponseDTO struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Platforms []string `json:"platforms"`
}

type ProviderBalanceResponseDTO struct {
	Provider string  `json:"provider" example:"MEDANPEDIA"`
	Balance  float64 `json:"balance" example:"250000.5"`
}

type WebhookLogResponseDTO struct {
	ID           int       `json:"id"`
	Payload      string    `json:"payload"`
	Verification string    `json:"verification"`
	ReceivedAt   time.Time `json:"received_at"`
}

type WalletTransactionResponseDTO struct {
	Type          string    `json:"type" example:"DEPOSIT"`
	Amount        float64   `json:"amount" example:"50000"`
	BalanceBefore float64   `json:"balance_before" example:"10000"`
	BalanceAfter  float64   `json:"balance_after" example:"60000"`
	ReferenceID   string    `json:"reference_id" example:"DEP-20250114-8842"`
	Description   string    `json:"description" example:"Deposit via qris"`
	CreatedAt     time.Time `json:"created_at" example:"2025-01-14T16:09:57+07:00"`
}
