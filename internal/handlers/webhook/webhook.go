package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ardiansah/digistore/internal/dto"
	"github.com/ardiansah/digistore/internal/service/webhookservice"
	"github.com/ardiansah/digistore/pkg/utils"
)

//go:generate mockgen -source=webhook.go -destination=webhook_mock.go -package=webhook

type Service interface {
	Process(ctx context.Context, n webhookservice.Notification) (*webhookservice.Result, error)
}

type WebhookHandler struct {
	webhookService Service
}

func New(webhookService Service) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

// HandlePayment godoc
//
//	@Summary		Process a payment gateway webhook
//	@Description	Verify the notification against the gateway and settle the matching order or deposit
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WebhookRequestDTO	true	"Gateway notification body"
//	@Success		200		{object}	dto.WebhookResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or amount mismatch"
//	@Failure		403		{object}	utils.Response	"Verification failed"
//	@Failure		404		{object}	utils.Response	"Unknown correlation id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/webhook/payment [post]
func (h *WebhookHandler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.WebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OrderID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "order_id is required")
		return
	}

	result, err := h.webhookService.Process(r.Context(), webhookservice.Notification{
		OrderID: req.OrderID,
		Status:  req.Status,
		Amount:  req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, webhookservice.ErrVerificationFailed):
			utils.RespondWithError(w, http.StatusForbidden, "Verification failed")
		case errors.Is(err, webhookservice.ErrAmountMismatch):
			utils.RespondWithError(w, http.StatusBadRequest, "Amount mismatch")
		case errors.Is(err, webhookservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "No order or deposit for this id")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{
		Success: true,
		Type:    result.Type,
		Status:  result.Status,
		Message: result.Message,
	})
}
