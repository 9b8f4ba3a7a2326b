package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/internal/dto"
	"github.com/ardiansah/digistore/internal/service/syncservice"
	"github.com/ardiansah/digistore/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=admin

type AuthService interface {
	Login(ctx context.Context, key string) (string, error)
}

type SyncService interface {
	Sync(ctx context.Context) (*syncservice.Summary, error)
}

type WalletService interface {
	GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
}

type LogService interface {
	Logs(ctx context.Context) ([]domain.WebhookLog, error)
}

type BalanceChecker interface {
	Code() string
	CheckBalance(ctx context.Context) (float64, error)
}

type AdminHandler struct {
	authService   AuthService
	syncService   SyncService
	walletService WalletService
	logService    LogService
	balances      []BalanceChecker
}

func New(authService AuthService, syncService SyncService, walletService WalletService, logService LogService, balances ...BalanceChecker) *AdminHandler {
	return &AdminHandler{
		authService:   authService,
		syncService:   syncService,
		walletService: walletService,
		logService:    logService,
		balances:      balances,
	}
}

// Login godoc
//
//	@Summary		Authenticate with the admin key
//	@Description	Exchange the admin key for a JWT that unlocks the admin endpoints
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid admin key"
//	@Router			/api/admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, err := h.authService.Login(r.Context(), req.Key)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{Token: token})
}

// SyncCatalog godoc
//
//	@Summary		Synchronize the catalog with the upstream provider
//	@Description	Pull the full remote service list and reconcile local products, variants and bindings
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	dto.SyncResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Upstream fetch failed"
//	@Router			/api/admin/sync [post]
//	@Security		BearerAuth
func (h *AdminHandler) SyncCatalog(w http.ResponseWriter, r *http.Request) {
	summary, err := h.syncService.Sync(r.Context())
	if err != nil {
		zap.L().Error("catalog sync failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadGateway, "Sync failed: "+err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SyncResponseDTO{
		Success:   true,
		Message:   summary.Message(),
		Platforms: summary.Platforms,
	})
}

// GetProviderBalances godoc
//
//	@Summary		Provider account balances
//	@Description	Query the remaining balance on each upstream provider account
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		dto.ProviderBalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/admin/providers/balance [get]
//	@Security		BearerAuth
func (h *AdminHandler) GetProviderBalances(w http.ResponseWriter, r *http.Request) {
	out := make([]dto.ProviderBalanceResponseDTO, 0, len(h.balances))
	for _, checker := range h.balances {
		balance, err := checker.CheckBalance(r.Context())
		if err != nil {
			zap.L().Warn("balance check failed",
				zap.String("provider", checker.Code()),
				zap.Error(err),
			)
			continue
		}
		out = append(out, dto.ProviderBalanceResponseDTO{
			Provider: checker.Code(),
			Balance:  balance,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetUserTransactions godoc
//
//	@Summary		Wallet ledger for a user
//	@Description	List wallet transactions for the given user, newest first
//	@Tags			Admin
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{array}		dto.WalletTransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{userID}/transactions [get]
//	@Security		BearerAuth
func (h *AdminHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]dto.WalletTransactionResponseDTO, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, dto.WalletTransactionResponseDTO{
			Type:          tx.Type,
			Amount:        tx.Amount,
			BalanceBefore: tx.BalanceBefore,
			BalanceAfter:  tx.BalanceAfter,
			ReferenceID:   tx.ReferenceID,
			Description:   tx.Description,
			CreatedAt:     tx.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetWebhookLogs godoc
//
//	@Summary		Recent webhook payloads
//	@Description	List the most recent verified webhook payloads, newest first
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		dto.WebhookLogResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/webhook-logs [get]
//	@Security		BearerAuth
func (h *AdminHandler) GetWebhookLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.logService.Logs(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]dto.WebhookLogResponseDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.WebhookLogResponseDTO{
			ID:           entry.ID,
			Payload:      entry.Payload,
			Verification: entry.Verification,
			ReceivedAt:   entry.ReceivedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
