package service

import (
	"github.com/ardiansah/digistore/internal/config"
	"github.com/ardiansah/digistore/internal/fulfillment"
	"github.com/ardiansah/digistore/internal/handlers/admin"
	"github.com/ardiansah/digistore/internal/handlers/webhook"
	"github.com/ardiansah/digistore/internal/pg"
	"github.com/ardiansah/digistore/internal/provider"
	"github.com/ardiansah/digistore/internal/repo"
	"github.com/ardiansah/digistore/internal/service/authservice"
	"github.com/ardiansah/digistore/internal/service/syncservice"
	"github.com/ardiansah/digistore/internal/service/walletservice"
	"github.com/ardiansah/digistore/internal/service/webhookservice"

	pkgauth "github.com/ardiansah/digistore/pkg/auth"
)

type Services struct {
	WebhookService webhook.Service
	AuthService    admin.AuthService
	SyncService    admin.SyncService
	WalletService  admin.WalletService
	LogService     admin.LogService
}

func New(
	cfg *config.Config,
	repo *repo.Repositories,
	txManager pg.TXManager,
	verifier webhookservice.Verifier,
	source syncservice.Source,
	providerClients ...provider.Client,
) *Services {
	walletService := walletservice.New(repo.UserRepo, repo.WalletRepo, txManager)
	fulfiller := fulfillment.New(repo.OrderRepo, repo.CatalogRepo, providerClients...)
	webhookService := webhookservice.New(
		repo.ConfigRepo,
		repo.OrderRepo,
		repo.DepositRepo,
		walletService,
		verifier,
		fulfiller,
		repo.WebhookLogRepo,
		txManager,
	)
	syncService := syncservice.New(repo.CatalogRepo, source)
	authService := authservice.New(cfg.AdminKeyHash, &pkgauth.HashService{}, pkgauth.NewJWTService(cfg.JWTSecret))

	return &Services{
		WebhookService: webhookService,
		AuthService:    authService,
		SyncService:    syncService,
		WalletService:  walletService,
		LogService:     webhookService,
	}
}
