package handlers

import (
	"net/http"

	_ "github.com/ardiansah/digistore/docs"
	adminhandlers "github.com/ardiansah/digistore/internal/handlers/admin"
	webhookhandlers "github.com/ardiansah/digistore/internal/handlers/webhook"
	"github.com/ardiansah/digistore/internal/service"
	"github.com/ardiansah/digistore/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type WebhookHandler interface {
	HandlePayment(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	SyncCatalog(w http.ResponseWriter, r *http.Request)
	GetProviderBalances(w http.ResponseWriter, r *http.Request)
	GetUserTransactions(w http.ResponseWriter, r *http.Request)
	GetWebhookLogs(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WebhookHandler WebhookHandler
	AdminHandler   AdminHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, balances ...adminhandlers.BalanceChecker) *Handlers {
	return &Handlers{
		WebhookHandler: webhookhandlers.New(s.WebhookService),
		AdminHandler:   adminhandlers.New(s.AuthService, s.SyncService, s.WalletService, s.LogService, balances...),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/webhook/payment", h.WebhookHandler.HandlePayment)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.AdminHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(h.jwtService))
				r.Post("/sync", h.AdminHandler.SyncCatalog)
				r.Get("/providers/balance", h.AdminHandler.GetProviderBalances)
				r.Get("/users/{userID}/transactions", h.AdminHandler.GetUserTransactions)
				r.Get("/webhook-logs", h.AdminHandler.GetWebhookLogs)
			})
		})
	})

	return r
}
