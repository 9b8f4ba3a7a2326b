package repo

import (
	"github.com/ardiansah/digistore/internal/pg"
	catalogrepo "github.com/ardiansah/digistore/internal/repo/catalog-repo"
	configrepo "github.com/ardiansah/digistore/internal/repo/config-repo"
	depositrepo "github.com/ardiansah/digistore/internal/repo/deposit-repo"
	orderrepo "github.com/ardiansah/digistore/internal/repo/order-repo"
	userrepo "github.com/ardiansah/digistore/internal/repo/user-repo"
	walletrepo "github.com/ardiansah/digistore/internal/repo/wallet-repo"
	webhooklogrepo "github.com/ardiansah/digistore/internal/repo/webhooklog-repo"
)

// Repositories keeps the concrete repos because most of them back more than
// one service; each consumer narrows them to its own interface.
type Repositories struct {
	ConfigRepo     *configrepo.Repository
	OrderRepo      *orderrepo.Repository
	DepositRepo    *depositrepo.Repository
	UserRepo       *userrepo.Repository
	WalletRepo     *walletrepo.Repository
	CatalogRepo    *catalogrepo.Repository
	WebhookLogRepo *webhooklogrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		ConfigRepo:     configrepo.New(conn),
		OrderRepo:      orderrepo.New(conn),
		DepositRepo:    depositrepo.New(conn),
		UserRepo:       userrepo.New(conn),
		WalletRepo:     walletrepo.New(conn),
		CatalogRepo:    catalogrepo.New(conn),
		WebhookLogRepo: webhooklogrepo.New(conn),
	}
}
