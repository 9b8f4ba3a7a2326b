package repo

import (
	"testing"

	catalogrepo "github.com/ardiansah/digistore/internal/repo/catalog-repo"
	configrepo "github.com/ardiansah/digistore/internal/repo/config-repo"
	depositrepo "github.com/ardiansah/digistore/internal/repo/deposit-repo"
	orderrepo "github.com/ardiansah/digistore/internal/repo/order-repo"
	userrepo "github.com/ardiansah/digistore/internal/repo/user-repo"
	walletrepo "github.com/ardiansah/digistore/internal/repo/wallet-repo"
	webhooklogrepo "github.com/ardiansah/digistore/internal/repo/webhooklog-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.ConfigRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.DepositRepo)
	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.CatalogRepo)
	assert.NotNil(t, repo.WebhookLogRepo)

	assert.IsType(t, &configrepo.Repository{}, repo.ConfigRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &depositrepo.Repository{}, repo.DepositRepo)
	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &catalogrepo.Repository{}, repo.CatalogRepo)
	assert.IsType(t, &webhooklogrepo.Repository{}, repo.WebhookLogRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
