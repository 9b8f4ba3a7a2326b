package syncservice

import (
	"context"
	"errors"
	"testing"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/internal/provider/medanpedia"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockCatalogRepo, *MockSource) {
	ctrl := gomock.NewController(t)
	catalogRepo := NewMockCatalogRepo(ctrl)
	source := NewMockSource(ctrl)
	service := New(catalogRepo, source)
	defer ctrl.Finish()
	return service, catalogRepo, source
}

func TestSync_FetchFailures(t *testing.T) {
	t.Run("Margin fetch fails", func(t *testing.T) {
		service, _, source := NewMock(t)
		source.EXPECT().MarginPercent(gomock.Any()).Return(0.0, errors.New("credentials missing"))

		summary, err := service.Sync(context.Background())
		assert.Nil(t, summary)
		assert.Error(t, err)
	})

	t.Run("Service list fetch fails, nothing is touched", func(t *testing.T) {
		service, _, source := NewMock(t)
		source.EXPECT().MarginPercent(gomock.Any()).Return(10.0, nil)
		source.EXPECT().GetServices(gomock.Any()).Return(nil, errors.New("upstream 500"))

		summary, err := service.Sync(context.Background())
		assert.Nil(t, summary)
		assert.Error(t, err)
	})
}

func TestSync_EmptyListSkipsCleanup(t *testing.T) {
	service, catalogRepo, source := NewMock(t)
	source.EXPECT().MarginPercent(gomock.Any()).Return(10.0, nil)
	source.EXPECT().GetServices(gomock.Any()).Return([]medanpedia.Service{}, nil)
	catalogRepo.EXPECT().FindCategoryByTypeAndName(gomock.Any(), "SOSMED", "SMM").
		Return(&domain.Category{ID: 5, Name: "SMM", Type: "SOSMED"}, nil)

	summary, err := service.Sync(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, summary.Platforms)
	assert.Zero(t, summary.ProductsDeleted)
}

func TestSync_FullRun(t *testing.T) {
	service, catalogRepo, source := NewMock(t)

	services := []medanpedia.Service{
		{ID: "101", Category: "Instagram - Followers", Name: "Fast IG Followers", Price: "10000"},
		{ID: "202", Category: "Tiktok | Likes", Name: "TT Likes", Price: "5000"},
		{ID: "303", Category: "Instagram - Followers", Name: "", Price: "2000"},
	}
	source.EXPECT().MarginPercent(gomock.Any()).Return(10.0, nil)
	source.EXPECT().GetServices(gomock.Any()).Return(services, nil)

	root := &domain.Category{ID: 5, Name: "SMM", Type: "SOSMED"}
	catalogRepo.EXPECT().FindCategoryByTypeAndName(gomock.Any(), "SOSMED", "SMM").Return(root, nil)

	// Instagram is new: product plus variant plus binding get created.
	catalogRepo.EXPECT().FindProductBySlug(gomock.Any(), "SOSMED", "instagram").Return(nil, nil)
	catalogRepo.EXPECT().FindProductByName(gomock.Any(), "SOSMED", "Instagram").Return(nil, nil)
	catalogRepo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Product) (*domain.Product, error) {
			assert.Equal(t, 5, p.CategoryID)
			assert.Equal(t, "Instagram", p.Name)
			assert.Equal(t, "instagram", p.Slug)
			assert.True(t, p.IsActive)
			created := *p
			created.ID = 11
			return &created, nil
		},
	)
	catalogRepo.EXPECT().FindBinding(gomock.Any(), 11, medanpedia.Code, "101").Return(nil, nil)
	igPrice := 10000.0 / 1000 * (1 + 10.0/100)
	catalogRepo.EXPECT().CreateVariant(gomock.Any(), &domain.ProductVariant{
		ProductID:    11,
		Name:         "[Followers] Fast IG Followers",
		Price:        igPrice,
		Stock:        999999,
		IsActive:     true,
		BestProvider: medanpedia.Code,
	}).DoAndReturn(
		func(_ context.Context, v *domain.ProductVariant) (*domain.ProductVariant, error) {
			created := *v
			created.ID = 21
			return &created, nil
		},
	)
	catalogRepo.EXPECT().CreateBinding(gomock.Any(), &domain.VariantProvider{
		VariantID:      21,
		ProviderCode:   medanpedia.Code,
		ProviderSku:    "101",
		ProviderPrice:  10000,
		ProviderStatus: true,
	}).Return(&domain.VariantProvider{ID: 31}, nil)

	// TikTok already exists in another category and gets re-pointed; its
	// variant is updated in place through the existing binding.
	catalogRepo.EXPECT().FindProductBySlug(gomock.Any(), "SOSMED", "tiktok").
		Return(&domain.Product{ID: 12, CategoryID: 9, Name: "TikTok", Slug: "tiktok"}, nil)
	catalogRepo.EXPECT().UpdateProductCategory(gomock.Any(), 12, 5).Return(nil)
	catalogRepo.EXPECT().FindBinding(gomock.Any(), 12, medanpedia.Code, "202").
		Return(&domain.VariantProvider{ID: 32, VariantID: 22, ProviderCode: medanpedia.Code, ProviderSku: "202"}, nil)
	ttPrice := 5000.0 / 1000 * (1 + 10.0/100)
	catalogRepo.EXPECT().UpdateVariant(gomock.Any(), &domain.ProductVariant{
		ID:       22,
		Name:     "[Likes] TT Likes",
		Price:    ttPrice,
		Stock:    999999,
		IsActive: true,
	}).Return(nil)
	catalogRepo.EXPECT().UpdateBinding(gomock.Any(), 32, 5000.0, true).Return(nil)

	catalogRepo.EXPECT().DeleteProductsNotIn(gomock.Any(), 5, []string{"Instagram", "TikTok"}).
		Return([]string{"Facebook"}, nil)

	summary, err := service.Sync(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Instagram", "TikTok"}, summary.Platforms)
	assert.Equal(t, 1, summary.ProductsCreated)
	assert.Equal(t, 1, summary.VariantsCreated)
	assert.Equal(t, 1, summary.VariantsUpdated)
	assert.Equal(t, 1, summary.ProductsDeleted)
	assert.Contains(t, summary.Message(), "Grouped into 2 platforms")
}

func TestSync_RootCategoryFallbacks(t *testing.T) {
	t.Run("Legacy Social Media category is reused", func(t *testing.T) {
		service, catalogRepo, source := NewMock(t)
		source.EXPECT().MarginPercent(gomock.Any()).Return(10.0, nil)
		source.EXPECT().GetServices(gomock.Any()).Return([]medanpedia.Service{}, nil)
		catalogRepo.EXPECT().FindCategoryByTypeAndName(gomock.Any(), "SOSMED", "SMM").Return(nil, nil)
		catalogRepo.EXPECT().FindCategoryByTypeAndName(gomock.Any(), "SOSMED", "Social Media").
			Return(&domain.Category{ID: 7, Name: "Social Media", Type: "SOSMED"}, nil)

		_, err := service.Sync(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Root category is created when absent", func(t *testing.T) {
		service, catalogRepo, source := NewMock(t)
		source.EXPECT().MarginPercent(gomock.Any()).Return(10.0, nil)
		source.EXPECT().GetServices(gomock.Any()).Return([]medanpedia.Service{}, nil)
		catalogRepo.EXPECT().FindCategoryByTypeAndName(gomock.Any(), "SOSMED", "SMM").Return(nil, nil)
		catalogRepo.EXPECT().FindCategoryByTypeAndName(gomock.Any(), "SOSMED", "Social Media").Return(nil, nil)
		catalogRepo.EXPECT().CreateCategory(gomock.Any(), &domain.Category{
			Name:    "SMM",
			Slug:    "smm-services",
			Type:    "SOSMED",
			IconKey: "users",
		}).Return(&domain.Category{ID: 8, Name: "SMM", Type: "SOSMED"}, nil)

		_, err := service.Sync(context.Background())
		assert.NoError(t, err)
	})
}

func TestClassifyPlatform(t *testing.T) {
	tests := []struct {
		category string
		platform string
	}{
		{"Instagram - Followers [Fast]", "Instagram"},
		{"TIKTOK Views", "TikTok"},
		{"Jasa Website Traffic", "Website Traffic"},
		{"Layanan Lainnya", "Other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.platform, classifyPlatform(tt.category), tt.category)
	}
}

func TestSubCategory(t *testing.T) {
	tests := []struct {
		category string
		platform string
		expected string
	}{
		{"Instagram - Followers", "Instagram", "Followers"},
		{"[Tiktok] Likes", "TikTok", "Likes"},
		{"Instagram", "Instagram", "General"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, subCategory(tt.category, tt.platform), tt.category)
	}
}
