package syncservice

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ardiansah/digistore/internal/domain"
	"github.com/ardiansah/digistore/internal/provider/medanpedia"
	"github.com/ardiansah/digistore/pkg/slug"
	"go.uber.org/zap"
)

//go:generate mockgen -source=syncservice.go -destination=syncservice_mock.go -package=syncservice

const (
	categoryType  = "SOSMED"
	rootCategory  = "SMM"
	variantStock  = 999999
	priceDivisor  = 1000
	defaultBucket = "Other"
)

type CatalogRepo interface {
	FindCategoryByTypeAndName(ctx context.Context, categoryType, name string) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindProductBySlug(ctx context.Context, categoryType, slug string) (*domain.Product, error)
	FindProductByName(ctx context.Context, categoryType, name string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProductCategory(ctx context.Context, productID, categoryID int) error
	DeleteProductsNotIn(ctx context.Context, categoryID int, keep []string) ([]string, error)
	CreateVariant(ctx context.Context, v *domain.ProductVariant) (*domain.ProductVariant, error)
	UpdateVariant(ctx context.Context, v *domain.ProductVariant) error
	FindBinding(ctx context.Context, productID int, providerCode, providerSku string) (*domain.VariantProvider, error)
	CreateBinding(ctx context.Context, b *domain.VariantProvider) (*domain.VariantProvider, error)
	UpdateBinding(ctx context.Context, bindingID int, providerPrice float64, providerStatus bool) error
}

// Source is the remote catalog: a complete service list or an error,
// never a partial list.
type Source interface {
	GetServices(ctx context.Context) ([]medanpedia.Service, error)
	MarginPercent(ctx context.Context) (float64, error)
}

type Summary struct {
	ProductsCreated int
	VariantsCreated int
	VariantsUpdated int
	ProductsDeleted int
	Platforms       []string
}

func (s *Summary) Message() string {
	return fmt.Sprintf(
		"Sync complete. Grouped into %d platforms. Created %d products, %d new variants, %d updated variants. Cleaned %d old products.",
		len(s.Platforms), s.ProductsCreated, s.VariantsCreated, s.VariantsUpdated, s.ProductsDeleted,
	)
}

type Service struct {
	catalogRepo CatalogRepo
	source      Source
}

func New(catalogRepo CatalogRepo, source Source) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		source:      source,
	}
}

// platformKeywords is ordered: the first keyword found in the category text
// wins.
var platformKeywords = []struct {
	keyword  string
	platform string
}{
	{"instagram", "Instagram"},
	{"youtube", "Youtube"},
	{"tiktok", "TikTok"},
	{"facebook", "Facebook"},
	{"twitter", "Twitter"},
	{"x ", "Twitter"},
	{"threads", "Threads"},
	{"telegram", "Telegram"},
	{"spotify", "Spotify"},
	{"google", "Google"},
	{"shopee", "Shopee"},
	{"tokopedia", "Tokopedia"},
	{"discord", "Discord"},
	{"netflix", "Netflix"},
	{"vidio", "Vidio"},
	{"twitch", "Twitch"},
	{"linkedin", "LinkedIn"},
	{"soundcloud", "Soundcloud"},
	{"pinterest", "Pinterest"},
	{"clubhouse", "Clubhouse"},
	{"website", "Website Traffic"},
	{"traffic", "Website Traffic"},
}

func classifyPlatform(category string) string {
	lower := strings.ToLower(category)
	for _, entry := range platformKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.platform
		}
	}
	return defaultBucket
}

var leadingPunct = regexp.MustCompile(`^[-:|\[\]]+`)

// subCategory derives the service grouping label by stripping the platform
// name and leading punctuation from the category text.
func subCategory(category, platform string) string {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(platform))
	if err != nil {
		return "General"
	}
	sub := strings.TrimSpace(re.ReplaceAllString(category, ""))
	sub = strings.TrimSpace(leadingPunct.ReplaceAllString(sub, ""))
	if sub == "" {
		return "General"
	}
	return sub
}

// Sync pulls the full remote service list and reconciles the local catalog
// against it. The destructive cleanup step only runs after a complete fetch
// that classified at least one platform; a short or failed fetch must never
// trigger mass deletion.
func (s *Service) Sync(ctx context.Context) (*Summary, error) {
	margin, err := s.source.MarginPercent(ctx)
	if err != nil {
		return nil, err
	}

	services, err := s.source.GetServices(ctx)
	if err != nil {
		zap.L().Error("remote catalog fetch failed, aborting sync", zap.Error(err))
		return nil, err
	}

	root, err := s.ensureRootCategory(ctx)
	if err != nil {
		return nil, err
	}

	// Group services by platform, keeping first-seen order deterministic.
	buckets := make(map[string][]medanpedia.Service)
	var platforms []string
	for _, svc := range services {
		platform := classifyPlatform(svc.Category)
		if _, ok := buckets[platform]; !ok {
			platforms = append(platforms, platform)
		}
		buckets[platform] = append(buckets[platform], svc)
	}

	summary := &Summary{Platforms: platforms}

	for _, platform := range platforms {
		product, created, err := s.upsertProduct(ctx, root, platform)
		if err != nil {
			return nil, err
		}
		if created {
			summary.ProductsCreated++
		}

		for _, svc := range buckets[platform] {
			if err := s.upsertVariant(ctx, product, platform, svc, margin, summary); err != nil {
				return nil, err
			}
		}
	}

	if len(platforms) > 0 {
		deleted, err := s.catalogRepo.DeleteProductsNotIn(ctx, root.ID, platforms)
		if err != nil {
			return nil, err
		}
		summary.ProductsDeleted = len(deleted)
		if len(deleted) > 0 {
			zap.L().Info("cleaned up obsolete products",
				zap.Strings("deleted", deleted),
				zap.Strings("kept", platforms),
			)
		}
	}

	zap.L().Info("catalog sync finished", zap.String("summary", summary.Message()))
	return summary, nil
}

// ensureRootCategory returns the single category owning this provider's
// catalog, preferring an existing equivalent over creating a new one.
func (s *Service) ensureRootCategory(ctx context.Context) (*domain.Category, error) {
	category, err := s.catalogRepo.FindCategoryByTypeAndName(ctx, categoryType, rootCategory)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}

	category, err = s.catalogRepo.FindCategoryByTypeAndName(ctx, categoryType, "Social Media")
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}

	return s.catalogRepo.CreateCategory(ctx, &domain.Category{
		Name:    rootCategory,
		Slug:    "smm-services",
		Type:    categoryType,
		IconKey: "users",
	})
}

func (s *Service) upsertProduct(ctx context.Context, root *domain.Category, platform string) (*domain.Product, bool, error) {
	productSlug := slug.Make(platform)

	product, err := s.catalogRepo.FindProductBySlug(ctx, categoryType, productSlug)
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		product, err = s.catalogRepo.FindProductByName(ctx, categoryType, platform)
		if err != nil {
			return nil, false, err
		}
	}

	if product == nil {
		product, err = s.catalogRepo.CreateProduct(ctx, &domain.Product{
			CategoryID:  root.ID,
			Name:        platform,
			Slug:        productSlug,
			Description: fmt.Sprintf("Layanan SMM untuk %s. Pilih layanan yang Anda butuhkan.", platform),
			IsActive:    true,
		})
		if err != nil {
			return nil, false, err
		}
		return product, true, nil
	}

	// Re-point products that drifted into another category in prior runs.
	if product.CategoryID != root.ID {
		if err := s.catalogRepo.UpdateProductCategory(ctx, product.ID, root.ID); err != nil {
			return nil, false, err
		}
		product.CategoryID = root.ID
	}
	return product, false, nil
}

func (s *Service) upsertVariant(ctx context.Context, product *domain.Product, platform string, svc medanpedia.Service, margin float64, summary *Summary) error {
	sku := svc.ID.String()
	basePrice, priceErr := svc.Price.Float64()
	if sku == "" || svc.Name == "" || priceErr != nil {
		// One malformed remote entry must not abort the whole run.
		zap.L().Warn("skipping malformed remote service",
			zap.String("id", sku),
			zap.String("name", svc.Name),
			zap.String("category", svc.Category),
		)
		return nil
	}

	variantName := fmt.Sprintf("[%s] %s", subCategory(svc.Category, platform), svc.Name)
	// Remote prices are per 1000 of the local currency's smallest unit.
	sellingPrice := basePrice / priceDivisor * (1 + margin/100)

	binding, err := s.catalogRepo.FindBinding(ctx, product.ID, medanpedia.Code, sku)
	if err != nil {
		return err
	}

	if binding != nil {
		err := s.catalogRepo.UpdateVariant(ctx, &domain.ProductVariant{
			ID:       binding.VariantID,
			Name:     variantName,
			Price:    sellingPrice,
			Stock:    variantStock,
			IsActive: true,
		})
		if err != nil {
			return err
		}
		if err := s.catalogRepo.UpdateBinding(ctx, binding.ID, basePrice, true); err != nil {
			return err
		}
		summary.VariantsUpdated++
		return nil
	}

	variant, err := s.catalogRepo.CreateVariant(ctx, &domain.ProductVariant{
		ProductID:    product.ID,
		Name:         variantName,
		Price:        sellingPrice,
		Stock:        variantStock,
		IsActive:     true,
		BestProvider: medanpedia.Code,
	})
	if err != nil {
		return err
	}
	_, err = s.catalogRepo.CreateBinding(ctx, &domain.VariantProvider{
		VariantID:      variant.ID,
		ProviderCode:   medanpedia.Code,
		ProviderSku:    sku,
		ProviderPrice:  basePrice,
		ProviderStatus: true,
	})
	if err != nil {
		return err
	}
	summary.VariantsCreated++
	return nil
}
