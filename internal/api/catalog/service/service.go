package catalogService

import (
	"ProjectGlimmer/internal/api/catalog"
	catalogRepository "ProjectGlimmer/internal/api/catalog/repository"
	"ProjectGlimmer/internal/entity"
	"ProjectGlimmer/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

// PageSize matches the storefront's product listing.
const PageSize = 4

type ICatalogService interface {
	GetProductByID(ctx context.Context, id string) (catalog.ProductResponse, error)
	GetAllProducts(ctx context.Context, page int) (catalog.ProductListResponse, error)
	GetSaleProducts(ctx context.Context) ([]catalog.ProductResponse, error)
	GetAllCategories(ctx context.Context) (catalog.CategoryListResponse, error)
	GetProductsInCategory(ctx context.Context, categoryName string) ([]catalog.ProductResponse, error)

	// Chatbot collaborator surface.
	FindProductByName(ctx context.Context, name string) (entity.Product, error)
	ProductsInCategory(ctx context.Context, categoryName string) ([]entity.Product, error)
}

type catalogService struct {
	log         *logrus.Logger
	catalogRepo catalogRepository.Repository
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	catalogRepo catalogRepository.Repository,
	utils utils.IUtils,
) ICatalogService {
	return &catalogService{
		log:         log,
		catalogRepo: catalogRepo,
		utils:       utils,
	}
}
