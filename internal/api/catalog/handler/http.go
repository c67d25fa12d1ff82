package catalogHandler

import (
	catalogService "ProjectGlimmer/internal/api/catalog/service"
	"ProjectGlimmer/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	catalogService catalogService.ICatalogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs catalogService.ICatalogService,
) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		catalogService: cs,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	catalog := srv.Group("/catalog")

	catalog.Get("/products", h.GetAllProducts)
	catalog.Get("/products/:id", h.GetProductByID)
	catalog.Get("/sale", h.GetSaleProducts)
	catalog.Get("/categories", h.GetAllCategories)
	catalog.Get("/categories/:name/products", h.GetProductsInCategory)
}
