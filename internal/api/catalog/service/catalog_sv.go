package catalogService

import (
	"ProjectGlimmer/internal/api/catalog"
	"ProjectGlimmer/internal/entity"
	"context"
)

func (s *catalogService) GetProductByID(ctx context.Context, id string) (catalog.ProductResponse, error) {
	repoClient, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithField("error", err.Error()).Error("[CatalogService][GetProductByID] failed to create repository client")
		return catalog.ProductResponse{}, err
	}

	product, err := repoClient.Products.GetProductByID(ctx, id)
	if err != nil {
		return catalog.ProductResponse{}, err
	}

	return s.makeProductResponse(product), nil
}

func (s *catalogService) GetAllProducts(ctx context.Context, page int) (catalog.ProductListResponse, error) {
	if page < 1 {
		return catalog.ProductListResponse{}, catalog.ErrInvalidPage
	}

	repoClient, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithField("error", err.Error()).Error("[CatalogService][GetAllProducts] failed to create repository client")
		return catalog.ProductListResponse{}, err
	}

	offset := (page - 1) * PageSize
	products, total, err := repoClient.Products.GetAllProducts(ctx, PageSize, offset)
	if err != nil {
		return catalog.ProductListResponse{}, err
	}

	totalPages := total / PageSize
	if total%PageSize != 0 {
		totalPages++
	}

	responses := make([]catalog.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, s.makeProductResponse(product))
	}

	return catalog.ProductListResponse{
		Products:   responses,
		Total:      total,
		Page:       page,
		PageSize:   PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *catalogService) GetSaleProducts(ctx context.Context) ([]catalog.ProductResponse, error) {
	repoClient, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithField("error", err.Error()).Error("[CatalogService][GetSaleProducts] failed to create repository client")
		return nil, err
	}

	products, err := repoClient.Products.GetSaleProducts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]catalog.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, s.makeProductResponse(product))
	}

	return responses, nil
}

func (s *catalogService) GetAllCategories(ctx context.Context) (catalog.CategoryListResponse, error) {
	repoClient, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithField("error", err.Error()).Error("[CatalogService][GetAllCategories] failed to create repository client")
		return catalog.CategoryListResponse{}, err
	}

	categories, err := repoClient.Categories.GetAllCategories(ctx)
	if err != nil {
		return catalog.CategoryListResponse{}, err
	}

	responses := make([]catalog.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, catalog.CategoryResponse{
			ID:        category.ID,
			Name:      s.utils.DisplayName(category.Name),
			CreatedAt: category.CreatedAt,
		})
	}

	return catalog.CategoryListResponse{Categories: responses}, nil
}

func (s *catalogService) GetProductsInCategory(ctx context.Context, categoryName string) ([]catalog.ProductResponse, error) {
	products, err := s.ProductsInCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	responses := make([]catalog.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, s.makeProductResponse(product))
	}

	return responses, nil
}

func (s *catalogService) FindProductByName(ctx context.Context, name string) (entity.Product, error) {
	repoClient, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithField("error", err.Error()).Error("[CatalogService][FindProductByName] failed to create repository client")
		return entity.Product{}, err
	}

	return repoClient.Products.GetProductByNameInsensitive(ctx, s.utils.StorageName(name))
}

func (s *catalogService) ProductsInCategory(ctx context.Context, categoryName string) ([]entity.Product, error) {
	repoClient, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithField("error", err.Error()).Error("[CatalogService][ProductsInCategory] failed to create repository client")
		return nil, err
	}

	category, err := repoClient.Categories.GetCategoryByName(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	return repoClient.Products.GetProductsByCategoryName(ctx, category.Name)
}

func (s *catalogService) makeProductResponse(product entity.Product) catalog.ProductResponse {
	return catalog.ProductResponse{
		ID:          product.ID,
		Name:        s.utils.DisplayName(product.Name),
		Price:       product.Price,
		Description: product.Description,
		Category:    s.utils.DisplayName(product.CategoryName),
		IsSale:      product.IsSale,
		SalePrice:   product.SalePrice,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
