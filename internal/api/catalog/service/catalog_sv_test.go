package catalogService

import (
	"ProjectGlimmer/internal/api/catalog"
	catalogRepository "ProjectGlimmer/internal/api/catalog/repository"
	"ProjectGlimmer/internal/entity"
	"ProjectGlimmer/pkg/utils"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

type fakeProductsRepo struct {
	products []entity.Product
}

func (f *fakeProductsRepo) GetProductByID(_ context.Context, id string) (entity.Product, error) {
	for _, product := range f.products {
		if product.ID == id {
			return product, nil
		}
	}
	return entity.Product{}, catalog.ErrProductNotFound
}

func (f *fakeProductsRepo) GetProductByNameInsensitive(_ context.Context, name string) (entity.Product, error) {
	for _, product := range f.products {
		if strings.EqualFold(product.Name, name) {
			return product, nil
		}
	}
	return entity.Product{}, catalog.ErrProductNotFound
}

func (f *fakeProductsRepo) GetAllProducts(_ context.Context, limit, offset int) ([]entity.Product, int, error) {
	total := len(f.products)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return f.products[offset:end], total, nil
}

func (f *fakeProductsRepo) GetSaleProducts(_ context.Context) ([]entity.Product, error) {
	var sale []entity.Product
	for _, product := range f.products {
		if product.IsSale {
			sale = append(sale, product)
		}
	}
	return sale, nil
}

func (f *fakeProductsRepo) GetProductsByCategoryName(_ context.Context, categoryName string) ([]entity.Product, error) {
	var matched []entity.Product
	for _, product := range f.products {
		if product.CategoryName == categoryName {
			matched = append(matched, product)
		}
	}
	return matched, nil
}

type fakeCategoriesRepo struct {
	categories []entity.Category
}

func (f *fakeCategoriesRepo) GetAllCategories(_ context.Context) ([]entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoriesRepo) GetCategoryByName(_ context.Context, name string) (entity.Category, error) {
	for _, category := range f.categories {
		if strings.EqualFold(category.Name, name) {
			return category, nil
		}
	}
	return entity.Category{}, catalog.ErrCategoryNotFound
}

type fakeCatalogRepository struct {
	products   *fakeProductsRepo
	categories *fakeCategoriesRepo
}

func (f *fakeCatalogRepository) NewClient(_ bool) (catalogRepository.Client, error) {
	return catalogRepository.Client{
		Products:   f.products,
		Categories: f.categories,
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

func newTestCatalog(products []entity.Product, categories []entity.Category) ICatalogService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := &fakeCatalogRepository{
		products:   &fakeProductsRepo{products: products},
		categories: &fakeCategoriesRepo{categories: categories},
	}

	return New(logger, repo, utils.New())
}

func TestGetAllProductsPagination(t *testing.T) {
	products := make([]entity.Product, 0, 9)
	names := []string{
		"Blue_necklace", "Silver_necklace", "Gold_ring", "Silver_ring", "Stud_earring",
		"Hoop_earring", "Charm_bracelet", "Classic_watch", "Aviator_sunglasses",
	}
	for i, name := range names {
		products = append(products, entity.Product{ID: name, Name: name, Price: float64(100 * (i + 1))})
	}

	svc := newTestCatalog(products, nil)

	page1, err := svc.GetAllProducts(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetAllProducts: %v", err)
	}
	if len(page1.Products) != PageSize || page1.Total != 9 || page1.TotalPages != 3 {
		t.Fatalf("page 1 = %+v", page1)
	}
	if page1.Products[0].Name != "Blue necklace" {
		t.Errorf("first product name = %q, want display form", page1.Products[0].Name)
	}

	page3, err := svc.GetAllProducts(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetAllProducts page 3: %v", err)
	}
	if len(page3.Products) != 1 {
		t.Errorf("page 3 has %d products, want 1", len(page3.Products))
	}

	if _, err := svc.GetAllProducts(context.Background(), 0); !errors.Is(err, catalog.ErrInvalidPage) {
		t.Errorf("page 0 err = %v, want ErrInvalidPage", err)
	}
}

func TestFindProductByNameUsesStorageForm(t *testing.T) {
	svc := newTestCatalog([]entity.Product{{ID: "p-1", Name: "Blue_necklace", Price: 500}}, nil)

	product, err := svc.FindProductByName(context.Background(), "Blue necklace")
	if err != nil {
		t.Fatalf("FindProductByName: %v", err)
	}
	if product.Name != "Blue_necklace" {
		t.Errorf("product = %+v", product)
	}

	if _, err := svc.FindProductByName(context.Background(), "No such thing"); !errors.Is(err, catalog.ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestProductsInCategory(t *testing.T) {
	products := []entity.Product{
		{ID: "p-1", Name: "Blue_necklace", CategoryName: "necklace"},
		{ID: "p-2", Name: "Gold_ring", CategoryName: "ring"},
	}
	categories := []entity.Category{{ID: "c-1", Name: "necklace"}, {ID: "c-2", Name: "ring"}}

	svc := newTestCatalog(products, categories)

	matched, err := svc.ProductsInCategory(context.Background(), "necklace")
	if err != nil {
		t.Fatalf("ProductsInCategory: %v", err)
	}
	if len(matched) != 1 || matched[0].Name != "Blue_necklace" {
		t.Errorf("matched = %+v", matched)
	}

	if _, err := svc.ProductsInCategory(context.Background(), "shoes"); !errors.Is(err, catalog.ErrCategoryNotFound) {
		t.Errorf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestGetAllCategoriesDisplayNames(t *testing.T) {
	svc := newTestCatalog(nil, []entity.Category{{ID: "c-1", Name: "hair_accessory"}})

	result, err := svc.GetAllCategories(context.Background())
	if err != nil {
		t.Fatalf("GetAllCategories: %v", err)
	}
	if len(result.Categories) != 1 || result.Categories[0].Name != "hair accessory" {
		t.Errorf("categories = %+v", result.Categories)
	}
}
