package catalogRepository

import (
	"ProjectGlimmer/internal/api/catalog"
	"ProjectGlimmer/internal/entity"
	contextPkg "ProjectGlimmer/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ProductDB struct {
	ID           sql.NullString  `db:"id"`
	Name         sql.NullString  `db:"name"`
	Price        sql.NullFloat64 `db:"price"`
	Description  sql.NullString  `db:"description"`
	CategoryID   sql.NullString  `db:"category_id"`
	CategoryName sql.NullString  `db:"category_name"`
	IsSale       sql.NullBool    `db:"is_sale"`
	SalePrice    sql.NullFloat64 `db:"sale_price"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (r *productsRepository) GetProductByID(ctx context.Context, id string) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var productDB ProductDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetProductByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProductByID named query preparation err")
		return entity.Product{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&productDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetProductByID no rows found")
			return entity.Product{}, catalog.ErrProductNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProductByID execution err")
		return entity.Product{}, err
	}

	return r.makeProduct(productDB), nil
}

func (r *productsRepository) GetProductByNameInsensitive(ctx context.Context, name string) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var productDB ProductDB

	argsKV := map[string]interface{}{
		"name": name,
	}

	query, args, err := sqlx.Named(queryGetProductByNameInsensitive, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProductByNameInsensitive named query preparation err")
		return entity.Product{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&productDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       name,
			}).Debug("GetProductByNameInsensitive no rows found")
			return entity.Product{}, catalog.ErrProductNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProductByNameInsensitive execution err")
		return entity.Product{}, err
	}

	return r.makeProduct(productDB), nil
}

func (r *productsRepository) GetAllProducts(ctx context.Context, limit, offset int) ([]entity.Product, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var productsList []ProductDB

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetAllProducts, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllProducts named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &productsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllProducts execution err")
		return nil, 0, err
	}

	var total int
	countQuery, countArgs, err := sqlx.Named(queryCountAllProducts, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllProducts count query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllProducts count execution err")
		return nil, 0, err
	}

	var products []entity.Product
	for _, productDB := range productsList {
		products = append(products, r.makeProduct(productDB))
	}

	return products, total, nil
}

func (r *productsRepository) GetSaleProducts(ctx context.Context) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var productsList []ProductDB

	query, args, err := sqlx.Named(queryGetSaleProducts, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSaleProducts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &productsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSaleProducts execution err")
		return nil, err
	}

	var products []entity.Product
	for _, productDB := range productsList {
		products = append(products, r.makeProduct(productDB))
	}

	return products, nil
}

func (r *productsRepository) GetProductsByCategoryName(ctx context.Context, categoryName string) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var productsList []ProductDB

	argsKV := map[string]interface{}{
		"category_name": categoryName,
	}

	query, args, err := sqlx.Named(queryGetProductsByCategoryName, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProductsByCategoryName named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &productsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProductsByCategoryName execution err")
		return nil, err
	}

	var products []entity.Product
	for _, productDB := range productsList {
		products = append(products, r.makeProduct(productDB))
	}

	return products, nil
}

func (r *productsRepository) makeProduct(productDB ProductDB) entity.Product {
	return entity.Product{
		ID:           productDB.ID.String,
		Name:         productDB.Name.String,
		Price:        productDB.Price.Float64,
		Description:  productDB.Description.String,
		CategoryID:   productDB.CategoryID.String,
		CategoryName: productDB.CategoryName.String,
		IsSale:       productDB.IsSale.Bool,
		SalePrice:    productDB.SalePrice.Float64,
		CreatedAt:    productDB.CreatedAt,
		UpdatedAt:    productDB.UpdatedAt,
	}
}
