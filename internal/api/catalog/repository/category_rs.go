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

type CategoryDB struct {
	ID        sql.NullString `db:"id"`
	Name      sql.NullString `db:"name"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *categoriesRepository) GetAllCategories(ctx context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var categoriesList []CategoryDB

	query, args, err := sqlx.Named(queryGetAllCategories, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &categoriesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories execution err")
		return nil, err
	}

	var categories []entity.Category
	for _, categoryDB := range categoriesList {
		categories = append(categories, r.makeCategory(categoryDB))
	}

	return categories, nil
}

func (r *categoriesRepository) GetCategoryByName(ctx context.Context, name string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var categoryDB CategoryDB

	argsKV := map[string]interface{}{
		"name": name,
	}

	query, args, err := sqlx.Named(queryGetCategoryByName, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByName named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&categoryDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       name,
			}).Warn("GetCategoryByName no rows found")
			return entity.Category{}, catalog.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByName execution err")
		return entity.Category{}, err
	}

	return r.makeCategory(categoryDB), nil
}

func (r *categoriesRepository) makeCategory(categoryDB CategoryDB) entity.Category {
	return entity.Category{
		ID:        categoryDB.ID.String,
		Name:      categoryDB.Name.String,
		CreatedAt: categoryDB.CreatedAt,
	}
}
