package catalog

import "ProjectGlimmer/pkg/response"

var (
	ErrProductNotFound  = response.NewError(404, "product not found")
	ErrCategoryNotFound = response.NewError(404, "category not found")
	ErrInvalidPage      = response.NewError(400, "invalid page number")
)
