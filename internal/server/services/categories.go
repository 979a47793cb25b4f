package services

import (
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/server/models"
)

const categoryIDParam = "category_id"

func ListCategories(sc *AuthorizedScope) *future.Future[models.ListResponse[models.Category]] {
	return future.Map(sc.Repos.Categories(sc.Conn).List(), func(items []models.Category) models.ListResponse[models.Category] {
		return models.ListResponse[models.Category]{Results: items}
	})
}

// CreateCategory adds a category. An unknown parent_id is NotFound.
func CreateCategory(sc *AuthorizedScope) *future.Future[models.IDResponse] {
	id := future.Bind(Body[models.NewCategoryRequest](sc.Scope), sc.Repos.Categories(sc.Conn).Create)
	return future.Map(id, toIDResponse)
}

// UpdateCategory replaces the category named by the path. Cycles through
// parent_id are not checked.
func UpdateCategory(sc *AuthorizedScope) *future.Future[models.IDResponse] {
	categoryID := future.FromResult(PathID(sc.Scope, categoryIDParam))

	id := future.Bind(categoryID, func(categoryID int64) *future.Future[int64] {
		return future.Bind(Body[models.UpdateCategoryRequest](sc.Scope), func(req models.UpdateCategoryRequest) *future.Future[int64] {
			return sc.Repos.Categories(sc.Conn).UpdateByID(categoryID, req)
		})
	})
	return future.Map(id, toIDResponse)
}

func toIDResponse(id int64) models.IDResponse {
	return models.IDResponse{ID: id}
}
