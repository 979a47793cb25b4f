package services

import (
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/server/models"
)

// CreateEntry files a new entry under the category named by the path.
func CreateEntry(sc *AuthorizedScope) *future.Future[models.IDResponse] {
	categoryID := future.FromResult(PathID(sc.Scope, categoryIDParam))

	id := future.Bind(categoryID, func(categoryID int64) *future.Future[int64] {
		return future.Bind(Body[models.NewEntryRequest](sc.Scope), func(req models.NewEntryRequest) *future.Future[int64] {
			return sc.Repos.Entries(sc.Conn).Create(categoryID, req)
		})
	})
	return future.Map(id, toIDResponse)
}

// ListCategoryEntries lists the entries of a category. An unknown category
// yields an empty list.
func ListCategoryEntries(sc *AuthorizedScope) *future.Future[models.ListResponse[models.Entry]] {
	categoryID := future.FromResult(PathID(sc.Scope, categoryIDParam))

	items := future.Bind(categoryID, sc.Repos.Entries(sc.Conn).ListByCategory)
	return future.Map(items, func(items []models.Entry) models.ListResponse[models.Entry] {
		return models.ListResponse[models.Entry]{Results: items}
	})
}
