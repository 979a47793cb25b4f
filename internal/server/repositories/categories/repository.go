package categories

import (
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/server/models"
)

type Repository interface {
	Create(category models.NewCategoryRequest) *future.Future[int64]
	List() *future.Future[[]models.Category]
	UpdateByID(id int64, category models.UpdateCategoryRequest) *future.Future[int64]
}
