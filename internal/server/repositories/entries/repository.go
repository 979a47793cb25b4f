package entries

import (
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/server/models"
)

type Repository interface {
	Create(categoryID int64, entry models.NewEntryRequest) *future.Future[int64]
	ListByCategory(categoryID int64) *future.Future[[]models.Entry]
}
