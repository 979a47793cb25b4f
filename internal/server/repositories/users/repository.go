package users

import (
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/server/models"
)

type Repository interface {
	Create(user models.UserModel) *future.Future[int64]
	GetByID(id int64) *future.Future[models.User]
	GetByName(userName string) *future.Future[models.User]
}
