package categories

import (
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrijs2005/catalog/internal/codec"
	"github.com/dmitrijs2005/catalog/internal/dbx"
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/result"
	"github.com/dmitrijs2005/catalog/internal/server/models"
	"github.com/dmitrijs2005/catalog/internal/server/query"
)

var Table = pgx.Identifier{"education", "category"}

const listCategories = `SELECT id, COALESCE(image, ''), name, description, parent_id
	FROM "education"."category"
	ORDER BY id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(category models.NewCategoryRequest) *future.Future[int64] {
	return query.InsertReturningID(r.db, Table, codec.ToMapping(category))
}

func (r *PostgresRepository) List() *future.Future[[]models.Category] {
	return future.BindResult(query.Execute(r.db, query.Statement{SQL: listCategories}),
		func(c *query.Cursor) result.Result[[]models.Category] {
			return query.FetchAll(c, scanCategory)
		})
}

// UpdateByID overwrites all columns of the category. A missing id is NotFound.
func (r *PostgresRepository) UpdateByID(id int64, category models.UpdateCategoryRequest) *future.Future[int64] {
	return query.UpdateByID(r.db, Table, id, codec.ToMapping(category))
}

func scanCategory(s query.Scanner) (models.Category, error) {
	var (
		c      models.Category
		parent sql.NullInt64
	)
	if err := s.Scan(&c.ID, &c.Image, &c.Name, &c.Description, &parent); err != nil {
		return c, err
	}
	if parent.Valid {
		c.ParentID = &parent.Int64
	}
	return c, nil
}
