package entries

import (
	"github.com/jackc/pgx/v5"

	"github.com/dmitrijs2005/catalog/internal/codec"
	"github.com/dmitrijs2005/catalog/internal/dbx"
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/result"
	"github.com/dmitrijs2005/catalog/internal/server/models"
	"github.com/dmitrijs2005/catalog/internal/server/query"
)

var Table = pgx.Identifier{"education", "entry"}

const listByCategory = `SELECT id, title, description, keywords, COALESCE(links, ''),
		category_id, COALESCE(is_deleted, false)
	FROM "education"."entry"
	WHERE category_id = $1
	ORDER BY id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create files entry under categoryID. An unknown category is NotFound.
func (r *PostgresRepository) Create(categoryID int64, entry models.NewEntryRequest) *future.Future[int64] {
	fields := append(codec.ToMapping(entry), codec.Field{Column: "category_id", Value: categoryID})
	return query.InsertReturningID(r.db, Table, fields)
}

func (r *PostgresRepository) ListByCategory(categoryID int64) *future.Future[[]models.Entry] {
	stmt := query.Statement{SQL: listByCategory, Args: []any{categoryID}}
	return future.BindResult(query.Execute(r.db, stmt), func(c *query.Cursor) result.Result[[]models.Entry] {
		return query.FetchAll(c, scanEntry)
	})
}

func scanEntry(s query.Scanner) (models.Entry, error) {
	var e models.Entry
	err := s.Scan(&e.ID, &e.Title, &e.Description, &e.Keywords, &e.Links, &e.CategoryID, &e.IsDeleted)
	return e, err
}
