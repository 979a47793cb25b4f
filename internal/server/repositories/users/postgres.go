package users

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

var Table = pgx.Identifier{"education", "user"}

const selectUser = `SELECT id, username, password, COALESCE(email, ''),
		COALESCE(is_superuser, false), COALESCE(is_active, true), date_joined
	FROM "education"."user"`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(user models.UserModel) *future.Future[int64] {
	return query.InsertReturningID(r.db, Table, codec.ToMapping(user))
}

func (r *PostgresRepository) GetByID(id int64) *future.Future[models.User] {
	return r.getOne(query.Statement{SQL: selectUser + ` WHERE id = $1 LIMIT 1`, Args: []any{id}})
}

func (r *PostgresRepository) GetByName(userName string) *future.Future[models.User] {
	return r.getOne(query.Statement{SQL: selectUser + ` WHERE username = $1 LIMIT 1`, Args: []any{userName}})
}

func (r *PostgresRepository) getOne(stmt query.Statement) *future.Future[models.User] {
	return future.BindResult(query.Execute(r.db, stmt), func(c *query.Cursor) result.Result[models.User] {
		return query.FetchOne(c, scanUser)
	})
}

func scanUser(s query.Scanner) (models.User, error) {
	var (
		u      models.User
		joined sql.NullTime
	)
	err := s.Scan(&u.ID, &u.UserName, &u.SecurePassword, &u.Email, &u.IsSuperuser, &u.IsActive, &joined)
	u.DateJoined = joined.Time
	return u, err
}
