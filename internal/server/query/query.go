// Package query executes parameterized statements against PostgreSQL and
// turns their outcome into result values. Store failures are classified by
// SQLSTATE into the application error taxonomy.
package query

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/dbx"
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/result"
)

// Statement is SQL text with $n placeholders and its positional arguments.
type Statement struct {
	SQL  string
	Args []any
}

// Scanner is the row view handed to projectors.
type Scanner interface {
	Scan(dest ...any) error
}

// Cursor is the open result set of an executed statement.
// Fetch functions close it.
type Cursor struct {
	rows *sql.Rows
}

// Close releases the result set. It is safe to call more than once.
func (c *Cursor) Close() error {
	return c.rows.Close()
}

// Execute runs stmt on conn when the returned future is awaited.
func Execute(conn dbx.DBTX, stmt Statement) *future.Future[*Cursor] {
	return future.Safe(func(ctx context.Context) (*Cursor, error) {
		rows, err := conn.QueryContext(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			return nil, err
		}
		return &Cursor{rows: rows}, nil
	}, Classify)
}

// Classify maps a store error to the taxonomy: foreign key violations become
// NotFound, unique violations AlreadyExists, everything else ServerError.
func Classify(err error) *common.Error {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return common.ErrNotFound.
				WithDescription("One of related objects doesn't exist").
				WithCause(err)
		case pgerrcode.UniqueViolation:
			return common.ErrAlreadyExists.WithCause(err)
		}
	}

	return common.Internal(err)
}

// FetchOne projects the first row of c. No rows yields NotFound.
func FetchOne[T any](c *Cursor, project func(Scanner) (T, error)) result.Result[T] {
	defer c.Close()

	if !c.rows.Next() {
		if err := c.rows.Err(); err != nil {
			return result.Err[T](Classify(err))
		}
		return result.Err[T](common.ErrNotFound)
	}

	v, err := project(c.rows)
	if err != nil {
		return result.Err[T](Classify(err))
	}
	return result.Ok(v)
}

// FetchID reads a single id column from the first row.
func FetchID(c *Cursor) result.Result[int64] {
	return FetchOne(c, scanID)
}

// FetchAll projects every row of c. An empty result set is not an error.
func FetchAll[T any](c *Cursor, project func(Scanner) (T, error)) result.Result[[]T] {
	defer c.Close()

	items := make([]T, 0)
	for c.rows.Next() {
		v, err := project(c.rows)
		if err != nil {
			return result.Err[[]T](Classify(err))
		}
		items = append(items, v)
	}
	if err := c.rows.Err(); err != nil {
		return result.Err[[]T](Classify(err))
	}
	return result.Ok(items)
}

func scanID(s Scanner) (int64, error) {
	var id int64
	err := s.Scan(&id)
	return id, err
}
