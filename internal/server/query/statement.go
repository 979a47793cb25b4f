package query

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrijs2005/catalog/internal/codec"
	"github.com/dmitrijs2005/catalog/internal/dbx"
	"github.com/dmitrijs2005/catalog/internal/future"
)

var idColumn = pgx.Identifier{"id"}.Sanitize()

// Insert builds INSERT ... RETURNING id for fields, in order.
func Insert(table pgx.Identifier, fields []codec.Field) Statement {
	if len(fields) == 0 {
		return Statement{SQL: fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", table.Sanitize(), idColumn)}
	}

	columns := make([]string, len(fields))
	placeholders := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, f := range fields {
		columns[i] = pgx.Identifier{f.Column}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = f.Value
	}

	return Statement{
		SQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			table.Sanitize(), strings.Join(columns, ", "), strings.Join(placeholders, ", "), idColumn),
		Args: args,
	}
}

// Update builds UPDATE ... WHERE id = $n RETURNING id, setting fields in order.
func Update(table pgx.Identifier, id int64, fields []codec.Field) Statement {
	assignments := make([]string, len(fields))
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		assignments[i] = fmt.Sprintf("%s = $%d", pgx.Identifier{f.Column}.Sanitize(), i+1)
		args = append(args, f.Value)
	}
	args = append(args, id)

	return Statement{
		SQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
			table.Sanitize(), strings.Join(assignments, ", "), idColumn, len(args), idColumn),
		Args: args,
	}
}

// InsertReturningID inserts fields into table and yields the new id.
func InsertReturningID(conn dbx.DBTX, table pgx.Identifier, fields []codec.Field) *future.Future[int64] {
	return future.BindResult(Execute(conn, Insert(table, fields)), FetchID)
}

// UpdateByID updates the row with id and yields it back. A missing row is NotFound.
func UpdateByID(conn dbx.DBTX, table pgx.Identifier, id int64, fields []codec.Field) *future.Future[int64] {
	return future.BindResult(Execute(conn, Update(table, id, fields)), FetchID)
}
