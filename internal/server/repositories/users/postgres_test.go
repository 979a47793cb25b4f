package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var userColumns = []string{"id", "username", "password", "email", "is_superuser", "is_active", "date_joined"}

const insertUser = `(?s)^INSERT\s+INTO\s+"education"\."user"\s*\("username",\s*"password",\s*"email",\s*"is_superuser"\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+"id"$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertUser).
		WithArgs("alice", "hashed", "a@example.com", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	r := repo.Create(models.UserModel{UserName: "alice", SecurePassword: "hashed", Email: "a@example.com"}).
		Await(context.Background())
	if !r.IsOk() || r.Value() != 42 {
		t.Fatalf("unexpected result: %v %v", r.Value(), r.Failure())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_DuplicateUserName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertUser).
		WithArgs("alice", "hashed", "", false).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "user_username_key"})

	r := repo.Create(models.UserModel{UserName: "alice", SecurePassword: "hashed"}).Await(context.Background())
	if !errors.Is(r.Failure(), common.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", r.Failure())
	}
}

func TestGetByName_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	joined := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	q := `(?s)^SELECT\s+id,\s*username,\s*password,.*FROM\s+"education"\."user"\s+WHERE\s+username\s*=\s*\$1\s+LIMIT\s+1$`
	mock.ExpectQuery(q).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(1), "alice", "hashed", "a@example.com", false, true, joined))

	r := repo.GetByName("alice").Await(context.Background())
	if !r.IsOk() {
		t.Fatalf("GetByName error: %v", r.Failure())
	}
	want := models.User{ID: 1, UserName: "alice", SecurePassword: "hashed", Email: "a@example.com", IsActive: true, DateJoined: joined}
	if r.Value() != want {
		t.Fatalf("unexpected user: %+v", r.Value())
	}
}

func TestGetByName_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE\s+username\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	r := repo.GetByName("ghost").Await(context.Background())
	if !errors.Is(r.Failure(), common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", r.Failure())
	}
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(7)).
		WillReturnError(errors.New("db down"))

	r := repo.GetByID(7).Await(context.Background())
	if !errors.Is(r.Failure(), common.ErrServerError) {
		t.Fatalf("want ErrServerError, got %v", r.Failure())
	}
	if !regexp.MustCompile(`db down`).MatchString(r.Failure().Error()) {
		t.Fatalf("cause not kept: %v", r.Failure())
	}
}
