package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/dbx"
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/server/config"
	"github.com/dmitrijs2005/catalog/internal/server/models"
	"github.com/dmitrijs2005/catalog/internal/server/repositories/categories"
	"github.com/dmitrijs2005/catalog/internal/server/repositories/entries"
	"github.com/dmitrijs2005/catalog/internal/server/repositories/users"
)

type fakeRequest struct {
	body    []byte
	bodyErr error
	params  map[string]string
}

func (r *fakeRequest) ReadBody(context.Context) ([]byte, error) { return r.body, r.bodyErr }
func (r *fakeRequest) PathParam(name string) string             { return r.params[name] }

type fakeSession struct {
	token   string
	present bool
	cleared bool
}

func (s *fakeSession) Token() (string, bool) { return s.token, s.present }
func (s *fakeSession) SetToken(token string) { s.token, s.present = token, true }
func (s *fakeSession) Clear()                { s.token, s.present, s.cleared = "", false, true }

type fakeUsersRepo struct {
	byName  map[string]models.User
	byID    map[int64]models.User
	created []models.UserModel
	nextID  int64
	getErr  *common.Error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byName: map[string]models.User{}, byID: map[int64]models.User{}}
}

func (f *fakeUsersRepo) Create(u models.UserModel) *future.Future[int64] {
	if _, ok := f.byName[u.UserName]; ok {
		return future.Err[int64](common.ErrAlreadyExists)
	}
	f.nextID++
	f.created = append(f.created, u)
	stored := models.User{ID: f.nextID, UserName: u.UserName, SecurePassword: u.SecurePassword, Email: u.Email, IsSuperuser: u.IsSuperuser, IsActive: true}
	f.byName[u.UserName] = stored
	f.byID[stored.ID] = stored
	return future.Ok(f.nextID)
}

func (f *fakeUsersRepo) GetByID(id int64) *future.Future[models.User] {
	if f.getErr != nil {
		return future.Err[models.User](f.getErr)
	}
	u, ok := f.byID[id]
	if !ok {
		return future.Err[models.User](common.ErrNotFound)
	}
	return future.Ok(u)
}

func (f *fakeUsersRepo) GetByName(name string) *future.Future[models.User] {
	if f.getErr != nil {
		return future.Err[models.User](f.getErr)
	}
	u, ok := f.byName[name]
	if !ok {
		return future.Err[models.User](common.ErrNotFound)
	}
	return future.Ok(u)
}

type fakeCategoriesRepo struct {
	items   []models.Category
	created []models.NewCategoryRequest
	updated map[int64]models.UpdateCategoryRequest
}

func (f *fakeCategoriesRepo) Create(c models.NewCategoryRequest) *future.Future[int64] {
	if c.ParentID != nil && !f.exists(*c.ParentID) {
		return future.Err[int64](common.ErrNotFound.WithDescription("One of related objects doesn't exist"))
	}
	f.created = append(f.created, c)
	id := int64(len(f.items) + 1)
	f.items = append(f.items, models.Category{ID: id, Image: c.Image, Name: c.Name, Description: c.Description, ParentID: c.ParentID})
	return future.Ok(id)
}

func (f *fakeCategoriesRepo) List() *future.Future[[]models.Category] {
	return future.Ok(append([]models.Category{}, f.items...))
}

func (f *fakeCategoriesRepo) UpdateByID(id int64, c models.UpdateCategoryRequest) *future.Future[int64] {
	if !f.exists(id) {
		return future.Err[int64](common.ErrNotFound)
	}
	if f.updated == nil {
		f.updated = map[int64]models.UpdateCategoryRequest{}
	}
	f.updated[id] = c
	return future.Ok(id)
}

func (f *fakeCategoriesRepo) exists(id int64) bool {
	for _, c := range f.items {
		if c.ID == id {
			return true
		}
	}
	return false
}

type fakeEntriesRepo struct {
	categories *fakeCategoriesRepo
	items      []models.Entry
}

func (f *fakeEntriesRepo) Create(categoryID int64, e models.NewEntryRequest) *future.Future[int64] {
	if !f.categories.exists(categoryID) {
		return future.Err[int64](common.ErrNotFound.WithDescription("One of related objects doesn't exist"))
	}
	id := int64(len(f.items) + 1)
	f.items = append(f.items, models.Entry{ID: id, Title: e.Title, Description: e.Description, Keywords: e.Keywords, Links: e.Links, CategoryID: categoryID})
	return future.Ok(id)
}

func (f *fakeEntriesRepo) ListByCategory(categoryID int64) *future.Future[[]models.Entry] {
	out := []models.Entry{}
	for _, e := range f.items {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return future.Ok(out)
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeCategoriesRepo
	e *fakeEntriesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	c := &fakeCategoriesRepo{}
	return &fakeRepoManager{u: newFakeUsersRepo(), c: c, e: &fakeEntriesRepo{categories: c}}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return errors.New("not supported") }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.u }
func (m *fakeRepoManager) Categories(dbx.DBTX) categories.Repository    { return m.c }
func (m *fakeRepoManager) Entries(dbx.DBTX) entries.Repository          { return m.e }

func newScope(rm *fakeRepoManager, req *fakeRequest, sess *fakeSession) *Scope {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	if req == nil {
		req = &fakeRequest{}
	}
	if sess == nil {
		sess = &fakeSession{}
	}
	return &Scope{Repos: rm, Config: cfg, Request: req, Session: sess}
}
