package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/result"
	"github.com/dmitrijs2005/catalog/internal/server/auth"
	"github.com/dmitrijs2005/catalog/internal/server/models"
)

// SignUp registers a regular user.
func SignUp(sc *Scope) *future.Future[models.UserSignUpResponse] {
	return future.Bind(Body[models.UserSignUpRequest](sc), func(req models.UserSignUpRequest) *future.Future[models.UserSignUpResponse] {
		return RegisterUser(sc, req, false)
	})
}

// RegisterUser secures the password and stores the user. A taken username is
// AlreadyExists.
func RegisterUser(sc *Scope, req models.UserSignUpRequest, superuser bool) *future.Future[models.UserSignUpResponse] {
	secured := future.Safe(func(context.Context) (string, error) {
		return auth.SecurePassword(sc.Config.SecretKey, req.Password)
	}, common.Internal)

	created := future.Bind(secured, func(hash string) *future.Future[int64] {
		return sc.Repos.Users(sc.Conn).Create(models.UserModel{
			UserName:       req.UserName,
			SecurePassword: hash,
			Email:          req.Email,
			IsSuperuser:    superuser,
		})
	})

	return future.Map(created, func(id int64) models.UserSignUpResponse {
		return models.UserSignUpResponse{ID: id, UserName: req.UserName, Email: req.Email}
	})
}

type signedIn struct {
	user  models.User
	token string
}

// SignIn checks the credentials and stores a fresh token in the session.
// Unknown users and wrong passwords fail the same way.
func SignIn(sc *Scope) *future.Future[models.UserSignInResponse] {
	user := future.Bind(Body[models.UserLoginRequest](sc), func(req models.UserLoginRequest) *future.Future[models.User] {
		found := future.Alt(sc.Repos.Users(sc.Conn).GetByName(req.UserName), notFoundAs(common.ErrAuthenticationFailed))
		return future.BindResult(found, func(u models.User) result.Result[models.User] {
			return result.Map(auth.CheckPassword(sc.Config.SecretKey, req.Password, u.SecurePassword),
				func(bool) models.User { return u })
		})
	})

	issued := future.BindResult(user, func(u models.User) result.Result[signedIn] {
		token, err := auth.IssueToken(sc.Config.SecretKey, u.ID)
		return result.From(signedIn{user: u, token: token}, err, common.Internal)
	})

	return future.Map(
		future.Tap(issued, func(s signedIn) { sc.Session.SetToken(s.token) }),
		func(s signedIn) models.UserSignInResponse {
			return models.UserSignInResponse{UserID: s.user.ID, UserName: s.user.UserName}
		})
}

// SignOut drops the session token. It succeeds without a session too.
func SignOut(sc *Scope) *future.Future[models.Empty] {
	return future.New(func(context.Context) result.Result[models.Empty] {
		sc.Session.Clear()
		return result.Ok(models.Empty{})
	})
}

// Authorize resolves the session token to an active user. A token naming a
// deleted user is NotFound; a deactivated user is NotAuthorised.
func Authorize(sc *Scope) *future.Future[*AuthorizedScope] {
	token := future.New(func(context.Context) result.Result[string] {
		t, ok := sc.Session.Token()
		if !ok {
			return result.Err[string](common.ErrNotAuthorised)
		}
		return result.Ok(t)
	})

	userID := future.BindResult(token, func(t string) result.Result[int64] {
		return auth.VerifyToken(sc.Config.SecretKey, t)
	})

	user := future.Bind(userID, sc.Repos.Users(sc.Conn).GetByID)

	return future.BindResult(user, func(u models.User) result.Result[*AuthorizedScope] {
		if !u.IsActive {
			return result.Err[*AuthorizedScope](common.ErrNotAuthorised)
		}
		return result.Ok(&AuthorizedScope{Scope: sc, User: u})
	})
}

func notFoundAs(replacement *common.Error) func(*common.Error) *common.Error {
	return func(e *common.Error) *common.Error {
		if errors.Is(e, common.ErrNotFound) {
			return replacement
		}
		return e
	}
}
