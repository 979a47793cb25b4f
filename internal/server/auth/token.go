package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/result"
)

// Claims carries the authenticated user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID *int64 `json:"user_id,omitempty"`
}

var errMissingUserID = errors.New("token has no user_id claim")

// IssueToken signs an HS256 token for userID.
// TODO: add an exp claim once the front-end handles re-login on 401.
func IssueToken(secret string, userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: &userID})
	return token.SignedString([]byte(secret))
}

// VerifyToken checks the signature and algorithm of token and returns its user id.
func VerifyToken(secret, token string) result.Result[int64] {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return result.Err[int64](common.ErrInvalidAuthToken.WithCause(err))
	}
	if claims.UserID == nil {
		return result.Err[int64](common.ErrInvalidAuthToken.WithCause(errMissingUserID))
	}

	return result.Ok(*claims.UserID)
}
