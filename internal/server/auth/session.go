package auth

import (
	"net/http"

	"github.com/dmitrijs2005/catalog/internal/common"
)

// CookieSession keeps the session token in an HttpOnly cookie.
type CookieSession struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
}

func NewCookieSession(w http.ResponseWriter, r *http.Request, secure bool) *CookieSession {
	return &CookieSession{r: r, w: w, secure: secure}
}

// Token returns the token sent by the client, if any.
func (s *CookieSession) Token() (string, bool) {
	c, err := s.r.Cookie(common.SessionCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

func (s *CookieSession) SetToken(token string) {
	s.set(token, 0)
}

// Clear tells the client to drop the session cookie.
func (s *CookieSession) Clear() {
	s.set("", -1)
}

func (s *CookieSession) set(value string, maxAge int) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
