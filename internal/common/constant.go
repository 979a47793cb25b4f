package common

// SessionCookieName is the cookie that carries the signed auth token.
const SessionCookieName = "session"
