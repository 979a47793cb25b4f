package models

import "time"

// User is a stored account.
type User struct {
	ID             int64
	UserName       string
	SecurePassword string
	Email          string
	IsSuperuser    bool
	IsActive       bool
	DateJoined     time.Time
}

// UserModel is a user ready to be persisted: the password is already secured.
type UserModel struct {
	UserName       string `json:"username" db:"username"`
	SecurePassword string `json:"secure_password" db:"password"`
	Email          string `json:"email" db:"email"`
	IsSuperuser    bool   `json:"is_superuser" db:"is_superuser"`
}

type UserSignUpRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type UserSignUpResponse struct {
	ID       int64  `json:"id"`
	UserName string `json:"username"`
	Email    string `json:"email"`
}

type UserLoginRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type UserSignInResponse struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"username"`
}
