package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims Клеймы токена чат-моста. Subject - идентификатор сессии (чата).
type SessionClaims struct {
	jwt.RegisteredClaims
}
