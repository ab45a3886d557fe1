package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims é a identidade já autenticada que chega no token
type Claims struct {
	AccountID  AccountID       `json:"accountId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       Role            `json:"role"`
	Permission PermissionLevel `json:"permissions"`
	jwt.RegisteredClaims
}
