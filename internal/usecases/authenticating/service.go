package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/target-performance-api/internal/config"
	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Authenticator valida e emite os tokens que carregam a identidade da conta.
// O login fica fora desta API; os tokens chegam já emitidos.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	IssueToken(account *domain.Account) (string, error)
}

type Service struct {
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret:   []byte(cfg.Auth.Secret),
		tokenTTL: cfg.Auth.TokenTTL,
		now:      time.Now,
	}
}

func (s *Service) IssueToken(account *domain.Account) (string, error) {
	if account == nil || account.ID == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "conta sem identificador")
	}

	ttl := s.tokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := s.now()
	claims := domain.Claims{
		AccountID:  account.ID,
		Name:       account.Name,
		Email:      account.Email,
		Role:       account.Role,
		Permission: account.Permission,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", NewAccountAuthError(ErrSigningToken, apiErrors.ErrInternalServer, account.ID, err.Error())
	}

	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	claims.AccountID = domain.NormalizeAccountID(claims.AccountID.String())
	if claims.AccountID == "" || !claims.Role.Valid() {
		return nil, NewAuthError(ErrInvalidClaims, apiErrors.ErrInvalidToken, "conta ou perfil ausente")
	}

	return claims, nil
}
