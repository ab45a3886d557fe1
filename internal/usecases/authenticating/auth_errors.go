package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/target-performance-api/internal/domain"
)

var (
	// Erros de token
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidClaims = errors.New("identidade do token incompleta")

	// Erros de emissão
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrSigningToken        = errors.New("erro ao assinar token")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err       error            // Erro base
	Code      string           // Código de erro para API
	AccountID domain.AccountID // Conta envolvida (quando aplicável)
	Details   string           // Detalhes adicionais
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsTokenError verifica se o erro invalida a requisição como não autenticada
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrInvalidClaims)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewAccountAuthError(baseErr error, code string, accountID domain.AccountID, details string) *AuthError {
	return &AuthError{
		Err:       baseErr,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
