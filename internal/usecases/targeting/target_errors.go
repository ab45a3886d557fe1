package targeting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
)

var (
	// Erros de validação
	ErrInvalidRequest = errors.New("solicitação de meta inválida")

	// Registros inexistentes
	ErrAccountNotFound = errors.New("conta não encontrada")
	ErrTeamNotFound    = errors.New("time não encontrado")
	ErrTargetNotFound  = errors.New("meta não encontrada")

	// Elegibilidade
	ErrIneligibleRecipient = errors.New("conta sem permissão para o tipo de meta")
	ErrEmptyTeam           = errors.New("não é possível atribuir meta a um time vazio")
	ErrNoEligibleMembers   = errors.New("nenhum membro do time tem a permissão exigida")

	// Gravação do lote; a atomicidade entre registros não é garantida para o chamador
	ErrAllocationFailed = errors.New("falha ao gravar metas")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// TargetError é um erro com contexto adicional para metas
type TargetError struct {
	Err       error
	Code      string
	AccountID domain.AccountID
	Details   string
}

func (e *TargetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

func NewTargetError(err error, code string, details string) *TargetError {
	return &TargetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewTargetErrorWithAccount(err error, code string, accountID domain.AccountID, details string) *TargetError {
	return &TargetError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}

// IsEligibilityError indica rejeição da alocação por permissão ou composição do time
func IsEligibilityError(err error) bool {
	return errors.Is(err, ErrIneligibleRecipient) ||
		errors.Is(err, ErrEmptyTeam) ||
		errors.Is(err, ErrNoEligibleMembers)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrTeamNotFound) ||
		errors.Is(err, ErrTargetNotFound)
}

// codeFor mapeia o erro base para o código da API
func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, ErrAccountNotFound):
		return apiErrors.ErrAccountNotFound
	case errors.Is(err, ErrTeamNotFound):
		return apiErrors.ErrTeamNotFound
	case errors.Is(err, ErrTargetNotFound):
		return apiErrors.ErrTargetNotFound
	case errors.Is(err, ErrIneligibleRecipient):
		return apiErrors.ErrIneligibleRecipient
	case errors.Is(err, ErrEmptyTeam):
		return apiErrors.ErrEmptyTeam
	case errors.Is(err, ErrNoEligibleMembers):
		return apiErrors.ErrNoEligibleMembers
	case errors.Is(err, ErrAllocationFailed):
		return apiErrors.ErrAllocationFailed
	}
	return apiErrors.ErrDatabaseOperation
}
