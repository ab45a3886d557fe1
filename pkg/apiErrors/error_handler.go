package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Registros inexistentes
	ErrAccountNotFound = "NF_001" // Conta não encontrada
	ErrTeamNotFound    = "NF_002" // Time não encontrado
	ErrTargetNotFound  = "NF_003" // Meta não encontrada

	// Alocação de metas
	ErrIneligibleRecipient = "TGT_001" // Conta sem permissão para o tipo de meta
	ErrEmptyTeam           = "TGT_002" // Time sem membros
	ErrNoEligibleMembers   = "TGT_003" // Nenhum membro elegível
	ErrAllocationFailed    = "TGT_004" // Falha ao gravar o lote de metas

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrRequestCanceled   = "SRV_005" // Requisição cancelada ou expirada
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrAccountNotFound:       http.StatusNotFound,
	ErrTeamNotFound:          http.StatusNotFound,
	ErrTargetNotFound:        http.StatusNotFound,
	ErrIneligibleRecipient:   http.StatusUnprocessableEntity,
	ErrEmptyTeam:             http.StatusUnprocessableEntity,
	ErrNoEligibleMembers:     http.StatusUnprocessableEntity,
	ErrAllocationFailed:      http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrRequestCanceled:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP do código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
