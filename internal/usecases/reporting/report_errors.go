package reporting

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/target-performance-api/internal/domain"
	"github.com/vfg2006/target-performance-api/pkg/apiErrors"
)

var (
	ErrInvalidKind     = errors.New("tipo de transação inválido")
	ErrAccountNotFound = errors.New("conta não encontrada")
	ErrTeamNotFound    = errors.New("nenhum time encontrado para o gestor")
	ErrFetchData       = errors.New("erro ao buscar dados do relatório")
	ErrRequestCanceled = errors.New("relatório cancelado antes de concluir")
)

// ReportError carrega o código da API e a conta envolvida, quando houver
type ReportError struct {
	Err       error
	Code      string
	AccountID domain.AccountID
	Details   string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewReportErrorWithAccount(err error, code string, accountID domain.AccountID, details string) *ReportError {
	return &ReportError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}

// fetchError distingue cancelamento de falha do banco
func fetchError(ctx context.Context, err error) *ReportError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return NewReportError(ErrRequestCanceled, apiErrors.ErrRequestCanceled, err.Error())
	}
	return NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
}
