package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound indica que o registro a ser alterado não existe
var ErrNotFound = errors.New("registro não encontrado")

// wrapPQError inclui o código do Postgres na mensagem quando disponível
func wrapPQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
