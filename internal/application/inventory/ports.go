package inventory

import (
	"context"

	"github.com/farmatech/api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade entre a atualização do
// estoque do medicamento e a gravação do movimento.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		medRepo repository.MedicamentoRepository,
		movRepo repository.MovimentoRepository,
	) error) error
}
