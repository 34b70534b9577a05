package sales

import (
	"context"

	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
)

// TxRunner executa a criação de uma venda dentro de uma transação de BD,
// passando repositórios atados a essa tx. Os decrementos de estoque, a venda
// e os itens são efetivados juntos ou não são efetivados.
type TxRunner interface {
	RunVenda(ctx context.Context, fn func(
		medRepo repository.MedicamentoRepository,
		vendaRepo repository.VendaRepository,
	) error) error
}

// ReceiptGenerator porta de saída para o gerador de comprovantes em PDF.
type ReceiptGenerator interface {
	GenerateReceipt(farmacia *entity.Farmacia, venda *entity.Venda) ([]byte, error)
}
