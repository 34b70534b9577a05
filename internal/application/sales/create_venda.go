package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/tenant"
	"github.com/farmatech/api/internal/domain"
	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
)

// CreateVendaUseCase cria uma venda e desconta o estoque em uma única transação.
// O preço unitário de cada item é sempre o preço atual de catálogo capturado no
// servidor; um preco_unitario enviado pelo cliente é descartado.
type CreateVendaUseCase struct {
	txRunner  TxRunner
	directory *tenant.Directory
}

// NewCreateVendaUseCase constrói o caso de uso.
func NewCreateVendaUseCase(txRunner TxRunner, directory *tenant.Directory) *CreateVendaUseCase {
	return &CreateVendaUseCase{txRunner: txRunner, directory: directory}
}

// CreateVenda valida os itens na ordem recebida, bloqueia cada medicamento,
// confere estoque (a primeira insuficiência aborta tudo), desconta as
// quantidades, calcula o total e persiste venda + itens atomicamente.
func (uc *CreateVendaUseCase) CreateVenda(ctx context.Context, userID string, in dto.CreateVendaRequest) (*dto.VendaResponse, error) {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		return nil, err
	}
	if !entity.FormaPagamentoValida(in.FormaPagamento) {
		return nil, domain.ErrInvalidInput
	}
	// Venda sem itens não tem significado de negócio: rejeitada na borda.
	if len(in.Itens) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Itens {
		if item.Medicamento == "" || item.Quantidade <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	venda := &entity.Venda{
		ID:             uuid.New().String(),
		FarmaciaID:     farmacia.ID,
		Data:           now,
		FormaPagamento: in.FormaPagamento,
	}

	err = uc.txRunner.RunVenda(ctx, func(
		medRepo repository.MedicamentoRepository,
		vendaRepo repository.VendaRepository,
	) error {
		total := decimal.Zero
		for _, item := range in.Itens {
			// FOR UPDATE: duas vendas concorrentes não passam as duas na
			// validação contra a mesma linha já esgotada.
			med, err := medRepo.GetForUpdate(item.Medicamento)
			if err != nil {
				return err
			}
			if med == nil || med.FarmaciaID != farmacia.ID {
				return domain.ErrNotFound
			}
			if med.Quantidade < item.Quantidade {
				return fmt.Errorf("%w para %s", domain.ErrInsufficientStock, med.Nome)
			}
			if err := medRepo.UpdateQuantidade(med.ID, med.Quantidade-item.Quantidade); err != nil {
				return err
			}
			// Preço capturado no servidor, imune a mudanças futuras de catálogo.
			venda.Itens = append(venda.Itens, &entity.ItemVenda{
				ID:              uuid.New().String(),
				VendaID:         venda.ID,
				MedicamentoID:   med.ID,
				MedicamentoNome: med.Nome,
				Quantidade:      item.Quantidade,
				PrecoUnitario:   med.Preco,
			})
			total = total.Add(med.Preco.Mul(decimal.NewFromInt(int64(item.Quantidade))))
		}
		venda.Total = total

		if err := vendaRepo.Create(venda); err != nil {
			return err
		}
		for _, item := range venda.Itens {
			if err := vendaRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Rollback já aconteceu: nenhum decremento parcial, nenhuma venda órfã.
		return nil, err
	}
	return toVendaResponse(venda), nil
}

func toVendaResponse(v *entity.Venda) *dto.VendaResponse {
	out := &dto.VendaResponse{
		ID:             v.ID,
		Farmacia:       v.FarmaciaID,
		Total:          v.Total,
		Data:           v.Data,
		FormaPagamento: v.FormaPagamento,
		Itens:          []dto.VendaItemResponse{},
	}
	for _, item := range v.Itens {
		out.Itens = append(out.Itens, dto.VendaItemResponse{
			ID:              item.ID,
			Medicamento:     item.MedicamentoID,
			MedicamentoNome: item.MedicamentoNome,
			Quantidade:      item.Quantidade,
			PrecoUnitario:   item.PrecoUnitario,
		})
	}
	return out
}
