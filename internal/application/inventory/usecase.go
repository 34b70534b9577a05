package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/tenant"
	"github.com/farmatech/api/internal/domain"
	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
)

// RegisterMovimentoUseCase registra movimentações de estoque de forma transacional
// (entrada/saida) com bloqueio de linha (SELECT FOR UPDATE) e Commit/Rollback.
// Uma saída que deixaria o estoque negativo é rejeitada com ErrInsufficientStock
// sem nenhum efeito parcial.
type RegisterMovimentoUseCase struct {
	txRunner  TxRunner
	directory *tenant.Directory
	movRepo   repository.MovimentoRepository // leituras fora de transação
}

// NewRegisterMovimentoUseCase constrói o caso de uso.
func NewRegisterMovimentoUseCase(txRunner TxRunner, directory *tenant.Directory, movRepo repository.MovimentoRepository) *RegisterMovimentoUseCase {
	return &RegisterMovimentoUseCase{txRunner: txRunner, directory: directory, movRepo: movRepo}
}

// RegisterMovimento valida a entrada, bloqueia a linha do medicamento, aplica o
// efeito (± quantidade) e grava o movimento, tudo na mesma transação.
// A data do movimento é atribuída pelo servidor, nunca pelo caller.
func (uc *RegisterMovimentoUseCase) RegisterMovimento(ctx context.Context, userID string, in dto.CreateMovimentoRequest) (*dto.MovimentoResponse, error) {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		return nil, err
	}
	if in.Medicamento == "" || in.Quantidade <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.MovimentoEntrada && in.Tipo != entity.MovimentoSaida {
		return nil, domain.ErrInvalidInput
	}

	var mov *entity.Movimento
	err = uc.txRunner.Run(ctx, func(
		medRepo repository.MedicamentoRepository,
		movRepo repository.MovimentoRepository,
	) error {
		med, err := medRepo.GetForUpdate(in.Medicamento)
		if err != nil {
			return err
		}
		if med == nil || med.FarmaciaID != farmacia.ID {
			return domain.ErrNotFound
		}
		switch in.Tipo {
		case entity.MovimentoEntrada:
			med.Quantidade += in.Quantidade
		case entity.MovimentoSaida:
			if med.Quantidade < in.Quantidade {
				return domain.ErrInsufficientStock
			}
			med.Quantidade -= in.Quantidade
		}
		if err := medRepo.UpdateQuantidade(med.ID, med.Quantidade); err != nil {
			return err
		}
		mov = &entity.Movimento{
			ID:            uuid.New().String(),
			MedicamentoID: med.ID,
			Tipo:          in.Tipo,
			Quantidade:    in.Quantidade,
			Data:          time.Now(),
			Observacoes:   in.Observacoes,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovimentoResponse(mov), nil
}

// GetByID devolve o movimento no escopo do tenant; nil quando não existe (404).
func (uc *RegisterMovimentoUseCase) GetByID(userID, id string) (*dto.MovimentoResponse, error) {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return nil, nil
		}
		return nil, err
	}
	mov, err := uc.movRepo.GetByIDAndFarmacia(id, farmacia.ID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}
	return toMovimentoResponse(mov), nil
}

// List lista o ledger do tenant (via join com o catálogo).
func (uc *RegisterMovimentoUseCase) List(userID string, page dto.PageRequest) (*dto.MovimentoListResponse, error) {
	page.DefaultPage()
	out := &dto.MovimentoListResponse{
		Items: []dto.MovimentoResponse{},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return out, nil
		}
		return nil, err
	}
	movs, err := uc.movRepo.ListByFarmacia(farmacia.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	for _, mov := range movs {
		out.Items = append(out.Items, *toMovimentoResponse(mov))
	}
	return out, nil
}

func toMovimentoResponse(m *entity.Movimento) *dto.MovimentoResponse {
	return &dto.MovimentoResponse{
		ID:          m.ID,
		Medicamento: m.MedicamentoID,
		Tipo:        m.Tipo,
		Quantidade:  m.Quantidade,
		Data:        m.Data,
		Observacoes: m.Observacoes,
	}
}
