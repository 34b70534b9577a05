package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/tenant"
	"github.com/farmatech/api/internal/domain"
	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
)

const dataVencimentoLayout = "2006-01-02"

// MedicamentoUseCase CRUD do catálogo, sempre no escopo da farmácia do caller.
// A quantidade em estoque só muda via movimentos e vendas; Create aceita o
// estoque inicial e Update não toca nesse campo.
type MedicamentoUseCase struct {
	directory *tenant.Directory
	medRepo   repository.MedicamentoRepository
}

// NewMedicamentoUseCase constrói o caso de uso.
func NewMedicamentoUseCase(directory *tenant.Directory, medRepo repository.MedicamentoRepository) *MedicamentoUseCase {
	return &MedicamentoUseCase{directory: directory, medRepo: medRepo}
}

// Create registra um medicamento no catálogo do tenant.
func (uc *MedicamentoUseCase) Create(userID string, in dto.CreateMedicamentoRequest) (*dto.MedicamentoResponse, error) {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		return nil, err
	}
	if in.Nome == "" || in.Categoria == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantidade < 0 || in.QuantidadeMinima < 0 || in.Preco.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	vencimento, err := time.Parse(dataVencimentoLayout, in.DataVencimento)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	med := &entity.Medicamento{
		ID:               uuid.New().String(),
		FarmaciaID:       farmacia.ID,
		Nome:             in.Nome,
		Quantidade:       in.Quantidade,
		QuantidadeMinima: in.QuantidadeMinima,
		Categoria:        in.Categoria,
		Preco:            in.Preco,
		DataVencimento:   vencimento,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.medRepo.Create(med); err != nil {
		return nil, err
	}
	return toMedicamentoResponse(med), nil
}

// GetByID devolve o medicamento se pertencer ao tenant do caller; nil caso contrário.
func (uc *MedicamentoUseCase) GetByID(userID, id string) (*dto.MedicamentoResponse, error) {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return nil, nil
		}
		return nil, err
	}
	med, err := uc.medRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil || med.FarmaciaID != farmacia.ID {
		return nil, nil
	}
	return toMedicamentoResponse(med), nil
}

// List lista o catálogo do tenant; search filtra por nome sem considerar acentos.
func (uc *MedicamentoUseCase) List(userID, search string, page dto.PageRequest) (*dto.MedicamentoListResponse, error) {
	page.DefaultPage()
	out := &dto.MedicamentoListResponse{
		Items: []dto.MedicamentoResponse{},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return out, nil
		}
		return nil, err
	}
	meds, err := uc.medRepo.ListByFarmacia(farmacia.ID, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	for _, med := range meds {
		out.Items = append(out.Items, *toMedicamentoResponse(med))
	}
	return out, nil
}

// Update atualiza os dados de catálogo (não a quantidade em estoque).
func (uc *MedicamentoUseCase) Update(userID, id string, in dto.UpdateMedicamentoRequest) (*dto.MedicamentoResponse, error) {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		return nil, err
	}
	med, err := uc.medRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil || med.FarmaciaID != farmacia.ID {
		return nil, domain.ErrNotFound
	}
	if in.Nome == "" || in.Categoria == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantidadeMinima < 0 || in.Preco.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	vencimento, err := time.Parse(dataVencimentoLayout, in.DataVencimento)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	med.Nome = in.Nome
	med.QuantidadeMinima = in.QuantidadeMinima
	med.Categoria = in.Categoria
	med.Preco = in.Preco
	med.DataVencimento = vencimento
	med.UpdatedAt = time.Now()
	if err := uc.medRepo.Update(med); err != nil {
		return nil, err
	}
	return toMedicamentoResponse(med), nil
}

// Delete remove o medicamento do catálogo. A proteção referencial é global:
// qualquer item de venda que o referencie bloqueia a exclusão (ErrMedicamentoProtegido).
func (uc *MedicamentoUseCase) Delete(userID, id string) error {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		return err
	}
	med, err := uc.medRepo.GetByID(id)
	if err != nil {
		return err
	}
	if med == nil || med.FarmaciaID != farmacia.ID {
		return domain.ErrNotFound
	}
	return uc.medRepo.Delete(id)
}

func toMedicamentoResponse(m *entity.Medicamento) *dto.MedicamentoResponse {
	return &dto.MedicamentoResponse{
		ID:               m.ID,
		Farmacia:         m.FarmaciaID,
		Nome:             m.Nome,
		Quantidade:       m.Quantidade,
		QuantidadeMinima: m.QuantidadeMinima,
		Categoria:        m.Categoria,
		Preco:            m.Preco,
		DataVencimento:   m.DataVencimento.Format(dataVencimentoLayout),
	}
}
