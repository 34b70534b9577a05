package usecase

import (
	"errors"
	"time"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/tenant"
	"github.com/farmatech/api/internal/domain"
	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
)

// FarmaciaUseCase operações sobre o perfil da farmácia do caller.
// A listagem devolve no máximo um registro: o tenant do próprio usuário.
type FarmaciaUseCase struct {
	directory    *tenant.Directory
	farmaciaRepo repository.FarmaciaRepository
}

// NewFarmaciaUseCase constrói o caso de uso.
func NewFarmaciaUseCase(directory *tenant.Directory, farmaciaRepo repository.FarmaciaRepository) *FarmaciaUseCase {
	return &FarmaciaUseCase{directory: directory, farmaciaRepo: farmaciaRepo}
}

// List devolve a farmácia do caller; lista vazia se o principal não tem tenant.
func (uc *FarmaciaUseCase) List(userID string) (*dto.FarmaciaListResponse, error) {
	out := &dto.FarmaciaListResponse{Items: []dto.FarmaciaResponse{}, Page: dto.PageResponse{Limit: 20}}
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return out, nil
		}
		return nil, err
	}
	out.Items = append(out.Items, *toFarmaciaResponse(farmacia))
	return out, nil
}

// GetByID devolve a farmácia apenas se for a do caller; nil caso contrário (404).
func (uc *FarmaciaUseCase) GetByID(userID, id string) (*dto.FarmaciaResponse, error) {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if farmacia.ID != id {
		return nil, nil
	}
	return toFarmaciaResponse(farmacia), nil
}

// Update atualiza o perfil da farmácia do caller. Outro tenant recebe ErrNotFound.
func (uc *FarmaciaUseCase) Update(userID, id string, in dto.UpdateFarmaciaRequest) (*dto.FarmaciaResponse, error) {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		return nil, err
	}
	if farmacia.ID != id {
		return nil, domain.ErrNotFound
	}
	if in.Nome == "" || in.Responsavel == "" {
		return nil, domain.ErrInvalidInput
	}
	farmacia.Nome = in.Nome
	farmacia.Responsavel = in.Responsavel
	farmacia.Telefone = in.Telefone
	farmacia.Endereco = in.Endereco
	farmacia.Cidade = in.Cidade
	farmacia.Estado = in.Estado
	farmacia.CEP = in.CEP
	farmacia.UpdatedAt = time.Now()
	if err := uc.farmaciaRepo.Update(farmacia); err != nil {
		return nil, err
	}
	return toFarmaciaResponse(farmacia), nil
}

func toFarmaciaResponse(f *entity.Farmacia) *dto.FarmaciaResponse {
	return &dto.FarmaciaResponse{
		ID:          f.ID,
		Nome:        f.Nome,
		Responsavel: f.Responsavel,
		Telefone:    f.Telefone,
		Endereco:    f.Endereco,
		Cidade:      f.Cidade,
		Estado:      f.Estado,
		CEP:         f.CEP,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
