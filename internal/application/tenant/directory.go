package tenant

import (
	"github.com/farmatech/api/internal/domain"
	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
)

// Directory mapeia o principal autenticado para a farmácia dona (1:1).
// Toda operação com escopo de tenant começa por Resolve; um principal sem
// farmácia recebe ErrFarmaciaNotFound e nunca enxerga dados de outro tenant.
type Directory struct {
	farmaciaRepo repository.FarmaciaRepository
}

// NewDirectory constrói o diretório de tenants.
func NewDirectory(farmaciaRepo repository.FarmaciaRepository) *Directory {
	return &Directory{farmaciaRepo: farmaciaRepo}
}

// Resolve devolve a farmácia do usuário ou ErrFarmaciaNotFound.
func (d *Directory) Resolve(userID string) (*entity.Farmacia, error) {
	if userID == "" {
		return nil, domain.ErrFarmaciaNotFound
	}
	farmacia, err := d.farmaciaRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if farmacia == nil {
		return nil, domain.ErrFarmaciaNotFound
	}
	return farmacia, nil
}
