package repository

import "github.com/farmatech/api/internal/domain/entity"

// FarmaciaRepository porta de persistência para o tenant (farmácia).
type FarmaciaRepository interface {
	Create(farmacia *entity.Farmacia) error
	GetByID(id string) (*entity.Farmacia, error)
	// GetByUserID resolve a farmácia dona de um principal; nil, nil quando não há.
	GetByUserID(userID string) (*entity.Farmacia, error)
	Update(farmacia *entity.Farmacia) error
}
