package repository

import "github.com/farmatech/api/internal/domain/entity"

// MovimentoRepository porta de persistência do ledger de movimentações.
// Movimentos são imutáveis: não há Update nem Delete.
type MovimentoRepository interface {
	Create(mov *entity.Movimento) error
	// GetByIDAndFarmacia devolve nil, nil quando o movimento não existe ou
	// pertence a outro tenant (escopo via join com medicamentos).
	GetByIDAndFarmacia(id, farmaciaID string) (*entity.Movimento, error)
	// ListByFarmacia lista o ledger do tenant; limit 0 lista tudo.
	ListByFarmacia(farmaciaID string, limit, offset int) ([]*entity.Movimento, error)
}
