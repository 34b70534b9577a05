package repository

import "github.com/farmatech/api/internal/domain/entity"

// VendaRepository porta de persistência de vendas e seus itens.
type VendaRepository interface {
	Create(venda *entity.Venda) error
	CreateItem(item *entity.ItemVenda) error
	// GetByIDAndFarmacia devolve a venda com itens (nome do medicamento incluso)
	// ou nil, nil quando não existe no escopo do tenant.
	GetByIDAndFarmacia(id, farmaciaID string) (*entity.Venda, error)
	// ListByFarmacia lista as vendas do tenant com itens; limit 0 lista tudo.
	ListByFarmacia(farmaciaID string, limit, offset int) ([]*entity.Venda, error)
}
