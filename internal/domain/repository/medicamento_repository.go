package repository

import "github.com/farmatech/api/internal/domain/entity"

// MedicamentoRepository porta de persistência para o catálogo.
// GetByID devolve nil, nil quando não existe; o escopo por tenant é verificado
// nos casos de uso comparando FarmaciaID.
type MedicamentoRepository interface {
	Create(med *entity.Medicamento) error
	GetByID(id string) (*entity.Medicamento, error)
	// GetForUpdate bloqueia a linha (SELECT ... FOR UPDATE); usar apenas dentro de transação.
	GetForUpdate(id string) (*entity.Medicamento, error)
	// ListByFarmacia lista o catálogo do tenant; search filtra por nome
	// (normalizado, sem acentos) quando não vazio. limit 0 lista tudo.
	ListByFarmacia(farmaciaID, search string, limit, offset int) ([]*entity.Medicamento, error)
	Update(med *entity.Medicamento) error
	// UpdateQuantidade grava apenas o campo de estoque (usado por movimentos e vendas).
	UpdateQuantidade(id string, quantidade int) error
	// Delete remove o medicamento; devolve ErrMedicamentoProtegido se algum
	// item de venda (de qualquer tenant) o referencia.
	Delete(id string) error
}
