package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação do porto VendaRepository sobre PostgreSQL.
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

// Create persiste a cabeça da venda (itens via CreateItem, na mesma transação).
func (r *VendaRepo) Create(v *entity.Venda) error {
	query := `
		INSERT INTO vendas (id, farmacia_id, total, data, forma_pagamento)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.FarmaciaID, v.Total, v.Data, v.FormaPagamento,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// CreateItem persiste um item com o preço capturado no momento da venda.
func (r *VendaRepo) CreateItem(item *entity.ItemVenda) error {
	query := `
		INSERT INTO itens_venda (id, venda_id, medicamento_id, quantidade, preco_unitario)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.VendaID, item.MedicamentoID, item.Quantidade, item.PrecoUnitario,
	)
	if err != nil {
		return fmt.Errorf("insert item de venda: %w", err)
	}
	return nil
}

// GetByIDAndFarmacia obtém a venda com itens no escopo do tenant; nil, nil fora dele.
func (r *VendaRepo) GetByIDAndFarmacia(id, farmaciaID string) (*entity.Venda, error) {
	query := `
		SELECT id, farmacia_id, total, data, forma_pagamento
		FROM vendas WHERE id = $1 AND farmacia_id = $2`
	var v entity.Venda
	err := r.q.QueryRow(context.Background(), query, id, farmaciaID).Scan(
		&v.ID, &v.FarmaciaID, &v.Total, &v.Data, &v.FormaPagamento,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	itens, err := r.listItens(v.ID)
	if err != nil {
		return nil, err
	}
	v.Itens = itens
	return &v, nil
}

// ListByFarmacia lista as vendas do tenant com itens, mais recentes primeiro.
// limit 0 desativa a paginação.
func (r *VendaRepo) ListByFarmacia(farmaciaID string, limit, offset int) ([]*entity.Venda, error) {
	query := `
		SELECT id, farmacia_id, total, data, forma_pagamento
		FROM vendas WHERE farmacia_id = $1
		ORDER BY data DESC
		LIMIT NULLIF($2, 0) OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, farmaciaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venda
	for rows.Next() {
		var v entity.Venda
		if err := rows.Scan(&v.ID, &v.FarmaciaID, &v.Total, &v.Data, &v.FormaPagamento); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, v := range list {
		itens, err := r.listItens(v.ID)
		if err != nil {
			return nil, err
		}
		v.Itens = itens
	}
	return list, nil
}

// listItens carrega os itens de uma venda com o nome atual do medicamento.
func (r *VendaRepo) listItens(vendaID string) ([]*entity.ItemVenda, error) {
	query := `
		SELECT i.id, i.venda_id, i.medicamento_id, med.nome, i.quantidade, i.preco_unitario
		FROM itens_venda i
		JOIN medicamentos med ON med.id = i.medicamento_id
		WHERE i.venda_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, vendaID)
	if err != nil {
		return nil, fmt.Errorf("list itens de venda: %w", err)
	}
	defer rows.Close()
	var itens []*entity.ItemVenda
	for rows.Next() {
		var item entity.ItemVenda
		if err := rows.Scan(&item.ID, &item.VendaID, &item.MedicamentoID, &item.MedicamentoNome,
			&item.Quantidade, &item.PrecoUnitario); err != nil {
			return nil, fmt.Errorf("scan item de venda: %w", err)
		}
		itens = append(itens, &item)
	}
	return itens, rows.Err()
}
