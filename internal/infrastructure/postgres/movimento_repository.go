package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
)

var _ repository.MovimentoRepository = (*MovimentoRepo)(nil)

// MovimentoRepo implementação do porto MovimentoRepository sobre PostgreSQL.
// O escopo por tenant é resolvido via join com medicamentos.
type MovimentoRepo struct {
	q Querier
}

// NewMovimentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentoRepository(q Querier) *MovimentoRepo {
	return &MovimentoRepo{q: q}
}

// Create persiste um movimento (imutável; sem Update/Delete).
func (r *MovimentoRepo) Create(mov *entity.Movimento) error {
	query := `
		INSERT INTO movimentos (id, medicamento_id, tipo, quantidade, data, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.MedicamentoID, mov.Tipo, mov.Quantidade, mov.Data, mov.Observacoes,
	)
	if err != nil {
		return fmt.Errorf("insert movimento: %w", err)
	}
	return nil
}

// GetByIDAndFarmacia obtém um movimento no escopo do tenant; nil, nil fora dele.
func (r *MovimentoRepo) GetByIDAndFarmacia(id, farmaciaID string) (*entity.Movimento, error) {
	query := `
		SELECT m.id, m.medicamento_id, m.tipo, m.quantidade, m.data, m.observacoes
		FROM movimentos m
		JOIN medicamentos med ON med.id = m.medicamento_id
		WHERE m.id = $1 AND med.farmacia_id = $2`
	var m entity.Movimento
	err := r.q.QueryRow(context.Background(), query, id, farmaciaID).Scan(
		&m.ID, &m.MedicamentoID, &m.Tipo, &m.Quantidade, &m.Data, &m.Observacoes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimento: %w", err)
	}
	return &m, nil
}

// ListByFarmacia lista o ledger do tenant, mais recentes primeiro.
// limit 0 desativa a paginação.
func (r *MovimentoRepo) ListByFarmacia(farmaciaID string, limit, offset int) ([]*entity.Movimento, error) {
	query := `
		SELECT m.id, m.medicamento_id, m.tipo, m.quantidade, m.data, m.observacoes
		FROM movimentos m
		JOIN medicamentos med ON med.id = m.medicamento_id
		WHERE med.farmacia_id = $1
		ORDER BY m.data DESC
		LIMIT NULLIF($2, 0) OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, farmaciaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimento
	for rows.Next() {
		var m entity.Movimento
		if err := rows.Scan(&m.ID, &m.MedicamentoID, &m.Tipo, &m.Quantidade, &m.Data, &m.Observacoes); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
