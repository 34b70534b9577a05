package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmatech/api/internal/domain"
	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
	"github.com/farmatech/api/pkg/textutil"
)

var _ repository.MedicamentoRepository = (*MedicamentoRepo)(nil)

const medicamentoColumns = `id, farmacia_id, nome, quantidade, quantidade_minima, categoria, preco, data_vencimento, created_at, updated_at`

// MedicamentoRepo implementação do porto MedicamentoRepository sobre PostgreSQL.
// A coluna nome_normalizado (minúsculas, sem acentos) alimenta o filtro de busca.
type MedicamentoRepo struct {
	q Querier
}

// NewMedicamentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMedicamentoRepository(q Querier) *MedicamentoRepo {
	return &MedicamentoRepo{q: q}
}

// Create persiste um novo medicamento.
func (r *MedicamentoRepo) Create(med *entity.Medicamento) error {
	query := `
		INSERT INTO medicamentos (id, farmacia_id, nome, nome_normalizado, quantidade, quantidade_minima, categoria, preco, data_vencimento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		med.ID, med.FarmaciaID, med.Nome, textutil.Fold(med.Nome),
		med.Quantidade, med.QuantidadeMinima, med.Categoria, med.Preco,
		med.DataVencimento, med.CreatedAt, med.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert medicamento: %w", err)
	}
	return nil
}

// GetByID obtém um medicamento por ID; nil, nil quando não existe.
func (r *MedicamentoRepo) GetByID(id string) (*entity.Medicamento, error) {
	query := `SELECT ` + medicamentoColumns + ` FROM medicamentos WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtém o medicamento bloqueando a linha (SELECT FOR UPDATE).
// Usar apenas dentro de transação.
func (r *MedicamentoRepo) GetForUpdate(id string) (*entity.Medicamento, error) {
	query := `SELECT ` + medicamentoColumns + ` FROM medicamentos WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *MedicamentoRepo) scanOne(query string, args ...any) (*entity.Medicamento, error) {
	var m entity.Medicamento
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&m.ID, &m.FarmaciaID, &m.Nome, &m.Quantidade, &m.QuantidadeMinima,
		&m.Categoria, &m.Preco, &m.DataVencimento, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicamento: %w", err)
	}
	return &m, nil
}

// ListByFarmacia lista o catálogo do tenant com paginação; search filtra por
// nome normalizado (sem acentos) quando não vazio. limit 0 desativa a paginação.
func (r *MedicamentoRepo) ListByFarmacia(farmaciaID, search string, limit, offset int) ([]*entity.Medicamento, error) {
	query := `
		SELECT ` + medicamentoColumns + `
		FROM medicamentos
		WHERE farmacia_id = $1 AND ($2 = '' OR nome_normalizado LIKE '%' || $2 || '%')
		ORDER BY nome ASC
		LIMIT NULLIF($3, 0) OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, farmaciaID, textutil.Fold(search), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list medicamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Medicamento
	for rows.Next() {
		var m entity.Medicamento
		if err := rows.Scan(&m.ID, &m.FarmaciaID, &m.Nome, &m.Quantidade, &m.QuantidadeMinima,
			&m.Categoria, &m.Preco, &m.DataVencimento, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan medicamento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update atualiza os dados de catálogo (não a quantidade em estoque).
func (r *MedicamentoRepo) Update(med *entity.Medicamento) error {
	query := `
		UPDATE medicamentos
		SET nome = $2, nome_normalizado = $3, quantidade_minima = $4, categoria = $5, preco = $6, data_vencimento = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		med.ID, med.Nome, textutil.Fold(med.Nome), med.QuantidadeMinima,
		med.Categoria, med.Preco, med.DataVencimento, med.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medicamento: %w", err)
	}
	return nil
}

// UpdateQuantidade grava apenas o campo de estoque (movimentos e vendas).
func (r *MedicamentoRepo) UpdateQuantidade(id string, quantidade int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE medicamentos SET quantidade = $2, updated_at = now() WHERE id = $1`,
		id, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// Delete remove o medicamento. O histórico de movimentos cai em cascata; a
// única FK que pode barrar o DELETE é o ON DELETE RESTRICT de itens_venda,
// que protege medicamentos já vendidos (proteção global, independente de tenant).
func (r *MedicamentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM medicamentos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrMedicamentoProtegido
		}
		return fmt.Errorf("delete medicamento: %w", err)
	}
	return nil
}
