package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
)

var _ repository.FarmaciaRepository = (*FarmaciaRepo)(nil)

// FarmaciaRepo implementação do porto FarmaciaRepository sobre PostgreSQL.
type FarmaciaRepo struct {
	q Querier
}

// NewFarmaciaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFarmaciaRepository(q Querier) *FarmaciaRepo {
	return &FarmaciaRepo{q: q}
}

// Create persiste uma nova farmácia (1:1 com o usuário dono).
func (r *FarmaciaRepo) Create(f *entity.Farmacia) error {
	query := `
		INSERT INTO farmacias (id, user_id, nome, responsavel, telefone, endereco, cidade, estado, cep, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.UserID, f.Nome, f.Responsavel, f.Telefone,
		f.Endereco, f.Cidade, f.Estado, f.CEP, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert farmacia: %w", err)
	}
	return nil
}

// GetByID obtém uma farmácia por ID.
func (r *FarmaciaRepo) GetByID(id string) (*entity.Farmacia, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByUserID resolve a farmácia dona de um principal; nil, nil quando não há.
func (r *FarmaciaRepo) GetByUserID(userID string) (*entity.Farmacia, error) {
	return r.getBy(`WHERE user_id = $1`, userID)
}

func (r *FarmaciaRepo) getBy(where string, arg any) (*entity.Farmacia, error) {
	query := `
		SELECT id, user_id, nome, responsavel, telefone, endereco, cidade, estado, cep, created_at, updated_at
		FROM farmacias ` + where
	var f entity.Farmacia
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&f.ID, &f.UserID, &f.Nome, &f.Responsavel, &f.Telefone,
		&f.Endereco, &f.Cidade, &f.Estado, &f.CEP, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get farmacia: %w", err)
	}
	return &f, nil
}

// Update atualiza o perfil da farmácia.
func (r *FarmaciaRepo) Update(f *entity.Farmacia) error {
	query := `
		UPDATE farmacias
		SET nome = $2, responsavel = $3, telefone = $4, endereco = $5, cidade = $6, estado = $7, cep = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, f.Responsavel, f.Telefone, f.Endereco, f.Cidade, f.Estado, f.CEP, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update farmacia: %w", err)
	}
	return nil
}
