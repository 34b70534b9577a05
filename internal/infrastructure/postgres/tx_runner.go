package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmatech/api/internal/application/auth"
	"github.com/farmatech/api/internal/application/inventory"
	"github.com/farmatech/api/internal/application/sales"
	"github.com/farmatech/api/internal/domain/repository"
)

// Garante em tempo de compilação que TxRunner implementa as portas transacionais.
var (
	_ inventory.TxRunner = (*TxRunner)(nil)
	_ sales.TxRunner     = (*TxRunner)(nil)
	_ auth.TxRunner      = (*TxRunner)(nil)
)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
// O rollback no defer também cobre cancelamento de contexto: nada parcial é efetivado.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação para o ledger de movimentações e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	medRepo repository.MedicamentoRepository,
	movRepo repository.MovimentoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMedicamentoRepository(tx), NewMovimentoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVenda inicia uma transação para o motor de vendas (estoque + venda + itens).
func (r *TxRunner) RunVenda(ctx context.Context, fn func(
	medRepo repository.MedicamentoRepository,
	vendaRepo repository.VendaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMedicamentoRepository(tx), NewVendaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegistro inicia uma transação para o registro (usuário + farmácia).
func (r *TxRunner) RunRegistro(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	farmaciaRepo repository.FarmaciaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewFarmaciaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
