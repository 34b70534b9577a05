package auth

import (
	"context"

	"github.com/farmatech/api/internal/domain/repository"
)

// TxRunner executa o registro (usuário + farmácia) dentro de uma transação de BD,
// passando repositórios atados a essa tx. Garante que não fique usuário sem farmácia.
type TxRunner interface {
	RunRegistro(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		farmaciaRepo repository.FarmaciaRepository,
	) error) error
}
