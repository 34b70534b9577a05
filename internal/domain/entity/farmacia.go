package entity

import "time"

// Farmacia representa o tenant do sistema: todo o catálogo, movimentações e vendas
// são particionados por farmácia. Pertence a exatamente um User (1:1).
type Farmacia struct {
	ID          string
	UserID      string
	Nome        string
	Responsavel string
	Telefone    string
	Endereco    string
	Cidade      string
	Estado      string
	CEP         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
