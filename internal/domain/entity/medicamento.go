package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicamento é um item do catálogo com estoque e preço. A Quantidade é mutada
// apenas por movimentações e por itens de venda, nunca diretamente pelo caller,
// e jamais pode ficar negativa em estado consolidado.
type Medicamento struct {
	ID               string
	FarmaciaID       string
	Nome             string
	Quantidade       int
	QuantidadeMinima int
	Categoria        string
	Preco            decimal.Decimal // preço de venda atual (capturado no item no momento da venda)
	DataVencimento   time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
