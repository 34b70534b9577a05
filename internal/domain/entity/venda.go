package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento válidas para Venda.
const (
	PagamentoDinheiro      = "dinheiro"
	PagamentoCartaoCredito = "cartao_credito"
	PagamentoCartaoDebito  = "cartao_debito"
	PagamentoPix           = "pix"
)

// FormaPagamentoValida informa se o valor pertence ao enum de formas de pagamento.
func FormaPagamentoValida(s string) bool {
	switch s {
	case PagamentoDinheiro, PagamentoCartaoCredito, PagamentoCartaoDebito, PagamentoPix:
		return true
	}
	return false
}

// Venda é uma transação que consome estoque através de um ou mais itens.
// Total é derivado (Σ quantidade × preço capturado) no momento da criação e
// nunca recalculado, mesmo que o preço de catálogo mude depois.
type Venda struct {
	ID             string
	FarmaciaID     string
	Total          decimal.Decimal
	Data           time.Time
	FormaPagamento string
	Itens          []*ItemVenda
}

// ItemVenda é a tripla medicamento-quantidade-preço dentro de uma venda.
// PrecoUnitario é o preço de catálogo capturado no servidor no momento da venda.
// O medicamento referenciado fica protegido contra exclusão enquanto o item existir.
type ItemVenda struct {
	ID              string
	VendaID         string
	MedicamentoID   string
	MedicamentoNome string // desnormalizado para exibição nas respostas
	Quantidade      int
	PrecoUnitario   decimal.Decimal
}
