package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovimentoEntrada = "entrada"
	MovimentoSaida   = "saida"
)

// Movimento é um lançamento imutável do ledger de estoque. O efeito (± Quantidade)
// é aplicado ao Medicamento no momento da criação; Data é atribuída pelo servidor.
type Movimento struct {
	ID            string
	MedicamentoID string
	Tipo          string // entrada | saida
	Quantidade    int    // sempre positivo; o sinal vem do Tipo
	Data          time.Time
	Observacoes   string
}
