package dto

import "time"

// CreateMovimentoRequest entrada para registrar uma movimentação de estoque.
// "medicamento" é o ID do medicamento (contrato do front-end FarmaTech).
type CreateMovimentoRequest struct {
	Medicamento string `json:"medicamento"`
	Tipo        string `json:"tipo"` // entrada | saida
	Quantidade  int    `json:"quantidade"`
	Observacoes string `json:"observacoes"`
}

// MovimentoResponse saída de uma movimentação. Data é atribuída pelo servidor.
type MovimentoResponse struct {
	ID          string    `json:"id"`
	Medicamento string    `json:"medicamento"`
	Tipo        string    `json:"tipo"`
	Quantidade  int       `json:"quantidade"`
	Data        time.Time `json:"data"`
	Observacoes string    `json:"observacoes,omitempty"`
}

// MovimentoListResponse listagem paginada do ledger.
type MovimentoListResponse struct {
	Items []MovimentoResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
