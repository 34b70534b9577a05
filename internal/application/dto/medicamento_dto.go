package dto

import "github.com/shopspring/decimal"

// CreateMedicamentoRequest entrada para criar um medicamento.
// data_vencimento no formato YYYY-MM-DD.
type CreateMedicamentoRequest struct {
	Nome             string          `json:"nome"`
	Quantidade       int             `json:"quantidade"`
	QuantidadeMinima int             `json:"quantidade_minima"`
	Categoria        string          `json:"categoria"`
	Preco            decimal.Decimal `json:"preco"`
	DataVencimento   string          `json:"data_vencimento"`
}

// UpdateMedicamentoRequest entrada para atualizar um medicamento.
// Quantidade não é editável por aqui: estoque muda via movimentos e vendas.
type UpdateMedicamentoRequest struct {
	Nome             string          `json:"nome"`
	QuantidadeMinima int             `json:"quantidade_minima"`
	Categoria        string          `json:"categoria"`
	Preco            decimal.Decimal `json:"preco"`
	DataVencimento   string          `json:"data_vencimento"`
}

// MedicamentoResponse saída de um medicamento.
type MedicamentoResponse struct {
	ID               string          `json:"id"`
	Farmacia         string          `json:"farmacia"`
	Nome             string          `json:"nome"`
	Quantidade       int             `json:"quantidade"`
	QuantidadeMinima int             `json:"quantidade_minima"`
	Categoria        string          `json:"categoria"`
	Preco            decimal.Decimal `json:"preco"`
	DataVencimento   string          `json:"data_vencimento"`
}

// MedicamentoListResponse listagem paginada do catálogo.
type MedicamentoListResponse struct {
	Items []MedicamentoResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
