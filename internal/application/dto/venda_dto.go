package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVendaItemRequest item do corpo de criação de venda.
// PrecoUnitario é aceito por compatibilidade com o cliente antigo, mas o motor
// de venda sempre captura o preço atual de catálogo no servidor (integridade de cobrança).
type CreateVendaItemRequest struct {
	Medicamento   string           `json:"medicamento"`
	Quantidade    int              `json:"quantidade"`
	PrecoUnitario *decimal.Decimal `json:"preco_unitario,omitempty"`
}

// CreateVendaRequest corpo do POST /api/vendas.
type CreateVendaRequest struct {
	FormaPagamento string                   `json:"forma_pagamento"`
	Itens          []CreateVendaItemRequest `json:"itens"`
}

// VendaItemResponse item de venda com preço capturado e nome do medicamento.
type VendaItemResponse struct {
	ID              string          `json:"id"`
	Medicamento     string          `json:"medicamento"`
	MedicamentoNome string          `json:"medicamento_nome"`
	Quantidade      int             `json:"quantidade"`
	PrecoUnitario   decimal.Decimal `json:"preco_unitario"`
}

// VendaResponse saída de uma venda com itens.
type VendaResponse struct {
	ID             string              `json:"id"`
	Farmacia       string              `json:"farmacia"`
	Total          decimal.Decimal     `json:"total"`
	Data           time.Time           `json:"data"`
	FormaPagamento string              `json:"forma_pagamento"`
	Itens          []VendaItemResponse `json:"itens"`
}

// VendaListResponse listagem paginada de vendas.
type VendaListResponse struct {
	Items []VendaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
