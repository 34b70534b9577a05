package dto

import "github.com/shopspring/decimal"

// InsightData contadores agregados calculados localmente (não pela IA).
type InsightData struct {
	TotalEntradas         int             `json:"total_entradas"`
	TotalSaidas           int             `json:"total_saidas"`
	TotalVendasValor      decimal.Decimal `json:"total_vendas_valor"`
	MedicamentosEmEstoque int             `json:"medicamentos_em_estoque"`
}

// InsightResponse resposta do POST /api/analyze-ai.
// Em falha do serviço externo, Success=false, Summary traz mensagem segura e Data fica vazio.
type InsightResponse struct {
	Success bool         `json:"success"`
	Summary string       `json:"summary"`
	Data    *InsightData `json:"data"`
}
