package insights

import (
	"fmt"
	"strings"

	"github.com/farmatech/api/internal/domain/entity"
)

// Formatos de linha e moldura do prompt enviado ao serviço de geração de texto.
// A estrutura é um contrato estável com o front-end FarmaTech: três seções de
// bullets (com "- N/A" quando vazias), quatro pedidos de análise numerados e a
// linha de fechamento.
const (
	promptHeader = "Você é um analista de dados de farmácia inteligente. Analise os seguintes dados " +
		"da Farmácia '%s' e forneça insights sobre o estoque, vendas e movimentações.\n" +
		"Os insights devem cobrir: Visão Geral, Tendências, Alertas e Recomendações.\n" +
		"Formate a resposta de forma clara, usando títulos e bullet points, mas em texto corrido e não JSON.\n\n"

	promptAnalise = "--- Análise Solicitada ---\n" +
		"1. Visão Geral do Período: Resumo dos principais números (total de unidades em estoque, total de vendas, etc.).\n" +
		"2. Insights de Tendência: Quais padrões ou mudanças você observa nos dados de vendas ou estoque ao longo do tempo? Há picos, quedas, sazonalidade?\n" +
		"3. Alertas de Anomalias: Existem dados incomuns, discrepâncias ou situações que requerem atenção imediata (ex: estoque negativo, vendas muito altas/baixas de um item específico)?\n" +
		"4. Recomendações: Com base na análise, quais ações você sugere para otimizar o estoque, aumentar vendas ou melhorar a gestão da farmácia?\n" +
		"--- Fim da Análise Solicitada ---\n"

	emptySection = "- N/A"
)

// buildPrompt monta o prompt completo a partir dos dados do tenant.
func buildPrompt(farmacia *entity.Farmacia, meds []*entity.Medicamento, movs []*entity.Movimento, vendas []*entity.Venda) string {
	nomePorID := make(map[string]string, len(meds))
	medLines := make([]string, 0, len(meds))
	for _, med := range meds {
		nomePorID[med.ID] = med.Nome
		medLines = append(medLines, fmt.Sprintf(
			"- Nome: %s, Estoque: %d, Mínimo: %d, Categoria: %s, Preço: R$%s, Vencimento: %s",
			med.Nome, med.Quantidade, med.QuantidadeMinima, med.Categoria,
			med.Preco.StringFixed(2), med.DataVencimento.Format("2006-01-02"),
		))
	}

	movLines := make([]string, 0, len(movs))
	for _, mov := range movs {
		obs := mov.Observacoes
		if obs == "" {
			obs = "N/A"
		}
		nome := nomePorID[mov.MedicamentoID]
		if nome == "" {
			nome = mov.MedicamentoID
		}
		movLines = append(movLines, fmt.Sprintf(
			"- Medicamento: %s, Tipo: %s, Qtd: %d, Data: %s, Obs: %s",
			nome, mov.Tipo, mov.Quantidade, mov.Data.Format("2006-01-02 15:04"), obs,
		))
	}

	vendaLines := make([]string, 0, len(vendas))
	for _, venda := range vendas {
		itens := make([]string, 0, len(venda.Itens))
		for _, item := range venda.Itens {
			itens = append(itens, fmt.Sprintf("%dx %s (R$%s/unid)",
				item.Quantidade, item.MedicamentoNome, item.PrecoUnitario.StringFixed(2)))
		}
		itensStr := "N/A"
		if len(itens) > 0 {
			itensStr = strings.Join(itens, ", ")
		}
		vendaLines = append(vendaLines, fmt.Sprintf(
			"- Venda ID: %s, Total: R$%s, Data: %s, Forma Pagamento: %s, Itens: %s",
			venda.ID, venda.Total.StringFixed(2), venda.Data.Format("2006-01-02 15:04"),
			venda.FormaPagamento, itensStr,
		))
	}

	var b strings.Builder
	fmt.Fprintf(&b, promptHeader, farmacia.Nome)
	b.WriteString("--- Dados da Farmácia ---\n")
	b.WriteString("Medicamentos em estoque:\n")
	b.WriteString(sectionOrNA(medLines))
	b.WriteString("\n\n")
	b.WriteString("Movimentações de estoque recentes:\n")
	b.WriteString(sectionOrNA(movLines))
	b.WriteString("\n\n")
	b.WriteString("Histórico de vendas:\n")
	b.WriteString(sectionOrNA(vendaLines))
	b.WriteString("\n\n")
	b.WriteString(promptAnalise)
	return b.String()
}

func sectionOrNA(lines []string) string {
	if len(lines) == 0 {
		return emptySection
	}
	return strings.Join(lines, "\n")
}
