// Package pdf implementa a geração do comprovante de venda em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da farmácia  │  Venda + Data                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Medicamento | P.Unit | Subtotal              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + Forma de pagamento                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/farmatech/api/internal/application/sales"
	"github.com/farmatech/api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 82}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Verifica em tempo de compilação que o generator implementa a porta.
var _ sales.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator constrói o gerador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt gera o comprovante e devolve seus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(farmacia *entity.Farmacia, venda *entity.Venda) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprovante de Venda", true).
		WithAuthor(farmacia.Nome, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(farmacia, venda))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, item := range venda.Itens {
		m.AddRows(itemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(venda))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar comprovante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da farmácia (esq) e identificação da venda (dir).
func headerRow(farmacia *entity.Farmacia, venda *entity.Venda) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(farmacia.Nome, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tel: "+farmacia.Telefone, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Venda "+venda.ID, props.Text{
				Size: 9, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(venda.Data.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(8).Add(
		col.New(2).Add(text.New("Qtd", header)),
		col.New(6).Add(text.New("Medicamento", header)),
		col.New(2).Add(text.New("P. Unit.", mergeAlign(header, align.Right))),
		col.New(2).Add(text.New("Subtotal", mergeAlign(header, align.Right))),
	)
}

func itemRow(item *entity.ItemVenda) core.Row {
	subtotal := item.PrecoUnitario.Mul(decimal.NewFromInt(int64(item.Quantidade)))
	cell := props.Text{Size: 9}
	return row.New(6).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantidade), cell)),
		col.New(6).Add(text.New(item.MedicamentoNome, cell)),
		col.New(2).Add(text.New("R$ "+item.PrecoUnitario.StringFixed(2), mergeAlign(cell, align.Right))),
		col.New(2).Add(text.New("R$ "+subtotal.StringFixed(2), mergeAlign(cell, align.Right))),
	)
}

func totalRow(venda *entity.Venda) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Forma de pagamento: "+formaPagamentoLabel(venda.FormaPagamento), props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("TOTAL: R$ "+venda.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1, Color: colorPrimary,
			}),
		),
	)
}

func formaPagamentoLabel(forma string) string {
	switch forma {
	case entity.PagamentoDinheiro:
		return "Dinheiro"
	case entity.PagamentoCartaoCredito:
		return "Cartão de Crédito"
	case entity.PagamentoCartaoDebito:
		return "Cartão de Débito"
	case entity.PagamentoPix:
		return "Pix"
	}
	return forma
}

func mergeAlign(p props.Text, a align.Type) props.Text {
	p.Align = a
	return p
}
