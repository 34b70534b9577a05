package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/ports"
	"github.com/farmatech/api/internal/application/tenant"
	"github.com/farmatech/api/internal/domain"
	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
)

// maxRowsPerSection limita quantos registros de cada seção entram no prompt.
const maxRowsPerSection = 500

// llmTimeout prazo máximo da chamada ao serviço externo de geração de texto.
const llmTimeout = 30 * time.Second

// InsightUseCase reúne os dados do tenant, monta o prompt e delega ao serviço
// externo. Os contadores agregados são calculados localmente, nunca pela IA.
type InsightUseCase struct {
	directory *tenant.Directory
	medRepo   repository.MedicamentoRepository
	movRepo   repository.MovimentoRepository
	vendaRepo repository.VendaRepository
	llm       ports.LLMService
}

// NewInsightUseCase constrói o caso de uso injetando a porta LLMService.
func NewInsightUseCase(
	directory *tenant.Directory,
	medRepo repository.MedicamentoRepository,
	movRepo repository.MovimentoRepository,
	vendaRepo repository.VendaRepository,
	llm ports.LLMService,
) *InsightUseCase {
	return &InsightUseCase{directory: directory, medRepo: medRepo, movRepo: movRepo, vendaRepo: vendaRepo, llm: llm}
}

// GenerateInsights resolve o tenant, monta o prompt e chama o serviço externo.
// Os contadores agregados consideram todos os dados do tenant; só o prompt é
// limitado a maxRowsPerSection. Falhas upstream viram ErrUpstreamAI (o handler
// traduz para success:false); nunca propagam como fault cru.
func (uc *InsightUseCase) GenerateInsights(ctx context.Context, userID string) (*dto.InsightResponse, error) {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		return nil, err
	}

	meds, err := uc.medRepo.ListByFarmacia(farmacia.ID, "", 0, 0)
	if err != nil {
		return nil, err
	}
	movs, err := uc.movRepo.ListByFarmacia(farmacia.ID, 0, 0)
	if err != nil {
		return nil, err
	}
	vendas, err := uc.vendaRepo.ListByFarmacia(farmacia.ID, 0, 0)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(farmacia, firstN(meds), firstN(movs), firstN(vendas))

	llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	summary, err := uc.llm.GenerateContent(llmCtx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("farmacia_id", farmacia.ID).Msg("falha na geração de insights")
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamAI, err)
	}

	return &dto.InsightResponse{
		Success: true,
		Summary: summary,
		Data:    aggregate(meds, movs, vendas),
	}, nil
}

// firstN recorta uma seção para o prompt em maxRowsPerSection registros.
func firstN[T any](rows []*T) []*T {
	if len(rows) > maxRowsPerSection {
		return rows[:maxRowsPerSection]
	}
	return rows
}

// aggregate calcula os contadores locais exibidos junto ao resumo.
func aggregate(meds []*entity.Medicamento, movs []*entity.Movimento, vendas []*entity.Venda) *dto.InsightData {
	data := &dto.InsightData{TotalVendasValor: decimal.Zero}
	for _, mov := range movs {
		switch mov.Tipo {
		case entity.MovimentoEntrada:
			data.TotalEntradas += mov.Quantidade
		case entity.MovimentoSaida:
			data.TotalSaidas += mov.Quantidade
		}
	}
	for _, venda := range vendas {
		data.TotalVendasValor = data.TotalVendasValor.Add(venda.Total)
	}
	for _, med := range meds {
		data.MedicamentosEmEstoque += med.Quantidade
	}
	return data
}
