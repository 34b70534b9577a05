package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmatech/api/internal/application/auth"
	"github.com/farmatech/api/internal/application/insights"
	"github.com/farmatech/api/internal/application/inventory"
	"github.com/farmatech/api/internal/application/sales"
	"github.com/farmatech/api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	FarmaciaUC    *usecase.FarmaciaUseCase
	MedicamentoUC *usecase.MedicamentoUseCase
	MovimentoUC   *inventory.RegisterMovimentoUseCase
	CreateVenda   *sales.CreateVendaUseCase
	VendaUC       *sales.VendaUseCase
	InsightUC     *insights.InsightUseCase
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público) — rotas planas, contrato do front-end FarmaTech
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/token", authHandler.Token)
	api.Post("/token/refresh", authHandler.Refresh)

	// Rotas protegidas (Bearer Token de acesso)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Farmácias (protegido; a listagem só devolve a do caller)
	farmacias := protected.Group("/farmacias")
	farmaciaHandler := NewFarmaciaHandler(deps.FarmaciaUC)
	farmacias.Get("/", farmaciaHandler.List)
	farmacias.Get("/:id", farmaciaHandler.GetByID)
	farmacias.Put("/:id", farmaciaHandler.Update)

	// Medicamentos (protegido)
	medicamentos := protected.Group("/medicamentos")
	medicamentoHandler := NewMedicamentoHandler(deps.MedicamentoUC)
	medicamentos.Post("/", medicamentoHandler.Create)
	medicamentos.Get("/", medicamentoHandler.List)
	medicamentos.Get("/:id", medicamentoHandler.GetByID)
	medicamentos.Put("/:id", medicamentoHandler.Update)
	medicamentos.Delete("/:id", medicamentoHandler.Delete)

	// Movimentações de estoque (protegido; imutáveis, sem update/delete)
	movimentos := protected.Group("/movimentos")
	movimentoHandler := NewMovimentoHandler(deps.MovimentoUC)
	movimentos.Post("/", movimentoHandler.Create)
	movimentos.Get("/", movimentoHandler.List)
	movimentos.Get("/:id", movimentoHandler.GetByID)

	// Vendas (protegido; imutáveis, sem update/delete)
	vendas := protected.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.CreateVenda, deps.VendaUC)
	vendas.Post("/", vendaHandler.Create)
	vendas.Get("/", vendaHandler.List)
	vendas.Get("/:id", vendaHandler.GetByID)
	vendas.Get("/:id/comprovante", vendaHandler.Receipt)

	// Insights de IA (protegido)
	insightHandler := NewInsightHandler(deps.InsightUC)
	protected.Post("/analyze-ai", insightHandler.Analyze)
}
