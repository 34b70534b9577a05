package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/farmatech/api/internal/application/auth"
	"github.com/farmatech/api/internal/application/insights"
	"github.com/farmatech/api/internal/application/inventory"
	"github.com/farmatech/api/internal/application/sales"
	"github.com/farmatech/api/internal/application/tenant"
	"github.com/farmatech/api/internal/application/usecase"
	infraai "github.com/farmatech/api/internal/infrastructure/ai"
	infrapdf "github.com/farmatech/api/internal/infrastructure/pdf"
	"github.com/farmatech/api/internal/infrastructure/postgres"
	httpRouter "github.com/farmatech/api/internal/interfaces/http"
	"github.com/farmatech/api/pkg/config"
	"github.com/farmatech/api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	farmaciaRepo := postgres.NewFarmaciaRepository(pool)
	medicamentoRepo := postgres.NewMedicamentoRepository(pool)
	movimentoRepo := postgres.NewMovimentoRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	directory := tenant.NewDirectory(farmaciaRepo)

	authUC := auth.NewAuthUseCase(txRunner, userRepo, farmaciaRepo, auth.JWTConfig{
		Secret:       cfg.JWT.Secret,
		AccessMin:    cfg.JWT.AccessMin,
		RefreshHours: cfg.JWT.RefreshHours,
		Issuer:       cfg.JWT.Issuer,
	})
	farmaciaUC := usecase.NewFarmaciaUseCase(directory, farmaciaRepo)
	medicamentoUC := usecase.NewMedicamentoUseCase(directory, medicamentoRepo)
	movimentoUC := inventory.NewRegisterMovimentoUseCase(txRunner, directory, movimentoRepo)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	createVendaUC := sales.NewCreateVendaUseCase(txRunner, directory)
	vendaUC := sales.NewVendaUseCase(directory, vendaRepo, receiptGenerator)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	insightUC := insights.NewInsightUseCase(directory, medicamentoRepo, movimentoRepo, vendaRepo, geminiSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FarmaTech API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		FarmaciaUC:    farmaciaUC,
		MedicamentoUC: medicamentoUC,
		MovimentoUC:   movimentoUC,
		CreateVenda:   createVendaUC,
		VendaUC:       vendaUC,
		InsightUC:     insightUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
