package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/insights"
	"github.com/farmatech/api/internal/domain"
)

// InsightHandler trata o POST /api/analyze-ai (protegido).
type InsightHandler struct {
	uc *insights.InsightUseCase
}

// NewInsightHandler constrói o handler.
func NewInsightHandler(uc *insights.InsightUseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// Analyze godoc
// @Summary      Gerar análise de IA sobre os dados da farmácia
// @Tags         insights
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.InsightResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.InsightResponse
// @Router       /api/analyze-ai [post]
func (h *InsightHandler) Analyze(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	// O corpo (filtros) é aceito mas não influencia a análise.
	out, err := h.uc.GenerateInsights(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FARMACIA_NOT_FOUND", Message: "usuário sem farmácia associada"})
		}
		// Falha upstream ou inesperada: envelope seguro, nunca o fault cru.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"summary": "Não foi possível gerar a análise no momento. Tente novamente mais tarde.",
			"data":    fiber.Map{},
		})
	}
	return c.JSON(out)
}
