package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/inventory"
	"github.com/farmatech/api/internal/domain"
)

// MovimentoHandler trata as requisições HTTP do ledger de movimentações (protegido).
// Movimentos são imutáveis: não há rotas de update/delete.
type MovimentoHandler struct {
	uc *inventory.RegisterMovimentoUseCase
}

// NewMovimentoHandler constrói o handler.
func NewMovimentoHandler(uc *inventory.RegisterMovimentoUseCase) *MovimentoHandler {
	return &MovimentoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimentação de estoque (entrada/saida)
// @Tags         movimentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovimentoRequest  true  "Dados da movimentação"
// @Success      201   {object}  dto.MovimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movimentos [post]
func (h *MovimentoHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMovimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegisterMovimento(c.Context(), userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FARMACIA_NOT_FOUND", Message: "usuário sem farmácia associada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "medicamento, tipo (entrada|saida) e quantidade > 0 são obrigatórios"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento não encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente para a saída"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter movimentação por ID
// @Tags         movimentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da movimentação"
// @Success      200  {object}  dto.MovimentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentos/{id} [get]
func (h *MovimentoHandler) GetByID(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(userID, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimentações do tenant
// @Tags         movimentos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.MovimentoListResponse
// @Router       /api/movimentos [get]
func (h *MovimentoHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(userID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
