package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/usecase"
	"github.com/farmatech/api/internal/domain"
)

// FarmaciaHandler trata as requisições HTTP do perfil da farmácia (protegido).
type FarmaciaHandler struct {
	uc *usecase.FarmaciaUseCase
}

// NewFarmaciaHandler constrói o handler.
func NewFarmaciaHandler(uc *usecase.FarmaciaUseCase) *FarmaciaHandler {
	return &FarmaciaHandler{uc: uc}
}

// List godoc
// @Summary      Listar farmácias (apenas a do caller)
// @Tags         farmacias
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FarmaciaListResponse
// @Router       /api/farmacias [get]
func (h *FarmaciaHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter farmácia por ID (somente a própria)
// @Tags         farmacias
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da farmácia"
// @Success      200  {object}  dto.FarmaciaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/farmacias/{id} [get]
func (h *FarmaciaHandler) GetByID(c *fiber.Ctx) error {
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
		// Farmácia de outro tenant é indistinguível de inexistente.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "farmácia não encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar o perfil da farmácia
// @Tags         farmacias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da farmácia"
// @Param        body  body  dto.UpdateFarmaciaRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.FarmaciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/farmacias/{id} [put]
func (h *FarmaciaHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id é obrigatório"})
	}
	var in dto.UpdateFarmaciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(userID, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FARMACIA_NOT_FOUND", Message: "usuário sem farmácia associada"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "farmácia não encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome e responsavel são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
