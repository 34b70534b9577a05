package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/usecase"
	"github.com/farmatech/api/internal/domain"
)

// MedicamentoHandler trata as requisições HTTP do catálogo de medicamentos (protegido).
type MedicamentoHandler struct {
	uc *usecase.MedicamentoUseCase
}

// NewMedicamentoHandler constrói o handler.
func NewMedicamentoHandler(uc *usecase.MedicamentoUseCase) *MedicamentoHandler {
	return &MedicamentoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar medicamento
// @Tags         medicamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicamentoRequest  true  "Dados do medicamento"
// @Success      201   {object}  dto.MedicamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/medicamentos [post]
func (h *MedicamentoHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMedicamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FARMACIA_NOT_FOUND", Message: "usuário sem farmácia associada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos (nome, categoria, preco >= 0, data_vencimento YYYY-MM-DD)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter medicamento por ID
// @Tags         medicamentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do medicamento"
// @Success      200  {object}  dto.MedicamentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicamentos/{id} [get]
func (h *MedicamentoHandler) GetByID(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar medicamentos do tenant
// @Tags         medicamentos
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nome (ignora acentos)"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.MedicamentoListResponse
// @Router       /api/medicamentos [get]
func (h *MedicamentoHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(userID, c.Query("search"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar medicamento (dados de catálogo; não o estoque)
// @Tags         medicamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do medicamento"
// @Param        body  body  dto.UpdateMedicamentoRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.MedicamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medicamentos/{id} [put]
func (h *MedicamentoHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id é obrigatório"})
	}
	var in dto.UpdateMedicamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(userID, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FARMACIA_NOT_FOUND", Message: "usuário sem farmácia associada"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento não encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir medicamento
// @Tags         medicamentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do medicamento"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/medicamentos/{id} [delete]
func (h *MedicamentoHandler) Delete(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(userID, id); err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FARMACIA_NOT_FOUND", Message: "usuário sem farmácia associada"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento não encontrado"})
		}
		if errors.Is(err, domain.ErrMedicamentoProtegido) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MEDICAMENTO_PROTEGIDO", Message: "medicamento referenciado por vendas não pode ser excluído"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
