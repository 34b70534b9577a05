package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/sales"
	"github.com/farmatech/api/internal/domain"
)

// VendaHandler trata as requisições HTTP do motor de vendas (protegido).
// Vendas são imutáveis depois de criadas: não há update/delete.
type VendaHandler struct {
	createUC *sales.CreateVendaUseCase
	uc       *sales.VendaUseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(createUC *sales.CreateVendaUseCase, uc *sales.VendaUseCase) *VendaHandler {
	return &VendaHandler{createUC: createUC, uc: uc}
}

// Create godoc
// @Summary      Criar venda e descontar estoque atomicamente
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVendaRequest  true  "Itens e forma de pagamento"
// @Success      201   {object}  dto.VendaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *VendaHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.createUC.CreateVenda(c.Context(), userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FARMACIA_NOT_FOUND", Message: "usuário sem farmácia associada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "forma_pagamento válida e ao menos um item com quantidade > 0 são obrigatórios"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento não encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			// A mensagem carrega o nome do medicamento insuficiente.
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter venda por ID com itens
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.VendaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [get]
func (h *VendaHandler) GetByID(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venda não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar vendas do tenant com itens
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.VendaListResponse
// @Router       /api/vendas [get]
func (h *VendaHandler) List(c *fiber.Ctx) error {
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

// Receipt godoc
// @Summary      Comprovante da venda em PDF
// @Tags         vendas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/comprovante [get]
func (h *VendaHandler) Receipt(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id é obrigatório"})
	}
	pdfBytes, err := h.uc.Receipt(userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FARMACIA_NOT_FOUND", Message: "usuário sem farmácia associada"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venda não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="comprovante-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
