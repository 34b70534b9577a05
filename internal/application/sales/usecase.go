package sales

import (
	"errors"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/tenant"
	"github.com/farmatech/api/internal/domain"
	"github.com/farmatech/api/internal/domain/repository"
)

// VendaUseCase consultas sobre vendas e geração do comprovante em PDF.
type VendaUseCase struct {
	directory *tenant.Directory
	vendaRepo repository.VendaRepository
	receipts  ReceiptGenerator
}

// NewVendaUseCase constrói o caso de uso de consultas.
func NewVendaUseCase(directory *tenant.Directory, vendaRepo repository.VendaRepository, receipts ReceiptGenerator) *VendaUseCase {
	return &VendaUseCase{directory: directory, vendaRepo: vendaRepo, receipts: receipts}
}

// GetByID devolve a venda com itens no escopo do tenant; nil quando não existe (404).
func (uc *VendaUseCase) GetByID(userID, id string) (*dto.VendaResponse, error) {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return nil, nil
		}
		return nil, err
	}
	venda, err := uc.vendaRepo.GetByIDAndFarmacia(id, farmacia.ID)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, nil
	}
	return toVendaResponse(venda), nil
}

// List lista as vendas do tenant com itens embutidos.
func (uc *VendaUseCase) List(userID string, page dto.PageRequest) (*dto.VendaListResponse, error) {
	page.DefaultPage()
	out := &dto.VendaListResponse{
		Items: []dto.VendaResponse{},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		if errors.Is(err, domain.ErrFarmaciaNotFound) {
			return out, nil
		}
		return nil, err
	}
	vendas, err := uc.vendaRepo.ListByFarmacia(farmacia.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	for _, venda := range vendas {
		out.Items = append(out.Items, *toVendaResponse(venda))
	}
	return out, nil
}

// Receipt gera o comprovante em PDF de uma venda do tenant.
func (uc *VendaUseCase) Receipt(userID, id string) ([]byte, error) {
	farmacia, err := uc.directory.Resolve(userID)
	if err != nil {
		return nil, err
	}
	venda, err := uc.vendaRepo.GetByIDAndFarmacia(id, farmacia.ID)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.GenerateReceipt(farmacia, venda)
}
