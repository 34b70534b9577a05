package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/sales"
	"github.com/farmatech/api/internal/application/tenant"
	"github.com/farmatech/api/internal/domain"
	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeFarmaciaRepo struct {
	byUser map[string]*entity.Farmacia
}

func (r *fakeFarmaciaRepo) Create(f *entity.Farmacia) error {
	r.byUser[f.UserID] = f
	return nil
}

func (r *fakeFarmaciaRepo) GetByID(id string) (*entity.Farmacia, error) {
	for _, f := range r.byUser {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

func (r *fakeFarmaciaRepo) GetByUserID(userID string) (*entity.Farmacia, error) {
	return r.byUser[userID], nil
}

func (r *fakeFarmaciaRepo) Update(f *entity.Farmacia) error {
	r.byUser[f.UserID] = f
	return nil
}

type fakeMedicamentoRepo struct {
	meds map[string]*entity.Medicamento
}

func (r *fakeMedicamentoRepo) Create(m *entity.Medicamento) error {
	cp := *m
	r.meds[m.ID] = &cp
	return nil
}

func (r *fakeMedicamentoRepo) GetByID(id string) (*entity.Medicamento, error) {
	m, ok := r.meds[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMedicamentoRepo) GetForUpdate(id string) (*entity.Medicamento, error) {
	return r.GetByID(id)
}

func (r *fakeMedicamentoRepo) ListByFarmacia(farmaciaID, search string, limit, offset int) ([]*entity.Medicamento, error) {
	var out []*entity.Medicamento
	for _, m := range r.meds {
		if m.FarmaciaID == farmaciaID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMedicamentoRepo) Update(m *entity.Medicamento) error {
	cp := *m
	r.meds[m.ID] = &cp
	return nil
}

func (r *fakeMedicamentoRepo) UpdateQuantidade(id string, quantidade int) error {
	r.meds[id].Quantidade = quantidade
	return nil
}

func (r *fakeMedicamentoRepo) Delete(id string) error {
	delete(r.meds, id)
	return nil
}

type fakeVendaRepo struct {
	vendas map[string]*entity.Venda
	itens  []*entity.ItemVenda
}

func (r *fakeVendaRepo) Create(v *entity.Venda) error {
	cp := *v
	cp.Itens = nil
	r.vendas[v.ID] = &cp
	return nil
}

func (r *fakeVendaRepo) CreateItem(item *entity.ItemVenda) error {
	cp := *item
	r.itens = append(r.itens, &cp)
	return nil
}

func (r *fakeVendaRepo) GetByIDAndFarmacia(id, farmaciaID string) (*entity.Venda, error) {
	v, ok := r.vendas[id]
	if !ok || v.FarmaciaID != farmaciaID {
		return nil, nil
	}
	cp := *v
	for _, item := range r.itens {
		if item.VendaID == id {
			icp := *item
			cp.Itens = append(cp.Itens, &icp)
		}
	}
	return &cp, nil
}

func (r *fakeVendaRepo) ListByFarmacia(farmaciaID string, limit, offset int) ([]*entity.Venda, error) {
	var out []*entity.Venda
	for id, v := range r.vendas {
		if v.FarmaciaID == farmaciaID {
			cp, _ := r.GetByIDAndFarmacia(id, farmaciaID)
			out = append(out, cp)
		}
	}
	return out, nil
}

// fakeTxRunner imita a semântica transacional: em erro do callback, restaura o
// estado dos repositórios a partir de um snapshot (rollback).
type fakeTxRunner struct {
	medRepo   *fakeMedicamentoRepo
	vendaRepo *fakeVendaRepo
}

func (r *fakeTxRunner) RunVenda(ctx context.Context, fn func(
	medRepo repository.MedicamentoRepository,
	vendaRepo repository.VendaRepository,
) error) error {
	medsSnap := make(map[string]*entity.Medicamento, len(r.medRepo.meds))
	for id, m := range r.medRepo.meds {
		cp := *m
		medsSnap[id] = &cp
	}
	vendasSnap := make(map[string]*entity.Venda, len(r.vendaRepo.vendas))
	for id, v := range r.vendaRepo.vendas {
		cp := *v
		vendasSnap[id] = &cp
	}
	itensSnap := append([]*entity.ItemVenda(nil), r.vendaRepo.itens...)

	if err := fn(r.medRepo, r.vendaRepo); err != nil {
		r.medRepo.meds = medsSnap
		r.vendaRepo.vendas = vendasSnap
		r.vendaRepo.itens = itensSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

const (
	userA     = "user-a"
	farmaciaA = "farmacia-a"
	userB     = "user-b"
	farmaciaB = "farmacia-b"
)

type vendaFixture struct {
	uc        *sales.CreateVendaUseCase
	medRepo   *fakeMedicamentoRepo
	vendaRepo *fakeVendaRepo
}

func newVendaFixture(t *testing.T) *vendaFixture {
	t.Helper()
	farmaciaRepo := &fakeFarmaciaRepo{byUser: map[string]*entity.Farmacia{
		userA: {ID: farmaciaA, UserID: userA, Nome: "Farmácia Central"},
		userB: {ID: farmaciaB, UserID: userB, Nome: "Farmácia do Bairro"},
	}}
	medRepo := &fakeMedicamentoRepo{meds: map[string]*entity.Medicamento{}}
	vendaRepo := &fakeVendaRepo{vendas: map[string]*entity.Venda{}}
	runner := &fakeTxRunner{medRepo: medRepo, vendaRepo: vendaRepo}
	directory := tenant.NewDirectory(farmaciaRepo)
	return &vendaFixture{
		uc:        sales.NewCreateVendaUseCase(runner, directory),
		medRepo:   medRepo,
		vendaRepo: vendaRepo,
	}
}

func (f *vendaFixture) addMedicamento(id, farmaciaID, nome string, quantidade int, preco string) {
	f.medRepo.meds[id] = &entity.Medicamento{
		ID:             id,
		FarmaciaID:     farmaciaID,
		Nome:           nome,
		Quantidade:     quantidade,
		Categoria:      "Analgésico",
		Preco:          decimal.RequireFromString(preco),
		DataVencimento: time.Now().AddDate(1, 0, 0),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Venda de 10 unidades a R$5,00: total derivado 50,00 e estoque 100 → 90.
func TestCreateVenda_TotalDerivadoEDecrementoDeEstoque(t *testing.T) {
	f := newVendaFixture(t)
	f.addMedicamento("med-1", farmaciaA, "Paracetamol", 100, "5.00")

	out, err := f.uc.CreateVenda(context.Background(), userA, dto.CreateVendaRequest{
		FormaPagamento: entity.PagamentoPix,
		Itens: []dto.CreateVendaItemRequest{
			{Medicamento: "med-1", Quantidade: 10},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Total.Equal(decimal.RequireFromString("50.00")),
		"total deve ser 10 × 5,00 = 50,00, obtido %s", out.Total)
	assert.Equal(t, 90, f.medRepo.meds["med-1"].Quantidade, "estoque deve cair de 100 para 90")
	require.Len(t, out.Itens, 1)
	assert.Equal(t, "Paracetamol", out.Itens[0].MedicamentoNome)

	// Venda e itens persistidos
	assert.Len(t, f.vendaRepo.vendas, 1)
	assert.Len(t, f.vendaRepo.itens, 1)
}

// O preço enviado pelo cliente é descartado: vale o preço atual de catálogo.
func TestCreateVenda_PrecoDoClienteIgnorado(t *testing.T) {
	f := newVendaFixture(t)
	f.addMedicamento("med-1", farmaciaA, "Dipirona", 50, "8.90")

	clientPrice := decimal.RequireFromString("0.01")
	out, err := f.uc.CreateVenda(context.Background(), userA, dto.CreateVendaRequest{
		FormaPagamento: entity.PagamentoDinheiro,
		Itens: []dto.CreateVendaItemRequest{
			{Medicamento: "med-1", Quantidade: 2, PrecoUnitario: &clientPrice},
		},
	})
	require.NoError(t, err)

	assert.True(t, out.Itens[0].PrecoUnitario.Equal(decimal.RequireFromString("8.90")),
		"preço capturado deve ser o de catálogo, não o do cliente")
	assert.True(t, out.Total.Equal(decimal.RequireFromString("17.80")))
}

// Estoque insuficiente: venda de 10 com só 5 em estoque falha sem efeito algum.
func TestCreateVenda_EstoqueInsuficiente(t *testing.T) {
	f := newVendaFixture(t)
	f.addMedicamento("med-1", farmaciaA, "Paracetamol", 5, "5.00")

	_, err := f.uc.CreateVenda(context.Background(), userA, dto.CreateVendaRequest{
		FormaPagamento: entity.PagamentoPix,
		Itens: []dto.CreateVendaItemRequest{
			{Medicamento: "med-1", Quantidade: 10},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Paracetamol", "a mensagem deve nomear o medicamento insuficiente")

	assert.Equal(t, 5, f.medRepo.meds["med-1"].Quantidade, "estoque não pode mudar")
	assert.Empty(t, f.vendaRepo.vendas, "nenhuma venda pode ser persistida")
	assert.Empty(t, f.vendaRepo.itens)
}

// Insuficiência no segundo item desfaz o decremento já aplicado ao primeiro.
func TestCreateVenda_SegundoItemInsuficienteDesfazTudo(t *testing.T) {
	f := newVendaFixture(t)
	f.addMedicamento("med-1", farmaciaA, "Amoxicilina", 10, "12.00")
	f.addMedicamento("med-2", farmaciaA, "Ibuprofeno", 3, "7.50")

	_, err := f.uc.CreateVenda(context.Background(), userA, dto.CreateVendaRequest{
		FormaPagamento: entity.PagamentoCartaoCredito,
		Itens: []dto.CreateVendaItemRequest{
			{Medicamento: "med-1", Quantidade: 5},
			{Medicamento: "med-2", Quantidade: 5},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, f.medRepo.meds["med-1"].Quantidade, "rollback deve restaurar o primeiro item")
	assert.Equal(t, 3, f.medRepo.meds["med-2"].Quantidade)
	assert.Empty(t, f.vendaRepo.vendas)
	assert.Empty(t, f.vendaRepo.itens)
}

// Venda sem itens é rejeitada na borda, antes de abrir transação.
func TestCreateVenda_SemItensRejeitada(t *testing.T) {
	f := newVendaFixture(t)

	_, err := f.uc.CreateVenda(context.Background(), userA, dto.CreateVendaRequest{
		FormaPagamento: entity.PagamentoPix,
		Itens:          []dto.CreateVendaItemRequest{},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Forma de pagamento fora do enum é rejeitada.
func TestCreateVenda_FormaPagamentoInvalida(t *testing.T) {
	f := newVendaFixture(t)
	f.addMedicamento("med-1", farmaciaA, "Paracetamol", 100, "5.00")

	_, err := f.uc.CreateVenda(context.Background(), userA, dto.CreateVendaRequest{
		FormaPagamento: "cheque",
		Itens: []dto.CreateVendaItemRequest{
			{Medicamento: "med-1", Quantidade: 1},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Medicamento de outro tenant é indistinguível de inexistente: ErrNotFound.
func TestCreateVenda_MedicamentoDeOutroTenant(t *testing.T) {
	f := newVendaFixture(t)
	f.addMedicamento("med-b", farmaciaB, "Omeprazol", 30, "4.20")

	_, err := f.uc.CreateVenda(context.Background(), userA, dto.CreateVendaRequest{
		FormaPagamento: entity.PagamentoPix,
		Itens: []dto.CreateVendaItemRequest{
			{Medicamento: "med-b", Quantidade: 1},
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 30, f.medRepo.meds["med-b"].Quantidade, "o estoque do outro tenant não pode mudar")
}

// Principal sem farmácia associada não pode vender.
func TestCreateVenda_SemFarmaciaAssociada(t *testing.T) {
	f := newVendaFixture(t)
	f.addMedicamento("med-1", farmaciaA, "Paracetamol", 100, "5.00")

	_, err := f.uc.CreateVenda(context.Background(), "user-sem-farmacia", dto.CreateVendaRequest{
		FormaPagamento: entity.PagamentoPix,
		Itens: []dto.CreateVendaItemRequest{
			{Medicamento: "med-1", Quantidade: 1},
		},
	})
	require.ErrorIs(t, err, domain.ErrFarmaciaNotFound)
}

// Item com quantidade zero ou negativa é rejeitado.
func TestCreateVenda_QuantidadeInvalida(t *testing.T) {
	f := newVendaFixture(t)
	f.addMedicamento("med-1", farmaciaA, "Paracetamol", 100, "5.00")

	for _, qtd := range []int{0, -3} {
		_, err := f.uc.CreateVenda(context.Background(), userA, dto.CreateVendaRequest{
			FormaPagamento: entity.PagamentoPix,
			Itens: []dto.CreateVendaItemRequest{
				{Medicamento: "med-1", Quantidade: qtd},
			},
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade %d deve ser rejeitada", qtd)
	}
}

// Vários itens válidos: total soma as parcelas na ordem recebida.
func TestCreateVenda_VariosItens(t *testing.T) {
	f := newVendaFixture(t)
	f.addMedicamento("med-1", farmaciaA, "Paracetamol", 100, "5.00")
	f.addMedicamento("med-2", farmaciaA, "Vitamina C", 40, "19.90")

	out, err := f.uc.CreateVenda(context.Background(), userA, dto.CreateVendaRequest{
		FormaPagamento: entity.PagamentoCartaoDebito,
		Itens: []dto.CreateVendaItemRequest{
			{Medicamento: "med-1", Quantidade: 3},
			{Medicamento: "med-2", Quantidade: 2},
		},
	})
	require.NoError(t, err)

	// 3×5,00 + 2×19,90 = 54,80
	assert.True(t, out.Total.Equal(decimal.RequireFromString("54.80")), "total obtido: %s", out.Total)
	assert.Equal(t, 97, f.medRepo.meds["med-1"].Quantidade)
	assert.Equal(t, 38, f.medRepo.meds["med-2"].Quantidade)
	assert.Len(t, f.vendaRepo.itens, 2)
}
