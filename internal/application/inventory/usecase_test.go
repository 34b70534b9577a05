package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/inventory"
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

func (r *fakeFarmaciaRepo) Create(f *entity.Farmacia) error { r.byUser[f.UserID] = f; return nil }
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
func (r *fakeFarmaciaRepo) Update(f *entity.Farmacia) error { r.byUser[f.UserID] = f; return nil }

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

func (r *fakeMedicamentoRepo) Delete(id string) error { delete(r.meds, id); return nil }

type fakeMovimentoRepo struct {
	movs []*entity.Movimento
	// farmácia dona de cada medicamento, para o escopo das leituras
	donoPorMed map[string]string
}

func (r *fakeMovimentoRepo) Create(m *entity.Movimento) error {
	cp := *m
	r.movs = append(r.movs, &cp)
	return nil
}

func (r *fakeMovimentoRepo) GetByIDAndFarmacia(id, farmaciaID string) (*entity.Movimento, error) {
	for _, m := range r.movs {
		if m.ID == id && r.donoPorMed[m.MedicamentoID] == farmaciaID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovimentoRepo) ListByFarmacia(farmaciaID string, limit, offset int) ([]*entity.Movimento, error) {
	var out []*entity.Movimento
	for _, m := range r.movs {
		if r.donoPorMed[m.MedicamentoID] == farmaciaID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	medRepo *fakeMedicamentoRepo
	movRepo *fakeMovimentoRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	medRepo repository.MedicamentoRepository,
	movRepo repository.MovimentoRepository,
) error) error {
	medsSnap := make(map[string]*entity.Medicamento, len(r.medRepo.meds))
	for id, m := range r.medRepo.meds {
		cp := *m
		medsSnap[id] = &cp
	}
	movsSnap := append([]*entity.Movimento(nil), r.movRepo.movs...)

	if err := fn(r.medRepo, r.movRepo); err != nil {
		r.medRepo.meds = medsSnap
		r.movRepo.movs = movsSnap
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

type movFixture struct {
	uc      *inventory.RegisterMovimentoUseCase
	medRepo *fakeMedicamentoRepo
	movRepo *fakeMovimentoRepo
}

func newMovFixture(t *testing.T) *movFixture {
	t.Helper()
	farmaciaRepo := &fakeFarmaciaRepo{byUser: map[string]*entity.Farmacia{
		userA: {ID: farmaciaA, UserID: userA, Nome: "Farmácia Central"},
		userB: {ID: farmaciaB, UserID: userB, Nome: "Farmácia do Bairro"},
	}}
	medRepo := &fakeMedicamentoRepo{meds: map[string]*entity.Medicamento{}}
	movRepo := &fakeMovimentoRepo{donoPorMed: map[string]string{}}
	runner := &fakeTxRunner{medRepo: medRepo, movRepo: movRepo}
	return &movFixture{
		uc:      inventory.NewRegisterMovimentoUseCase(runner, tenant.NewDirectory(farmaciaRepo), movRepo),
		medRepo: medRepo,
		movRepo: movRepo,
	}
}

func (f *movFixture) addMedicamento(id, farmaciaID string, quantidade int) {
	f.medRepo.meds[id] = &entity.Medicamento{
		ID:             id,
		FarmaciaID:     farmaciaID,
		Nome:           "Paracetamol",
		Quantidade:     quantidade,
		Categoria:      "Analgésico",
		Preco:          decimal.RequireFromString("5.00"),
		DataVencimento: time.Now().AddDate(1, 0, 0),
	}
	f.movRepo.donoPorMed[id] = farmaciaID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Entrada soma ao estoque e grava o movimento com data do servidor.
func TestRegisterMovimento_Entrada(t *testing.T) {
	f := newMovFixture(t)
	f.addMedicamento("med-1", farmaciaA, 10)

	antes := time.Now()
	out, err := f.uc.RegisterMovimento(context.Background(), userA, dto.CreateMovimentoRequest{
		Medicamento: "med-1",
		Tipo:        entity.MovimentoEntrada,
		Quantidade:  15,
		Observacoes: "reposição do fornecedor",
	})
	require.NoError(t, err)

	assert.Equal(t, 25, f.medRepo.meds["med-1"].Quantidade)
	assert.Equal(t, entity.MovimentoEntrada, out.Tipo)
	assert.False(t, out.Data.Before(antes), "a data deve ser atribuída pelo servidor no momento do registro")
	require.Len(t, f.movRepo.movs, 1)
}

// Saída subtrai do estoque.
func TestRegisterMovimento_Saida(t *testing.T) {
	f := newMovFixture(t)
	f.addMedicamento("med-1", farmaciaA, 10)

	_, err := f.uc.RegisterMovimento(context.Background(), userA, dto.CreateMovimentoRequest{
		Medicamento: "med-1",
		Tipo:        entity.MovimentoSaida,
		Quantidade:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, f.medRepo.meds["med-1"].Quantidade)
}

// Saída maior que o estoque: ErrInsufficientStock e nenhum efeito.
func TestRegisterMovimento_SaidaInsuficiente(t *testing.T) {
	f := newMovFixture(t)
	f.addMedicamento("med-1", farmaciaA, 3)

	_, err := f.uc.RegisterMovimento(context.Background(), userA, dto.CreateMovimentoRequest{
		Medicamento: "med-1",
		Tipo:        entity.MovimentoSaida,
		Quantidade:  5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, f.medRepo.meds["med-1"].Quantidade, "o estoque não pode mudar")
	assert.Empty(t, f.movRepo.movs, "nenhum movimento pode ser gravado")
}

// Tipo fora do enum e quantidade não positiva são rejeitados.
func TestRegisterMovimento_EntradaInvalida(t *testing.T) {
	f := newMovFixture(t)
	f.addMedicamento("med-1", farmaciaA, 10)

	casos := []dto.CreateMovimentoRequest{
		{Medicamento: "med-1", Tipo: "ajuste", Quantidade: 1},
		{Medicamento: "med-1", Tipo: entity.MovimentoEntrada, Quantidade: 0},
		{Medicamento: "med-1", Tipo: entity.MovimentoSaida, Quantidade: -2},
		{Medicamento: "", Tipo: entity.MovimentoEntrada, Quantidade: 1},
	}
	for _, in := range casos {
		_, err := f.uc.RegisterMovimento(context.Background(), userA, in)
		require.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v deve ser rejeitada", in)
	}
	assert.Equal(t, 10, f.medRepo.meds["med-1"].Quantidade)
}

// Medicamento de outro tenant: ErrNotFound, sem vazamento de existência.
func TestRegisterMovimento_OutroTenant(t *testing.T) {
	f := newMovFixture(t)
	f.addMedicamento("med-b", farmaciaB, 50)

	_, err := f.uc.RegisterMovimento(context.Background(), userA, dto.CreateMovimentoRequest{
		Medicamento: "med-b",
		Tipo:        entity.MovimentoEntrada,
		Quantidade:  5,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 50, f.medRepo.meds["med-b"].Quantidade)
}

// Listagem devolve apenas o ledger do tenant do caller.
func TestRegisterMovimento_ListEscopoTenant(t *testing.T) {
	f := newMovFixture(t)
	f.addMedicamento("med-1", farmaciaA, 10)
	f.addMedicamento("med-b", farmaciaB, 10)

	_, err := f.uc.RegisterMovimento(context.Background(), userA, dto.CreateMovimentoRequest{
		Medicamento: "med-1", Tipo: entity.MovimentoEntrada, Quantidade: 2,
	})
	require.NoError(t, err)
	_, err = f.uc.RegisterMovimento(context.Background(), userB, dto.CreateMovimentoRequest{
		Medicamento: "med-b", Tipo: entity.MovimentoSaida, Quantidade: 1,
	})
	require.NoError(t, err)

	out, err := f.uc.List(userA, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "med-1", out.Items[0].Medicamento)

	// Sem farmácia: lista vazia, nunca erro.
	vazio, err := f.uc.List("user-sem-farmacia", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, vazio.Items)
}
