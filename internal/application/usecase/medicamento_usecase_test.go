package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/application/tenant"
	"github.com/farmatech/api/internal/application/usecase"
	"github.com/farmatech/api/internal/domain"
	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/pkg/textutil"
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
	// IDs referenciados por itens de venda (proteção referencial)
	protegidos map[string]bool
	// histórico de movimentos por medicamento; cai em cascata no Delete
	movimentos map[string]int
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
	folded := textutil.Fold(search)
	var out []*entity.Medicamento
	for _, m := range r.meds {
		if m.FarmaciaID != farmaciaID {
			continue
		}
		if folded != "" && !strings.Contains(textutil.Fold(m.Nome), folded) {
			continue
		}
		cp := *m
		out = append(out, &cp)
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
	if r.protegidos[id] {
		return domain.ErrMedicamentoProtegido
	}
	delete(r.meds, id)
	delete(r.movimentos, id)
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

func newMedFixture(t *testing.T) (*usecase.MedicamentoUseCase, *fakeMedicamentoRepo) {
	t.Helper()
	farmaciaRepo := &fakeFarmaciaRepo{byUser: map[string]*entity.Farmacia{
		userA: {ID: farmaciaA, UserID: userA, Nome: "Farmácia Central"},
		userB: {ID: farmaciaB, UserID: userB, Nome: "Farmácia do Bairro"},
	}}
	medRepo := &fakeMedicamentoRepo{
		meds:       map[string]*entity.Medicamento{},
		protegidos: map[string]bool{},
		movimentos: map[string]int{},
	}
	uc := usecase.NewMedicamentoUseCase(tenant.NewDirectory(farmaciaRepo), medRepo)
	return uc, medRepo
}

func criacaoValida() dto.CreateMedicamentoRequest {
	return dto.CreateMedicamentoRequest{
		Nome:             "Dipirona Sódica",
		Quantidade:       40,
		QuantidadeMinima: 5,
		Categoria:        "Analgésico",
		Preco:            decimal.RequireFromString("8.90"),
		DataVencimento:   "2027-06-30",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestMedicamento_Create(t *testing.T) {
	uc, repo := newMedFixture(t)

	out, err := uc.Create(userA, criacaoValida())
	require.NoError(t, err)

	assert.Equal(t, "Dipirona Sódica", out.Nome)
	assert.Equal(t, 40, out.Quantidade)
	assert.Equal(t, "2027-06-30", out.DataVencimento)
	assert.Equal(t, farmaciaA, repo.meds[out.ID].FarmaciaID, "o medicamento nasce no tenant do caller")
}

func TestMedicamento_Create_DataInvalida(t *testing.T) {
	uc, _ := newMedFixture(t)

	in := criacaoValida()
	in.DataVencimento = "30/06/2027"
	_, err := uc.Create(userA, in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update não toca na quantidade: estoque só muda via movimentos e vendas.
func TestMedicamento_Update_NaoAlteraEstoque(t *testing.T) {
	uc, repo := newMedFixture(t)
	created, err := uc.Create(userA, criacaoValida())
	require.NoError(t, err)

	// Simula estoque alterado por vendas depois da criação.
	repo.meds[created.ID].Quantidade = 22

	out, err := uc.Update(userA, created.ID, dto.UpdateMedicamentoRequest{
		Nome:             "Dipirona Sódica 500mg",
		QuantidadeMinima: 8,
		Categoria:        "Analgésico",
		Preco:            decimal.RequireFromString("9.50"),
		DataVencimento:   "2027-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dipirona Sódica 500mg", out.Nome)
	assert.Equal(t, 22, repo.meds[created.ID].Quantidade, "o update de catálogo não pode tocar o estoque")
}

// Busca ignora acentos nos dois lados.
func TestMedicamento_List_BuscaSemAcentos(t *testing.T) {
	uc, _ := newMedFixture(t)
	_, err := uc.Create(userA, criacaoValida())
	require.NoError(t, err)

	out, err := uc.List(userA, "dipirona sodica", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Dipirona Sódica", out.Items[0].Nome)

	vazio, err := uc.List(userA, "amoxicilina", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, vazio.Items)
}

// Catálogo de um tenant é invisível para o outro.
func TestMedicamento_EscopoTenant(t *testing.T) {
	uc, _ := newMedFixture(t)
	created, err := uc.Create(userA, criacaoValida())
	require.NoError(t, err)

	out, err := uc.GetByID(userB, created.ID)
	require.NoError(t, err)
	assert.Nil(t, out, "medicamento de outro tenant é indistinguível de inexistente")

	_, err = uc.Update(userB, created.ID, dto.UpdateMedicamentoRequest{
		Nome: "X", Categoria: "Y", Preco: decimal.Zero, DataVencimento: "2027-01-01",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(userB, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Medicamento referenciado por venda não pode ser excluído.
func TestMedicamento_Delete_Protegido(t *testing.T) {
	uc, repo := newMedFixture(t)
	created, err := uc.Create(userA, criacaoValida())
	require.NoError(t, err)
	repo.protegidos[created.ID] = true

	err = uc.Delete(userA, created.ID)
	require.ErrorIs(t, err, domain.ErrMedicamentoProtegido)
	assert.Contains(t, repo.meds, created.ID, "o medicamento deve continuar no catálogo")
}

func TestMedicamento_Delete(t *testing.T) {
	uc, repo := newMedFixture(t)
	created, err := uc.Create(userA, criacaoValida())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(userA, created.ID))
	assert.NotContains(t, repo.meds, created.ID)
}

// Movimentos não protegem o medicamento: só itens de venda bloqueiam a
// exclusão; o histórico de movimentações cai em cascata junto.
func TestMedicamento_Delete_ComMovimentos(t *testing.T) {
	uc, repo := newMedFixture(t)
	created, err := uc.Create(userA, criacaoValida())
	require.NoError(t, err)
	repo.movimentos[created.ID] = 3

	require.NoError(t, uc.Delete(userA, created.ID))
	assert.NotContains(t, repo.meds, created.ID)
	assert.NotContains(t, repo.movimentos, created.ID, "o histórico deve ser removido em cascata")
}
