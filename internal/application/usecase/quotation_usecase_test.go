package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cotizador-pro/internal/application/dto"
	"github.com/tu-usuario/cotizador-pro/internal/application/usecase"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore imita el comportamiento transaccional del adaptador PostgreSQL:
// Run ejecuta fn contra un repo que escribe en un buffer y solo vuelca al
// almacén si fn termina sin error (commit). Create detecta quote_number
// duplicado contra el almacén, como lo haría el índice único.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	quotations map[string]*entity.Quotation // por ID
	numbers    map[string]struct{}          // quote_numbers ya persistidos
	lines      []*entity.QuotationMaterial

	runCalls      int
	failMaterial  bool // fuerza el fallo del insert de líneas
	forceDupLeft  int  // cantidad de Create que deben colisionar (simula índice único)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		quotations: map[string]*entity.Quotation{},
		numbers:    map[string]struct{}{},
	}
}

func (s *fakeStore) Run(_ context.Context, fn func(repository.QuotationRepository) error) error {
	s.runCalls++
	tx := &fakeTxRepo{store: s}
	if err := fn(tx); err != nil {
		return err // rollback: el buffer se descarta
	}
	for _, q := range tx.bufQuotations {
		s.quotations[q.ID] = q
		s.numbers[q.QuoteNumber] = struct{}{}
	}
	s.lines = append(s.lines, tx.bufLines...)
	return nil
}

type fakeTxRepo struct {
	store         *fakeStore
	bufQuotations []*entity.Quotation
	bufLines      []*entity.QuotationMaterial
}

func (r *fakeTxRepo) Create(q *entity.Quotation) error {
	if r.store.forceDupLeft != 0 {
		r.store.forceDupLeft--
		return domain.ErrDuplicate
	}
	if _, dup := r.store.numbers[q.QuoteNumber]; dup {
		return domain.ErrDuplicate
	}
	cp := *q
	r.bufQuotations = append(r.bufQuotations, &cp)
	return nil
}

func (r *fakeTxRepo) CreateMaterial(line *entity.QuotationMaterial) error {
	if r.store.failMaterial {
		return errors.New("fallo simulado al insertar línea")
	}
	cp := *line
	r.bufLines = append(r.bufLines, &cp)
	return nil
}

func (r *fakeTxRepo) GetByID(id string) (*entity.Quotation, error) {
	return r.store.quotations[id], nil
}

func (r *fakeTxRepo) GetMaterialsByQuotationID(quotationID string) ([]*entity.QuotationMaterial, error) {
	var out []*entity.QuotationMaterial
	for _, l := range r.store.lines {
		if l.QuotationID == quotationID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeTxRepo) ListByUser(string, int, int) ([]*entity.Quotation, error) { return nil, nil }
func (r *fakeTxRepo) ListAll(int, int) ([]*entity.Quotation, error)           { return nil, nil }

type fakeMaterialRepo struct {
	mats []*entity.RawMaterial
}

func (f *fakeMaterialRepo) Create(*entity.RawMaterial) error                 { return nil }
func (f *fakeMaterialRepo) GetByID(string) (*entity.RawMaterial, error)      { return nil, nil }
func (f *fakeMaterialRepo) Update(*entity.RawMaterial) error                 { return nil }
func (f *fakeMaterialRepo) Delete(string) error                              { return nil }
func (f *fakeMaterialRepo) ListByUser(string) ([]*entity.RawMaterial, error) { return f.mats, nil }

func newTestQuotationUC(store *fakeStore) *usecase.QuotationUseCase {
	mats := &fakeMaterialRepo{mats: []*entity.RawMaterial{
		{ID: "mat-a", UserID: "user-1", Name: "Madera", Unit: entity.UnitEstandar, Cost: decimal.NewFromInt(10)},
		{ID: "mat-b", UserID: "user-1", Name: "Barniz", Unit: entity.UnitLitros, Cost: decimal.NewFromInt(20)},
	}}
	return usecase.NewQuotationUseCase(store, mats, &fakeTxRepo{store: store})
}

func validRequest() dto.CreateQuotationRequest {
	return dto.CreateQuotationRequest{
		ProductName:      "Mesa de roble",
		ProductType:      entity.ProductTipoA,
		ValidityDays:     30,
		MarginPercentage: decimal.NewFromInt(20),
		Materials: []dto.AllocationRequest{
			{RawMaterialID: "mat-a", Percentage: decimal.NewFromInt(60)},
			{RawMaterialID: "mat-b", Percentage: decimal.NewFromInt(40)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación atómica
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_PersisteCabeceraYLineas(t *testing.T) {
	store := newFakeStore()
	uc := newTestQuotationUC(store)

	out, err := uc.Create(context.Background(), "user-1", validRequest())
	require.NoError(t, err)

	assert.Len(t, store.quotations, 1, "debe persistirse exactamente una cotización")
	assert.Len(t, store.lines, 2, "debe persistirse una línea por asignación")
	assert.True(t, out.TotalCost.Equal(decimal.NewFromInt(14)), "costo total: %s", out.TotalCost)
	assert.True(t, out.SalePrice.Equal(decimal.RequireFromString("17.5")), "precio de venta: %s", out.SalePrice)
	assert.Regexp(t, `^COT-[0-9A-Z]{9}$`, out.QuoteNumber)

	for _, l := range store.lines {
		assert.Equal(t, out.ID, l.QuotationID, "toda línea referencia a su cotización")
	}
}

// Si el insert de líneas falla, la transacción se revierte: no puede quedar
// una cotización sin líneas en estado estable.
func TestCreate_FalloEnLineas_NoDejaCotizacionHuerfana(t *testing.T) {
	store := newFakeStore()
	store.failMaterial = true
	uc := newTestQuotationUC(store)

	_, err := uc.Create(context.Background(), "user-1", validRequest())
	require.ErrorIs(t, err, domain.ErrPersistence)

	assert.Empty(t, store.quotations, "el rollback no debe dejar cabecera persistida")
	assert.Empty(t, store.lines)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reintentos por colisión del número de cotización
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ColisionDeNumero_RegeneraYReintenta(t *testing.T) {
	store := newFakeStore()
	store.forceDupLeft = 1 // el primer intento colisiona, el segundo no
	uc := newTestQuotationUC(store)

	out, err := uc.Create(context.Background(), "user-1", validRequest())
	require.NoError(t, err, "una colisión aislada debe resolverse regenerando el número")
	assert.Equal(t, 2, store.runCalls, "debe haber exactamente un reintento")
	assert.Len(t, store.quotations, 1)
	assert.Regexp(t, `^COT-[0-9A-Z]{9}$`, out.QuoteNumber)
}

// Con el almacén rechazando todo como duplicado, se agotan los intentos y el
// error se clasifica como fallo de persistencia (mensaje genérico al usuario).
func TestCreate_ColisionPersistente_AgotaIntentosYReportaPersistencia(t *testing.T) {
	store := newFakeStore()
	store.forceDupLeft = -1 // colisiona siempre
	uc := newTestQuotationUC(store)

	_, err := uc.Create(context.Background(), "user-1", validRequest())
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, 3, store.runCalls, "debe intentar exactamente 3 veces antes de rendirse")
	assert.Empty(t, store.quotations)
	assert.Empty(t, store.lines)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación previa: nada llega a la transacción
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ErrorDeValidacion_NoAbreTransaccion(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.CreateQuotationRequest)
		wantErr error
	}{
		{"sin materiales", func(r *dto.CreateQuotationRequest) { r.Materials = nil }, domain.ErrEmptyAllocation},
		{"material ajeno", func(r *dto.CreateQuotationRequest) { r.Materials[0].RawMaterialID = "ajeno" }, domain.ErrUnresolvedMaterial},
		{"suma 99", func(r *dto.CreateQuotationRequest) { r.Materials[1].Percentage = decimal.NewFromInt(39) }, domain.ErrPercentageMismatch},
		{"margen 100", func(r *dto.CreateQuotationRequest) { r.MarginPercentage = decimal.NewFromInt(100) }, domain.ErrInvalidMargin},
		{"sin nombre", func(r *dto.CreateQuotationRequest) { r.ProductName = "" }, domain.ErrInvalidInput},
		{"tipo desconocido", func(r *dto.CreateQuotationRequest) { r.ProductType = "Tipo Z" }, domain.ErrInvalidInput},
		{"validez cero", func(r *dto.CreateQuotationRequest) { r.ValidityDays = 0 }, domain.ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			uc := newTestQuotationUC(store)
			req := validRequest()
			tc.mutate(&req)

			_, err := uc.Create(context.Background(), "user-1", req)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Zero(t, store.runCalls,
				"un error de validación debe rechazarse antes de abrir la transacción")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_DuenoVeSuCotizacion_AjenoNo(t *testing.T) {
	store := newFakeStore()
	uc := newTestQuotationUC(store)

	out, err := uc.Create(context.Background(), "user-1", validRequest())
	require.NoError(t, err)

	// El repo de consulta del caso de uso en el test es el fake atado al store.
	got, err := uc.GetByID("user-1", entity.RoleUser, out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.QuoteNumber, got.QuoteNumber)
	assert.Len(t, got.Materials, 2, "la consulta debe incluir las líneas")

	_, err = uc.GetByID("user-2", entity.RoleUser, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro usuario no admin no puede verla")

	admin, err := uc.GetByID("user-2", entity.RoleAdmin, out.ID)
	require.NoError(t, err, "un admin puede ver cualquier cotización")
	assert.Equal(t, out.QuoteNumber, admin.QuoteNumber)
}
