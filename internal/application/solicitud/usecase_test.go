package solicitud_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nublack/nublack-api/internal/application/cart"
	"github.com/nublack/nublack-api/internal/application/dto"
	"github.com/nublack/nublack-api/internal/application/solicitud"
	"github.com/nublack/nublack-api/internal/application/usecase"
	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/domain/repository"
	"github.com/nublack/nublack-api/internal/infrastructure/jsonstore"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
	"github.com/nublack/nublack-api/pkg/logger"
)

const testEmail = "cliente@example.com"

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeReceipt evita generar PDFs reales en los tests de flujo.
type fakeReceipt struct{}

func (fakeReceipt) Generate(s *entity.Solicitud) ([]byte, error) {
	return []byte("%PDF-" + s.Numero), nil
}

type solicitudEnv struct {
	solicitudUC *solicitud.SolicitudUseCase
	cartUC      *cart.CartUseCase
	productUC   *usecase.ProductUseCase
	categoryID  string
}

func newSolicitudEnv(t *testing.T) *solicitudEnv {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	notifier := storage.NewNotifier()
	store, err := storage.NewStore(t.TempDir(), 0, notifier, log)
	require.NoError(t, err)

	categories, err := jsonstore.NewCategoryRepository(store, notifier)
	require.NoError(t, err)
	products, err := jsonstore.NewProductRepository(store, notifier)
	require.NoError(t, err)
	carts, err := jsonstore.NewCartRepository(store, notifier)
	require.NoError(t, err)
	solicitudes, err := jsonstore.NewSolicitudRepository(store, notifier)
	require.NoError(t, err)

	categoryUC := usecase.NewCategoryUseCase(categories, products)
	category, err := categoryUC.Create(dto.CreateCategoryRequest{
		Name:   "Camisetas",
		Tallas: []string{"S", "M", "L"},
	})
	require.NoError(t, err)

	return &solicitudEnv{
		solicitudUC: solicitud.NewSolicitudUseCase(solicitudes, carts, fakeReceipt{}),
		cartUC:      cart.NewCartUseCase(carts, products),
		productUC:   usecase.NewProductUseCase(products, categories),
		categoryID:  category.ID,
	}
}

// fillCart deja en el carrito 2 camisetas de $10.000 y 1 hoodie de $5.000.
func (env *solicitudEnv) fillCart(t *testing.T, email string) {
	t.Helper()
	camiseta, err := env.productUC.Create(dto.CreateProductRequest{
		Name:          "Camiseta básica " + email,
		Price:         decimal.NewFromInt(10000),
		CategoryID:    env.categoryID,
		Genero:        entity.GeneroUnisex,
		StockPorTalla: map[string]int{"M": 5},
	})
	require.NoError(t, err)
	hoodie, err := env.productUC.Create(dto.CreateProductRequest{
		Name:          "Hoodie clásico " + email,
		Price:         decimal.NewFromInt(5000),
		CategoryID:    env.categoryID,
		Genero:        entity.GeneroUnisex,
		StockPorTalla: map[string]int{"L": 3},
	})
	require.NoError(t, err)

	_, err = env.cartUC.Add(email, dto.AddCartItemRequest{ProductID: camiseta.ID, Talla: "M", Cantidad: 2})
	require.NoError(t, err)
	_, err = env.cartUC.Add(email, dto.AddCartItemRequest{ProductID: hoodie.ID, Talla: "L", Cantidad: 1})
	require.NoError(t, err)
}

func checkoutRequest() dto.CreateSolicitudRequest {
	return dto.CreateSolicitudRequest{
		NombreCliente: "María José Gutiérrez",
		Telefono:      "3001234567",
		Direccion:     "Calle 45 # 12-34",
		Ciudad:        "Bogotá",
		MetodoPago:    entity.PagoContraentrega,
	}
}

// checkout crea una solicitud desde el carrito ya lleno.
func (env *solicitudEnv) checkout(t *testing.T, email string) *dto.SolicitudResponse {
	t.Helper()
	env.fillCart(t, email)
	out, err := env.solicitudUC.Create(email, checkoutRequest())
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación (checkout)
// ──────────────────────────────────────────────────────────────────────────────

func TestSolicitudCreate_TotalesYVaciadoDelCarrito(t *testing.T) {
	env := newSolicitudEnv(t)
	out := env.checkout(t, testEmail)

	// subtotal = 10000×2 + 5000×1; total = subtotal (sin impuestos ni envío)
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(25000)))
	assert.True(t, out.Total.Equal(out.Subtotal), "el total es la suma de los detalles, nada más")
	assert.Equal(t, entity.EstadoPendiente, out.Estado)
	assert.Len(t, out.Detalles, 2)

	carrito, err := env.cartUC.Get(testEmail)
	require.NoError(t, err)
	assert.Empty(t, carrito.Items, "el checkout vacía el carrito")
}

func TestSolicitudCreate_NumeracionConsecutiva(t *testing.T) {
	env := newSolicitudEnv(t)

	primera := env.checkout(t, "uno@example.com")
	segunda := env.checkout(t, "dos@example.com")

	assert.Equal(t, "SOL-000001", primera.Numero)
	assert.Equal(t, "SOL-000002", segunda.Numero)
}

func TestSolicitudCreate_CarritoVacio_Falla(t *testing.T) {
	env := newSolicitudEnv(t)

	_, err := env.solicitudUC.Create(testEmail, checkoutRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestSolicitudChangeEstado_FlujoCompleto(t *testing.T) {
	env := newSolicitudEnv(t)
	s := env.checkout(t, testEmail)

	aprobada, err := env.solicitudUC.ChangeEstado(s.ID, dto.ChangeEstadoRequest{Estado: entity.EstadoAprobada})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoAprobada, aprobada.Estado)
	require.NotNil(t, aprobada.Domiciliario, "aprobar asigna un domiciliario")

	enCamino, err := env.solicitudUC.ChangeEstado(s.ID, dto.ChangeEstadoRequest{Estado: entity.EstadoEnCamino})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoEnCamino, enCamino.Estado)

	entregada, err := env.solicitudUC.ChangeEstado(s.ID, dto.ChangeEstadoRequest{Estado: entity.EstadoEntregada})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoEntregada, entregada.Estado)
}

func TestSolicitudChangeEstado_SaltoInvalido_Falla(t *testing.T) {
	env := newSolicitudEnv(t)
	s := env.checkout(t, testEmail)

	// pendiente → entregada sin pasar por aprobada/en_camino
	_, err := env.solicitudUC.ChangeEstado(s.ID, dto.ChangeEstadoRequest{Estado: entity.EstadoEntregada})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSolicitudChangeEstado_EstadoTerminalRechazaTodo(t *testing.T) {
	env := newSolicitudEnv(t)
	s := env.checkout(t, testEmail)

	_, err := env.solicitudUC.ChangeEstado(s.ID, dto.ChangeEstadoRequest{
		Estado: entity.EstadoCancelada,
		Motivo: "Cliente cambió de opinión",
	})
	require.NoError(t, err)

	_, err = env.solicitudUC.ChangeEstado(s.ID, dto.ChangeEstadoRequest{Estado: entity.EstadoAprobada})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"una solicitud cancelada no admite más transiciones")
}

func TestSolicitudChangeEstado_CancelarSinMotivo_Falla(t *testing.T) {
	env := newSolicitudEnv(t)
	s := env.checkout(t, testEmail)

	_, err := env.solicitudUC.ChangeEstado(s.ID, dto.ChangeEstadoRequest{
		Estado: entity.EstadoCancelada,
		Motivo: "   ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"cancelar exige un motivo no vacío")
}

func TestSolicitudChangeEstado_CancelarGuardaMotivo(t *testing.T) {
	env := newSolicitudEnv(t)
	s := env.checkout(t, testEmail)

	out, err := env.solicitudUC.ChangeEstado(s.ID, dto.ChangeEstadoRequest{
		Estado: entity.EstadoCancelada,
		Motivo: "Cliente cambió de opinión",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cliente cambió de opinión", out.MotivoCancelacion)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancelación por el cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestSolicitudCancel_PendientePropia_Procede(t *testing.T) {
	env := newSolicitudEnv(t)
	s := env.checkout(t, testEmail)

	out, err := env.solicitudUC.Cancel(s.ID, testEmail, "Cliente cambió de opinión")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoCancelada, out.Estado)
}

func TestSolicitudCancel_DeOtroUsuario_Prohibida(t *testing.T) {
	env := newSolicitudEnv(t)
	s := env.checkout(t, testEmail)

	_, err := env.solicitudUC.Cancel(s.ID, "intruso@example.com", "no es mía")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSolicitudCancel_YaAprobada_Prohibida(t *testing.T) {
	env := newSolicitudEnv(t)
	s := env.checkout(t, testEmail)

	_, err := env.solicitudUC.ChangeEstado(s.ID, dto.ChangeEstadoRequest{Estado: entity.EstadoAprobada})
	require.NoError(t, err)

	_, err = env.solicitudUC.Cancel(s.ID, testEmail, "me arrepentí tarde")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"el cliente solo cancela mientras la solicitud sigue pendiente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas con control de propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestSolicitudGetByID_DeOtroUsuario_Prohibida(t *testing.T) {
	env := newSolicitudEnv(t)
	s := env.checkout(t, testEmail)

	_, err := env.solicitudUC.GetByID(s.ID, "intruso@example.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSolicitudGetByID_Administrador_VeCualquiera(t *testing.T) {
	env := newSolicitudEnv(t)
	s := env.checkout(t, testEmail)

	out, err := env.solicitudUC.GetByID(s.ID, "") // ownerEmail vacío = administrador
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, s.ID, out.ID)
}

func TestSolicitudList_ClienteSoloVeLasPropias(t *testing.T) {
	env := newSolicitudEnv(t)
	env.checkout(t, testEmail)
	env.checkout(t, "otro@example.com")

	propias, err := env.solicitudUC.List(repository.SolicitudFilter{UserEmail: testEmail}, 20, 0)
	require.NoError(t, err)
	require.Len(t, propias.Items, 1)
	assert.Equal(t, testEmail, propias.Items[0].UserEmail)

	todas, err := env.solicitudUC.List(repository.SolicitudFilter{}, 20, 0)
	require.NoError(t, err)
	assert.Len(t, todas.Items, 2)
}

func TestSolicitudList_FiltraPorTextoSinTildes(t *testing.T) {
	env := newSolicitudEnv(t)
	env.checkout(t, testEmail) // NombreCliente: María José Gutiérrez

	list, err := env.solicitudUC.List(repository.SolicitudFilter{Texto: "gutierrez"}, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1, "la búsqueda ignora tildes")
}

// ──────────────────────────────────────────────────────────────────────────────
// Comprobante
// ──────────────────────────────────────────────────────────────────────────────

func TestSolicitudReceipt_DevuelveBytes(t *testing.T) {
	env := newSolicitudEnv(t)
	s := env.checkout(t, testEmail)

	pdf, err := env.solicitudUC.Receipt(s.ID, testEmail)
	require.NoError(t, err)
	assert.Contains(t, string(pdf), s.Numero)
}

func TestSolicitudReceipt_Inexistente_NotFound(t *testing.T) {
	env := newSolicitudEnv(t)

	_, err := env.solicitudUC.Receipt("no-existe", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
