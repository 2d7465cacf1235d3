package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nublack/nublack-api/internal/application/dto"
	"github.com/nublack/nublack-api/internal/application/usecase"
	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/infrastructure/jsonstore"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
	"github.com/nublack/nublack-api/pkg/logger"
)

const adminEmail = "admin@nublack.com"

// newUserUseCase monta el caso de uso de usuarios con el administrador sembrado.
func newUserUseCase(t *testing.T) *usecase.UserUseCase {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	notifier := storage.NewNotifier()
	store, err := storage.NewStore(t.TempDir(), 0, notifier, log)
	require.NoError(t, err)

	users, err := jsonstore.NewUserRepository(store, notifier)
	require.NoError(t, err)
	settings, err := jsonstore.NewSettingsRepository(store, notifier)
	require.NoError(t, err)
	require.NoError(t, jsonstore.Seed(users, settings, adminEmail, "admin123", log))

	return usecase.NewUserUseCase(users)
}

func createUserRequest(email, documento string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:           email,
		Password:        "clave-segura",
		Nombres:         "Andrés",
		Apellidos:       "Pérez",
		TipoDocumento:   entity.DocCC,
		NumeroDocumento: documento,
		Telefono:        "3007654321",
	}
}

// seededAdminID busca el ID del administrador sembrado en el listado.
func seededAdminID(t *testing.T, uc *usecase.UserUseCase) string {
	t.Helper()
	list, err := uc.List(20, 0)
	require.NoError(t, err)
	for _, u := range list.Items {
		if u.Email == adminEmail {
			return u.ID
		}
	}
	t.Fatal("el administrador sembrado debe aparecer en el listado")
	return ""
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD básico y unicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_EmailDuplicado_NoAlteraColeccion(t *testing.T) {
	uc := newUserUseCase(t)

	_, err := uc.Create(createUserRequest("andres@example.com", "1111111111"))
	require.NoError(t, err)

	_, err = uc.Create(createUserRequest("andres@example.com", "2222222222"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.List(20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Page.Total, "solo el admin sembrado y el primer create")
}

func TestUserCreate_DocumentoDuplicado_Falla(t *testing.T) {
	uc := newUserUseCase(t)

	_, err := uc.Create(createUserRequest("andres@example.com", "1111111111"))
	require.NoError(t, err)

	_, err = uc.Create(createUserRequest("otro@example.com", "1111111111"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserUpdate_FusionaCamposEnviados(t *testing.T) {
	uc := newUserUseCase(t)

	created, err := uc.Create(createUserRequest("andres@example.com", "1111111111"))
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateUserRequest{Telefono: strPtr("3119998877")})
	require.NoError(t, err)
	assert.Equal(t, "3119998877", out.Telefono)
	assert.Equal(t, "Andrés", out.Nombres, "los campos no enviados se conservan")
}

// ──────────────────────────────────────────────────────────────────────────────
// Protección del administrador sembrado
// ──────────────────────────────────────────────────────────────────────────────

func TestUserDelete_AdminSembrado_Prohibido(t *testing.T) {
	uc := newUserUseCase(t)
	adminID := seededAdminID(t, uc)

	err := uc.Delete(adminID)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"el administrador sembrado no puede eliminarse")
}

func TestUserUpdate_DesactivarAdminSembrado_Prohibido(t *testing.T) {
	uc := newUserUseCase(t)
	adminID := seededAdminID(t, uc)

	_, err := uc.Update(adminID, dto.UpdateUserRequest{
		Status: strPtr(entity.UserStatusInactivo),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"dejar la tienda sin administrador no es una opción")
}

func TestUserDelete_ClienteNormal_Procede(t *testing.T) {
	uc := newUserUseCase(t)

	created, err := uc.Create(createUserRequest("andres@example.com", "1111111111"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, out)
}
