package jsonstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nublack/nublack-api/internal/infrastructure/jsonstore"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
	"github.com/nublack/nublack-api/pkg/logger"
)

const seedAdminEmail = "admin@nublack.com"

func newSeedEnv(t *testing.T) (*storage.Store, *jsonstore.UserRepository, *jsonstore.SettingsRepository, *logger.Logger) {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	notifier := storage.NewNotifier()
	store, err := storage.NewStore(t.TempDir(), 0, notifier, log)
	require.NoError(t, err)

	users, err := jsonstore.NewUserRepository(store, notifier)
	require.NoError(t, err)
	settings, err := jsonstore.NewSettingsRepository(store, notifier)
	require.NoError(t, err)
	return store, users, settings, log
}

// ──────────────────────────────────────────────────────────────────────────────
// Siembra inicial e idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestSeed_EsIdempotente(t *testing.T) {
	_, users, settings, log := newSeedEnv(t)

	require.NoError(t, jsonstore.Seed(users, settings, seedAdminEmail, "admin123", log))
	require.NoError(t, jsonstore.Seed(users, settings, seedAdminEmail, "admin123", log))

	_, total, err := users.List(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total, "sembrar dos veces no debe duplicar al administrador")
}

// ──────────────────────────────────────────────────────────────────────────────
// Re-siembra tras el reset del almacén
// ──────────────────────────────────────────────────────────────────────────────

// La secuencia de la remediación de cuota: Reset vacía el disco y la siembra
// inmediata debe dejar administrador y ajustes, sin depender de la relectura
// asíncrona de los repositorios.
func TestSeed_TrasReset_RestauraAdministradorYAjustes(t *testing.T) {
	store, users, settings, log := newSeedEnv(t)
	require.NoError(t, jsonstore.Seed(users, settings, seedAdminEmail, "admin123", log))

	require.NoError(t, store.Reset())
	require.NoError(t, jsonstore.Seed(users, settings, seedAdminEmail, "admin123", log))

	admin, err := users.GetByEmail(seedAdminEmail)
	require.NoError(t, err)
	require.NotNil(t, admin, "el administrador debe existir tras reset + re-siembra")
	assert.True(t, admin.Seed)

	ajustes, err := settings.List()
	require.NoError(t, err)
	assert.NotEmpty(t, ajustes, "los ajustes por defecto deben existir tras reset + re-siembra")
}
