package jsonstore_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/infrastructure/jsonstore"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
	"github.com/nublack/nublack-api/pkg/logger"
)

func newSolicitudRepo(t *testing.T) *jsonstore.SolicitudRepository {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	notifier := storage.NewNotifier()
	store, err := storage.NewStore(t.TempDir(), 0, notifier, log)
	require.NoError(t, err)
	repo, err := jsonstore.NewSolicitudRepository(store, notifier)
	require.NoError(t, err)
	return repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Numeración consecutiva
// ──────────────────────────────────────────────────────────────────────────────

func TestSolicitudCreate_AsignaConsecutivo(t *testing.T) {
	repo := newSolicitudRepo(t)

	primera := &entity.Solicitud{ID: "s-1", UserEmail: "a@example.com"}
	segunda := &entity.Solicitud{ID: "s-2", UserEmail: "b@example.com"}
	require.NoError(t, repo.Create(primera))
	require.NoError(t, repo.Create(segunda))

	assert.Equal(t, "SOL-000001", primera.Numero)
	assert.Equal(t, "SOL-000002", segunda.Numero)
}

func TestSolicitudCreate_Concurrente_NoRepiteNumeros(t *testing.T) {
	repo := newSolicitudRepo(t)

	const n = 8
	errs := make([]error, n)
	creadas := make([]*entity.Solicitud, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := &entity.Solicitud{
				ID:        fmt.Sprintf("s-%d", i),
				UserEmail: fmt.Sprintf("cliente%d@example.com", i),
			}
			errs[i] = repo.Create(s)
			creadas[i] = s
		}(i)
	}
	wg.Wait()

	numeros := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		numeros[creadas[i].Numero] = true
	}
	assert.Len(t, numeros, n, "cada creación concurrente debe recibir un número distinto")
	for i := 1; i <= n; i++ {
		assert.True(t, numeros[fmt.Sprintf("SOL-%06d", i)], "el consecutivo %d debe existir", i)
	}
}
