package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/pkg/logger"
)

func newTestStore(t *testing.T, quota int64) (*Store, *Notifier) {
	t.Helper()
	notifier := NewNotifier()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	store, err := NewStore(t.TempDir(), quota, notifier, log)
	require.NoError(t, err)
	return store, notifier
}

type registro struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Precio int    `json:"precio"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Load/Save
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t, 0)

	in := []registro{
		{ID: "1", Nombre: "Camiseta básica", Precio: 45000},
		{ID: "2", Nombre: "Tenis urbanos", Precio: 180000},
	}
	rev, err := store.Save(KeyProductos, 0, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev, "la primera escritura debe dejar revisión 1")

	var out []registro
	gotRev, err := store.Load(KeyProductos, &out)
	require.NoError(t, err)
	assert.Equal(t, rev, gotRev)
	assert.Equal(t, in, out, "save seguido de load debe devolver un valor idéntico")
}

func TestStore_LoadClaveAusente_DevuelveDefault(t *testing.T) {
	store, _ := newTestStore(t, 0)

	var out []registro
	rev, err := store.Load(KeyCategorias, &out)
	require.NoError(t, err, "una clave ausente no es un error")
	assert.Equal(t, int64(0), rev)
	assert.Empty(t, out, "la colección por defecto debe quedar vacía")
}

func TestStore_LoadDocumentoCorrupto_DevuelveDefault(t *testing.T) {
	store, _ := newTestStore(t, 0)

	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), KeyProductos+".json"), []byte("{no es json"), 0o644))

	var out []registro
	rev, err := store.Load(KeyProductos, &out)
	require.NoError(t, err, "JSON corrupto se registra pero no se propaga")
	assert.Equal(t, int64(0), rev)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CAS de revisión (lost update)
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_SaveRevisionObsoleta_Conflicto(t *testing.T) {
	store, _ := newTestStore(t, 0)

	rev, err := store.Save(KeySolicitudes, 0, []registro{{ID: "1"}})
	require.NoError(t, err)

	// Un "segundo escritor" avanza la revisión en disco.
	_, err = store.Save(KeySolicitudes, rev, []registro{{ID: "1"}, {ID: "2"}})
	require.NoError(t, err)

	// El primer escritor intenta guardar con su revisión ya obsoleta.
	_, err = store.Save(KeySolicitudes, rev, []registro{{ID: "1"}, {ID: "3"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict, "revisión obsoleta debe producir ErrConflict")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de cuota
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_CuotaExcedida_NoEscribe(t *testing.T) {
	store, _ := newTestStore(t, 64) // cuota minúscula a propósito

	grande := make([]registro, 50)
	for i := range grande {
		grande[i] = registro{ID: "x", Nombre: "Chaqueta impermeable con capota", Precio: 250000}
	}
	_, err := store.Save(KeyProductos, 0, grande)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageFull, "exceder la cuota debe producir ErrStorageFull")

	_, statErr := os.Stat(filepath.Join(store.Dir(), KeyProductos+".json"))
	assert.True(t, os.IsNotExist(statErr), "la escritura rechazada no debe dejar archivo")
}

func TestStore_Reset_VaciaTodo(t *testing.T) {
	store, _ := newTestStore(t, 0)

	_, err := store.Save(KeyProductos, 0, []registro{{ID: "1"}})
	require.NoError(t, err)
	_, err = store.Save(KeyUsuarios, 0, []registro{{ID: "u1"}})
	require.NoError(t, err)

	require.NoError(t, store.Reset())

	var out []registro
	rev, err := store.Load(KeyProductos, &out)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rev)
	assert.Empty(t, out, "tras reset toda colección vuelve al valor por defecto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del bus de notificación
// ──────────────────────────────────────────────────────────────────────────────

func TestNotifier_PublicaTrasSave(t *testing.T) {
	store, notifier := newTestStore(t, 0)

	ch, cancel := notifier.Subscribe(KeyProductos)
	defer cancel()

	_, err := store.Save(KeyProductos, 0, []registro{{ID: "1"}})
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, KeyProductos, ev.Key)
		assert.Equal(t, int64(1), ev.Rev)
		assert.False(t, ev.External, "una escritura propia no es un cambio externo")
	case <-time.After(time.Second):
		t.Fatal("se esperaba un evento de cambio tras el save")
	}
}

func TestNotifier_NoNotificaOtraColeccion(t *testing.T) {
	store, notifier := newTestStore(t, 0)

	ch, cancel := notifier.Subscribe(KeyCategorias)
	defer cancel()

	_, err := store.Save(KeyProductos, 0, []registro{{ID: "1"}})
	require.NoError(t, err)

	select {
	case ev := <-ch:
		t.Fatalf("no se esperaba evento para %s", ev.Key)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStore_DocumentoEnDisco_TieneSobreConRev(t *testing.T) {
	store, _ := newTestStore(t, 0)

	_, err := store.Save(KeyAjustes, 0, []registro{{ID: "iva"}})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(store.Dir(), KeyAjustes+".json"))
	require.NoError(t, err)

	var doc struct {
		Rev  int64           `json:"rev"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, int64(1), doc.Rev)
	assert.NotEmpty(t, doc.Data)
}
