package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/pkg/logger"
)

// Claves de colección conocidas. Cada una corresponde a un archivo <clave>.json.
const (
	KeyUsuarios    = "usuarios"
	KeyCategorias  = "categorias"
	KeyProductos   = "productos"
	KeyCarritos    = "carritos"
	KeySolicitudes = "solicitudes"
	KeyAjustes     = "ajustes"
)

// Keys lista todas las claves de colección.
func Keys() []string {
	return []string{KeyUsuarios, KeyCategorias, KeyProductos, KeyCarritos, KeySolicitudes, KeyAjustes}
}

// document es el sobre persistido por colección: revisión + datos crudos.
type document struct {
	Rev  int64           `json:"rev"`
	Data json.RawMessage `json:"data"`
}

// Store es el códec de almacenamiento: un documento JSON por colección bajo Dir.
// Save es compare-and-swap sobre la revisión del documento, para detectar
// escritores externos en vez de perder actualizaciones silenciosamente.
type Store struct {
	dir      string
	quota    int64 // bytes totales permitidos; 0 = sin cuota
	notifier *Notifier
	log      *logger.Logger

	mu   sync.Mutex
	revs map[string]int64 // última revisión escrita/leída por este proceso
}

// NewStore crea el códec sobre dir (lo crea si no existe).
func NewStore(dir string, quota int64, notifier *Notifier, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de almacenamiento: %w", err)
	}
	return &Store{
		dir:      dir,
		quota:    quota,
		notifier: notifier,
		log:      log,
		revs:     make(map[string]int64),
	}, nil
}

// Dir devuelve el directorio de datos.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load deserializa la colección en out y devuelve su revisión.
// Archivo ausente o JSON corrupto no son errores: se registra y out queda con
// su valor cero (la colección vacía por defecto), revisión 0.
func (s *Store) Load(key string, out interface{}) (int64, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: leer %s: %v", domain.ErrStorageWrite, key, err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn().Str("coleccion", key).Err(err).Msg("documento corrupto, se usa el valor por defecto")
		return 0, nil
	}
	if len(doc.Data) > 0 {
		if err := json.Unmarshal(doc.Data, out); err != nil {
			s.log.Warn().Str("coleccion", key).Err(err).Msg("datos corruptos, se usa el valor por defecto")
			return 0, nil
		}
	}
	s.mu.Lock()
	s.revs[key] = doc.Rev
	s.mu.Unlock()
	return doc.Rev, nil
}

// Save serializa y persiste la colección si la revisión en disco coincide con
// expectedRev; devuelve la nueva revisión. Un escritor externo más reciente
// produce ErrConflict. Exceder la cuota produce ErrStorageFull sin escribir.
// Tras una escritura exitosa publica el evento de cambio de la colección.
func (s *Store) Save(key string, expectedRev int64, value interface{}) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	diskRev, err := s.diskRev(key)
	if err != nil {
		return 0, err
	}
	if diskRev != expectedRev {
		return 0, fmt.Errorf("%w: revisión %d esperada, %d en disco (%s)", domain.ErrConflict, expectedRev, diskRev, key)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return 0, fmt.Errorf("%w: serializar %s: %v", domain.ErrStorageWrite, key, err)
	}
	newRev := diskRev + 1
	doc, err := json.Marshal(document{Rev: newRev, Data: data})
	if err != nil {
		return 0, fmt.Errorf("%w: serializar %s: %v", domain.ErrStorageWrite, key, err)
	}

	if s.quota > 0 {
		used, err := s.usedExcept(key)
		if err != nil {
			return 0, err
		}
		if used+int64(len(doc)) > s.quota {
			return 0, fmt.Errorf("%w: %d bytes supera la cuota de %d", domain.ErrStorageFull, used+int64(len(doc)), s.quota)
		}
	}

	// Escritura atómica: archivo temporal + rename.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, doc, 0o644); err != nil {
		return 0, fmt.Errorf("%w: escribir %s: %v", domain.ErrStorageWrite, key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return 0, fmt.Errorf("%w: escribir %s: %v", domain.ErrStorageWrite, key, err)
	}

	s.revs[key] = newRev
	if s.notifier != nil {
		s.notifier.Publish(Event{Key: key, Rev: newRev})
	}
	return newRev, nil
}

// Reset elimina todas las colecciones: la remediación destructiva cuando la
// cuota se agota. Publica el evento de cambio de cada colección.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range Keys() {
		if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: borrar %s: %v", domain.ErrStorageWrite, key, err)
		}
		s.revs[key] = 0
		if s.notifier != nil {
			s.notifier.Publish(Event{Key: key, Rev: 0})
		}
	}
	s.log.Warn().Msg("almacén local vaciado por completo")
	return nil
}

// KnownRev devuelve la última revisión vista por este proceso para la clave.
func (s *Store) KnownRev(key string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revs[key]
}

// diskRev lee solo la revisión del documento en disco (0 si no existe o corrupto).
func (s *Store) diskRev(key string) (int64, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: leer %s: %v", domain.ErrStorageWrite, key, err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, nil
	}
	return doc.Rev, nil
}

// usedExcept suma los bytes en disco de todas las colecciones menos key.
func (s *Store) usedExcept(key string) (int64, error) {
	var used int64
	for _, k := range Keys() {
		if k == key {
			continue
		}
		info, err := os.Stat(s.path(k))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return 0, fmt.Errorf("%w: stat %s: %v", domain.ErrStorageWrite, k, err)
		}
		used += info.Size()
	}
	return used, nil
}
