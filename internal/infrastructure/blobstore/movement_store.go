// Package blobstore implementa el MovementStore de referencia: un único blob
// JSON (un array de movimientos) bajo una clave fija en disco. En cada
// mutación se lee y reescribe la colección completa; aceptable porque el
// conjunto de trabajo es pequeño, no pensado para alto volumen de escritura.
package blobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/internal/domain/entity"
)

// storageKey es la clave fija del blob persistido.
const storageKey = "stock_movements.json"

// MovementStore persiste el libro de movimientos como un blob JSON.
// Un mutex serializa el ciclo leer-modificar-escribir de cada mutación;
// no hay bloqueo entre procesos (último en escribir gana).
type MovementStore struct {
	mu   sync.Mutex
	path string
}

// New construye el store sobre el directorio de datos indicado,
// creándolo si no existe.
func New(dataDir string) (*MovementStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: crear directorio de datos: %v", domain.ErrStorageFailure, err)
	}
	return &MovementStore{path: filepath.Join(dataDir, storageKey)}, nil
}

// load lee y decodifica el blob completo. Blob ausente = log vacío.
// El llamador debe tener el mutex.
func (s *MovementStore) load() ([]entity.Movement, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []entity.Movement{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: leer blob: %v", domain.ErrStorageFailure, err)
	}
	var movements []entity.Movement
	if err := json.Unmarshal(raw, &movements); err != nil {
		return nil, fmt.Errorf("%w: decodificar blob: %v", domain.ErrStorageFailure, err)
	}
	return movements, nil
}

// save codifica y reescribe el blob completo. El llamador debe tener el mutex.
func (s *MovementStore) save(movements []entity.Movement) error {
	raw, err := json.Marshal(movements)
	if err != nil {
		return fmt.Errorf("%w: codificar blob: %v", domain.ErrStorageFailure, err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: escribir blob: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

// Append agrega un movimiento al final del log. No valida contenido.
func (s *MovementStore) Append(_ context.Context, movement entity.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	movements, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(movements, movement))
}

// All devuelve todos los movimientos en orden de inserción.
func (s *MovementStore) All(_ context.Context) ([]entity.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// DeleteByID elimina el movimiento con ese id; si no existe, no hace nada.
func (s *MovementStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	movements, err := s.load()
	if err != nil {
		return err
	}
	kept := movements[:0]
	found := false
	for _, m := range movements {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return nil
	}
	return s.save(kept)
}

// Clear vacía el log por completo.
func (s *MovementStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save([]entity.Movement{})
}
