package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrHasDependents      = errors.New("el recurso tiene dependencias activas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidTransition  = errors.New("transición de estado inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrStorageFull        = errors.New("cuota de almacenamiento excedida")
	ErrStorageWrite       = errors.New("error de escritura en el almacén")
)
