package services

import (
	"errors"
	"fmt"
)

// Common service errors
var (
	ErrNotFound        = errors.New("registro no encontrado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrInvalidState    = errors.New("transición de estado inválida")
	ErrInvalidReport   = errors.New("reporte o formato de exportación inválido")
	ErrDataUnavailable = errors.New("datos de reservaciones no disponibles")
)

// DataUnavailableError wraps a repository failure so that callers get an
// error instead of a zeroed report
type DataUnavailableError struct {
	Resource string
	Err      error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDataUnavailable.Error(), e.Resource, e.Err)
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrDataUnavailable
func (e *DataUnavailableError) Is(target error) bool {
	return target == ErrDataUnavailable
}
