package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Errores de validación del motor de cotizaciones. Se envuelven con %w para
// adjuntar contexto (ej. la suma observada de porcentajes).
var (
	ErrEmptyAllocation    = errors.New("la cotización no tiene materias primas")
	ErrUnresolvedMaterial = errors.New("materia prima no encontrada")
	ErrPercentageMismatch = errors.New("la suma de los porcentajes debe ser 100%")
	ErrInvalidMargin      = errors.New("el margen debe ser mayor o igual a 0 y menor a 100")
)

// ErrPersistence señala un fallo del almacenamiento una vez agotados los
// reintentos. El caller muestra un mensaje genérico y registra la causa.
var ErrPersistence = errors.New("no se pudo guardar")
