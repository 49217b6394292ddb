package domain

import "errors"

// Errores de dominio (sin dependencias externas). El mapeo a códigos HTTP
// vive en interfaces/http: 401, 403, 404, 409, 400 respectivamente.
var (
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado o inactivo")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
)
