package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrCompanyNotFound   = errors.New("empresa no encontrada")
	ErrInvalidPassword   = errors.New("contraseña inválida")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrEmailOrPhoneTaken = errors.New("el email o teléfono ya está registrado")
	ErrDuplicateContact  = errors.New("ya existe un registro con ese email o teléfono para esta empresa")
	ErrCategoryNotFound  = errors.New("categoría no encontrada")
	ErrConflict          = errors.New("conflicto con el estado actual")
)
