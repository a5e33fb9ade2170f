package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La ausencia de un documento no es un error: los repositorios devuelven (nil, nil).
var ErrInvalidInput = errors.New("entrada inválida")
