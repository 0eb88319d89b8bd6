package inventory

import "strings"

// NormalizeCode canonicaliza un código de producto: recorta espacios y pasa
// a mayúsculas. Toda comparación de códigos y toda clave de mapa usa la forma
// normalizada, de modo que los códigos son insensibles a mayúsculas y espacios.
// Entrada vacía produce cadena vacía.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
