package entity

// Product representa un producto del catálogo.
// La identidad es el código normalizado (mayúsculas, sin espacios alrededor).
// Los códigos deberían ser únicos pero no se fuerza estructuralmente:
// ante duplicados gana la primera coincidencia en el orden del catálogo.
type Product struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Department string `json:"department"`
}
