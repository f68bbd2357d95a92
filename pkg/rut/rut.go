package rut

import (
	"fmt"
	"strings"
)

// Validate valida formato y dígito verificador de un RUT chileno (módulo 11, SII).
// Acepta "12.345.678-5", "12345678-5" o "123456785"; el DV puede ser 0-9 o K.
func Validate(rut string) error {
	clean := Normalize(rut)
	if len(clean) < 8 || len(clean) > 9 {
		return fmt.Errorf("rut: formato inválido")
	}
	body := clean[:len(clean)-1]
	dv := clean[len(clean)-1]
	for _, c := range body {
		if c < '0' || c > '9' {
			return fmt.Errorf("rut: formato inválido")
		}
	}
	if !(dv >= '0' && dv <= '9') && dv != 'K' {
		return fmt.Errorf("rut: dígito verificador inválido")
	}
	if expected := computeDV(body); dv != expected {
		return fmt.Errorf("rut: dígito verificador incorrecto: esperado %c, recibido %c", expected, dv)
	}
	return nil
}

// Normalize elimina puntos y guiones y lleva el DV a mayúscula.
func Normalize(rut string) string {
	clean := strings.NewReplacer(".", "", "-", "").Replace(rut)
	return strings.ToUpper(strings.TrimSpace(clean))
}

// computeDV calcula el dígito verificador: multiplicadores 2..7 cíclicos desde
// el dígito menos significativo; 11 -> '0', 10 -> 'K'.
func computeDV(body string) byte {
	sum := 0
	mult := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * mult
		mult++
		if mult == 8 {
			mult = 2
		}
	}
	switch r := 11 - (sum % 11); r {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + r)
	}
}
