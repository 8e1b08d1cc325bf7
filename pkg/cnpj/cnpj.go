// Package cnpj valida y formatea el CNPJ brasileño (Cadastro Nacional da
// Pessoa Jurídica): 12 dígitos base + 2 dígitos de verificación módulo 11.
package cnpj

import (
	"fmt"
	"unicode"
)

// pesos para el cálculo de los dígitos de verificación del CNPJ,
// aplicados de izquierda a derecha sobre la base.
var (
	cnpjWeightsFirst  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Clean devuelve únicamente los dígitos de la cadena (quita puntos, barras y guiones).
func Clean(s string) string {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// IsWellFormed indica si la cadena contiene exactamente 14 dígitos tras limpiarla.
// Es el único requisito de forma que impone la consulta al registro mercantil.
func IsWellFormed(s string) bool {
	return len(Clean(s)) == 14
}

// Validate verifica que el CNPJ (con o sin máscara) tenga 14 dígitos y
// dígitos de verificación correctos según el algoritmo módulo 11.
func Validate(s string) error {
	digits := Clean(s)
	if len(digits) != 14 {
		return fmt.Errorf("cnpj: debe contener 14 dígitos, se encontraron %d", len(digits))
	}
	d1 := checkDigit(digits[:12], cnpjWeightsFirst[:])
	if digits[12] != d1 {
		return fmt.Errorf("cnpj: primer dígito de verificación inválido: esperado %c, recibido %c", d1, digits[12])
	}
	d2 := checkDigit(digits[:13], cnpjWeightsSecond[:])
	if digits[13] != d2 {
		return fmt.Errorf("cnpj: segundo dígito de verificación inválido: esperado %c, recibido %c", d2, digits[13])
	}
	return nil
}

// Format aplica la máscara XX.XXX.XXX/XXXX-XX. Si la entrada no tiene
// 14 dígitos devuelve los dígitos sin máscara.
func Format(s string) string {
	digits := Clean(s)
	if len(digits) != 14 {
		return digits
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s",
		digits[0:2], digits[2:5], digits[5:8], digits[8:12], digits[12:14])
}

func checkDigit(base string, weights []int) byte {
	var sum int
	for i := range base {
		sum += int(base[i]-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}
