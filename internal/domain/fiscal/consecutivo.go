package fiscal

import (
	"fmt"
	"time"
)

// PrefijoDocumento es el prefijo por defecto de los documentos equivalentes.
const PrefijoDocumento = "UDINING"

// MaxConsecutivoDiario es la cota del relleno de 6 dígitos: más de 999999
// documentos en un mismo día romperían el orden lexicográfico del numero_documento.
const MaxConsecutivoDiario = 999999

// FechaDocumento devuelve la fecha en formato YYYYMMDD (UTC) usada en el número
// de documento y como clave del consecutivo diario.
func FechaDocumento(t time.Time) string {
	return t.UTC().Format("20060102")
}

// NumeroDocumento arma el número legible del documento: PREFIJO-YYYYMMDD-NNNNNN.
// El relleno a 6 dígitos hace que el orden lexicográfico coincida con el numérico
// dentro de un mismo día, hasta la cota MaxConsecutivoDiario.
func NumeroDocumento(prefijo string, fecha time.Time, consecutivo int64) (string, error) {
	if prefijo == "" {
		prefijo = PrefijoDocumento
	}
	if consecutivo < 1 {
		return "", fmt.Errorf("fiscal: consecutivo debe ser positivo, recibido %d", consecutivo)
	}
	if consecutivo > MaxConsecutivoDiario {
		return "", fmt.Errorf("fiscal: consecutivo %d excede el máximo diario %d", consecutivo, MaxConsecutivoDiario)
	}
	return fmt.Sprintf("%s-%s-%06d", prefijo, FechaDocumento(fecha), consecutivo), nil
}
