// Package fiscal: numeración de documentos equivalentes y cálculo del CUFE.
// El CUFE aquí es un SHA-256 de los campos del documento: una huella de contenido
// determinista, NO una firma fiscal real (no hay llave secreta ni certificado).

package fiscal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CufeParams contiene los campos del documento equivalente que entran al hash,
// en el orden de concatenación.
type CufeParams struct {
	NumeroDocumento string          // PREFIJO-YYYYMMDD-NNNNNN
	FechaEmision    string          // Timestamp de emisión en RFC 3339
	Total           decimal.Decimal // Total de la orden (con impuestos)
	NIT             string          // NIT de la empresa emisora
}

// CufeCalculator genera el CUFE del documento equivalente.
type CufeCalculator struct{}

// NewCufeCalculator crea el servicio.
func NewCufeCalculator() *CufeCalculator {
	return &CufeCalculator{}
}

// Calculate concatena NumeroDocumento + FechaEmision + Total + NIT (sin separadores)
// y devuelve el SHA-256 en hexadecimal mayúsculas (64 caracteres). Función pura:
// mismos parámetros, mismo hash.
func (s *CufeCalculator) Calculate(p *CufeParams) (string, error) {
	if p == nil {
		return "", fmt.Errorf("fiscal: CufeParams es obligatorio")
	}
	if strings.TrimSpace(p.NumeroDocumento) == "" {
		return "", fmt.Errorf("fiscal: NumeroDocumento es obligatorio")
	}
	if p.FechaEmision == "" {
		return "", fmt.Errorf("fiscal: FechaEmision es obligatoria")
	}
	if p.NIT == "" {
		return "", fmt.Errorf("fiscal: NIT es obligatorio")
	}

	cadena := p.NumeroDocumento + p.FechaEmision + formatMonto(p.Total) + p.NIT
	hash := sha256.Sum256([]byte(cadena))
	return strings.ToUpper(hex.EncodeToString(hash[:])), nil
}

// formatMonto formatea el total para la cadena del CUFE: punto decimal, dos
// decimales, sin separador de miles (ej: 11900.00).
func formatMonto(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
