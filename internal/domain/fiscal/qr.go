package fiscal

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const alfabetoQR = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CodigoQRUsuario genera el token QR único de un usuario:
// UDINING:cedula:timestampMs:sufijo aleatorio de 6 caracteres.
func CodigoQRUsuario(cedula string) string {
	return fmt.Sprintf("UDINING:%s:%d:%s", cedula, time.Now().UnixMilli(), sufijoAleatorio(6))
}

func sufijoAleatorio(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read sobre el CSPRNG del sistema no falla en la práctica
		return strings.Repeat("0", n)
	}
	var b strings.Builder
	for _, c := range buf {
		b.WriteByte(alfabetoQR[int(c)%len(alfabetoQR)])
	}
	return b.String()
}
