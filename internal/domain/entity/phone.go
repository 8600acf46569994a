package entity

import (
	"strings"
	"unicode"
)

// MinWhatsappDigits longitud mínima de un número de WhatsApp tras normalizar.
const MinWhatsappDigits = 10

// NormalizeWhatsapp limpia un número: quita el indicativo colombiano (+57 o 57)
// al inicio, los espacios y cualquier carácter no numérico.
func NormalizeWhatsapp(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+57")
	if strings.HasPrefix(s, "57") && len(s) > MinWhatsappDigits {
		s = strings.TrimPrefix(s, "57")
	}
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
