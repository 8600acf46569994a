package entity

import "time"

// Estados de moderación de un negocio. Todo registro nace en pending y
// solo el administrador lo transiciona.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusPaused   = "paused"
	StatusRejected = "rejected"
)

// ValidStatus indica si s es un estado de moderación conocido.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusPaused, StatusRejected:
		return true
	}
	return false
}

// Business representa un negocio del directorio local.
// ImageURL es una caché desnormalizada de la imagen principal; la fuente de
// verdad es la fila de BusinessImage con IsMain = true.
type Business struct {
	ID          string
	Name        string
	Description string
	Category    string // una de search.Categories
	Address     string
	Schedule    string
	Page        string // URL de la página del negocio
	Whatsapp    string // solo dígitos, sin indicativo de país
	Email       string
	Status      string

	// Destacado/premium: posición elevada en listados y carrusel.
	// Las fechas son opcionales; si ambas existen, End nunca precede a Start.
	IsPremium        bool
	PremiumStartDate *time.Time
	PremiumEndDate   *time.Time

	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PremiumActiveAt indica si el negocio está destacado en el instante dado,
// respetando la ventana de fechas cuando está definida.
func (b *Business) PremiumActiveAt(t time.Time) bool {
	if !b.IsPremium {
		return false
	}
	if b.PremiumStartDate != nil && t.Before(*b.PremiumStartDate) {
		return false
	}
	if b.PremiumEndDate != nil && t.After(*b.PremiumEndDate) {
		return false
	}
	return true
}

// ClampPremiumWindow fuerza el invariante End >= Start: si la fecha de fin
// precede a la de inicio, se iguala al inicio.
func (b *Business) ClampPremiumWindow() {
	if b.PremiumStartDate != nil && b.PremiumEndDate != nil &&
		b.PremiumEndDate.Before(*b.PremiumStartDate) {
		end := *b.PremiumStartDate
		b.PremiumEndDate = &end
	}
}
