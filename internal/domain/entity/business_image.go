package entity

import "time"

// BusinessImage es una imagen de galería de un negocio.
// StoragePath es la clave interna en el bucket, usada para el borrado;
// URL es la dirección pública. A lo sumo una imagen por negocio tiene
// IsMain = true.
type BusinessImage struct {
	ID          string
	BusinessID  string
	URL         string
	StoragePath string
	IsMain      bool
	CreatedAt   time.Time
}
