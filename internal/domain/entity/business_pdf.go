package entity

import "time"

// BusinessPdf es el menú o catálogo PDF de un negocio (a lo sumo uno por
// negocio; subir uno nuevo reemplaza al anterior y elimina su objeto del bucket).
type BusinessPdf struct {
	ID          string
	BusinessID  string
	URL         string
	StoragePath string
	CreatedAt   time.Time
}
