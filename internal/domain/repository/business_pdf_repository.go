package repository

import (
	"context"

	"github.com/amartindev/TenjoConecta/internal/domain/entity"
)

// BusinessPdfRepository define el puerto de persistencia para BusinessPdf.
// Hay a lo sumo un PDF por negocio: Upsert reemplaza el registro existente.
type BusinessPdfRepository interface {
	Upsert(ctx context.Context, pdf *entity.BusinessPdf) error
	GetByBusiness(ctx context.Context, businessID string) (*entity.BusinessPdf, error)
	Delete(ctx context.Context, id string) error
	DeleteByBusiness(ctx context.Context, businessID string) error
}
