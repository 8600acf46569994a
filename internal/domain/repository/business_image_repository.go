package repository

import (
	"context"

	"github.com/amartindev/TenjoConecta/internal/domain/entity"
)

// BusinessImageRepository define el puerto de persistencia para BusinessImage.
type BusinessImageRepository interface {
	Create(ctx context.Context, img *entity.BusinessImage) error
	GetByID(ctx context.Context, id string) (*entity.BusinessImage, error)
	// ListAll trae todas las imágenes (join en memoria a escala de directorio).
	ListAll(ctx context.Context) ([]*entity.BusinessImage, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.BusinessImage, error)
	// ClearMain pone is_main = false en todas las imágenes del negocio.
	ClearMain(ctx context.Context, businessID string) error
	// SetMain pone is_main = true en la imagen indicada.
	SetMain(ctx context.Context, imageID string) error
	Delete(ctx context.Context, id string) error
	DeleteByBusiness(ctx context.Context, businessID string) error
}
