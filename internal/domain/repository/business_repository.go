package repository

import (
	"context"

	"github.com/amartindev/TenjoConecta/internal/domain/entity"
	"github.com/amartindev/TenjoConecta/internal/domain/search"
)

// BusinessRepository define el puerto de persistencia para Business (DIP).
type BusinessRepository interface {
	Create(ctx context.Context, b *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	// GetByName busca por nombre sin distinguir mayúsculas ni tildes.
	GetByName(ctx context.Context, name string) (*entity.Business, error)
	// Search aplica el filtro público: siempre status = approved, premium primero.
	Search(ctx context.Context, f search.Filter) ([]*entity.Business, error)
	// ListFeatured devuelve hasta limit negocios aprobados y destacados.
	ListFeatured(ctx context.Context, limit int) ([]*entity.Business, error)
	// ListAll devuelve todos los negocios sin filtrar por estado (dashboard admin).
	ListAll(ctx context.Context) ([]*entity.Business, error)
	Update(ctx context.Context, b *entity.Business) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
