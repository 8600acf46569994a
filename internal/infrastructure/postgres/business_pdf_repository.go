package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/amartindev/TenjoConecta/internal/domain/entity"
	"github.com/amartindev/TenjoConecta/internal/domain/repository"
)

var _ repository.BusinessPdfRepository = (*BusinessPdfRepo)(nil)

// BusinessPdfRepo implementación del puerto BusinessPdfRepository sobre PostgreSQL.
// La tabla tiene constraint UNIQUE(business_id): un PDF por negocio.
type BusinessPdfRepo struct {
	q Querier
}

// NewBusinessPdfRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessPdfRepository(q Querier) *BusinessPdfRepo {
	return &BusinessPdfRepo{q: q}
}

// Upsert inserta el PDF del negocio o reemplaza el existente.
func (r *BusinessPdfRepo) Upsert(ctx context.Context, pdf *entity.BusinessPdf) error {
	query := `
		INSERT INTO business_pdf (id, business_id, url, storage_path, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (business_id)
		DO UPDATE SET url = EXCLUDED.url, storage_path = EXCLUDED.storage_path, created_at = EXCLUDED.created_at`
	_, err := r.q.Exec(ctx, query, pdf.ID, pdf.BusinessID, pdf.URL, pdf.StoragePath, pdf.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert business pdf: %w", err)
	}
	return nil
}

// GetByBusiness obtiene el PDF de un negocio. Devuelve nil sin error si no hay.
func (r *BusinessPdfRepo) GetByBusiness(ctx context.Context, businessID string) (*entity.BusinessPdf, error) {
	query := `SELECT id, business_id, url, storage_path, created_at FROM business_pdf WHERE business_id = $1`
	var pdf entity.BusinessPdf
	err := r.q.QueryRow(ctx, query, businessID).Scan(
		&pdf.ID, &pdf.BusinessID, &pdf.URL, &pdf.StoragePath, &pdf.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business pdf: %w", err)
	}
	return &pdf, nil
}

// Delete elimina un PDF por ID.
func (r *BusinessPdfRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM business_pdf WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business pdf: %w", err)
	}
	return nil
}

// DeleteByBusiness elimina el PDF de un negocio si existe.
func (r *BusinessPdfRepo) DeleteByBusiness(ctx context.Context, businessID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM business_pdf WHERE business_id = $1`, businessID)
	if err != nil {
		return fmt.Errorf("delete pdf by business: %w", err)
	}
	return nil
}
