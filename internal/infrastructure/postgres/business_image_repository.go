package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/amartindev/TenjoConecta/internal/domain"
	"github.com/amartindev/TenjoConecta/internal/domain/entity"
	"github.com/amartindev/TenjoConecta/internal/domain/repository"
)

var _ repository.BusinessImageRepository = (*BusinessImageRepo)(nil)

const imageColumns = `id, business_id, url, storage_path, is_main, created_at`

// BusinessImageRepo implementación del puerto BusinessImageRepository sobre PostgreSQL.
type BusinessImageRepo struct {
	q Querier
}

// NewBusinessImageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessImageRepository(q Querier) *BusinessImageRepo {
	return &BusinessImageRepo{q: q}
}

// Create persiste una nueva imagen.
func (r *BusinessImageRepo) Create(ctx context.Context, img *entity.BusinessImage) error {
	query := `
		INSERT INTO business_images (` + imageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		img.ID, img.BusinessID, img.URL, img.StoragePath, img.IsMain, img.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business image: %w", err)
	}
	return nil
}

// GetByID obtiene una imagen por ID. Devuelve nil sin error si no existe.
func (r *BusinessImageRepo) GetByID(ctx context.Context, id string) (*entity.BusinessImage, error) {
	query := `SELECT ` + imageColumns + ` FROM business_images WHERE id = $1`
	var img entity.BusinessImage
	err := r.q.QueryRow(ctx, query, id).Scan(
		&img.ID, &img.BusinessID, &img.URL, &img.StoragePath, &img.IsMain, &img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business image: %w", err)
	}
	return &img, nil
}

// ListAll trae todas las imágenes del directorio (join en memoria).
func (r *BusinessImageRepo) ListAll(ctx context.Context) ([]*entity.BusinessImage, error) {
	query := `SELECT ` + imageColumns + ` FROM business_images`
	return r.scanMany(ctx, query, nil, "list images")
}

// ListByBusiness trae las imágenes de un negocio, la principal primero.
func (r *BusinessImageRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.BusinessImage, error) {
	query := `
		SELECT ` + imageColumns + `
		FROM business_images
		WHERE business_id = $1
		ORDER BY is_main DESC, created_at ASC`
	return r.scanMany(ctx, query, []any{businessID}, "list images by business")
}

// ClearMain pone is_main = false en todas las imágenes del negocio.
func (r *BusinessImageRepo) ClearMain(ctx context.Context, businessID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE business_images SET is_main = false WHERE business_id = $1`,
		businessID,
	)
	if err != nil {
		return fmt.Errorf("clear main image: %w", err)
	}
	return nil
}

// SetMain pone is_main = true en la imagen indicada.
func (r *BusinessImageRepo) SetMain(ctx context.Context, imageID string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE business_images SET is_main = true WHERE id = $1`,
		imageID,
	)
	if err != nil {
		return fmt.Errorf("set main image: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una imagen por ID.
func (r *BusinessImageRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM business_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business image: %w", err)
	}
	return nil
}

// DeleteByBusiness elimina todas las imágenes de un negocio.
func (r *BusinessImageRepo) DeleteByBusiness(ctx context.Context, businessID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM business_images WHERE business_id = $1`, businessID)
	if err != nil {
		return fmt.Errorf("delete images by business: %w", err)
	}
	return nil
}

func (r *BusinessImageRepo) scanMany(ctx context.Context, query string, args []any, op string) ([]*entity.BusinessImage, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.BusinessImage
	for rows.Next() {
		var img entity.BusinessImage
		if err := rows.Scan(&img.ID, &img.BusinessID, &img.URL, &img.StoragePath, &img.IsMain, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		list = append(list, &img)
	}
	return list, rows.Err()
}
