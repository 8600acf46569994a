package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/amartindev/TenjoConecta/internal/domain"
	"github.com/amartindev/TenjoConecta/internal/domain/entity"
	"github.com/amartindev/TenjoConecta/internal/domain/repository"
	"github.com/amartindev/TenjoConecta/internal/domain/search"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

const businessColumns = `id, name, description, category, address, schedule, page, whatsapp, email, status, is_premium, premium_start_date, premium_end_date, image_url, created_at, updated_at`

// BusinessRepo implementación del puerto BusinessRepository sobre PostgreSQL (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador de persistencia para negocios. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create persiste un nuevo negocio.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.Description, b.Category, b.Address, b.Schedule, b.Page,
		b.Whatsapp, b.Email, b.Status, b.IsPremium, b.PremiumStartDate, b.PremiumEndDate,
		b.ImageURL, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID. Devuelve nil sin error si no existe.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get business")
}

// GetByName busca por nombre, sin distinguir mayúsculas ni tildes.
func (r *BusinessRepo) GetByName(ctx context.Context, name string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE unaccent(name) ILIKE unaccent($1) LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, name), "get business by name")
}

// Search aplica el filtro público: siempre status = approved, los premium primero.
func (r *BusinessRepo) Search(ctx context.Context, f search.Filter) ([]*entity.Business, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + businessColumns + ` FROM businesses WHERE status = 'approved'`)

	if f.Category != "" {
		args = append(args, f.Category)
		fmt.Fprintf(&sb, " AND category = $%d", len(args))
	}
	if len(f.Any) > 0 {
		parts := make([]string, 0, len(f.Any))
		for _, cond := range f.Any {
			args = append(args, cond.Value)
			n := len(args)
			switch cond.Op {
			case search.OpCategoryEq:
				parts = append(parts, fmt.Sprintf("category = $%d", n))
			case search.OpNameContains:
				parts = append(parts, fmt.Sprintf("unaccent(name) ILIKE '%%' || $%d || '%%'", n))
			case search.OpDescriptionContains:
				parts = append(parts, fmt.Sprintf("unaccent(description) ILIKE '%%' || $%d || '%%'", n))
			}
		}
		sb.WriteString(" AND (" + strings.Join(parts, " OR ") + ")")
	}
	sb.WriteString(" ORDER BY is_premium DESC, created_at DESC")

	return r.scanMany(ctx, sb.String(), args, "search businesses")
}

// ListFeatured devuelve hasta limit negocios aprobados y destacados.
func (r *BusinessRepo) ListFeatured(ctx context.Context, limit int) ([]*entity.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE status = 'approved' AND is_premium = true
		ORDER BY created_at DESC
		LIMIT $1`
	return r.scanMany(ctx, query, []any{limit}, "list featured businesses")
}

// ListAll devuelve todos los negocios sin filtrar por estado (dashboard admin).
func (r *BusinessRepo) ListAll(ctx context.Context) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY created_at DESC`
	return r.scanMany(ctx, query, nil, "list businesses")
}

// Update actualiza los campos editables de un negocio. El estado se cambia con UpdateStatus.
func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) error {
	query := `
		UPDATE businesses
		SET name = $2, description = $3, category = $4, address = $5, schedule = $6,
		    page = $7, whatsapp = $8, email = $9, is_premium = $10,
		    premium_start_date = $11, premium_end_date = $12, image_url = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.Description, b.Category, b.Address, b.Schedule, b.Page,
		b.Whatsapp, b.Email, b.IsPremium, b.PremiumStartDate, b.PremiumEndDate,
		b.ImageURL, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado de moderación.
func (r *BusinessRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE businesses SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update business status: %w", err)
	}
	return nil
}

// Delete elimina un negocio por ID.
func (r *BusinessRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	return nil
}

func (r *BusinessRepo) scanOne(row pgx.Row, op string) (*entity.Business, error) {
	var b entity.Business
	err := row.Scan(
		&b.ID, &b.Name, &b.Description, &b.Category, &b.Address, &b.Schedule, &b.Page,
		&b.Whatsapp, &b.Email, &b.Status, &b.IsPremium, &b.PremiumStartDate, &b.PremiumEndDate,
		&b.ImageURL, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}

func (r *BusinessRepo) scanMany(ctx context.Context, query string, args []any, op string) ([]*entity.Business, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Business
	for rows.Next() {
		var b entity.Business
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Description, &b.Category, &b.Address, &b.Schedule, &b.Page,
			&b.Whatsapp, &b.Email, &b.Status, &b.IsPremium, &b.PremiumStartDate, &b.PremiumEndDate,
			&b.ImageURL, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
