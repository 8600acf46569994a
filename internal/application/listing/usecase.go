package listing

import (
	"context"
	"strings"

	"github.com/amartindev/TenjoConecta/internal/application/dto"
	"github.com/amartindev/TenjoConecta/internal/domain"
	"github.com/amartindev/TenjoConecta/internal/domain/entity"
	"github.com/amartindev/TenjoConecta/internal/domain/repository"
	"github.com/amartindev/TenjoConecta/internal/domain/search"
)

// DefaultFeaturedLimit negocios mostrados en el carrusel de destacados.
const DefaultFeaturedLimit = 10

// UseCase agrega los listados públicos del directorio: búsqueda filtrada,
// destacados y detalle, resolviendo la imagen principal de cada negocio.
type UseCase struct {
	businesses repository.BusinessRepository
	images     repository.BusinessImageRepository
	pdfs       repository.BusinessPdfRepository
}

// NewUseCase construye el agregador de listados.
func NewUseCase(businesses repository.BusinessRepository, images repository.BusinessImageRepository, pdfs repository.BusinessPdfRepository) *UseCase {
	return &UseCase{businesses: businesses, images: images, pdfs: pdfs}
}

// Search devuelve los negocios aprobados que coinciden con el texto y la
// categoría, con su imagen principal adjunta y los premium primero.
// Ante un fallo del backend devuelve la lista vacía junto con el error; el
// handler decide el mensaje al usuario.
func (uc *UseCase) Search(ctx context.Context, text, category string) (*dto.BusinessListResponse, error) {
	empty := &dto.BusinessListResponse{Items: []dto.BusinessResponse{}}

	filter := search.Build(text, category)
	businesses, err := uc.businesses.Search(ctx, filter)
	if err != nil {
		return empty, err
	}
	images, err := uc.images.ListAll(ctx)
	if err != nil {
		return empty, err
	}
	return toListResponse(JoinMainImage(businesses, images)), nil
}

// Featured devuelve hasta limit negocios aprobados y destacados, con su
// imagen principal adjunta.
func (uc *UseCase) Featured(ctx context.Context, limit int) (*dto.BusinessListResponse, error) {
	empty := &dto.BusinessListResponse{Items: []dto.BusinessResponse{}}
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	businesses, err := uc.businesses.ListFeatured(ctx, limit)
	if err != nil {
		return empty, err
	}
	images, err := uc.images.ListAll(ctx)
	if err != nil {
		return empty, err
	}
	return toListResponse(JoinMainImage(businesses, images)), nil
}

// Detail busca un negocio por nombre (el slug de la URL usa guiones en vez de
// espacios) y arma la galería: imagen principal primero, luego las demás
// fotos, más la URL del PDF si existe. Devuelve domain.ErrNotFound si el
// nombre no corresponde a ningún negocio.
func (uc *UseCase) Detail(ctx context.Context, name string) (*dto.BusinessDetailResponse, error) {
	decoded := strings.ReplaceAll(name, "-", " ")
	business, err := uc.businesses.GetByName(ctx, decoded)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	images, err := uc.images.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}

	photos := make([]dto.PhotoResponse, 0, len(images)+1)
	if business.ImageURL != "" {
		photos = append(photos, dto.PhotoResponse{ID: "main", URL: business.ImageURL})
	}
	for _, img := range images {
		photos = append(photos, dto.PhotoResponse{ID: img.ID, URL: img.URL})
	}

	resp := &dto.BusinessDetailResponse{
		Business: *dto.ToBusinessResponse(business),
		Photos:   photos,
	}
	pdf, err := uc.pdfs.GetByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	if pdf != nil {
		resp.PdfURL = pdf.URL
	}
	return resp, nil
}

// JoinMainImage adjunta a cada negocio la URL de su imagen con is_main = true.
// Si el negocio no tiene imagen principal, ImageURL queda como esté (el
// consumidor usa un placeholder). Es una función pura: no modifica sus
// entradas y es idempotente.
func JoinMainImage(businesses []*entity.Business, images []*entity.BusinessImage) []*entity.Business {
	mainByBusiness := make(map[string]string, len(businesses))
	for _, img := range images {
		if img.IsMain {
			mainByBusiness[img.BusinessID] = img.URL
		}
	}
	out := make([]*entity.Business, len(businesses))
	for i, b := range businesses {
		merged := *b
		if url, ok := mainByBusiness[b.ID]; ok {
			merged.ImageURL = url
		}
		out[i] = &merged
	}
	return out
}

func toListResponse(businesses []*entity.Business) *dto.BusinessListResponse {
	items := make([]dto.BusinessResponse, 0, len(businesses))
	for _, b := range businesses {
		items = append(items, *dto.ToBusinessResponse(b))
	}
	return &dto.BusinessListResponse{Items: items, Total: len(items)}
}
