package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amartindev/TenjoConecta/internal/application/dto"
	"github.com/amartindev/TenjoConecta/internal/application/storage"
	"github.com/amartindev/TenjoConecta/internal/domain"
	"github.com/amartindev/TenjoConecta/internal/domain/entity"
	"github.com/amartindev/TenjoConecta/internal/domain/repository"
	"github.com/amartindev/TenjoConecta/internal/domain/search"
	"github.com/amartindev/TenjoConecta/pkg/logger"
)

// ImageTxRunner ejecuta fn con un repositorio de imágenes atado a una
// transacción de base de datos. Se usa para que el par clear-then-set de la
// imagen principal sea atómico frente a lectores concurrentes.
type ImageTxRunner interface {
	RunImages(ctx context.Context, fn func(images repository.BusinessImageRepository) error) error
}

// UseCase operaciones de moderación del dashboard: cambio de estado, edición,
// gestión de media e imagen principal, y borrado en cascada.
type UseCase struct {
	businesses repository.BusinessRepository
	images     repository.BusinessImageRepository
	pdfs       repository.BusinessPdfRepository
	tx         ImageTxRunner
	store      storage.ObjectStorage
	log        *logger.Logger
	now        func() time.Time
}

// NewUseCase construye el caso de uso de administración.
func NewUseCase(
	businesses repository.BusinessRepository,
	images repository.BusinessImageRepository,
	pdfs repository.BusinessPdfRepository,
	tx ImageTxRunner,
	store storage.ObjectStorage,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		businesses: businesses,
		images:     images,
		pdfs:       pdfs,
		tx:         tx,
		store:      store,
		log:        log.Component("admin"),
		now:        time.Now,
	}
}

// ListAll devuelve todos los negocios (cualquier estado) con sus imágenes y
// PDF adjuntos, para el dashboard.
func (uc *UseCase) ListAll(ctx context.Context) (*dto.AdminBusinessListResponse, error) {
	businesses, err := uc.businesses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdminBusinessResponse, 0, len(businesses))
	for _, b := range businesses {
		images, err := uc.images.ListByBusiness(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		pdf, err := uc.pdfs.GetByBusiness(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		item := dto.AdminBusinessResponse{BusinessResponse: *dto.ToBusinessResponse(b)}
		for _, img := range images {
			item.Images = append(item.Images, *dto.ToImageResponse(img))
		}
		item.Pdf = dto.ToPdfResponse(pdf)
		items = append(items, item)
	}
	return &dto.AdminBusinessListResponse{Items: items, Total: len(items)}, nil
}

// ChangeStatus transiciona el estado de moderación de un negocio.
func (uc *UseCase) ChangeStatus(ctx context.Context, id, status string) (*dto.BusinessResponse, error) {
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
	}
	business, err := uc.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.businesses.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	business.Status = status
	business.UpdatedAt = uc.now()
	uc.log.Info().Str("business_id", id).Str("status", status).Msg("estado de negocio actualizado")
	return dto.ToBusinessResponse(business), nil
}

// Update edita los campos de un negocio. La ventana premium se ajusta para
// que la fecha de fin nunca preceda a la de inicio.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := uc.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		business.Name = *in.Name
	}
	if in.Description != nil {
		business.Description = *in.Description
	}
	if in.Category != nil {
		if !search.ValidCategory(*in.Category) {
			return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, *in.Category)
		}
		business.Category = *in.Category
	}
	if in.Address != nil {
		business.Address = *in.Address
	}
	if in.Schedule != nil {
		business.Schedule = *in.Schedule
	}
	if in.Page != nil {
		business.Page = *in.Page
	}
	if in.Whatsapp != nil {
		normalized := entity.NormalizeWhatsapp(*in.Whatsapp)
		if len(normalized) < entity.MinWhatsappDigits {
			return nil, fmt.Errorf("%w: el teléfono debe tener al menos %d dígitos", domain.ErrInvalidInput, entity.MinWhatsappDigits)
		}
		business.Whatsapp = normalized
	}
	if in.Email != nil {
		business.Email = *in.Email
	}
	if in.IsPremium != nil {
		business.IsPremium = *in.IsPremium
	}
	if in.PremiumStartDate != nil {
		business.PremiumStartDate = in.PremiumStartDate
	}
	if in.PremiumEndDate != nil {
		business.PremiumEndDate = in.PremiumEndDate
	}
	business.ClampPremiumWindow()
	business.UpdatedAt = uc.now()
	if err := uc.businesses.Update(ctx, business); err != nil {
		return nil, err
	}
	return dto.ToBusinessResponse(business), nil
}

// SetMainImage designa la imagen principal de un negocio. El par
// limpiar-y-marcar corre dentro de una sola transacción, así un lector nunca
// observa un negocio sin imagen principal entre los dos pasos.
func (uc *UseCase) SetMainImage(ctx context.Context, businessID, imageID string) ([]dto.ImageResponse, error) {
	img, err := uc.images.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if img == nil || img.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	err = uc.tx.RunImages(ctx, func(images repository.BusinessImageRepository) error {
		if err := images.ClearMain(ctx, businessID); err != nil {
			return err
		}
		return images.SetMain(ctx, imageID)
	})
	if err != nil {
		return nil, fmt.Errorf("actualizar imagen principal: %w", err)
	}

	updated, err := uc.images.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ImageResponse, 0, len(updated))
	for _, it := range updated {
		out = append(out, *dto.ToImageResponse(it))
	}
	return out, nil
}

// UploadImage sube una imagen adicional desde el dashboard. No toca la imagen
// principal: el admin la reasigna con SetMainImage si quiere.
func (uc *UseCase) UploadImage(ctx context.Context, businessID string, file dto.FileUpload) (*dto.ImageResponse, error) {
	if err := file.ValidateImage(); err != nil {
		return nil, err
	}
	business, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	path := fmt.Sprintf("%s/%d_%s", businessID, uc.now().UnixMilli(), file.Name)
	if err := uc.store.Upload(ctx, storage.BucketImages, path, file.ContentType, file.Data); err != nil {
		return nil, fmt.Errorf("subir imagen: %w", err)
	}
	img := &entity.BusinessImage{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		URL:         uc.store.PublicURL(storage.BucketImages, path),
		StoragePath: path,
		IsMain:      false,
		CreatedAt:   uc.now(),
	}
	if err := uc.images.Create(ctx, img); err != nil {
		// No dejar el objeto huérfano en el bucket.
		if rmErr := uc.store.Remove(ctx, storage.BucketImages, []string{path}); rmErr != nil {
			uc.log.Warn().Err(rmErr).Str("path", path).Msg("no se pudo eliminar el objeto tras fallo del insert")
		}
		return nil, fmt.Errorf("registrar imagen: %w", err)
	}
	return dto.ToImageResponse(img), nil
}

// DeleteImage elimina una imagen: primero el objeto del bucket, luego la fila.
func (uc *UseCase) DeleteImage(ctx context.Context, businessID, imageID string) error {
	img, err := uc.images.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img == nil || img.BusinessID != businessID {
		return domain.ErrNotFound
	}
	if err := uc.store.Remove(ctx, storage.BucketImages, []string{img.StoragePath}); err != nil {
		return fmt.Errorf("eliminar objeto de imagen: %w", err)
	}
	if err := uc.images.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("eliminar fila de imagen: %w", err)
	}
	return nil
}

// UploadPdf sube o reemplaza el menú/catálogo PDF del negocio. El objeto del
// PDF anterior se elimina del bucket después de que el nuevo quede registrado.
func (uc *UseCase) UploadPdf(ctx context.Context, businessID string, file dto.FileUpload) (*dto.PdfResponse, error) {
	if err := file.ValidatePdf(); err != nil {
		return nil, err
	}
	business, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	previous, err := uc.pdfs.GetByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%d.pdf", businessID, uc.now().UnixMilli())
	if err := uc.store.Upload(ctx, storage.BucketPDFs, path, file.ContentType, file.Data); err != nil {
		return nil, fmt.Errorf("subir pdf: %w", err)
	}
	pdf := &entity.BusinessPdf{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		URL:         uc.store.PublicURL(storage.BucketPDFs, path),
		StoragePath: path,
		CreatedAt:   uc.now(),
	}
	if err := uc.pdfs.Upsert(ctx, pdf); err != nil {
		if rmErr := uc.store.Remove(ctx, storage.BucketPDFs, []string{path}); rmErr != nil {
			uc.log.Warn().Err(rmErr).Str("path", path).Msg("no se pudo eliminar el objeto tras fallo del upsert")
		}
		return nil, fmt.Errorf("registrar pdf: %w", err)
	}
	if previous != nil && previous.StoragePath != path {
		if err := uc.store.Remove(ctx, storage.BucketPDFs, []string{previous.StoragePath}); err != nil {
			uc.log.Warn().Err(err).Str("path", previous.StoragePath).Msg("no se pudo eliminar el pdf anterior del bucket")
		}
	}
	return dto.ToPdfResponse(pdf), nil
}

// DeletePdf elimina el PDF del negocio: objeto del bucket y luego la fila.
func (uc *UseCase) DeletePdf(ctx context.Context, businessID string) error {
	pdf, err := uc.pdfs.GetByBusiness(ctx, businessID)
	if err != nil {
		return err
	}
	if pdf == nil {
		return domain.ErrNotFound
	}
	if err := uc.store.Remove(ctx, storage.BucketPDFs, []string{pdf.StoragePath}); err != nil {
		return fmt.Errorf("eliminar objeto de pdf: %w", err)
	}
	if err := uc.pdfs.Delete(ctx, pdf.ID); err != nil {
		return fmt.Errorf("eliminar fila de pdf: %w", err)
	}
	return nil
}

// DeleteBusiness elimina el negocio y toda su media, en orden: objetos del
// bucket, filas de media y por último la fila del negocio. Ninguna imagen ni
// PDF sobrevive a su negocio.
func (uc *UseCase) DeleteBusiness(ctx context.Context, id string) error {
	business, err := uc.businesses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if business == nil {
		return domain.ErrNotFound
	}

	images, err := uc.images.ListByBusiness(ctx, id)
	if err != nil {
		return err
	}
	if len(images) > 0 {
		paths := make([]string, 0, len(images))
		for _, img := range images {
			paths = append(paths, img.StoragePath)
		}
		if err := uc.store.Remove(ctx, storage.BucketImages, paths); err != nil {
			return fmt.Errorf("eliminar imágenes del bucket: %w", err)
		}
	}
	pdf, err := uc.pdfs.GetByBusiness(ctx, id)
	if err != nil {
		return err
	}
	if pdf != nil {
		if err := uc.store.Remove(ctx, storage.BucketPDFs, []string{pdf.StoragePath}); err != nil {
			return fmt.Errorf("eliminar pdf del bucket: %w", err)
		}
	}

	if err := uc.images.DeleteByBusiness(ctx, id); err != nil {
		return fmt.Errorf("eliminar filas de imágenes: %w", err)
	}
	if err := uc.pdfs.DeleteByBusiness(ctx, id); err != nil {
		return fmt.Errorf("eliminar fila de pdf: %w", err)
	}
	if err := uc.businesses.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar negocio: %w", err)
	}
	uc.log.Info().Str("business_id", id).Str("name", business.Name).Msg("negocio eliminado")
	return nil
}
