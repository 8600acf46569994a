package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amartindev/TenjoConecta/internal/application/dto"
	"github.com/amartindev/TenjoConecta/internal/application/storage"
	"github.com/amartindev/TenjoConecta/internal/domain/entity"
	"github.com/amartindev/TenjoConecta/internal/domain/repository"
	"github.com/amartindev/TenjoConecta/pkg/logger"
)

// UseCase orquesta el registro público de un negocio: inserta la fila en
// pending y sube los archivos en orden estricto, con borrado compensatorio
// si algún paso falla.
type UseCase struct {
	businesses repository.BusinessRepository
	images     repository.BusinessImageRepository
	pdfs       repository.BusinessPdfRepository
	store      storage.ObjectStorage
	log        *logger.Logger
	now        func() time.Time
}

// NewUseCase construye el caso de uso de registro.
func NewUseCase(
	businesses repository.BusinessRepository,
	images repository.BusinessImageRepository,
	pdfs repository.BusinessPdfRepository,
	store storage.ObjectStorage,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		businesses: businesses,
		images:     images,
		pdfs:       pdfs,
		store:      store,
		log:        log.Component("registration"),
		now:        time.Now,
	}
}

// Register ejecuta la transacción de registro:
//
//  1. Valida campos y archivos; nada se crea si la entrada es inválida.
//  2. Inserta el negocio con status = pending (fallo aquí no deja nada que
//     compensar).
//  3. Sube las imágenes en el orden recibido: objeto al bucket y luego la
//     fila, con is_main solo en la primera. Los pasos son secuenciales para
//     que "primer archivo = imagen principal" sea determinista.
//  4. Si viene PDF, lo sube y hace upsert de su fila.
//
// Cualquier fallo en los pasos 3 o 4 dispara la compensación: se eliminan
// (mejor esfuerzo) los objetos y filas de media ya creados y, obligatoriamente,
// la fila del negocio. Un fallo de la propia compensación se registra en el
// log pero no oculta el error original.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterBusinessRequest, images []dto.FileUpload, pdf *dto.FileUpload) (*dto.RegisterBusinessResponse, error) {
	in, err := validateRequest(in, images, pdf)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	business := &entity.Business{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Address:     in.Address,
		Schedule:    in.Schedule,
		Page:        in.Page,
		Whatsapp:    in.Whatsapp,
		Email:       in.Email,
		Status:      entity.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.businesses.Create(ctx, business); err != nil {
		return nil, fmt.Errorf("crear negocio: %w", err)
	}

	var (
		createdImages []*entity.BusinessImage
		uploadedPaths []string
	)

	for i, file := range images {
		path := fmt.Sprintf("%s/%d_%d.%s", business.ID, now.UnixMilli(), i, fileExt(file.Name))
		if err := uc.store.Upload(ctx, storage.BucketImages, path, file.ContentType, file.Data); err != nil {
			uc.compensate(ctx, business.ID, uploadedPaths, "", true)
			return nil, fmt.Errorf("subir imagen %d: %w", i, err)
		}
		uploadedPaths = append(uploadedPaths, path)

		img := &entity.BusinessImage{
			ID:          uuid.New().String(),
			BusinessID:  business.ID,
			URL:         uc.store.PublicURL(storage.BucketImages, path),
			StoragePath: path,
			IsMain:      i == 0, // solo la primera imagen es principal
			CreatedAt:   uc.now(),
		}
		if err := uc.images.Create(ctx, img); err != nil {
			uc.compensate(ctx, business.ID, uploadedPaths, "", true)
			return nil, fmt.Errorf("registrar imagen %d: %w", i, err)
		}
		createdImages = append(createdImages, img)
	}

	var createdPdf *entity.BusinessPdf
	if pdf != nil {
		path := fmt.Sprintf("%s/%d.pdf", business.ID, now.UnixMilli())
		if err := uc.store.Upload(ctx, storage.BucketPDFs, path, pdf.ContentType, pdf.Data); err != nil {
			uc.compensate(ctx, business.ID, uploadedPaths, "", true)
			return nil, fmt.Errorf("subir pdf: %w", err)
		}
		createdPdf = &entity.BusinessPdf{
			ID:          uuid.New().String(),
			BusinessID:  business.ID,
			URL:         uc.store.PublicURL(storage.BucketPDFs, path),
			StoragePath: path,
			CreatedAt:   uc.now(),
		}
		if err := uc.pdfs.Upsert(ctx, createdPdf); err != nil {
			uc.compensate(ctx, business.ID, uploadedPaths, path, true)
			return nil, fmt.Errorf("registrar pdf: %w", err)
		}
	}

	resp := &dto.RegisterBusinessResponse{Business: *dto.ToBusinessResponse(business)}
	for _, img := range createdImages {
		resp.Images = append(resp.Images, *dto.ToImageResponse(img))
	}
	if createdPdf != nil {
		resp.Pdf = dto.ToPdfResponse(createdPdf)
	}
	uc.log.Info().Str("business_id", business.ID).Str("name", business.Name).
		Int("images", len(createdImages)).Bool("pdf", createdPdf != nil).
		Msg("solicitud de registro recibida")
	return resp, nil
}

// compensate deshace un registro parcial: elimina (mejor esfuerzo) los objetos
// subidos y las filas de media, y luego la fila del negocio. El borrado del
// negocio es obligatorio; sus fallos se registran sin bloquear el reporte del
// error original.
func (uc *UseCase) compensate(ctx context.Context, businessID string, imagePaths []string, pdfPath string, withRows bool) {
	if len(imagePaths) > 0 {
		if err := uc.store.Remove(ctx, storage.BucketImages, imagePaths); err != nil {
			uc.log.Warn().Err(err).Str("business_id", businessID).Msg("compensación: no se pudieron eliminar imágenes del bucket")
		}
	}
	if pdfPath != "" {
		if err := uc.store.Remove(ctx, storage.BucketPDFs, []string{pdfPath}); err != nil {
			uc.log.Warn().Err(err).Str("business_id", businessID).Msg("compensación: no se pudo eliminar el pdf del bucket")
		}
	}
	if withRows {
		if err := uc.images.DeleteByBusiness(ctx, businessID); err != nil {
			uc.log.Warn().Err(err).Str("business_id", businessID).Msg("compensación: no se pudieron eliminar filas de imágenes")
		}
		if err := uc.pdfs.DeleteByBusiness(ctx, businessID); err != nil {
			uc.log.Warn().Err(err).Str("business_id", businessID).Msg("compensación: no se pudo eliminar la fila del pdf")
		}
	}
	if err := uc.businesses.Delete(ctx, businessID); err != nil {
		uc.log.Error().Err(err).Str("business_id", businessID).Msg("compensación: no se pudo eliminar el negocio")
	}
}
