package registration

import (
	"fmt"
	"strings"

	"github.com/amartindev/TenjoConecta/internal/application/dto"
	"github.com/amartindev/TenjoConecta/internal/domain"
	"github.com/amartindev/TenjoConecta/internal/domain/entity"
	"github.com/amartindev/TenjoConecta/internal/domain/search"
)

// validateRequest valida los campos del formulario y los archivos antes de
// tocar la red. Devuelve el request con el whatsapp ya normalizado.
func validateRequest(in dto.RegisterBusinessRequest, images []dto.FileUpload, pdf *dto.FileUpload) (dto.RegisterBusinessRequest, error) {
	if in.Name == "" {
		return in, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if !search.ValidCategory(in.Category) {
		return in, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, in.Category)
	}
	in.Whatsapp = entity.NormalizeWhatsapp(in.Whatsapp)
	if len(in.Whatsapp) < entity.MinWhatsappDigits {
		return in, fmt.Errorf("%w: el teléfono debe tener al menos %d dígitos", domain.ErrInvalidInput, entity.MinWhatsappDigits)
	}

	for _, img := range images {
		if err := img.ValidateImage(); err != nil {
			return in, err
		}
	}
	if pdf != nil {
		if err := pdf.ValidatePdf(); err != nil {
			return in, err
		}
	}
	return in, nil
}

// fileExt devuelve la extensión del nombre del archivo, sin el punto.
func fileExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return "bin"
}
