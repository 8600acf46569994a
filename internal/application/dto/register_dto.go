package dto

import (
	"fmt"

	"github.com/amartindev/TenjoConecta/internal/domain"
)

// RegisterBusinessRequest campos del formulario de registro público.
// Los archivos (imágenes y PDF) llegan aparte en el multipart.
type RegisterBusinessRequest struct {
	Name        string `json:"name" form:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category" validate:"required"`
	Address     string `json:"address" form:"address"`
	Schedule    string `json:"schedule" form:"schedule"`
	Page        string `json:"page" form:"page"`
	Whatsapp    string `json:"whatsapp" form:"whatsapp" validate:"required"`
	Email       string `json:"email" form:"email"`
}

// MaxFileSize tamaño máximo aceptado por archivo (imagen o PDF).
const MaxFileSize = 10 * 1024 * 1024

// FileUpload un archivo recibido, ya leído en memoria.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

var validImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// ValidateImage verifica tipo MIME (jpeg, png o gif) y tamaño.
func (f FileUpload) ValidateImage() error {
	if !validImageTypes[f.ContentType] {
		return fmt.Errorf("%w: el archivo %s no es una imagen válida", domain.ErrInvalidInput, f.Name)
	}
	if len(f.Data) > MaxFileSize {
		return fmt.Errorf("%w: el archivo %s excede los 10MB", domain.ErrInvalidInput, f.Name)
	}
	return nil
}

// ValidatePdf verifica tipo MIME application/pdf y tamaño.
func (f FileUpload) ValidatePdf() error {
	if f.ContentType != "application/pdf" {
		return fmt.Errorf("%w: el archivo %s no es un PDF válido", domain.ErrInvalidInput, f.Name)
	}
	if len(f.Data) > MaxFileSize {
		return fmt.Errorf("%w: el archivo %s excede los 10MB", domain.ErrInvalidInput, f.Name)
	}
	return nil
}

// RegisterBusinessResponse resultado del registro: el negocio queda en pending
// hasta que el administrador lo apruebe.
type RegisterBusinessResponse struct {
	Business BusinessResponse `json:"business"`
	Images   []ImageResponse  `json:"images"`
	Pdf      *PdfResponse     `json:"pdf,omitempty"`
}
