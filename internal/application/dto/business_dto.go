package dto

import (
	"time"

	"github.com/amartindev/TenjoConecta/internal/domain/entity"
)

// BusinessResponse salida pública de un negocio (imagen principal ya resuelta).
type BusinessResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	Schedule    string `json:"schedule"`
	Page        string `json:"page"`
	Whatsapp    string `json:"whatsapp"`
	Email       string `json:"email"`
	Status      string `json:"status"`

	IsPremium        bool       `json:"is_premium"`
	PremiumStartDate *time.Time `json:"premium_start_date,omitempty"`
	PremiumEndDate   *time.Time `json:"premium_end_date,omitempty"`

	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BusinessListResponse listado público.
type BusinessListResponse struct {
	Items []BusinessResponse `json:"items"`
	Total int                `json:"total"`
}

// ImageResponse salida de una imagen de negocio.
type ImageResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	URL         string    `json:"url"`
	StoragePath string    `json:"storage_path"`
	IsMain      bool      `json:"is_main"`
	CreatedAt   time.Time `json:"created_at"`
}

// PdfResponse salida del PDF (menú/catálogo) de un negocio.
type PdfResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	URL         string    `json:"url"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}

// BusinessDetailResponse detalle público: negocio + secuencia de fotos
// (imagen principal primero) + URL del PDF si existe.
type BusinessDetailResponse struct {
	Business BusinessResponse `json:"business"`
	Photos   []PhotoResponse  `json:"photos"`
	PdfURL   string           `json:"pdf_url,omitempty"`
}

// PhotoResponse una foto de la galería del detalle.
type PhotoResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// AdminBusinessResponse fila del dashboard: negocio con sus imágenes y PDF.
type AdminBusinessResponse struct {
	BusinessResponse
	Images []ImageResponse `json:"images"`
	Pdf    *PdfResponse    `json:"pdf,omitempty"`
}

// AdminBusinessListResponse listado completo para el dashboard.
type AdminBusinessListResponse struct {
	Items []AdminBusinessResponse `json:"items"`
	Total int                     `json:"total"`
}

// UpdateBusinessRequest edición de campos desde el dashboard.
// Los punteros distinguen "no enviado" de "vaciar el campo".
type UpdateBusinessRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Address     *string `json:"address"`
	Schedule    *string `json:"schedule"`
	Page        *string `json:"page"`
	Whatsapp    *string `json:"whatsapp"`
	Email       *string `json:"email"`

	IsPremium        *bool      `json:"is_premium"`
	PremiumStartDate *time.Time `json:"premium_start_date"`
	PremiumEndDate   *time.Time `json:"premium_end_date"`
}

// ChangeStatusRequest transición de estado de moderación.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved paused rejected"`
}

// ToBusinessResponse convierte la entidad a su DTO público.
func ToBusinessResponse(b *entity.Business) *BusinessResponse {
	if b == nil {
		return nil
	}
	return &BusinessResponse{
		ID:               b.ID,
		Name:             b.Name,
		Description:      b.Description,
		Category:         b.Category,
		Address:          b.Address,
		Schedule:         b.Schedule,
		Page:             b.Page,
		Whatsapp:         b.Whatsapp,
		Email:            b.Email,
		Status:           b.Status,
		IsPremium:        b.IsPremium,
		PremiumStartDate: b.PremiumStartDate,
		PremiumEndDate:   b.PremiumEndDate,
		ImageURL:         b.ImageURL,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// ToImageResponse convierte la entidad imagen a DTO.
func ToImageResponse(img *entity.BusinessImage) *ImageResponse {
	if img == nil {
		return nil
	}
	return &ImageResponse{
		ID:          img.ID,
		BusinessID:  img.BusinessID,
		URL:         img.URL,
		StoragePath: img.StoragePath,
		IsMain:      img.IsMain,
		CreatedAt:   img.CreatedAt,
	}
}

// ToPdfResponse convierte la entidad PDF a DTO.
func ToPdfResponse(pdf *entity.BusinessPdf) *PdfResponse {
	if pdf == nil {
		return nil
	}
	return &PdfResponse{
		ID:          pdf.ID,
		BusinessID:  pdf.BusinessID,
		URL:         pdf.URL,
		StoragePath: pdf.StoragePath,
		CreatedAt:   pdf.CreatedAt,
	}
}
