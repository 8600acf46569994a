package http

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/amartindev/TenjoConecta/internal/application/dto"
	"github.com/amartindev/TenjoConecta/internal/application/registration"
)

// RegisterHandler recibe el formulario público de registro de negocios.
type RegisterHandler struct {
	uc *registration.UseCase
}

// NewRegisterHandler construye el handler de registro.
func NewRegisterHandler(uc *registration.UseCase) *RegisterHandler {
	return &RegisterHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar un negocio
// @Description  Multipart: campos del negocio + images[] (jpeg/png/gif, máx 10MB c/u) + pdf opcional. El negocio queda pendiente de aprobación.
// @Tags         public
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.RegisterBusinessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/businesses [post]
func (h *RegisterHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}

	images, err := readFiles(form.File["images"])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer una de las imágenes"})
	}

	var pdf *dto.FileUpload
	if pdfHeaders := form.File["pdf"]; len(pdfHeaders) > 0 {
		files, err := readFiles(pdfHeaders[:1])
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el PDF"})
		}
		pdf = &files[0]
	}

	out, err := h.uc.Register(c.UserContext(), in, images, pdf)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// readFiles lee los archivos del multipart a memoria.
func readFiles(headers []*multipart.FileHeader) ([]dto.FileUpload, error) {
	files := make([]dto.FileUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(io.LimitReader(f, dto.MaxFileSize+1))
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, dto.FileUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}
