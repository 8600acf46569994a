package http

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/amartindev/TenjoConecta/internal/application/admin"
	"github.com/amartindev/TenjoConecta/internal/application/dto"
)

// AdminHandler maneja la moderación del directorio (protegido).
type AdminHandler struct {
	uc *admin.UseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(uc *admin.UseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// List godoc
// @Summary      Listar todos los negocios con sus medios
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.AdminBusinessListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/admin/businesses [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar el estado de un negocio
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del negocio"
// @Param        body  body  dto.ChangeStatusRequest  true  "pending | approved | paused | rejected"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/businesses/{id}/status [patch]
func (h *AdminHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar un negocio
// @Description  Actualización parcial: sólo los campos presentes cambian. Incluye la ventana premium.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del negocio"
// @Param        body  body  dto.UpdateBusinessRequest  true  "campos a modificar"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/businesses/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(out)
}

// SetMainImage godoc
// @Summary      Marcar una imagen como principal
// @Description  Despeja la principal anterior y marca la nueva en una sola transacción.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id       path  string  true  "id del negocio"
// @Param        imageID  path  string  true  "id de la imagen"
// @Success      200  {array}   dto.ImageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/businesses/{id}/images/{imageID}/main [put]
func (h *AdminHandler) SetMainImage(c *fiber.Ctx) error {
	out, err := h.uc.SetMainImage(c.UserContext(), c.Params("id"), c.Params("imageID"))
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(out)
}

// UploadImage godoc
// @Summary      Subir una imagen a la galería de un negocio
// @Tags         admin
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "id del negocio"
// @Success      201  {object}  dto.ImageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/businesses/{id}/images [post]
func (h *AdminHandler) UploadImage(c *fiber.Ctx) error {
	file, err := readSingleFile(c, "image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se esperaba un archivo en el campo image"})
	}
	out, err := h.uc.UploadImage(c.UserContext(), c.Params("id"), file)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteImage godoc
// @Summary      Eliminar una imagen de la galería
// @Tags         admin
// @Security     BearerAuth
// @Param        id       path  string  true  "id del negocio"
// @Param        imageID  path  string  true  "id de la imagen"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/businesses/{id}/images/{imageID} [delete]
func (h *AdminHandler) DeleteImage(c *fiber.Ctx) error {
	if err := h.uc.DeleteImage(c.UserContext(), c.Params("id"), c.Params("imageID")); err != nil {
		return writeUseCaseError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadPdf godoc
// @Summary      Subir o reemplazar el PDF (menú/catálogo) de un negocio
// @Tags         admin
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "id del negocio"
// @Success      201  {object}  dto.PdfResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/businesses/{id}/pdf [post]
func (h *AdminHandler) UploadPdf(c *fiber.Ctx) error {
	file, err := readSingleFile(c, "pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se esperaba un archivo en el campo pdf"})
	}
	out, err := h.uc.UploadPdf(c.UserContext(), c.Params("id"), file)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeletePdf godoc
// @Summary      Eliminar el PDF de un negocio
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "id del negocio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/businesses/{id}/pdf [delete]
func (h *AdminHandler) DeletePdf(c *fiber.Ctx) error {
	if err := h.uc.DeletePdf(c.UserContext(), c.Params("id")); err != nil {
		return writeUseCaseError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteBusiness godoc
// @Summary      Eliminar un negocio con todos sus medios
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "id del negocio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/businesses/{id} [delete]
func (h *AdminHandler) DeleteBusiness(c *fiber.Ctx) error {
	if err := h.uc.DeleteBusiness(c.UserContext(), c.Params("id")); err != nil {
		return writeUseCaseError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// readSingleFile lee un único archivo del multipart.
func readSingleFile(c *fiber.Ctx, field string) (dto.FileUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return dto.FileUpload{}, err
	}
	files, err := readFiles([]*multipart.FileHeader{fh})
	if err != nil {
		return dto.FileUpload{}, err
	}
	return files[0], nil
}
