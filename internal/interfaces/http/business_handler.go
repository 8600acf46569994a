package http

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/amartindev/TenjoConecta/internal/application/dto"
	"github.com/amartindev/TenjoConecta/internal/application/listing"
	"github.com/amartindev/TenjoConecta/internal/domain"
	"github.com/amartindev/TenjoConecta/internal/domain/search"
)

// BusinessHandler maneja las peticiones públicas del directorio.
type BusinessHandler struct {
	uc *listing.UseCase
}

// NewBusinessHandler construye el handler público.
func NewBusinessHandler(uc *listing.UseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// writeUseCaseError traduce los errores de dominio a respuestas HTTP.
func writeUseCaseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// List godoc
// @Summary      Listar negocios aprobados
// @Description  Búsqueda por texto (sin acentos) y filtro por categoría. Los premium van primero.
// @Tags         public
// @Produce      json
// @Param        search    query  string  false  "texto de búsqueda"
// @Param        category  query  string  false  "categoría o 'all'"
// @Success      200  {object}  dto.BusinessListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/businesses [get]
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	text := c.Query("search")
	category := c.Query("category", search.AllCategories)
	out, err := h.uc.Search(c.UserContext(), text, category)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(out)
}

// Featured godoc
// @Summary      Negocios destacados para el carrusel
// @Tags         public
// @Produce      json
// @Param        limit  query  int  false  "máximo de resultados (default 10)"
// @Success      200  {object}  dto.BusinessListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/businesses/featured [get]
func (h *BusinessHandler) Featured(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(listing.DefaultFeaturedLimit)))
	out, err := h.uc.Featured(c.UserContext(), limit)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de un negocio por nombre
// @Description  El nombre llega como slug: los guiones se tratan como espacios.
// @Tags         public
// @Produce      json
// @Param        name  path  string  true  "nombre del negocio"
// @Success      200  {object}  dto.BusinessDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{name} [get]
func (h *BusinessHandler) Detail(c *fiber.Ctx) error {
	name, err := decodeParam(c, "name")
	if err != nil || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido"})
	}
	out, err := h.uc.Detail(c.UserContext(), name)
	if err != nil {
		return writeUseCaseError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías del directorio
// @Tags         public
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/categories [get]
func (h *BusinessHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(search.Categories)
}

// decodeParam devuelve el parámetro de ruta ya des-escapado (%20, acentos).
func decodeParam(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}
