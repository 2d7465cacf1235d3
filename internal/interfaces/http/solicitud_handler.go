package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nublack/nublack-api/internal/application/dto"
	"github.com/nublack/nublack-api/internal/application/solicitud"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/domain/repository"
	"github.com/nublack/nublack-api/pkg/logger"
	"github.com/nublack/nublack-api/pkg/validate"
)

// SolicitudHandler maneja el checkout y el seguimiento de solicitudes de
// entrega. Un Administrador opera sobre todas; un Cliente solo sobre las suyas.
type SolicitudHandler struct {
	uc  *solicitud.SolicitudUseCase
	log *logger.Logger
}

// NewSolicitudHandler construye el handler.
func NewSolicitudHandler(uc *solicitud.SolicitudUseCase, log *logger.Logger) *SolicitudHandler {
	return &SolicitudHandler{uc: uc, log: log}
}

// ownerEmail devuelve el email que restringe la consulta: vacío para el
// Administrador (ve todo), el del token para el resto.
func ownerEmail(c *fiber.Ctx) string {
	if GetRole(c) == entity.RoleAdministrador {
		return ""
	}
	return GetEmail(c)
}

// Create godoc
// @Summary      Crear solicitud (checkout del carrito)
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSolicitudRequest  true  "Datos de contacto y envío"
// @Success      201   {object}  dto.SolicitudResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/solicitudes [post]
func (h *SolicitudHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return respondValidation(c, fields)
	}
	out, err := h.uc.Create(GetEmail(c), in)
	if err != nil {
		if out == nil {
			return respondError(c, err)
		}
		// La solicitud quedó creada aunque el carrito no se pudo vaciar; se
		// responde la solicitud igualmente y el carrito huérfano queda trazado.
		h.log.Warn().Err(err).
			Str("email", GetEmail(c)).
			Str("solicitud", out.ID).
			Msg("no se pudo vaciar el carrito tras crear la solicitud")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "pendiente | aprobada | en_camino | entregada | cancelada"
// @Param        texto   query  string  false  "Búsqueda parcial por número o cliente (sin tildes)"
// @Param        fecha   query  string  false  "Fecha de creación (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.SolicitudListResponse
// @Router       /api/solicitudes [get]
func (h *SolicitudHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.SolicitudFilter{
		Estado:    c.Query("estado"),
		Texto:     c.Query("texto"),
		UserEmail: ownerEmail(c),
	}
	if raw := c.Query("fecha"); raw != "" {
		fecha, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha debe tener formato YYYY-MM-DD"})
		}
		filter.Fecha = &fecha
	}
	out, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud por ID
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id} [get]
func (h *SolicitudHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), ownerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	return c.JSON(out)
}

// ChangeEstado godoc
// @Summary      Cambiar estado de una solicitud
// @Description  El Administrador aplica cualquier transición válida. Un Cliente
// @Description  solo puede cancelar su propia solicitud pendiente (con motivo).
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.ChangeEstadoRequest  true  "estado destino y motivo"
// @Success      200   {object}  dto.SolicitudResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/estado [put]
func (h *SolicitudHandler) ChangeEstado(c *fiber.Ctx) error {
	var in dto.ChangeEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return respondValidation(c, fields)
	}
	var (
		out *dto.SolicitudResponse
		err error
	)
	if GetRole(c) == entity.RoleAdministrador {
		out, err = h.uc.ChangeEstado(c.Params("id"), in)
	} else {
		if in.Estado != entity.EstadoCancelada {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "un cliente solo puede cancelar su solicitud"})
		}
		out, err = h.uc.Cancel(c.Params("id"), GetEmail(c), in.Motivo)
	}
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de la solicitud
// @Tags         solicitudes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/pdf [get]
func (h *SolicitudHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Receipt(c.Params("id"), ownerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="comprobante.pdf"`)
	return c.Send(pdfBytes)
}
