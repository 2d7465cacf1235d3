package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nublack/nublack-api/internal/domain/repository"
	"github.com/nublack/nublack-api/internal/infrastructure/storage"
	"github.com/nublack/nublack-api/pkg/logger"
)

// AdminHandler agrupa las operaciones de back-office que tocan el almacén
// directamente: consulta de ajustes y remediación de cuota.
type AdminHandler struct {
	settings repository.SettingsRepository
	store    *storage.Store
	reseed   func() error
	log      *logger.Logger
}

// NewAdminHandler construye el handler. reseed vuelve a sembrar el usuario
// administrador y los ajustes después de un reset.
func NewAdminHandler(settings repository.SettingsRepository, store *storage.Store, reseed func() error, log *logger.Logger) *AdminHandler {
	return &AdminHandler{settings: settings, store: store, reseed: reseed, log: log}
}

// SettingResponse salida de un ajuste de la tienda.
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Settings godoc
// @Summary      Listar ajustes de la tienda
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  SettingResponse
// @Router       /api/ajustes [get]
func (h *AdminHandler) Settings(c *fiber.Ctx) error {
	list, err := h.settings.List()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]SettingResponse, 0, len(list))
	for _, s := range list {
		out = append(out, SettingResponse{Key: s.Key, Value: s.Value})
	}
	return c.JSON(out)
}

// StorageReset godoc
// @Summary      Vaciar el almacén y re-sembrar
// @Description  Remediación cuando el almacén alcanza la cuota: borra todas las
// @Description  colecciones y vuelve a sembrar el administrador y los ajustes.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/storage/reset [post]
func (h *AdminHandler) StorageReset(c *fiber.Ctx) error {
	h.log.Warn().Str("admin", GetEmail(c)).Msg("reset del almacén solicitado")
	if err := h.store.Reset(); err != nil {
		return respondError(c, err)
	}
	if err := h.reseed(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "reset", "message": "almacén vaciado y re-sembrado"})
}
