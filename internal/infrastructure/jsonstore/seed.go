package jsonstore

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/pkg/logger"
)

// Seed garantiza el estado inicial del almacén: el administrador como registro
// normal de la colección de usuarios (nunca una ruta de código aparte) y los
// ajustes por defecto de la tienda. Es idempotente y se invoca en cada
// arranque y tras cada reset del almacén.
//
// Relee ambas colecciones antes de decidir: tras un reset el estado en memoria
// de los repositorios todavía puede ser el anterior al borrado (la relectura
// por el bus de cambios llega después), y sembrar sobre ese estado dejaría el
// almacén sin administrador ni ajustes.
func Seed(users *UserRepository, settings *SettingsRepository, adminEmail, adminPassword string, log *logger.Logger) error {
	if err := users.Reload(); err != nil {
		return err
	}
	if err := settings.Reload(); err != nil {
		return err
	}
	existing, err := users.GetByEmail(adminEmail)
	if err != nil {
		return err
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		now := time.Now()
		admin := &entity.User{
			ID:              uuid.New().String(),
			Email:           strings.ToLower(adminEmail),
			Nombres:         "Administrador",
			Apellidos:       "NUBLACK",
			TipoDocumento:   entity.DocCC,
			NumeroDocumento: "0",
			PasswordHash:    string(hash),
			Role:            entity.RoleAdministrador,
			Status:          entity.UserStatusActivo,
			Seed:            true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := users.Create(admin); err != nil {
			return err
		}
		log.Info().Str("email", admin.Email).Msg("administrador sembrado")
	}

	// Las claves de impuestos y envío se siembran aunque el cálculo de totales
	// no las consulte: el total de una solicitud es la suma de sus detalles.
	defaults := []*entity.Setting{
		{Key: entity.SettingIVA, Value: "0.19"},
		{Key: entity.SettingCostoEnvio, Value: "8000"},
		{Key: entity.SettingEnvioGratisDesde, Value: "150000"},
		{Key: entity.SettingMoneda, Value: "COP"},
	}
	return settings.seed(defaults)
}
