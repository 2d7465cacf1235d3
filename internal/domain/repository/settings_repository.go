package repository

import "github.com/nublack/nublack-api/internal/domain/entity"

// SettingsRepository define el puerto de lectura de ajustes de la tienda.
type SettingsRepository interface {
	List() ([]*entity.Setting, error)
	Get(key string) (*entity.Setting, error)
}
