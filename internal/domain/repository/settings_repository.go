package repository

import (
	"context"

	"mapmarket/internal/domain/entity"
)

type SettingsRepository interface {
	Upsert(ctx context.Context, settings *entity.UserSettings) error
	GetByID(ctx context.Context, id entity.ActorID) (*entity.UserSettings, error)
	Delete(ctx context.Context, id entity.ActorID) (*entity.UserSettings, error)
}
