package repository

import (
	"context"

	"mapmarket/internal/domain/entity"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id entity.ActorID) (*entity.User, error)
	Delete(ctx context.Context, id entity.ActorID) error
}
