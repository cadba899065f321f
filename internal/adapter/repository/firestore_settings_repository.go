package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mapmarket/internal/domain/entity"
	"mapmarket/internal/domain/repository"
	"mapmarket/pkg/errors"
)

type firestoreSettingsRepository struct {
	client *firestore.Client
}

func NewFirestoreSettingsRepository(client *firestore.Client) repository.SettingsRepository {
	return &firestoreSettingsRepository{
		client: client,
	}
}

func (r *firestoreSettingsRepository) Upsert(ctx context.Context, settings *entity.UserSettings) error {
	now := time.Now()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = now
	}
	settings.UpdatedAt = now

	_, err := r.client.Collection("usersettings").Doc(settings.ID.String()).Set(ctx, settings)
	if err != nil {
		return errors.Internal("Failed to upsert user settings", err)
	}

	return nil
}

func (r *firestoreSettingsRepository) GetByID(ctx context.Context, id entity.ActorID) (*entity.UserSettings, error) {
	doc, err := r.client.Collection("usersettings").Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User settings", err)
		}
		return nil, errors.Internal("Failed to get user settings", err)
	}

	var settings entity.UserSettings
	if err := doc.DataTo(&settings); err != nil {
		return nil, errors.Internal("Failed to parse user settings data", err)
	}

	return &settings, nil
}

func (r *firestoreSettingsRepository) Delete(ctx context.Context, id entity.ActorID) (*entity.UserSettings, error) {
	settings, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := r.client.Collection("usersettings").Doc(id.String()).Delete(ctx); err != nil {
		return nil, errors.Internal("Failed to delete user settings", err)
	}

	return settings, nil
}
