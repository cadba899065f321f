package usecase

import (
	"context"

	"mapmarket/internal/domain/entity"
	"mapmarket/internal/domain/repository"
	"mapmarket/pkg/errors"
	"mapmarket/pkg/logger"
)

// Trust scores start at the top bucket; reviews pull them down over time.
const initialTrustMeterRating = 100

// UserSettingsUseCase manages the per-actor preferences document.
type UserSettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

func NewUserSettingsUseCase(settingsRepo repository.SettingsRepository) *UserSettingsUseCase {
	return &UserSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// GetByID is a pure lookup; nil when the actor never saved settings.
func (uc *UserSettingsUseCase) GetByID(ctx context.Context, id entity.ActorID) (*entity.UserSettings, error) {
	settings, err := uc.settingsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		logger.Error("Failed to get user settings for ID %s: %v", id, err)
		return nil, errors.Internal("Failed to get user settings; please try again later", err)
	}
	return settings, nil
}

type UserSettingsInput struct {
	UserName        string
	Email           *string
	PhoneNumber     *string
	FindMe          string
	SearchMapCenter string // serialized GeoJSON point
}

// AddOrUpdate upserts the settings owned by authUser with the usual field
// precedence: incoming value, stored value, then default.
func (uc *UserSettingsUseCase) AddOrUpdate(ctx context.Context, authUser *entity.User, input UserSettingsInput, imageURL string) (*entity.UserSettings, error) {
	existing, err := uc.settingsRepo.GetByID(ctx, authUser.UID)
	if err != nil && !errors.IsNotFound(err) {
		logger.Error("Failed to add or update user settings for ID %s: %v", authUser.UID, err)
		return nil, errors.Internal("Failed to add or update user settings; please try again later", err)
	}

	settings := &entity.UserSettings{
		ID:               authUser.UID,
		TrustMeterRating: initialTrustMeterRating,
	}
	if existing != nil {
		settings.TrustMeterRating = existing.TrustMeterRating
		settings.CreatedAt = existing.CreatedAt
	}

	settings.UserName = firstNonEmpty(input.UserName, existingUserName(existing), authUser.DisplayName)
	settings.FindMe = firstNonEmpty(input.FindMe, existingFindMe(existing))
	settings.Image = firstNonEmpty(imageURL, existingImage(existing))
	settings.Email = resolveOptional(input.Email, existing, func(s *entity.UserSettings) *string { return s.Email })
	settings.PhoneNumber = resolveOptional(input.PhoneNumber, existing, func(s *entity.UserSettings) *string { return s.PhoneNumber })
	settings.SearchMapCenter = uc.resolveSearchCenter(input.SearchMapCenter, existing)

	if err := uc.settingsRepo.Upsert(ctx, settings); err != nil {
		logger.Error("Failed to add or update user settings for ID %s: %v", authUser.UID, err)
		return nil, errors.Internal("Failed to add or update user settings; please try again later", err)
	}

	logger.Info("User settings upserted for actor %s", authUser.UID)
	return settings, nil
}

func existingUserName(s *entity.UserSettings) string {
	if s == nil {
		return ""
	}
	return s.UserName
}

func existingFindMe(s *entity.UserSettings) string {
	if s == nil {
		return ""
	}
	return s.FindMe
}

func existingImage(s *entity.UserSettings) string {
	if s == nil {
		return ""
	}
	return s.Image
}

func resolveOptional(incoming *string, existing *entity.UserSettings, pick func(*entity.UserSettings) *string) *string {
	if incoming != nil {
		return incoming
	}
	if existing != nil {
		return pick(existing)
	}
	return nil
}

func (uc *UserSettingsUseCase) resolveSearchCenter(raw string, existing *entity.UserSettings) *entity.GeoPoint {
	if raw != "" {
		point, err := entity.ParseGeoJSONPoint(raw)
		if err == nil {
			return &point
		}
		logger.Warn("Ignoring malformed search_map_center: %v", err)
	}
	if existing != nil {
		return existing.SearchMapCenter
	}
	return nil
}

// Delete removes the settings document; nil result when none existed.
func (uc *UserSettingsUseCase) Delete(ctx context.Context, id entity.ActorID) (*entity.UserSettings, error) {
	deleted, err := uc.settingsRepo.Delete(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		logger.Error("Failed to delete user settings for ID %s: %v", id, err)
		return nil, errors.Internal("Failed to delete user settings; please try again later", err)
	}
	return deleted, nil
}

// UserLocation returns the actor's saved search map center, or nil when no
// settings or no center exist.
func (uc *UserSettingsUseCase) UserLocation(ctx context.Context, id entity.ActorID) (*entity.GeoPoint, error) {
	settings, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, nil
	}
	return settings.SearchMapCenter, nil
}
