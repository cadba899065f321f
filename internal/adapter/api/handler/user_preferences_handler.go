package handler

import (
	"github.com/labstack/echo/v4"

	"mapmarket/internal/adapter/api/middleware"
	"mapmarket/internal/domain/entity"
	"mapmarket/internal/usecase"
	"mapmarket/pkg/errors"
	"mapmarket/pkg/logger"
	"mapmarket/pkg/response"
)

// defaultMapZoom accompanies a saved search center in location responses.
const defaultMapZoom = 13

type UserPreferencesHandler struct {
	settingsUseCase *usecase.UserSettingsUseCase
	uploader        ImageUploader
}

func NewUserPreferencesHandler(settingsUseCase *usecase.UserSettingsUseCase, uploader ImageUploader) *UserPreferencesHandler {
	return &UserPreferencesHandler{
		settingsUseCase: settingsUseCase,
		uploader:        uploader,
	}
}

func (h *UserPreferencesHandler) GetUserPreferences(c echo.Context) error {
	settingsID := entity.ActorID(c.Param("user_settings_id"))

	settings, err := h.settingsUseCase.GetByID(c.Request().Context(), settingsID)
	if err != nil {
		return response.Error(c, err)
	}
	if settings == nil {
		logger.Warn("User preferences not found for ID %s", settingsID)
		return response.Error(c, errors.NotFound("User preferences", nil))
	}

	return response.Success(c, settings)
}

func (h *UserPreferencesHandler) FetchUserPreferences(c echo.Context) error {
	authUser := middleware.CurrentUser(c)
	if authUser == nil {
		return response.Error(c, errors.Unauthorized("User not authenticated", nil))
	}

	settings, err := h.settingsUseCase.GetByID(c.Request().Context(), authUser.UID)
	if err != nil {
		return response.Error(c, err)
	}
	if settings == nil {
		return response.Error(c, errors.NotFound("User preferences", nil))
	}

	return response.Success(c, settings)
}

type addPreferencesRequest struct {
	UserName        string `form:"user_name"`
	Email           string `form:"email" validate:"omitempty,email"`
	PhoneNumber     string `form:"phone_number"`
	FindMe          string `form:"findme"`
	SearchMapCenter string `form:"search_map_center"`
}

func (h *UserPreferencesHandler) AddUserPreferences(c echo.Context) error {
	authUser := middleware.CurrentUser(c)
	if authUser == nil {
		return response.Error(c, errors.Unauthorized("Unauthorized user", nil))
	}

	var req addPreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid preferences form", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	imageURL, err := uploadedImage(c, h.uploader, "settings")
	if err != nil {
		return response.Error(c, err)
	}

	input := usecase.UserSettingsInput{
		UserName:        req.UserName,
		FindMe:          req.FindMe,
		SearchMapCenter: req.SearchMapCenter,
	}
	if req.Email != "" {
		input.Email = &req.Email
	}
	if req.PhoneNumber != "" {
		input.PhoneNumber = &req.PhoneNumber
	}

	settings, err := h.settingsUseCase.AddOrUpdate(c.Request().Context(), authUser, input, imageURL)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{"settings": settings})
}

func (h *UserPreferencesHandler) DeleteUserPreferences(c echo.Context) error {
	authUser := middleware.CurrentUser(c)
	if authUser == nil {
		return response.Error(c, errors.Unauthorized("User not authenticated", nil))
	}

	deleted, err := h.settingsUseCase.Delete(c.Request().Context(), authUser.UID)
	if err != nil {
		return response.Error(c, err)
	}

	logger.Info("Deleted user preferences with ID %s", authUser.UID)
	return response.Success(c, map[string]interface{}{
		"message":             "User preferences deleted successfully",
		"deletedUserSettings": deleted,
	})
}

func (h *UserPreferencesHandler) GetUserLocation(c echo.Context) error {
	authUser := middleware.CurrentUser(c)
	if authUser == nil {
		return response.Error(c, errors.Unauthorized("User not authenticated", nil))
	}

	location, err := h.settingsUseCase.UserLocation(c.Request().Context(), authUser.UID)
	if err != nil {
		return response.Error(c, err)
	}
	if location == nil {
		logger.Warn("User location not found for ID %s", authUser.UID)
		return response.Error(c, errors.NotFound("User location", nil))
	}

	return response.Success(c, map[string]interface{}{
		"origin": location,
		"zoom":   defaultMapZoom,
	})
}
