package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"mapmarket/internal/adapter/api/middleware"
	"mapmarket/internal/domain/entity"
	"mapmarket/internal/domain/repository"
	"mapmarket/internal/usecase"
	"mapmarket/pkg/errors"
	"mapmarket/pkg/logger"
	"mapmarket/pkg/response"
)

type SellerHandler struct {
	sellerUseCase   *usecase.SellerUseCase
	settingsUseCase *usecase.UserSettingsUseCase
	uploader        ImageUploader
}

func NewSellerHandler(sellerUseCase *usecase.SellerUseCase, settingsUseCase *usecase.UserSettingsUseCase, uploader ImageUploader) *SellerHandler {
	return &SellerHandler{
		sellerUseCase:   sellerUseCase,
		settingsUseCase: settingsUseCase,
		uploader:        uploader,
	}
}

type fetchSellersRequest struct {
	Origin *struct {
		Lat float64 `json:"lat" validate:"latitude"`
		Lng float64 `json:"lng" validate:"longitude"`
	} `json:"origin"`
	Radius      float64 `json:"radius" validate:"omitempty,gt=0"`
	SearchQuery string  `json:"search_query"`
}

// FetchSellersByCriteria returns the enriched seller listing for the given
// geo circle and/or text query. No matches is an empty list, not an error.
func (h *SellerHandler) FetchSellersByCriteria(c echo.Context) error {
	var req fetchSellersRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid search criteria", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	filter := repository.SellerFilter{
		RadiusKm: req.Radius,
		Query:    req.SearchQuery,
	}
	if req.Origin != nil {
		filter.Origin = &entity.GeoPoint{Latitude: req.Origin.Lat, Longitude: req.Origin.Lng}
	}

	sellers, err := h.sellerUseCase.Search(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	logger.Info("Fetched %d sellers (radius=%v, query=%q)", len(sellers), req.Radius, req.SearchQuery)
	return response.Success(c, sellers)
}

func (h *SellerHandler) GetSingleSeller(c echo.Context) error {
	sellerID := entity.ActorID(c.Param("seller_id"))

	profile, err := h.sellerUseCase.GetByID(c.Request().Context(), sellerID)
	if err != nil {
		return response.Error(c, err)
	}
	if profile == nil {
		logger.Warn("Seller with ID %s not found", sellerID)
		return response.Error(c, errors.NotFound("Seller", nil))
	}

	return response.Success(c, profile)
}

// FetchSellerRegistration returns the caller's own seller profile, used to
// prefill the registration form.
func (h *SellerHandler) FetchSellerRegistration(c echo.Context) error {
	authUser := middleware.CurrentUser(c)
	if authUser == nil {
		return response.Error(c, errors.Unauthorized("User not authenticated", nil))
	}

	seller, err := h.sellerUseCase.GetRegistration(c.Request().Context(), authUser.UID)
	if err != nil {
		return response.Error(c, err)
	}
	if seller == nil {
		logger.Warn("Seller registration not found for user %s", authUser.UID)
		return response.Error(c, errors.NotFound("Seller registration", nil))
	}

	return response.Success(c, seller)
}

type registerSellerRequest struct {
	Name               string `form:"name"`
	Description        string `form:"description"`
	SellerType         string `form:"seller_type" validate:"omitempty,oneof=activeSeller inactiveSeller testSeller other"`
	Address            string `form:"address"`
	SellMapCenter      string `form:"sell_map_center"`
	OrderOnlineEnabled string `form:"order_online_enabled_pref"`
	Email              string `form:"email"`
	PhoneNumber        string `form:"phone_number"`
}

// RegisterSeller upserts the caller's seller profile and, like the original
// registration flow, carries contact fields through to their settings.
func (h *SellerHandler) RegisterSeller(c echo.Context) error {
	authUser := middleware.CurrentUser(c)
	if authUser == nil {
		return response.Error(c, errors.Unauthorized("User not authenticated", nil))
	}

	var req registerSellerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid registration form", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	imageURL, err := uploadedImage(c, h.uploader, "sellers")
	if err != nil {
		return response.Error(c, err)
	}

	input := usecase.RegisterSellerInput{
		Name:          req.Name,
		Description:   req.Description,
		SellerType:    req.SellerType,
		Address:       req.Address,
		SellMapCenter: req.SellMapCenter,
	}
	if req.OrderOnlineEnabled != "" {
		enabled, err := strconv.ParseBool(req.OrderOnlineEnabled)
		if err != nil {
			return response.Error(c, errors.BadRequest("order_online_enabled_pref must be a boolean", err))
		}
		input.OrderOnlineEnabled = &enabled
	}

	seller, err := h.sellerUseCase.RegisterOrUpdate(c.Request().Context(), authUser, input, imageURL)
	if err != nil {
		return response.Error(c, err)
	}

	settingsInput := usecase.UserSettingsInput{}
	if req.Email != "" {
		settingsInput.Email = &req.Email
	}
	if req.PhoneNumber != "" {
		settingsInput.PhoneNumber = &req.PhoneNumber
	}
	settings, err := h.settingsUseCase.AddOrUpdate(c.Request().Context(), authUser, settingsInput, "")
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"seller":       seller,
		"email":        settings.Email,
		"phone_number": settings.PhoneNumber,
	})
}

// DeleteSeller removes only the caller's seller profile; settings, identity
// and past reviews stay.
func (h *SellerHandler) DeleteSeller(c echo.Context) error {
	authUser := middleware.CurrentUser(c)
	if authUser == nil {
		return response.Error(c, errors.Unauthorized("User not authenticated", nil))
	}

	deleted, err := h.sellerUseCase.Delete(c.Request().Context(), authUser.UID)
	if err != nil {
		return response.Error(c, err)
	}

	logger.Info("Deleted seller with ID %s", authUser.UID)
	return response.Success(c, map[string]interface{}{
		"message":       "Seller deleted successfully",
		"deletedSeller": deleted,
	})
}
