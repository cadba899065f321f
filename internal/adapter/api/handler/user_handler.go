package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"mapmarket/internal/adapter/api/middleware"
	"mapmarket/internal/domain/entity"
	"mapmarket/internal/usecase"
	"mapmarket/pkg/errors"
	"mapmarket/pkg/logger"
	"mapmarket/pkg/response"
)

type UserHandler struct {
	userUseCase  *usecase.UserUseCase
	firebaseAuth usecase.FirebaseAuthClient
}

func NewUserHandler(userUseCase *usecase.UserUseCase, firebaseAuth usecase.FirebaseAuthClient) *UserHandler {
	return &UserHandler{
		userUseCase:  userUseCase,
		firebaseAuth: firebaseAuth,
	}
}

type authenticateRequest struct {
	Username string `json:"username" validate:"required"`
}

// AuthenticateUser verifies the caller's token with the auth collaborator
// and creates the local identity record on first sight.
func (h *UserHandler) AuthenticateUser(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	uid, err := h.firebaseAuth.VerifyToken(c.Request().Context(), parts[1])
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	var req authenticateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid authentication payload", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.Authenticate(c.Request().Context(), entity.ActorID(uid), req.Username)
	if err != nil {
		return response.Error(c, err)
	}

	logger.Info("User authenticated: %s", user.UID)
	return response.Success(c, user)
}

func (h *UserHandler) AutoLoginUser(c echo.Context) error {
	authUser := middleware.CurrentUser(c)
	if authUser == nil {
		return response.Error(c, errors.Unauthorized("User not authenticated", nil))
	}

	logger.Info("Auto-login successful for user %s", authUser.UID)
	return response.Success(c, authUser)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	uid := entity.ActorID(c.Param("uid"))

	user, err := h.userUseCase.GetByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	if user == nil {
		logger.Warn("User not found with UID %s", uid)
		return response.Error(c, errors.NotFound("User", nil))
	}

	return response.Success(c, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	uid := entity.ActorID(c.Param("uid"))
	authUser := middleware.CurrentUser(c)

	if err := h.userUseCase.Delete(c.Request().Context(), authUser, uid); err != nil {
		return response.Error(c, err)
	}

	logger.Info("Deleted user with UID %s", uid)
	return response.Success(c, map[string]interface{}{
		"message": "User deleted successfully",
	})
}
