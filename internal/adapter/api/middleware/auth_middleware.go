package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"mapmarket/internal/domain/entity"
	"mapmarket/internal/domain/repository"
	apperrors "mapmarket/pkg/errors"
)

type AuthMiddleware struct {
	authClient *auth.Client
	userRepo   repository.UserRepository
}

func NewAuthMiddleware(authClient *auth.Client, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
		userRepo:   userRepo,
	}
}

// Authenticate verifies the bearer token and loads the local identity
// record, exposing it to handlers as "currentUser".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		token, err := m.authClient.VerifyIDToken(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), entity.ActorID(token.UID))
		if err != nil {
			if apperrors.IsNotFound(err) {
				return echo.NewHTTPError(http.StatusUnauthorized, "User is not registered")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load user")
		}

		c.Set("uid", token.UID)
		c.Set("currentUser", user)

		return next(c)
	}
}

// CurrentUser returns the authenticated actor set by Authenticate, or nil
// on unauthenticated routes.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get("currentUser").(*entity.User)
	return user
}
