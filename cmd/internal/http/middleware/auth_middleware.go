package middleware

import (
	"net/http"

	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProfileService interface {
	EnsureProfile(sub, email string) (*entity.UserProfile, apierror.ErrorResponse)
}

type AuthMiddlewareConfig struct {
	Profiles ProfileService
}

// NewAuthMiddleware validates the Cognito token and attaches the caller's
// profile, creating it on first login.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			profile, apierr := cfg.Profiles.EnsureProfile(tokenData.Sub, tokenData.Email)
			if apierr != nil {
				return c.JSON(apierr.Code(), apierr)
			}

			c.Set("profile", profile)
			c.Set("sub", tokenData.Sub)
			return next(c)
		}
	}
}
