package utils

import (
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func GetProfileFromContext(c echo.Context) (*entity.UserProfile, apierror.ErrorResponse) {
	val := c.Get("profile")
	if val == nil {
		log.Warnf("route %s attempted to read nil profile from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	profile, ok := val.(*entity.UserProfile)
	if !ok {
		log.Warnf("expected profile type at 'profile' context key, got %v", val)
		return nil, apierror.InternalServerError
	}
	return profile, nil
}
