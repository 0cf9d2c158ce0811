package handler

import (
	"net/http"
	"strings"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type NotificationService interface {
	ListForUser(actor *entity.UserProfile) ([]*contract.NotificationResponse, apierror.ErrorResponse)
	UnreadCount(actor *entity.UserProfile) (int, apierror.ErrorResponse)
	MarkRead(actor *entity.UserProfile, id string) (*contract.NotificationResponse, apierror.ErrorResponse)
}

type DefaultNotificationRoute struct {
	NotificationService NotificationService
}

func NewNotificationRoute(notificationService NotificationService) *DefaultNotificationRoute {
	return &DefaultNotificationRoute{NotificationService: notificationService}
}

func (n *DefaultNotificationRoute) GetNotifications(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notifs, apierr := n.NotificationService.ListForUser(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notifications": notifs}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNotificationRoute) GetUnreadCount(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	count, apierr := n.NotificationService.UnreadCount(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"unread": count}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNotificationRoute) MarkRead(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	notif, apierr := n.NotificationService.MarkRead(profile, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notif)
}
