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

type ServiceRequestService interface {
	CreateRequest(actor *entity.UserProfile, req *contract.CreateServiceRequestRequest) (*contract.ServiceRequestResponse, apierror.ErrorResponse)
	ListRequests(actor *entity.UserProfile, query *contract.ServiceRequestFilterQuery) (*contract.ServiceRequestListResponse, apierror.ErrorResponse)
	ListForProfessional(actor *entity.UserProfile) (*contract.ServiceRequestListResponse, apierror.ErrorResponse)
	GetRequest(actor *entity.UserProfile, id string) (*contract.ServiceRequestResponse, apierror.ErrorResponse)
	ProcessRequest(actor *entity.UserProfile, id string, req *contract.ProcessServiceRequestRequest) (*contract.ServiceRequestResponse, apierror.ErrorResponse)
	DeleteRequest(actor *entity.UserProfile, id string) apierror.ErrorResponse
}

type DefaultServiceRequestRoute struct {
	RequestService ServiceRequestService
}

func NewServiceRequestRoute(requestService ServiceRequestService) *DefaultServiceRequestRoute {
	return &DefaultServiceRequestRoute{RequestService: requestService}
}

func (s *DefaultServiceRequestRoute) GetRequests(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var query contract.ServiceRequestFilterQuery
	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := s.RequestService.ListRequests(profile, &query)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetAssignedRequests returns the professional's working set: requests
// they already process plus open requests from directors at their
// assigned entities.
func (s *DefaultServiceRequestRoute) GetAssignedRequests(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := s.RequestService.ListForProfessional(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *DefaultServiceRequestRoute) GetRequest(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	resp, apierr := s.RequestService.GetRequest(profile, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *DefaultServiceRequestRoute) CreateRequest(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateServiceRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := s.RequestService.CreateRequest(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (s *DefaultServiceRequestRoute) ProcessRequest(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	var req contract.ProcessServiceRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := s.RequestService.ProcessRequest(profile, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *DefaultServiceRequestRoute) DeleteRequest(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	if apierr := s.RequestService.DeleteRequest(profile, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
