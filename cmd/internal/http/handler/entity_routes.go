package handler

import (
	"context"
	"net/http"
	"strings"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type EntityService interface {
	ListCompanies() ([]*contract.CompanyResponse, apierror.ErrorResponse)
	GetCompany(id string) (*contract.CompanyResponse, apierror.ErrorResponse)
	CreateCompany(actor *entity.UserProfile, req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
	UpdateCompany(actor *entity.UserProfile, id string, req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
	LookupCompanyByCIN(ctx context.Context, cin string) (*contract.CompanyResponse, apierror.ErrorResponse)
	ListLLPs() ([]*contract.LLPResponse, apierror.ErrorResponse)
	GetLLP(id string) (*contract.LLPResponse, apierror.ErrorResponse)
	CreateLLP(actor *entity.UserProfile, req *contract.LLPRequest) (*contract.LLPResponse, apierror.ErrorResponse)
	CreateAssociation(actor *entity.UserProfile, req *contract.AssociationRequest) (*contract.AssociationResponse, apierror.ErrorResponse)
	ListAssociationsForUser(userID string) ([]*contract.AssociationResponse, apierror.ErrorResponse)
	AssignProfessional(actor *entity.UserProfile, req *contract.AssignmentRequest) (*contract.AssignmentResponse, apierror.ErrorResponse)
	ListAssignmentsForProfessional(professionalID string) ([]*contract.AssignmentResponse, apierror.ErrorResponse)
}

type DefaultEntityRoute struct {
	EntityService EntityService
}

func NewEntityRoute(entityService EntityService) *DefaultEntityRoute {
	return &DefaultEntityRoute{EntityService: entityService}
}

func (e *DefaultEntityRoute) GetCompanies(c echo.Context) error {
	if _, cerr := utils.GetProfileFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	companies, apierr := e.EntityService.ListCompanies()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"companies": companies}
	return c.JSON(http.StatusOK, &resp)
}

func (e *DefaultEntityRoute) GetCompany(c echo.Context) error {
	if _, cerr := utils.GetProfileFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	company, apierr := e.EntityService.GetCompany(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (e *DefaultEntityRoute) CreateCompany(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	company, apierr := e.EntityService.CreateCompany(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, company)
}

func (e *DefaultEntityRoute) UpdateCompany(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	var req contract.CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	company, apierr := e.EntityService.UpdateCompany(profile, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (e *DefaultEntityRoute) LookupCompany(c echo.Context) error {
	if _, cerr := utils.GetProfileFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	cin := strings.TrimSpace(c.Param("cin"))
	if cin == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("cin"))
	}

	company, apierr := e.EntityService.LookupCompanyByCIN(c.Request().Context(), cin)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (e *DefaultEntityRoute) GetLLPs(c echo.Context) error {
	if _, cerr := utils.GetProfileFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	llps, apierr := e.EntityService.ListLLPs()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"llps": llps}
	return c.JSON(http.StatusOK, &resp)
}

func (e *DefaultEntityRoute) GetLLP(c echo.Context) error {
	if _, cerr := utils.GetProfileFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	llp, apierr := e.EntityService.GetLLP(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, llp)
}

func (e *DefaultEntityRoute) CreateLLP(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.LLPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	llp, apierr := e.EntityService.CreateLLP(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, llp)
}

func (e *DefaultEntityRoute) CreateAssociation(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.AssociationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	assoc, apierr := e.EntityService.CreateAssociation(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, assoc)
}

// GetMyAssociations lists the caller's own entity associations.
func (e *DefaultEntityRoute) GetMyAssociations(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	assocs, apierr := e.EntityService.ListAssociationsForUser(profile.UserID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"associations": assocs}
	return c.JSON(http.StatusOK, &resp)
}

func (e *DefaultEntityRoute) AssignProfessional(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.AssignmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	assignment, apierr := e.EntityService.AssignProfessional(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, assignment)
}

// GetMyAssignments lists the professional's entity assignments.
func (e *DefaultEntityRoute) GetMyAssignments(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	assignments, apierr := e.EntityService.ListAssignmentsForProfessional(profile.UserID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"assignments": assignments}
	return c.JSON(http.StatusOK, &resp)
}
