package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProfileService interface {
	GetByUserID(userID string) (*contract.ProfileResponse, apierror.ErrorResponse)
	GetByDIN(din string) (*contract.ProfileResponse, apierror.ErrorResponse)
	ListByRole(role entity.Role) ([]*contract.ProfileResponse, apierror.ErrorResponse)
	FindOrCreateByEmail(actor *entity.UserProfile, req *contract.CreateProfileRequest) (*contract.ProfileResponse, apierror.ErrorResponse)
	UpdateProfile(actor *entity.UserProfile, req *contract.UpdateProfileRequest) (*contract.ProfileResponse, apierror.ErrorResponse)
	ClaimPendingDIN(actor *entity.UserProfile) (*contract.ProfileResponse, apierror.ErrorResponse)
	UploadPANDocument(ctx context.Context, actor *entity.UserProfile, fileName string, data []byte) (*contract.ProfileResponse, apierror.ErrorResponse)
	UploadESignature(ctx context.Context, actor *entity.UserProfile, fileName string, data []byte) (*contract.ProfileResponse, apierror.ErrorResponse)
}

type DefaultProfileRoute struct {
	ProfileService ProfileService
}

func NewProfileRoute(profileService ProfileService) *DefaultProfileRoute {
	return &DefaultProfileRoute{ProfileService: profileService}
}

func (p *DefaultProfileRoute) GetMe(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := p.ProfileService.GetByUserID(profile.UserID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *DefaultProfileRoute) UpdateMe(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := p.ProfileService.UpdateProfile(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *DefaultProfileRoute) ClaimDIN(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := p.ProfileService.ClaimPendingDIN(profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *DefaultProfileRoute) UploadPANDocument(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	fileName, data, cerr := readAttachment(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := p.ProfileService.UploadPANDocument(c.Request().Context(), profile, fileName, data)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *DefaultProfileRoute) UploadESignature(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	fileName, data, cerr := readAttachment(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := p.ProfileService.UploadESignature(c.Request().Context(), profile, fileName, data)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func readAttachment(c echo.Context) (string, []byte, apierror.ErrorResponse) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, apierror.NewMissingParamError("file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, contract.MaxProfileAttachmentSizeBytes+1))
	if err != nil {
		return "", nil, apierror.InternalServerError
	}
	return fileHeader.Filename, data, nil
}

func (p *DefaultProfileRoute) GetByDIN(c echo.Context) error {
	if _, cerr := utils.GetProfileFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	din := strings.TrimSpace(c.Param("din"))
	if din == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("din"))
	}

	resp, apierr := p.ProfileService.GetByDIN(din)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *DefaultProfileRoute) ListProfessionals(c echo.Context) error {
	if _, cerr := utils.GetProfileFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	profiles, apierr := p.ProfileService.ListByRole(entity.RoleProfessionals)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"profiles": profiles}
	return c.JSON(http.StatusOK, &resp)
}

// CreateProfile lets professionals pre-create a director profile by email
// ahead of signup.
func (p *DefaultProfileRoute) CreateProfile(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	resp, apierr := p.ProfileService.FindOrCreateByEmail(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}
