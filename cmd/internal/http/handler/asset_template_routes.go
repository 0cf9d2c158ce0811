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

type AssetTemplateService interface {
	ListTemplates(ctx context.Context, actor *entity.UserProfile) ([]*contract.AssetTemplateResponse, apierror.ErrorResponse)
	CreateTemplate(ctx context.Context, actor *entity.UserProfile, req *contract.AssetTemplateRequest, fileName string, data []byte) (*contract.AssetTemplateResponse, apierror.ErrorResponse)
	UpdateTemplate(ctx context.Context, actor *entity.UserProfile, id string, req *contract.AssetTemplateRequest) (*contract.AssetTemplateResponse, apierror.ErrorResponse)
	DeleteTemplate(ctx context.Context, actor *entity.UserProfile, id string) apierror.ErrorResponse
}

type DefaultAssetTemplateRoute struct {
	TemplateService AssetTemplateService
}

func NewAssetTemplateRoute(templateService AssetTemplateService) *DefaultAssetTemplateRoute {
	return &DefaultAssetTemplateRoute{TemplateService: templateService}
}

func (a *DefaultAssetTemplateRoute) GetTemplates(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	templates, apierr := a.TemplateService.ListTemplates(c.Request().Context(), profile)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"templates": templates}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAssetTemplateRoute) CreateTemplate(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.AssetTemplateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	var (
		fileName string
		data     []byte
	)
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
		}
		defer file.Close()

		data, err = io.ReadAll(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
		}
		fileName = fileHeader.Filename
	}

	tmpl, apierr := a.TemplateService.CreateTemplate(c.Request().Context(), profile, &req, fileName, data)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, tmpl)
}

func (a *DefaultAssetTemplateRoute) UpdateTemplate(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	var req contract.AssetTemplateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	tmpl, apierr := a.TemplateService.UpdateTemplate(c.Request().Context(), profile, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, tmpl)
}

func (a *DefaultAssetTemplateRoute) DeleteTemplate(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	if apierr := a.TemplateService.DeleteTemplate(c.Request().Context(), profile, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
