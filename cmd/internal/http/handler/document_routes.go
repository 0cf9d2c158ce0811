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

type DocumentService interface {
	Upload(ctx context.Context, actor *entity.UserProfile, req *contract.UploadDocumentRequest, fileName string, data []byte) (*contract.DocumentResponse, apierror.ErrorResponse)
	ListForUser(ctx context.Context, actor *entity.UserProfile) ([]*contract.DocumentResponse, apierror.ErrorResponse)
	ListForServiceRequest(ctx context.Context, actor *entity.UserProfile, requestID string) ([]*contract.DocumentResponse, apierror.ErrorResponse)
	GetDocument(ctx context.Context, actor *entity.UserProfile, id string) (*contract.DocumentResponse, apierror.ErrorResponse)
	DeleteDocument(ctx context.Context, actor *entity.UserProfile, id string) apierror.ErrorResponse
}

type DefaultDocumentRoute struct {
	DocumentService DocumentService
}

func NewDocumentRoute(documentService DocumentService) *DefaultDocumentRoute {
	return &DefaultDocumentRoute{DocumentService: documentService}
}

func (d *DefaultDocumentRoute) GetDocuments(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	requestID := strings.TrimSpace(c.QueryParam("service_request_id"))

	var (
		docs   []*contract.DocumentResponse
		apierr apierror.ErrorResponse
	)
	if requestID != "" {
		docs, apierr = d.DocumentService.ListForServiceRequest(c.Request().Context(), profile, requestID)
	} else {
		docs, apierr = d.DocumentService.ListForUser(c.Request().Context(), profile)
	}
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"documents": docs}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDocumentRoute) GetDocument(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	doc, apierr := d.DocumentService.GetDocument(c.Request().Context(), profile, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doc)
}

func (d *DefaultDocumentRoute) UploadDocument(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UploadDocumentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("file"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, contract.MaxDocumentFileSizeBytes+1))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}

	doc, apierr := d.DocumentService.Upload(c.Request().Context(), profile, &req, fileHeader.Filename, data)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, doc)
}

func (d *DefaultDocumentRoute) DeleteDocument(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	if apierr := d.DocumentService.DeleteDocument(c.Request().Context(), profile, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
