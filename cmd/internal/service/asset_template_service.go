package service

import (
	"context"
	"fmt"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/domain/policy"
	"compliancedesk/cmd/internal/infrastructure/aws/storage"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type AssetTemplateRepository interface {
	FindByID(id string) (*entity.AssetTemplate, error)
	FindAllActive() ([]*entity.AssetTemplate, error)
	FindAll() ([]*entity.AssetTemplate, error)
	Save(tmpl *entity.AssetTemplate) error
	Delete(tmpl *entity.AssetTemplate) error
}

type DefaultAssetTemplateService struct {
	TemplateRepo AssetTemplateRepository
	S3           storage.S3Client
	Policy       *policy.EntityPolicy
	Validate     *validator.Validate
}

func NewAssetTemplateService(templateRepo AssetTemplateRepository, s3 storage.S3Client, validate *validator.Validate) *DefaultAssetTemplateService {
	return &DefaultAssetTemplateService{
		TemplateRepo: templateRepo,
		S3:           s3,
		Policy:       policy.NewEntityPolicy(),
		Validate:     validate,
	}
}

// ListTemplates returns active templates for regular users; admins see
// inactive ones too.
func (a *DefaultAssetTemplateService) ListTemplates(ctx context.Context, actor *entity.UserProfile) ([]*contract.AssetTemplateResponse, apierror.ErrorResponse) {
	var (
		templates []*entity.AssetTemplate
		err       error
	)

	if actor.Role == entity.RoleAdmin {
		templates, err = a.TemplateRepo.FindAll()
	} else {
		templates, err = a.TemplateRepo.FindAllActive()
	}
	if err != nil {
		log.Errorf("failed to fetch asset templates: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.AssetTemplateResponse, len(templates))
	for i, tmpl := range templates {
		resp[i] = a.toResponse(ctx, tmpl)
	}
	return resp, nil
}

func (a *DefaultAssetTemplateService) CreateTemplate(ctx context.Context, actor *entity.UserProfile, req *contract.AssetTemplateRequest, fileName string, data []byte) (*contract.AssetTemplateResponse, apierror.ErrorResponse) {
	if apierr := a.Policy.CanAdministerTemplates(actor); apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	var key string
	if len(data) > 0 {
		key = fmt.Sprintf("templates/%s_%s", uuid.NewString(), fileName)
		if err := a.S3.UploadFile(ctx, data, key); err != nil {
			log.Errorf("failed to upload template asset: %v", err)
			return nil, apierror.InternalServerError
		}
	}

	now := utils.NowUTC()
	tmpl := &entity.AssetTemplate{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		FileKey:     key,
		IsActive:    true,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsActive != nil {
		tmpl.IsActive = *req.IsActive
	}

	if err := a.TemplateRepo.Save(tmpl); err != nil {
		log.Errorf("failed to save asset template: %v", err)
		return nil, apierror.InternalServerError
	}
	return a.toResponse(ctx, tmpl), nil
}

func (a *DefaultAssetTemplateService) UpdateTemplate(ctx context.Context, actor *entity.UserProfile, id string, req *contract.AssetTemplateRequest) (*contract.AssetTemplateResponse, apierror.ErrorResponse) {
	if apierr := a.Policy.CanAdministerTemplates(actor); apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	tmpl, err := a.TemplateRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch asset template: %v", err)
		return nil, apierror.InternalServerError
	}

	if tmpl == nil {
		return nil, apierror.NotFoundError
	}

	tmpl.Name = req.Name
	tmpl.Description = req.Description
	tmpl.Category = req.Category
	if req.IsActive != nil {
		tmpl.IsActive = *req.IsActive
	}
	tmpl.UpdatedAt = utils.NowUTC()

	if err := a.TemplateRepo.Save(tmpl); err != nil {
		log.Errorf("failed to update asset template: %v", err)
		return nil, apierror.InternalServerError
	}
	return a.toResponse(ctx, tmpl), nil
}

func (a *DefaultAssetTemplateService) DeleteTemplate(ctx context.Context, actor *entity.UserProfile, id string) apierror.ErrorResponse {
	if apierr := a.Policy.CanAdministerTemplates(actor); apierr != nil {
		return apierr
	}

	tmpl, err := a.TemplateRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch asset template: %v", err)
		return apierror.InternalServerError
	}

	if tmpl == nil {
		return apierror.NotFoundError
	}

	if err := a.TemplateRepo.Delete(tmpl); err != nil {
		log.Errorf("failed to delete asset template: %v", err)
		return apierror.InternalServerError
	}

	if tmpl.FileKey != "" {
		if err := a.S3.DeleteFile(ctx, tmpl.FileKey); err != nil {
			log.Errorf("failed to delete template asset %s: %v", tmpl.FileKey, err)
		}
	}
	return nil
}

func (a *DefaultAssetTemplateService) toResponse(ctx context.Context, tmpl *entity.AssetTemplate) *contract.AssetTemplateResponse {
	resp := &contract.AssetTemplateResponse{
		ID:          tmpl.ID,
		Name:        tmpl.Name,
		Description: tmpl.Description,
		Category:    tmpl.Category,
		IsActive:    tmpl.IsActive,
		CreatedBy:   tmpl.CreatedBy,
		CreatedAt:   utils.FormatEpoch(tmpl.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(tmpl.UpdatedAt),
	}

	if tmpl.FileKey != "" {
		url, err := a.S3.PresignGet(ctx, tmpl.FileKey)
		if err != nil {
			log.Errorf("failed to presign %s: %v", tmpl.FileKey, err)
			return resp
		}
		resp.DownloadURL = url
	}
	return resp
}
