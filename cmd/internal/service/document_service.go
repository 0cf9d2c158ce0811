package service

import (
	"context"
	"fmt"
	"mime"
	"net/http"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/infrastructure/aws/storage"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type DocumentRepository interface {
	FindByID(id string) (*entity.Document, error)
	FindAll() ([]*entity.Document, error)
	FindByServiceRequest(requestID string) ([]*entity.Document, error)
	FindByEntity(entityID string) ([]*entity.Document, error)
	FindVisibleTo(uploaderIDs []string) ([]*entity.Document, error)
	Save(doc *entity.Document) error
	Delete(doc *entity.Document) error
}

type DefaultDocumentService struct {
	DocumentRepo    DocumentRepository
	AssociationRepo AssociationRepository
	AssignmentRepo  AssignmentRepository
	S3              storage.S3Client
	Validate        *validator.Validate
}

func NewDocumentService(
	documentRepo DocumentRepository,
	associationRepo AssociationRepository,
	assignmentRepo AssignmentRepository,
	s3 storage.S3Client,
	validate *validator.Validate,
) *DefaultDocumentService {
	return &DefaultDocumentService{
		DocumentRepo:    documentRepo,
		AssociationRepo: associationRepo,
		AssignmentRepo:  assignmentRepo,
		S3:              s3,
		Validate:        validate,
	}
}

// Upload stores the file in S3 first and the metadata record second. The
// two writes are not atomic: a record failure leaves an orphaned object,
// which is preferable to a record pointing at a missing object.
func (d *DefaultDocumentService) Upload(ctx context.Context, actor *entity.UserProfile, req *contract.UploadDocumentRequest, fileName string, data []byte) (*contract.DocumentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := d.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if len(data) == 0 || len(data) > contract.MaxDocumentFileSizeBytes {
		structured := apierror.NewStructured(400)
		structured.Add("file", fmt.Sprintf("File must be between 1 byte and %d bytes", contract.MaxDocumentFileSizeBytes))
		return nil, structured
	}
	ext, ok := utils.CheckFileExt(fileName, contract.ValidDocumentFileTypes)
	if !ok {
		structured := apierror.NewStructured(400)
		structured.Add("file", "Unsupported file type")
		return nil, structured
	}

	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	key := fmt.Sprintf("documents/%s/%s_%s", actor.UserID, uuid.NewString(), fileName)
	if err := d.S3.UploadFile(ctx, data, key); err != nil {
		log.Errorf("failed to upload document: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	doc := &entity.Document{
		ID:               uuid.NewString(),
		FileName:         fileName,
		DocumentName:     req.DocumentName,
		FileKey:          key,
		FileSize:         int64(len(data)),
		MimeType:         mimeType,
		UploadedBy:       actor.UserID,
		UploadedAt:       now,
		DocumentType:     entity.DocumentType(req.DocumentType),
		EntityID:         req.EntityID,
		EntityType:       entity.EntityType(req.EntityType),
		ServiceRequestID: req.ServiceRequestID,
		IsPublic:         req.IsPublic,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := d.DocumentRepo.Save(doc); err != nil {
		log.Errorf("failed to save document record for key %s: %v", key, err)
		return nil, apierror.InternalServerError
	}
	return d.toResponse(ctx, doc), nil
}

// ListForUser returns the documents the actor may see. Directors see
// only their own uploads; professionals additionally see the uploads of
// directors at their assigned entities, system-generated forms, and
// public documents; admins see everything.
func (d *DefaultDocumentService) ListForUser(ctx context.Context, actor *entity.UserProfile) ([]*contract.DocumentResponse, apierror.ErrorResponse) {
	var (
		docs []*entity.Document
		err  error
	)

	switch actor.Role {
	case entity.RoleAdmin:
		docs, err = d.DocumentRepo.FindAll()
	case entity.RoleProfessionals:
		uploaders, apierr := d.visibleUploaders(actor)
		if apierr != nil {
			return nil, apierr
		}
		docs, err = d.DocumentRepo.FindVisibleTo(uploaders)
	default:
		docs, err = d.DocumentRepo.FindVisibleTo([]string{actor.UserID})
	}
	if err != nil {
		log.Errorf("failed to fetch documents: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.DocumentResponse, len(docs))
	for i, doc := range docs {
		resp[i] = d.toResponse(ctx, doc)
	}
	return resp, nil
}

func (d *DefaultDocumentService) ListForServiceRequest(ctx context.Context, actor *entity.UserProfile, requestID string) ([]*contract.DocumentResponse, apierror.ErrorResponse) {
	docs, err := d.DocumentRepo.FindByServiceRequest(requestID)
	if err != nil {
		log.Errorf("failed to fetch documents: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		if apierr := d.canSee(actor, doc); apierr != nil {
			continue
		}
		resp = append(resp, d.toResponse(ctx, doc))
	}
	return resp, nil
}

func (d *DefaultDocumentService) GetDocument(ctx context.Context, actor *entity.UserProfile, id string) (*contract.DocumentResponse, apierror.ErrorResponse) {
	doc, err := d.DocumentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch document: %v", err)
		return nil, apierror.InternalServerError
	}

	if doc == nil {
		return nil, apierror.NotFoundError
	}
	if apierr := d.canSee(actor, doc); apierr != nil {
		return nil, apierr
	}
	return d.toResponse(ctx, doc), nil
}

// DeleteDocument removes the record first and the S3 object second; an
// object deletion failure only orphans storage, never the listing.
func (d *DefaultDocumentService) DeleteDocument(ctx context.Context, actor *entity.UserProfile, id string) apierror.ErrorResponse {
	doc, err := d.DocumentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch document: %v", err)
		return apierror.InternalServerError
	}

	if doc == nil {
		return apierror.NotFoundError
	}
	if doc.UploadedBy != actor.UserID && actor.Role != entity.RoleAdmin {
		return apierror.ForbiddenError
	}

	if err := d.DocumentRepo.Delete(doc); err != nil {
		log.Errorf("failed to delete document: %v", err)
		return apierror.InternalServerError
	}

	if err := d.S3.DeleteFile(ctx, doc.FileKey); err != nil {
		log.Errorf("failed to delete object %s: %v", doc.FileKey, err)
	}
	return nil
}

func (d *DefaultDocumentService) canSee(actor *entity.UserProfile, doc *entity.Document) apierror.ErrorResponse {
	if doc.IsPublic || actor.Role == entity.RoleAdmin {
		return nil
	}
	if doc.UploadedBy == actor.UserID {
		return nil
	}

	if actor.Role == entity.RoleProfessionals {
		uploaders, apierr := d.visibleUploaders(actor)
		if apierr != nil {
			return apierr
		}
		for _, id := range uploaders {
			if id == doc.UploadedBy {
				return nil
			}
		}
	}
	return apierror.ForbiddenError
}

// visibleUploaders collects every uploader a professional may read:
// themselves, system-generated forms, and the directors associated with
// their assigned entities.
func (d *DefaultDocumentService) visibleUploaders(actor *entity.UserProfile) ([]string, apierror.ErrorResponse) {
	uploaders := []string{actor.UserID, SystemUploader}

	assignments, err := d.AssignmentRepo.FindActiveByProfessional(actor.UserID)
	if err != nil {
		log.Errorf("failed to fetch assignments: %v", err)
		return nil, apierror.InternalServerError
	}

	seen := map[string]bool{actor.UserID: true, SystemUploader: true}
	for _, assignment := range assignments {
		assocs, err := d.AssociationRepo.FindAllByEntity(assignment.EntityID)
		if err != nil {
			log.Errorf("failed to fetch associations: %v", err)
			return nil, apierror.InternalServerError
		}
		for _, assoc := range assocs {
			if !seen[assoc.UserID] {
				seen[assoc.UserID] = true
				uploaders = append(uploaders, assoc.UserID)
			}
		}
	}
	return uploaders, nil
}

func (d *DefaultDocumentService) toResponse(ctx context.Context, doc *entity.Document) *contract.DocumentResponse {
	resp := &contract.DocumentResponse{
		ID:               doc.ID,
		FileName:         doc.FileName,
		DocumentName:     doc.DocumentName,
		FileSize:         doc.FileSize,
		MimeType:         doc.MimeType,
		UploadedBy:       doc.UploadedBy,
		UploadedAt:       utils.FormatEpoch(doc.UploadedAt),
		DocumentType:     string(doc.DocumentType),
		EntityID:         doc.EntityID,
		EntityType:       string(doc.EntityType),
		ServiceRequestID: doc.ServiceRequestID,
		IsPublic:         doc.IsPublic,
		CreatedAt:        utils.FormatEpoch(doc.CreatedAt),
	}

	url, err := d.S3.PresignGet(ctx, doc.FileKey)
	if err != nil {
		log.Errorf("failed to presign %s: %v", doc.FileKey, err)
		return resp
	}
	resp.DownloadURL = url
	return resp
}
