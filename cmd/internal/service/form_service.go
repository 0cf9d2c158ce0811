package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/domain/forms"
	"compliancedesk/cmd/internal/domain/workflow"
	"compliancedesk/cmd/internal/infrastructure/aws/storage"
	"compliancedesk/cmd/internal/utils"

	"github.com/google/uuid"
)

// SystemUploader marks documents produced by the application itself
// rather than uploaded by a user.
const SystemUploader = "SYSTEM"

type DefaultFormService struct {
	DocumentRepo DocumentRepository
	S3           storage.S3Client

	// Now is the clock used to stamp forms; injectable so rendering is
	// deterministic under test.
	Now func() time.Time
}

func NewFormService(documentRepo DocumentRepository, s3 storage.S3Client) *DefaultFormService {
	return &DefaultFormService{
		DocumentRepo: documentRepo,
		S3:           s3,
		Now:          time.Now,
	}
}

// GenerateAppointmentForms renders DIR-2, DIR-8 and MBP-1 for the
// collected director record, stores each under the entity's
// generated-forms prefix and returns the created document IDs.
func (f *DefaultFormService) GenerateAppointmentForms(ctx context.Context, md workflow.AppointmentMetadata) ([]string, error) {
	if md.DirectorInfo == nil {
		return nil, fmt.Errorf("director info not collected")
	}

	info := *md.DirectorInfo
	req := md.AppointmentRequest
	signedOn := f.Now().UTC()
	date := signedOn.Format("2006-01-02")
	stamp := signedOn.UnixMilli()

	ids := make([]string, 0, len(forms.RequiredForms))
	for _, form := range forms.RequiredForms {
		content, err := forms.Render(form, info, req.EntityName, date)
		if err != nil {
			return nil, err
		}

		key := generatedFormKey(req.EntityID, form, info.DIN, stamp)
		if err := f.S3.UploadFile(ctx, []byte(content), key); err != nil {
			return nil, fmt.Errorf("store %s: %w", form, err)
		}

		now := utils.NowUTC()
		doc := &entity.Document{
			ID:           uuid.NewString(),
			FileName:     fmt.Sprintf("%s_%s.txt", form, info.DIN),
			DocumentName: fmt.Sprintf("%s for %s", form, info.FullName),
			FileKey:      key,
			FileSize:     int64(len(content)),
			MimeType:     "text/plain; charset=utf-8",
			UploadedBy:   SystemUploader,
			UploadedAt:   now,
			DocumentType: entity.DocumentTypeComplianceCertificate,
			EntityID:     req.EntityID,
			EntityType:   req.EntityType,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if err := f.DocumentRepo.Save(doc); err != nil {
			return nil, fmt.Errorf("record %s: %w", form, err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

func generatedFormKey(entityID string, form forms.FormType, din string, stamp int64) string {
	// Keys stay filesystem-safe: the form name's hyphen is kept, only
	// spaces would be a problem and form names carry none.
	name := strings.ReplaceAll(string(form), " ", "_")
	return fmt.Sprintf("entities/%s/generated-forms/%s_%s_%d.txt", entityID, name, din, stamp)
}
