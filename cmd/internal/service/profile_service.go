package service

import (
	"context"
	"fmt"
	"strings"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/infrastructure/aws/storage"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type ProfileRepository interface {
	FindByID(id string) (*entity.UserProfile, error)
	FindByUserID(userID string) (*entity.UserProfile, error)
	FindByEmail(email string) (*entity.UserProfile, error)
	FindByDIN(din string) (*entity.UserProfile, error)
	FindAllByRole(role entity.Role) ([]*entity.UserProfile, error)
	FindAllInUserIDs(userIDs []string) ([]*entity.UserProfile, error)
	Save(profile *entity.UserProfile) error
}

type PendingDirectorRepository interface {
	FindByID(id string) (*entity.PendingDirector, error)
	FindPendingByDIN(din string) (*entity.PendingDirector, error)
	FindPendingByEmail(email string) (*entity.PendingDirector, error)
	FindExpired(now int64) ([]*entity.PendingDirector, error)
	Save(pd *entity.PendingDirector) error
}

type DefaultProfileService struct {
	ProfileRepo     ProfileRepository
	PendingRepo     PendingDirectorRepository
	AssociationRepo AssociationRepository
	TaskRepo        TaskRepository
	S3              storage.S3Client
	Validate        *validator.Validate
}

func NewProfileService(
	profileRepo ProfileRepository,
	pendingRepo PendingDirectorRepository,
	associationRepo AssociationRepository,
	taskRepo TaskRepository,
	s3 storage.S3Client,
	validate *validator.Validate,
) *DefaultProfileService {
	return &DefaultProfileService{
		ProfileRepo:     profileRepo,
		PendingRepo:     pendingRepo,
		AssociationRepo: associationRepo,
		TaskRepo:        taskRepo,
		S3:              s3,
		Validate:        validate,
	}
}

// EnsureProfile looks up the profile for an authenticated token, creating
// it on first login. A PendingDirector association matching the email is
// claimed here: the DIN lands on the new profile immediately.
func (p *DefaultProfileService) EnsureProfile(sub, email string) (*entity.UserProfile, apierror.ErrorResponse) {
	profile, err := p.ProfileRepo.FindByUserID(sub)
	if err != nil {
		log.Errorf("failed to fetch profile: %v", err)
		return nil, apierror.InternalServerError
	}

	if profile != nil {
		return profile, nil
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	now := utils.NowUTC()
	profile = &entity.UserProfile{
		ID:        uuid.NewString(),
		UserID:    sub,
		Email:     normalized,
		Role:      entity.RoleDirectors,
		DSCStatus: entity.DSCStatusNotAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}

	p.claimPendingDIN(profile)

	if err := p.ProfileRepo.Save(profile); err != nil {
		log.Errorf("failed to create profile: %v", err)
		return nil, apierror.InternalServerError
	}
	return profile, nil
}

// ClaimPendingDIN re-checks the pending associations for an existing
// profile that signed up before the association was created.
func (p *DefaultProfileService) ClaimPendingDIN(actor *entity.UserProfile) (*contract.ProfileResponse, apierror.ErrorResponse) {
	if actor.DIN != "" {
		return p.toResponse(actor), nil
	}

	if !p.claimPendingDIN(actor) {
		return p.toResponse(actor), nil
	}

	actor.UpdatedAt = utils.NowUTC()
	if err := p.ProfileRepo.Save(actor); err != nil {
		log.Errorf("failed to update profile: %v", err)
		return nil, apierror.InternalServerError
	}
	return p.toResponse(actor), nil
}

func (p *DefaultProfileService) claimPendingDIN(profile *entity.UserProfile) bool {
	pending, err := p.PendingRepo.FindPendingByEmail(profile.Email)
	if err != nil {
		log.Errorf("failed to check pending directors: %v", err)
		return false
	}

	if pending == nil {
		return false
	}

	if pending.ExpiresAt <= utils.NowUTC() {
		return false
	}

	profile.DIN = pending.DIN
	profile.DINStatus = entity.DINStatusActive
	if profile.DisplayName == "" {
		profile.DisplayName = pending.DirectorName
	}

	if pending.EntityID != "" {
		p.carryPendingAssociation(profile, pending)
	}

	pending.Status = entity.PendingDirectorStatusClaimed
	pending.UpdatedAt = utils.NowUTC()
	if err := p.PendingRepo.Save(pending); err != nil {
		log.Errorf("failed to mark pending director claimed: %v", err)
	}
	return true
}

// carryPendingAssociation moves the entity link recorded on a pending
// director onto the claimed profile as an inactive association. The
// appointment pipeline activates it when the forms are generated.
func (p *DefaultProfileService) carryPendingAssociation(profile *entity.UserProfile, pending *entity.PendingDirector) {
	existing, err := p.AssociationRepo.FindByUserAndEntity(profile.UserID, pending.EntityID)
	if err != nil {
		log.Errorf("failed to check association: %v", err)
		return
	}
	if existing != nil {
		return
	}

	now := utils.NowUTC()
	assoc := &entity.DirectorAssociation{
		ID:              uuid.NewString(),
		UserID:          profile.UserID,
		EntityID:        pending.EntityID,
		EntityType:      pending.EntityType,
		AssociationType: entity.AssociationTypeDirector,
		DIN:             pending.DIN,
		IsActive:        false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := p.AssociationRepo.Save(assoc); err != nil {
		log.Errorf("failed to save association: %v", err)
	}
}

// FindOrCreateByEmail is used by professionals linking a director that may
// not have signed up yet. The created profile carries a placeholder UserID
// until the account is claimed on first login.
func (p *DefaultProfileService) FindOrCreateByEmail(actor *entity.UserProfile, req *contract.CreateProfileRequest) (*contract.ProfileResponse, apierror.ErrorResponse) {
	if actor.Role != entity.RoleProfessionals && actor.Role != entity.RoleAdmin {
		return nil, apierror.ForbiddenError
	}

	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	normalized := strings.ToLower(req.Email)
	existing, err := p.ProfileRepo.FindByEmail(normalized)
	if err != nil {
		log.Errorf("failed to fetch profile: %v", err)
		return nil, apierror.InternalServerError
	}
	if existing != nil {
		return p.toResponse(existing), nil
	}

	now := utils.NowUTC()
	profile := &entity.UserProfile{
		ID:          uuid.NewString(),
		UserID:      PlaceholderUserIDPrefix + normalized,
		Email:       normalized,
		Role:        entity.Role(req.Role),
		DisplayName: req.DisplayName,
		DIN:         req.DIN,
		PAN:         req.PAN,
		DSCStatus:   entity.DSCStatusNotAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if profile.DIN != "" {
		profile.DINStatus = entity.DINStatusActive
	}

	if err := p.ProfileRepo.Save(profile); err != nil {
		log.Errorf("failed to create profile: %v", err)
		return nil, apierror.InternalServerError
	}
	return p.toResponse(profile), nil
}

func (p *DefaultProfileService) GetByUserID(userID string) (*contract.ProfileResponse, apierror.ErrorResponse) {
	profile, err := p.ProfileRepo.FindByUserID(userID)
	if err != nil {
		log.Errorf("failed to fetch profile: %v", err)
		return nil, apierror.InternalServerError
	}

	if profile == nil {
		return nil, apierror.NotFoundError
	}
	return p.toResponse(profile), nil
}

func (p *DefaultProfileService) GetByEmail(email string) (*contract.ProfileResponse, apierror.ErrorResponse) {
	profile, err := p.ProfileRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		log.Errorf("failed to fetch profile: %v", err)
		return nil, apierror.InternalServerError
	}

	if profile == nil {
		return nil, apierror.NotFoundError
	}
	return p.toResponse(profile), nil
}

func (p *DefaultProfileService) GetByDIN(din string) (*contract.ProfileResponse, apierror.ErrorResponse) {
	profile, err := p.ProfileRepo.FindByDIN(din)
	if err != nil {
		log.Errorf("failed to fetch profile: %v", err)
		return nil, apierror.InternalServerError
	}

	if profile == nil {
		return nil, apierror.NotFoundError
	}
	return p.toResponse(profile), nil
}

func (p *DefaultProfileService) ListByRole(role entity.Role) ([]*contract.ProfileResponse, apierror.ErrorResponse) {
	profiles, err := p.ProfileRepo.FindAllByRole(role)
	if err != nil {
		log.Errorf("failed to list profiles: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ProfileResponse, len(profiles))
	for i, profile := range profiles {
		resp[i] = p.toResponse(profile)
	}
	return resp, nil
}

func (p *DefaultProfileService) UpdateProfile(actor *entity.UserProfile, req *contract.UpdateProfileRequest) (*contract.ProfileResponse, apierror.ErrorResponse) {
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.DIN != nil && *req.DIN != actor.DIN {
		existing, err := p.ProfileRepo.FindByDIN(*req.DIN)
		if err != nil {
			log.Errorf("failed to check DIN uniqueness: %v", err)
			return nil, apierror.InternalServerError
		}
		if existing != nil && existing.ID != actor.ID {
			return nil, apierror.DINAlreadyTakenError
		}
		actor.DIN = *req.DIN
		actor.DINStatus = entity.DINStatusActive
	}

	if req.DisplayName != nil {
		actor.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.DINStatus != nil {
		actor.DINStatus = entity.DINStatus(*req.DINStatus)
	}
	if req.DSCStatus != nil {
		actor.DSCStatus = entity.DSCStatus(*req.DSCStatus)
	}
	if req.PAN != nil {
		actor.PAN = *req.PAN
	}

	actor.UpdatedAt = utils.NowUTC()
	if err := p.ProfileRepo.Save(actor); err != nil {
		log.Errorf("failed to update profile: %v", err)
		return nil, apierror.InternalServerError
	}
	return p.toResponse(actor), nil
}

// UploadPANDocument stores the actor's PAN proof in S3 and points the
// profile at the new object. A replaced object is deleted best-effort.
func (p *DefaultProfileService) UploadPANDocument(ctx context.Context, actor *entity.UserProfile, fileName string, data []byte) (*contract.ProfileResponse, apierror.ErrorResponse) {
	key, apierr := p.uploadAttachment(ctx, actor, "pan", fileName, data, contract.ValidPANDocumentFileTypes, actor.PANDocumentKey)
	if apierr != nil {
		return nil, apierr
	}

	actor.PANDocumentKey = key
	return p.saveAttachment(actor)
}

// UploadESignature stores the actor's e-signature image, used when
// rendering generated forms.
func (p *DefaultProfileService) UploadESignature(ctx context.Context, actor *entity.UserProfile, fileName string, data []byte) (*contract.ProfileResponse, apierror.ErrorResponse) {
	key, apierr := p.uploadAttachment(ctx, actor, "esign", fileName, data, contract.ValidESignFileTypes, actor.ESignImageKey)
	if apierr != nil {
		return nil, apierr
	}

	actor.ESignImageKey = key
	return p.saveAttachment(actor)
}

func (p *DefaultProfileService) uploadAttachment(ctx context.Context, actor *entity.UserProfile, slot, fileName string, data []byte, validTypes []string, previousKey string) (string, apierror.ErrorResponse) {
	if len(data) == 0 || len(data) > contract.MaxProfileAttachmentSizeBytes {
		structured := apierror.NewStructured(400)
		structured.Add("file", fmt.Sprintf("File must be between 1 byte and %d bytes", contract.MaxProfileAttachmentSizeBytes))
		return "", structured
	}
	if _, ok := utils.CheckFileExt(fileName, validTypes); !ok {
		structured := apierror.NewStructured(400)
		structured.Add("file", "Unsupported file type")
		return "", structured
	}

	key := fmt.Sprintf("profiles/%s/%s_%s_%s", actor.UserID, slot, uuid.NewString(), fileName)
	if err := p.S3.UploadFile(ctx, data, key); err != nil {
		log.Errorf("failed to upload %s attachment: %v", slot, err)
		return "", apierror.InternalServerError
	}

	if previousKey != "" {
		if err := p.S3.DeleteFile(ctx, previousKey); err != nil {
			log.Errorf("failed to delete replaced object %s: %v", previousKey, err)
		}
	}
	return key, nil
}

func (p *DefaultProfileService) saveAttachment(actor *entity.UserProfile) (*contract.ProfileResponse, apierror.ErrorResponse) {
	actor.UpdatedAt = utils.NowUTC()
	if err := p.ProfileRepo.Save(actor); err != nil {
		log.Errorf("failed to update profile: %v", err)
		return nil, apierror.InternalServerError
	}
	return p.toResponse(actor), nil
}

func (p *DefaultProfileService) toResponse(profile *entity.UserProfile) *contract.ProfileResponse {
	resp := &contract.ProfileResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		Email:       profile.Email,
		Role:        string(profile.Role),
		DisplayName: profile.DisplayName,
		DIN:         profile.DIN,
		DINStatus:   string(profile.DINStatus),
		DSCStatus:   string(profile.DSCStatus),
		PAN:         profile.PAN,
		CreatedAt:   utils.FormatEpoch(profile.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(profile.UpdatedAt),
	}
	resp.PANDocumentURL = p.presign(profile.PANDocumentKey)
	resp.ESignImageURL = p.presign(profile.ESignImageKey)
	return resp
}

func (p *DefaultProfileService) presign(key string) string {
	if key == "" || p.S3 == nil {
		return ""
	}

	url, err := p.S3.PresignGet(context.Background(), key)
	if err != nil {
		log.Errorf("failed to presign %s: %v", key, err)
		return ""
	}
	return url
}
