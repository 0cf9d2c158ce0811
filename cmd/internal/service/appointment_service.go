package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/domain/sqlite/repository"
	"compliancedesk/cmd/internal/domain/workflow"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

const (
	// StageDueDays is how long each pipeline task stays open before the
	// reminder job flags it.
	StageDueDays = 7

	// PendingDirectorTTLDays is how long a DIN-email pre-association
	// waits to be claimed before expiring.
	PendingDirectorTTLDays = 90
)

// FormGenerator renders and stores the appointment forms, returning the
// IDs of the created document records.
type FormGenerator interface {
	GenerateAppointmentForms(ctx context.Context, md workflow.AppointmentMetadata) ([]string, error)
}

type DefaultAppointmentService struct {
	TaskRepo        TaskRepository
	ProfileRepo     ProfileRepository
	PendingRepo     PendingDirectorRepository
	AssociationRepo AssociationRepository
	AssignmentRepo  AssignmentRepository
	RequestRepo     ServiceRequestRepository
	Forms           FormGenerator
	Notifier        *DefaultNotificationService
	Validate        *validator.Validate
}

func NewAppointmentService(
	taskRepo TaskRepository,
	profileRepo ProfileRepository,
	pendingRepo PendingDirectorRepository,
	associationRepo AssociationRepository,
	assignmentRepo AssignmentRepository,
	requestRepo ServiceRequestRepository,
	forms FormGenerator,
	notifier *DefaultNotificationService,
	validate *validator.Validate,
) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		TaskRepo:        taskRepo,
		ProfileRepo:     profileRepo,
		PendingRepo:     pendingRepo,
		AssociationRepo: associationRepo,
		AssignmentRepo:  assignmentRepo,
		RequestRepo:     requestRepo,
		Forms:           forms,
		Notifier:        notifier,
		Validate:        validate,
	}
}

// SubmitAppointment starts the director-appointment pipeline. When the
// appointee's DIN already maps to a profile the first task goes straight
// to them (UPLOAD_DOCUMENTS); otherwise the entity's professional gets an
// ASSOCIATE_DIN_EMAIL task carrying the appointment data so the pipeline
// can start once the DIN is bound to an email.
func (a *DefaultAppointmentService) SubmitAppointment(actor *entity.UserProfile, data *contract.SubmitAppointmentData) (*contract.TaskResponse, apierror.ErrorResponse) {
	utils.Sanitize(data)
	if valerr := a.Validate.Struct(data); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	req := workflow.AppointmentRequest{
		AuthorizerUserID: actor.UserID,
		AuthorizerDIN:    data.AuthorizerDIN,
		AuthorizerName:   data.AuthorizerName,
		AuthorizerEmail:  data.AuthorizerEmail,
		AppointeeDIN:     data.DIN,
		AppointmentDate:  data.AppointmentDate,
		Designation:      data.Designation,
		Category:         data.Category,
		EntityID:         data.EntityID,
		EntityType:       entity.EntityType(data.EntityType),
		EntityName:       data.EntityName,
		EntityIdentifier: data.EntityIdentifier,
	}
	if req.AuthorizerName == "" {
		req.AuthorizerName = actor.DisplayName
	}
	if req.AuthorizerEmail == "" {
		req.AuthorizerEmail = actor.Email
	}
	if req.AuthorizerDIN == "" {
		req.AuthorizerDIN = actor.DIN
	}

	professionalID, apierr := a.assignedProfessional(data.EntityID)
	if apierr != nil {
		return nil, apierr
	}

	appointee, err := a.ProfileRepo.FindByDIN(data.DIN)
	if err != nil {
		log.Errorf("failed to look up appointee by DIN: %v", err)
		return nil, apierror.InternalServerError
	}

	if appointee == nil {
		return a.createDINAssociationTask(actor, req, professionalID)
	}

	req.AppointeeUserID = appointee.UserID
	req.AppointeeEmail = appointee.Email
	return a.startPipeline(actor.UserID, req, professionalID, entity.TaskPriorityMedium)
}

// startPipeline creates the UPLOAD_DOCUMENTS task for a known appointee
// plus the inactive association that GENERATE_FORMS will later activate.
func (a *DefaultAppointmentService) startPipeline(assignedBy string, req workflow.AppointmentRequest, professionalID string, priority entity.TaskPriority) (*contract.TaskResponse, apierror.ErrorResponse) {
	md := workflow.NewAppointmentMetadata(req, workflow.StageUploadDocuments, professionalID)
	task, apierr := a.createStageTask(assignedBy, md, priority)
	if apierr != nil {
		return nil, apierr
	}

	if apierr := a.ensureInactiveAssociation(req); apierr != nil {
		return nil, apierr
	}
	return toTaskResponse(task), nil
}

func (a *DefaultAppointmentService) createDINAssociationTask(actor *entity.UserProfile, req workflow.AppointmentRequest, professionalID string) (*contract.TaskResponse, apierror.ErrorResponse) {
	md := workflow.DINAssociationMetadata{
		Kind:             workflow.KindDINEmailAssociation,
		DirectorDIN:      req.AppointeeDIN,
		EntityName:       req.EntityName,
		EntityIdentifier: req.EntityIdentifier,
		AppointmentData:  req,
	}
	encoded, err := md.Encode()
	if err != nil {
		log.Errorf("failed to encode task metadata: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	task := &entity.Task{
		ID:          uuid.NewString(),
		AssignedTo:  professionalID,
		AssignedBy:  actor.UserID,
		TaskType:    workflow.TaskTypeForStage(workflow.StageAssociateDINEmail),
		Title:       workflow.TitleForStage(workflow.StageAssociateDINEmail),
		Description: workflow.DescriptionForStage(workflow.StageAssociateDINEmail, req),
		Priority:    entity.TaskPriorityHigh,
		Status:      entity.TaskStatusPending,
		DueDate:     now + (StageDueDays * 24 * time.Hour).Milliseconds(),
		Metadata:    encoded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := a.TaskRepo.Save(task); err != nil {
		log.Errorf("failed to save task: %v", err)
		return nil, apierror.InternalServerError
	}

	a.Notifier.NotifyTaskAssigned(task)
	return toTaskResponse(task), nil
}

// AssociateDINEmail binds a DIN to an email. When a profile with that
// email already exists the DIN is claimed onto it immediately and any
// open ASSOCIATE_DIN_EMAIL task for the DIN resumes its pipeline;
// otherwise a PendingDirector row waits for signup.
func (a *DefaultAppointmentService) AssociateDINEmail(actor *entity.UserProfile, data *contract.AssociateDINEmailData) (string, apierror.ErrorResponse) {
	if actor.Role == entity.RoleDirectors {
		return "", apierror.ForbiddenRoleError
	}

	utils.Sanitize(data)
	if valerr := a.Validate.Struct(data); valerr != nil {
		return "", apierror.FromValidationError(valerr)
	}

	taken, err := a.ProfileRepo.FindByDIN(data.DIN)
	if err != nil {
		log.Errorf("failed to look up DIN: %v", err)
		return "", apierror.InternalServerError
	}
	if taken != nil {
		return "", apierror.DINAlreadyTakenError
	}

	profile, err := a.ProfileRepo.FindByEmail(data.Email)
	if err != nil {
		log.Errorf("failed to look up profile by email: %v", err)
		return "", apierror.InternalServerError
	}

	if profile != nil {
		if apierr := a.claimIntoProfile(actor, profile, data); apierr != nil {
			return "", apierr
		}
		return fmt.Sprintf("DIN %s associated with existing account %s", data.DIN, data.Email), nil
	}

	pending, err := a.PendingRepo.FindPendingByDIN(data.DIN)
	if err != nil {
		log.Errorf("failed to check pending directors: %v", err)
		return "", apierror.InternalServerError
	}
	if pending != nil {
		return "", apierror.DINAlreadyPendingError
	}

	now := utils.NowUTC()
	pd := &entity.PendingDirector{
		ID:           uuid.NewString(),
		DIN:          data.DIN,
		Email:        data.Email,
		DirectorName: data.DirectorName,
		AssociatedBy: actor.UserID,
		EntityID:     data.EntityID,
		EntityType:   entity.EntityType(data.EntityType),
		Status:       entity.PendingDirectorStatusPending,
		ExpiresAt:    now + (PendingDirectorTTLDays * 24 * time.Hour).Milliseconds(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := a.PendingRepo.Save(pd); err != nil {
		log.Errorf("failed to save pending director: %v", err)
		return "", apierror.InternalServerError
	}

	if apierr := a.resumePipelinesForDIN(actor, data.DIN, "", data.Email); apierr != nil {
		return "", apierr
	}
	return fmt.Sprintf("DIN %s associated with %s, pending account signup", data.DIN, data.Email), nil
}

// claimIntoProfile stamps the DIN onto an existing profile and resumes
// any pipeline waiting on the association.
func (a *DefaultAppointmentService) claimIntoProfile(actor, profile *entity.UserProfile, data *contract.AssociateDINEmailData) apierror.ErrorResponse {
	profile.DIN = data.DIN
	profile.DINStatus = entity.DINStatusActive
	if profile.DisplayName == "" {
		profile.DisplayName = data.DirectorName
	}
	profile.UpdatedAt = utils.NowUTC()

	if err := a.ProfileRepo.Save(profile); err != nil {
		log.Errorf("failed to update profile: %v", err)
		return apierror.InternalServerError
	}
	return a.resumePipelinesForDIN(actor, data.DIN, profile.UserID, profile.Email)
}

// resumePipelinesForDIN completes the professional's open
// ASSOCIATE_DIN_EMAIL tasks matching the DIN. When the appointee's
// account is known the UPLOAD_DOCUMENTS stage starts right away.
func (a *DefaultAppointmentService) resumePipelinesForDIN(actor *entity.UserProfile, din, appointeeUserID, appointeeEmail string) apierror.ErrorResponse {
	tasks, err := a.TaskRepo.FindAll(repository.TaskFilter{
		AssignedTo: actor.UserID,
		Status:     entity.TaskStatusPending,
		TaskType:   entity.TaskTypeInformationUpdate,
	})
	if err != nil {
		log.Errorf("failed to fetch association tasks: %v", err)
		return apierror.InternalServerError
	}

	for _, task := range tasks {
		md, err := workflow.DecodeDINAssociationMetadata(task.Metadata)
		if err != nil || md.DirectorDIN != din {
			continue
		}

		now := utils.NowUTC()
		task.Status = entity.TaskStatusCompleted
		task.CompletedAt = now
		task.UpdatedAt = now
		if err := a.TaskRepo.Save(task); err != nil {
			log.Errorf("failed to complete association task: %v", err)
			return apierror.InternalServerError
		}

		if appointeeUserID == "" {
			continue
		}

		req := md.AppointmentData
		req.AppointeeUserID = appointeeUserID
		req.AppointeeEmail = appointeeEmail
		if _, apierr := a.startPipeline(actor.UserID, req, actor.UserID, entity.TaskPriorityMedium); apierr != nil {
			return apierr
		}
	}
	return nil
}

// CompleteDocumentUpload finishes the UPLOAD_DOCUMENTS stage and hands
// the pipeline to the professional.
func (a *DefaultAppointmentService) CompleteDocumentUpload(actor *entity.UserProfile, taskID string) (*contract.TaskResponse, apierror.ErrorResponse) {
	task, md, apierr := a.loadStageTask(actor, taskID, workflow.StageUploadDocuments)
	if apierr != nil {
		return nil, apierr
	}

	md.DocumentsUploaded = true
	return a.advanceStage(task, md)
}

// SubmitDirectorInfo records the professional-filled director form and
// the companies selected for interest disclosure, then hands the pipeline
// back to the appointee.
func (a *DefaultAppointmentService) SubmitDirectorInfo(actor *entity.UserProfile, data *contract.SubmitDirectorInfoData) (*contract.TaskResponse, apierror.ErrorResponse) {
	utils.Sanitize(data)
	if valerr := a.Validate.Struct(data); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	task, md, apierr := a.loadStageTask(actor, data.TaskID, workflow.StageFillDirectorInfo)
	if apierr != nil {
		return nil, apierr
	}

	var payload struct {
		workflow.DirectorInfo
		CompaniesForDisclosure []workflow.DisclosureCompany `json:"companiesForDisclosure"`
	}
	if err := json.Unmarshal(data.DirectorInfo, &payload); err != nil {
		return nil, apierror.MalformedJSONError
	}

	if apierr := checkDirectorInfo(payload.DirectorInfo); apierr != nil {
		return nil, apierr
	}

	md.DirectorInfo = &payload.DirectorInfo
	md.DisclosureCompanies = payload.CompaniesForDisclosure
	return a.advanceStage(task, md)
}

// SubmitInterestDisclosure records the appointee's interest entries onto
// the director record the form generator renders from.
func (a *DefaultAppointmentService) SubmitInterestDisclosure(actor *entity.UserProfile, data *contract.SubmitInterestDisclosureData) (*contract.TaskResponse, apierror.ErrorResponse) {
	utils.Sanitize(data)
	if valerr := a.Validate.Struct(data); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	task, md, apierr := a.loadStageTask(actor, data.TaskID, workflow.StageFillInterestDisclosure)
	if apierr != nil {
		return nil, apierr
	}
	if md.DirectorInfo == nil {
		return nil, apierror.DirectorInfoMissing
	}

	var disclosed []workflow.DisclosureCompany
	if err := json.Unmarshal(data.Disclosure, &disclosed); err != nil {
		return nil, apierror.MalformedJSONError
	}
	if err := a.Validate.Var(disclosed, "nodupes"); err != nil {
		structured := apierror.NewStructured(400)
		structured.Add("interest_disclosure", "Duplicate disclosure entries")
		return nil, structured
	}

	entries := make([]workflow.InterestEntry, len(disclosed))
	for i, company := range disclosed {
		entries[i] = workflow.InterestEntry{
			CompanyName:      company.Name,
			NatureOfInterest: company.NatureOfInterest,
			Shareholding:     fmt.Sprintf("%.2f%%", company.Shareholding),
			DateOfInterest:   company.DateOfInterest,
		}
	}

	md.DirectorInfo.OtherCompanyInterests = entries
	md.DisclosureCompanies = disclosed
	return a.advanceStage(task, md)
}

// GenerateForms is the final stage: renders DIR-2, DIR-8 and MBP-1 from
// the collected director record, stores them, completes the pipeline and
// activates the director's association with the entity.
func (a *DefaultAppointmentService) GenerateForms(ctx context.Context, actor *entity.UserProfile, taskID string) (*contract.TaskResponse, apierror.ErrorResponse) {
	task, md, apierr := a.loadStageTask(actor, taskID, workflow.StageGenerateForms)
	if apierr != nil {
		return nil, apierr
	}
	if md.DirectorInfo == nil {
		return nil, apierror.DirectorInfoMissing
	}

	formIDs, err := a.Forms.GenerateAppointmentForms(ctx, md)
	if err != nil {
		log.Errorf("failed to generate forms: %v", err)
		return nil, apierror.InternalServerError
	}

	md.FormsGenerated = true
	md.GeneratedFormIDs = formIDs

	resp, apierr := a.advanceStage(task, md)
	if apierr != nil {
		return nil, apierr
	}

	if apierr := a.activateAssociation(md.AppointmentRequest); apierr != nil {
		return nil, apierr
	}
	return resp, nil
}

// SubmitResignation deactivates the director's association and opens a
// high-priority resignation request for the entity's professional.
func (a *DefaultAppointmentService) SubmitResignation(actor *entity.UserProfile, data *contract.SubmitResignationData) (*contract.ServiceRequestResponse, apierror.ErrorResponse) {
	utils.Sanitize(data)
	if valerr := a.Validate.Struct(data); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if actor.DIN != "" && actor.DIN != data.DIN {
		return nil, apierror.DINMismatchError
	}

	assoc, err := a.AssociationRepo.FindByUserAndEntity(actor.UserID, data.EntityID)
	if err != nil {
		log.Errorf("failed to fetch association: %v", err)
		return nil, apierror.InternalServerError
	}
	if assoc == nil || !assoc.IsActive {
		return nil, apierror.NotFoundError
	}

	now := utils.NowUTC()
	assoc.IsActive = false
	assoc.CessationDate = data.ResignationDate
	assoc.UpdatedAt = now
	if err := a.AssociationRepo.Save(assoc); err != nil {
		log.Errorf("failed to deactivate association: %v", err)
		return nil, apierror.InternalServerError
	}

	requestData, err := json.Marshal(map[string]string{
		"din":             data.DIN,
		"resignationDate": data.ResignationDate,
		"reason":          data.Reason,
	})
	if err != nil {
		log.Errorf("failed to encode request data: %v", err)
		return nil, apierror.InternalServerError
	}

	request := &entity.ServiceRequest{
		ID:          uuid.NewString(),
		DirectorID:  actor.UserID,
		EntityID:    data.EntityID,
		EntityType:  entity.EntityType(data.EntityType),
		ServiceType: entity.ServiceTypeDirectorResignation,
		RequestData: string(requestData),
		Status:      entity.RequestStatusPending,
		Priority:    entity.RequestPriorityHigh,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := a.RequestRepo.Save(request); err != nil {
		log.Errorf("failed to save resignation request: %v", err)
		return nil, apierror.InternalServerError
	}

	a.Notifier.NotifyRequestUpdate(request)
	return toServiceRequestResponse(request), nil
}

// advanceStage completes the current stage's task and creates the next
// stage's as two separate writes. A crash between them leaves the
// pipeline with a completed task and no successor; the audit trail in
// the completed task's metadata is enough to recreate it by hand.
func (a *DefaultAppointmentService) advanceStage(task *entity.Task, md workflow.AppointmentMetadata) (*contract.TaskResponse, apierror.ErrorResponse) {
	now := utils.NowUTC()
	if md.StageCompletedAt == nil {
		md.StageCompletedAt = map[workflow.Stage]string{}
	}
	md.StageCompletedAt[md.CurrentStage] = utils.FormatEpoch(now)

	encoded, err := md.Encode()
	if err != nil {
		log.Errorf("failed to encode task metadata: %v", err)
		return nil, apierror.InternalServerError
	}

	task.Metadata = encoded
	task.Status = entity.TaskStatusCompleted
	task.CompletedAt = now
	task.UpdatedAt = now
	if err := a.TaskRepo.Save(task); err != nil {
		log.Errorf("failed to complete stage task: %v", err)
		return nil, apierror.InternalServerError
	}

	next := workflow.NextStage(md.CurrentStage)
	if next == "" {
		return toTaskResponse(task), nil
	}

	md.CurrentStage = next
	nextTask, apierr := a.createStageTask(task.AssignedTo, md, task.Priority)
	if apierr != nil {
		return nil, apierr
	}

	a.Notifier.NotifyStageHandoff(nextTask)
	return toTaskResponse(nextTask), nil
}

func (a *DefaultAppointmentService) createStageTask(assignedBy string, md workflow.AppointmentMetadata, priority entity.TaskPriority) (*entity.Task, apierror.ErrorResponse) {
	encoded, err := md.Encode()
	if err != nil {
		log.Errorf("failed to encode task metadata: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	task := &entity.Task{
		ID:          uuid.NewString(),
		AssignedTo:  workflow.AssigneeForStage(md.CurrentStage, md),
		AssignedBy:  assignedBy,
		TaskType:    workflow.TaskTypeForStage(md.CurrentStage),
		Title:       workflow.TitleForStage(md.CurrentStage),
		Description: workflow.DescriptionForStage(md.CurrentStage, md.AppointmentRequest),
		Priority:    priority,
		Status:      entity.TaskStatusPending,
		DueDate:     now + (StageDueDays * 24 * time.Hour).Milliseconds(),
		Metadata:    encoded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := a.TaskRepo.Save(task); err != nil {
		log.Errorf("failed to save stage task: %v", err)
		return nil, apierror.InternalServerError
	}

	a.Notifier.NotifyTaskAssigned(task)
	return task, nil
}

func (a *DefaultAppointmentService) loadStageTask(actor *entity.UserProfile, taskID string, stage workflow.Stage) (*entity.Task, workflow.AppointmentMetadata, apierror.ErrorResponse) {
	var md workflow.AppointmentMetadata

	task, err := a.TaskRepo.FindByID(taskID)
	if err != nil {
		log.Errorf("failed to fetch task: %v", err)
		return nil, md, apierror.InternalServerError
	}
	if task == nil {
		return nil, md, apierror.NotFoundError
	}
	if task.AssignedTo != actor.UserID && actor.Role != entity.RoleAdmin {
		return nil, md, apierror.ForbiddenError
	}
	if task.Status == entity.TaskStatusCompleted || task.Status == entity.TaskStatusCancelled {
		return nil, md, apierror.StageMismatchError
	}

	md, err = workflow.DecodeAppointmentMetadata(task.Metadata)
	if err != nil {
		log.Errorf("task %s carries invalid metadata: %v", task.ID, err)
		return nil, md, apierror.InternalServerError
	}
	if md.CurrentStage != stage {
		return nil, md, apierror.StageMismatchError
	}
	return task, md, nil
}

// assignedProfessional resolves the entity's active professional; the
// first active assignment wins.
func (a *DefaultAppointmentService) assignedProfessional(entityID string) (string, apierror.ErrorResponse) {
	assignments, err := a.AssignmentRepo.FindActiveByEntity(entityID)
	if err != nil {
		log.Errorf("failed to fetch entity assignments: %v", err)
		return "", apierror.InternalServerError
	}
	if len(assignments) == 0 {
		return "", apierror.NoAssignedProfessionalError
	}
	return assignments[0].ProfessionalID, nil
}

func (a *DefaultAppointmentService) ensureInactiveAssociation(req workflow.AppointmentRequest) apierror.ErrorResponse {
	existing, err := a.AssociationRepo.FindByUserAndEntity(req.AppointeeUserID, req.EntityID)
	if err != nil {
		log.Errorf("failed to check association: %v", err)
		return apierror.InternalServerError
	}
	if existing != nil {
		return nil
	}

	now := utils.NowUTC()
	assoc := &entity.DirectorAssociation{
		ID:              uuid.NewString(),
		UserID:          req.AppointeeUserID,
		EntityID:        req.EntityID,
		EntityType:      req.EntityType,
		AssociationType: entity.AssociationTypeDirector,
		DIN:             req.AppointeeDIN,
		AppointmentDate: req.AppointmentDate,
		IsActive:        false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := a.AssociationRepo.Save(assoc); err != nil {
		log.Errorf("failed to save association: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (a *DefaultAppointmentService) activateAssociation(req workflow.AppointmentRequest) apierror.ErrorResponse {
	assoc, err := a.AssociationRepo.FindByUserAndEntity(req.AppointeeUserID, req.EntityID)
	if err != nil {
		log.Errorf("failed to fetch association: %v", err)
		return apierror.InternalServerError
	}

	now := utils.NowUTC()
	if assoc == nil {
		assoc = &entity.DirectorAssociation{
			ID:              uuid.NewString(),
			UserID:          req.AppointeeUserID,
			EntityID:        req.EntityID,
			EntityType:      req.EntityType,
			AssociationType: entity.AssociationTypeDirector,
			DIN:             req.AppointeeDIN,
			AppointmentDate: req.AppointmentDate,
			CreatedAt:       now,
		}
	}

	assoc.IsActive = true
	if assoc.OriginalAppointmentDate == "" {
		assoc.OriginalAppointmentDate = req.AppointmentDate
	}
	assoc.UpdatedAt = now

	if err := a.AssociationRepo.Save(assoc); err != nil {
		log.Errorf("failed to activate association: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func checkDirectorInfo(info workflow.DirectorInfo) apierror.ErrorResponse {
	structured := apierror.NewStructured(400)
	required := map[string]string{
		"fullName":           info.FullName,
		"fatherName":         info.FatherName,
		"din":                info.DIN,
		"pan":                info.PAN,
		"residentialAddress": info.ResidentialAddress,
		"email":              info.Email,
	}
	for field, value := range required {
		if value == "" {
			structured.Add(field, "This field is required")
		}
	}
	if len(structured.Errors) > 0 {
		return structured
	}
	return nil
}
