package service

import (
	"errors"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/domain/policy"
	"compliancedesk/cmd/internal/domain/sqlite/repository"
	"compliancedesk/cmd/internal/domain/workflow"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type ServiceRequestRepository interface {
	FindAll(filter repository.ServiceRequestFilter) ([]*entity.ServiceRequest, error)
	FindByID(id string) (*entity.ServiceRequest, error)
	Save(req *entity.ServiceRequest) error
	Delete(req *entity.ServiceRequest) error
}

type DefaultServiceRequestService struct {
	RequestRepo     ServiceRequestRepository
	AssociationRepo AssociationRepository
	AssignmentRepo  AssignmentRepository
	Notifier        *DefaultNotificationService
	Policy          *policy.RequestPolicy
	Validate        *validator.Validate
}

func NewServiceRequestService(
	requestRepo ServiceRequestRepository,
	associationRepo AssociationRepository,
	assignmentRepo AssignmentRepository,
	notifier *DefaultNotificationService,
	validate *validator.Validate,
) *DefaultServiceRequestService {
	return &DefaultServiceRequestService{
		RequestRepo:     requestRepo,
		AssociationRepo: associationRepo,
		AssignmentRepo:  assignmentRepo,
		Notifier:        notifier,
		Policy:          policy.NewRequestPolicy(),
		Validate:        validate,
	}
}

func (s *DefaultServiceRequestService) CreateRequest(actor *entity.UserProfile, req *contract.CreateServiceRequestRequest) (*contract.ServiceRequestResponse, apierror.ErrorResponse) {
	if apierr := s.Policy.CanCreate(actor); apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	priority := entity.RequestPriority(req.Priority)
	if priority == "" {
		priority = entity.RequestPriorityMedium
	}

	now := utils.NowUTC()
	request := &entity.ServiceRequest{
		ID:          uuid.NewString(),
		DirectorID:  actor.UserID,
		EntityID:    req.EntityID,
		EntityType:  entity.EntityType(req.EntityType),
		ServiceType: entity.ServiceType(req.ServiceType),
		RequestData: req.RequestData,
		Status:      entity.RequestStatusPending,
		Priority:    priority,
		Comments:    req.Comments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.RequestRepo.Save(request); err != nil {
		log.Errorf("failed to save service request: %v", err)
		return nil, apierror.InternalServerError
	}
	return toServiceRequestResponse(request), nil
}

// ListRequests applies the AND-combined filter, then the deterministic
// priority sort and the one-pass status tally.
func (s *DefaultServiceRequestService) ListRequests(actor *entity.UserProfile, query *contract.ServiceRequestFilterQuery) (*contract.ServiceRequestListResponse, apierror.ErrorResponse) {
	if valerr := s.Validate.Struct(query); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	filter := repository.ServiceRequestFilter{
		DirectorID:  query.DirectorID,
		ProcessedBy: query.ProcessedBy,
		Status:      entity.RequestStatus(query.Status),
		ServiceType: entity.ServiceType(query.ServiceType),
	}

	// Directors never see past their own requests regardless of filter.
	if actor.Role == entity.RoleDirectors {
		filter.DirectorID = actor.UserID
	}

	reqs, err := s.RequestRepo.FindAll(filter)
	if err != nil {
		log.Errorf("failed to fetch service requests: %v", err)
		return nil, apierror.InternalServerError
	}
	return s.buildListResponse(reqs), nil
}

// ListForProfessional returns the requests a professional works: ones
// they already process, plus requests raised by directors of the entities
// they are assigned to.
func (s *DefaultServiceRequestService) ListForProfessional(actor *entity.UserProfile) (*contract.ServiceRequestListResponse, apierror.ErrorResponse) {
	if apierr := s.Policy.CanProcess(actor); apierr != nil {
		return nil, apierr
	}

	reqs, err := s.RequestRepo.FindAll(repository.ServiceRequestFilter{ProcessedBy: actor.UserID})
	if err != nil {
		log.Errorf("failed to fetch service requests: %v", err)
		return nil, apierror.InternalServerError
	}

	seen := make(map[string]bool, len(reqs))
	for _, r := range reqs {
		seen[r.ID] = true
	}

	directorIDs, apierr := s.managedDirectorIDs(actor)
	if apierr != nil {
		return nil, apierr
	}

	for _, directorID := range directorIDs {
		more, err := s.RequestRepo.FindAll(repository.ServiceRequestFilter{DirectorID: directorID})
		if err != nil {
			log.Errorf("failed to fetch service requests: %v", err)
			return nil, apierror.InternalServerError
		}
		for _, r := range more {
			if !seen[r.ID] {
				seen[r.ID] = true
				reqs = append(reqs, r)
			}
		}
	}
	return s.buildListResponse(reqs), nil
}

func (s *DefaultServiceRequestService) GetRequest(actor *entity.UserProfile, id string) (*contract.ServiceRequestResponse, apierror.ErrorResponse) {
	request, err := s.RequestRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch service request: %v", err)
		return nil, apierror.InternalServerError
	}

	if apierr := s.Policy.CanSee(request, actor); apierr != nil {
		return nil, apierr
	}
	return toServiceRequestResponse(request), nil
}

// ProcessRequest drives a request through the transition table. Rejection
// requires a comment; start records the processing professional.
func (s *DefaultServiceRequestService) ProcessRequest(actor *entity.UserProfile, id string, req *contract.ProcessServiceRequestRequest) (*contract.ServiceRequestResponse, apierror.ErrorResponse) {
	if apierr := s.Policy.CanProcess(actor); apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	action := workflow.RequestAction(req.Action)
	if action == workflow.ActionReject && req.Comments == "" {
		structured := apierror.NewStructured(400)
		structured.Add("comments", "A comment is required when rejecting a request")
		return nil, structured
	}

	request, err := s.RequestRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch service request: %v", err)
		return nil, apierror.InternalServerError
	}

	if request == nil {
		return nil, apierror.NotFoundError
	}

	next, err := workflow.NextRequestStatus(request.Status, action)
	if err != nil {
		var illegal *workflow.ErrIllegalTransition
		if errors.As(err, &illegal) {
			return nil, apierror.NewTransitionError(string(illegal.From), string(illegal.Action))
		}
		log.Errorf("failed to resolve transition: %v", err)
		return nil, apierror.InternalServerError
	}

	request.Status = next
	request.ProcessedBy = actor.UserID
	if req.Comments != "" {
		request.Comments = req.Comments
	}
	request.UpdatedAt = utils.NowUTC()

	if err := s.RequestRepo.Save(request); err != nil {
		log.Errorf("failed to update service request: %v", err)
		return nil, apierror.InternalServerError
	}

	s.Notifier.NotifyRequestUpdate(request)
	return toServiceRequestResponse(request), nil
}

func (s *DefaultServiceRequestService) DeleteRequest(actor *entity.UserProfile, id string) apierror.ErrorResponse {
	if apierr := s.Policy.CanDelete(actor); apierr != nil {
		return apierr
	}

	request, err := s.RequestRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch service request: %v", err)
		return apierror.InternalServerError
	}

	if request == nil {
		return apierror.NotFoundError
	}

	if err := s.RequestRepo.Delete(request); err != nil {
		log.Errorf("failed to delete service request: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// managedDirectorIDs walks the professional's active assignments and
// collects the directors associated with those entities.
func (s *DefaultServiceRequestService) managedDirectorIDs(actor *entity.UserProfile) ([]string, apierror.ErrorResponse) {
	assignments, err := s.AssignmentRepo.FindActiveByProfessional(actor.UserID)
	if err != nil {
		log.Errorf("failed to fetch assignments: %v", err)
		return nil, apierror.InternalServerError
	}

	seen := map[string]bool{}
	var ids []string
	for _, assignment := range assignments {
		associations, err := s.AssociationRepo.FindAllByEntity(assignment.EntityID)
		if err != nil {
			log.Errorf("failed to fetch associations: %v", err)
			return nil, apierror.InternalServerError
		}
		for _, assoc := range associations {
			if !seen[assoc.UserID] {
				seen[assoc.UserID] = true
				ids = append(ids, assoc.UserID)
			}
		}
	}
	return ids, nil
}

func (s *DefaultServiceRequestService) buildListResponse(reqs []*entity.ServiceRequest) *contract.ServiceRequestListResponse {
	workflow.SortServiceRequests(reqs)
	counts := workflow.CountServiceRequests(reqs)

	resp := make([]*contract.ServiceRequestResponse, len(reqs))
	for i, r := range reqs {
		resp[i] = toServiceRequestResponse(r)
	}
	return &contract.ServiceRequestListResponse{
		Requests: resp,
		Counts: contract.ServiceRequestCounts{
			Total:      counts.Total,
			Pending:    counts.Pending,
			InProgress: counts.InProgress,
			Approved:   counts.Approved,
			Rejected:   counts.Rejected,
			Completed:  counts.Completed,
		},
	}
}

func toServiceRequestResponse(req *entity.ServiceRequest) *contract.ServiceRequestResponse {
	return &contract.ServiceRequestResponse{
		ID:          req.ID,
		DirectorID:  req.DirectorID,
		ServiceType: string(req.ServiceType),
		EntityID:    req.EntityID,
		EntityType:  string(req.EntityType),
		Status:      string(req.Status),
		Priority:    string(req.Priority),
		Comments:    req.Comments,
		RequestData: req.RequestData,
		ProcessedBy: req.ProcessedBy,
		CreatedAt:   utils.FormatEpoch(req.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(req.UpdatedAt),
	}
}
