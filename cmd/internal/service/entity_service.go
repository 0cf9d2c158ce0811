package service

import (
	"context"
	"errors"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/domain/policy"
	"compliancedesk/cmd/internal/infrastructure/mca"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type CompanyRepository interface {
	FindAll() ([]*entity.Company, error)
	FindByID(id string) (*entity.Company, error)
	FindByCIN(cin string) (*entity.Company, error)
	Save(company *entity.Company) error
	Delete(company *entity.Company) error
}

type LLPRepository interface {
	FindAll() ([]*entity.LLP, error)
	FindByID(id string) (*entity.LLP, error)
	FindByLLPIN(llpin string) (*entity.LLP, error)
	Save(llp *entity.LLP) error
	Delete(llp *entity.LLP) error
}

type AssociationRepository interface {
	FindByID(id string) (*entity.DirectorAssociation, error)
	FindAllByUser(userID string) ([]*entity.DirectorAssociation, error)
	FindActiveByUser(userID string) ([]*entity.DirectorAssociation, error)
	FindAllByEntity(entityID string) ([]*entity.DirectorAssociation, error)
	FindByUserAndEntity(userID, entityID string) (*entity.DirectorAssociation, error)
	Save(assoc *entity.DirectorAssociation) error
}

type AssignmentRepository interface {
	FindAllByProfessional(professionalID string) ([]*entity.ProfessionalAssignment, error)
	FindActiveByProfessional(professionalID string) ([]*entity.ProfessionalAssignment, error)
	FindActiveByEntity(entityID string) ([]*entity.ProfessionalAssignment, error)
	FindByProfessionalAndEntity(professionalID, entityID string) (*entity.ProfessionalAssignment, error)
	Save(assignment *entity.ProfessionalAssignment) error
}

// RegistryClient looks up company master data in the MCA registry.
type RegistryClient interface {
	GetByCIN(ctx context.Context, cin string) (*entity.Company, error)
}

type DefaultEntityService struct {
	CompanyRepo     CompanyRepository
	LLPRepo         LLPRepository
	AssociationRepo AssociationRepository
	AssignmentRepo  AssignmentRepository
	Registry        RegistryClient
	Policy          *policy.EntityPolicy
	Validate        *validator.Validate
}

func NewEntityService(
	companyRepo CompanyRepository,
	llpRepo LLPRepository,
	associationRepo AssociationRepository,
	assignmentRepo AssignmentRepository,
	registry RegistryClient,
	validate *validator.Validate,
) *DefaultEntityService {
	return &DefaultEntityService{
		CompanyRepo:     companyRepo,
		LLPRepo:         llpRepo,
		AssociationRepo: associationRepo,
		AssignmentRepo:  assignmentRepo,
		Registry:        registry,
		Policy:          policy.NewEntityPolicy(),
		Validate:        validate,
	}
}

func (e *DefaultEntityService) ListCompanies() ([]*contract.CompanyResponse, apierror.ErrorResponse) {
	companies, err := e.CompanyRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch companies: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CompanyResponse, len(companies))
	for i, company := range companies {
		resp[i] = toCompanyResponse(company)
	}
	return resp, nil
}

func (e *DefaultEntityService) GetCompany(id string) (*contract.CompanyResponse, apierror.ErrorResponse) {
	company, err := e.CompanyRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.NotFoundError
	}
	return toCompanyResponse(company), nil
}

func (e *DefaultEntityService) CreateCompany(actor *entity.UserProfile, req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	if apierr := e.Policy.CanManage(actor); apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := e.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := checkCompanyInvariants(req); apierr != nil {
		return nil, apierr
	}

	existing, err := e.CompanyRepo.FindByCIN(req.CINNumber)
	if err != nil {
		log.Errorf("failed to check CIN uniqueness: %v", err)
		return nil, apierror.InternalServerError
	}
	if existing != nil {
		return nil, apierror.DuplicateCINError
	}

	now := utils.NowUTC()
	company := &entity.Company{
		ID:                   uuid.NewString(),
		CINNumber:            req.CINNumber,
		CompanyName:          req.CompanyName,
		ROCName:              req.ROCName,
		DateOfIncorporation:  req.DateOfIncorporation,
		EmailID:              req.EmailID,
		RegisteredAddress:    req.RegisteredAddress,
		AuthorizedCapital:    req.AuthorizedCapital,
		PaidUpCapital:        req.PaidUpCapital,
		NumberOfDirectors:    req.NumberOfDirectors,
		CompanyStatus:        defaultEntityStatus(req.CompanyStatus),
		CompanyType:          defaultCompanyType(req.CompanyType),
		LastAnnualFilingDate: req.LastAnnualFilingDate,
		FinancialYear:        req.FinancialYear,
		AGMDate:              req.AGMDate,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := e.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to save company: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCompanyResponse(company), nil
}

func (e *DefaultEntityService) UpdateCompany(actor *entity.UserProfile, id string, req *contract.CompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	if apierr := e.Policy.CanManage(actor); apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := e.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := checkCompanyInvariants(req); apierr != nil {
		return nil, apierr
	}

	company, err := e.CompanyRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.NotFoundError
	}

	company.CompanyName = req.CompanyName
	company.ROCName = req.ROCName
	company.DateOfIncorporation = req.DateOfIncorporation
	company.EmailID = req.EmailID
	company.RegisteredAddress = req.RegisteredAddress
	company.AuthorizedCapital = req.AuthorizedCapital
	company.PaidUpCapital = req.PaidUpCapital
	company.NumberOfDirectors = req.NumberOfDirectors
	company.CompanyStatus = defaultEntityStatus(req.CompanyStatus)
	company.CompanyType = defaultCompanyType(req.CompanyType)
	company.LastAnnualFilingDate = req.LastAnnualFilingDate
	company.FinancialYear = req.FinancialYear
	company.AGMDate = req.AGMDate
	company.UpdatedAt = utils.NowUTC()

	if err := e.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to update company: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCompanyResponse(company), nil
}

// LookupCompanyByCIN checks the local store first, then falls back to the
// MCA registry for master data.
func (e *DefaultEntityService) LookupCompanyByCIN(ctx context.Context, cin string) (*contract.CompanyResponse, apierror.ErrorResponse) {
	company, err := e.CompanyRepo.FindByCIN(cin)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}

	if company != nil {
		return toCompanyResponse(company), nil
	}

	if e.Registry == nil {
		return nil, apierror.NotFoundError
	}

	fetched, err := e.Registry.GetByCIN(ctx, cin)
	if errors.Is(err, mca.ErrNotFound) {
		return nil, apierror.NotFoundError
	}
	if err != nil {
		log.Errorf("mca lookup failed: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCompanyResponse(fetched), nil
}

func (e *DefaultEntityService) ListLLPs() ([]*contract.LLPResponse, apierror.ErrorResponse) {
	llps, err := e.LLPRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch LLPs: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.LLPResponse, len(llps))
	for i, llp := range llps {
		resp[i] = toLLPResponse(llp)
	}
	return resp, nil
}

func (e *DefaultEntityService) GetLLP(id string) (*contract.LLPResponse, apierror.ErrorResponse) {
	llp, err := e.LLPRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch LLP: %v", err)
		return nil, apierror.InternalServerError
	}

	if llp == nil {
		return nil, apierror.NotFoundError
	}
	return toLLPResponse(llp), nil
}

func (e *DefaultEntityService) CreateLLP(actor *entity.UserProfile, req *contract.LLPRequest) (*contract.LLPResponse, apierror.ErrorResponse) {
	if apierr := e.Policy.CanManage(actor); apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := e.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.NumberOfDesignatedPartners != 0 && req.NumberOfDesignatedPartners < 2 {
		structured := apierror.NewStructured(400)
		structured.Add("number_of_designated_partners", "An LLP must have a minimum of 2 designated partners")
		return nil, structured
	}

	existing, err := e.LLPRepo.FindByLLPIN(req.LLPIN)
	if err != nil {
		log.Errorf("failed to check LLPIN uniqueness: %v", err)
		return nil, apierror.InternalServerError
	}
	if existing != nil {
		return nil, apierror.DuplicateLLPINError
	}

	now := utils.NowUTC()
	llp := &entity.LLP{
		ID:                            uuid.NewString(),
		LLPIN:                         req.LLPIN,
		LLPName:                       req.LLPName,
		ROCName:                       req.ROCName,
		DateOfIncorporation:           req.DateOfIncorporation,
		EmailID:                       req.EmailID,
		NumberOfPartners:              req.NumberOfPartners,
		NumberOfDesignatedPartners:    req.NumberOfDesignatedPartners,
		RegisteredAddress:             req.RegisteredAddress,
		TotalObligationOfContribution: req.TotalObligationOfContribution,
		LLPStatus:                     defaultEntityStatus(req.LLPStatus),
		LastAnnualFilingDate:          req.LastAnnualFilingDate,
		FinancialYear:                 req.FinancialYear,
		CreatedAt:                     now,
		UpdatedAt:                     now,
	}

	if err := e.LLPRepo.Save(llp); err != nil {
		log.Errorf("failed to save LLP: %v", err)
		return nil, apierror.InternalServerError
	}
	return toLLPResponse(llp), nil
}

// CreateAssociation links a director to an entity. Created inactive when
// part of an appointment pipeline; activated once forms are generated.
func (e *DefaultEntityService) CreateAssociation(actor *entity.UserProfile, req *contract.AssociationRequest) (*contract.AssociationResponse, apierror.ErrorResponse) {
	if apierr := e.Policy.CanManage(actor); apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := e.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	existing, err := e.AssociationRepo.FindByUserAndEntity(req.UserID, req.EntityID)
	if err != nil {
		log.Errorf("failed to check association: %v", err)
		return nil, apierror.InternalServerError
	}
	if existing != nil && existing.IsActive {
		return toAssociationResponse(existing), nil
	}

	now := utils.NowUTC()
	assoc := &entity.DirectorAssociation{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		EntityID:        req.EntityID,
		EntityType:      entity.EntityType(req.EntityType),
		AssociationType: entity.AssociationType(req.AssociationType),
		DIN:             req.DIN,
		AppointmentDate: req.AppointmentDate,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := e.AssociationRepo.Save(assoc); err != nil {
		log.Errorf("failed to save association: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAssociationResponse(assoc), nil
}

// DeactivateAssociation soft-deactivates; rows are never deleted so the
// appointment history survives.
func (e *DefaultEntityService) DeactivateAssociation(actor *entity.UserProfile, id, cessationDate string) (*contract.AssociationResponse, apierror.ErrorResponse) {
	if apierr := e.Policy.CanManage(actor); apierr != nil {
		return nil, apierr
	}

	assoc, err := e.AssociationRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch association: %v", err)
		return nil, apierror.InternalServerError
	}

	if assoc == nil {
		return nil, apierror.NotFoundError
	}

	assoc.IsActive = false
	assoc.CessationDate = cessationDate
	assoc.UpdatedAt = utils.NowUTC()

	if err := e.AssociationRepo.Save(assoc); err != nil {
		log.Errorf("failed to update association: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAssociationResponse(assoc), nil
}

func (e *DefaultEntityService) ListAssociationsForUser(userID string) ([]*contract.AssociationResponse, apierror.ErrorResponse) {
	assocs, err := e.AssociationRepo.FindAllByUser(userID)
	if err != nil {
		log.Errorf("failed to fetch associations: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.AssociationResponse, len(assocs))
	for i, assoc := range assocs {
		resp[i] = toAssociationResponse(assoc)
	}
	return resp, nil
}

func (e *DefaultEntityService) AssignProfessional(actor *entity.UserProfile, req *contract.AssignmentRequest) (*contract.AssignmentResponse, apierror.ErrorResponse) {
	if apierr := e.Policy.CanManage(actor); apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := e.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	existing, err := e.AssignmentRepo.FindByProfessionalAndEntity(req.ProfessionalID, req.EntityID)
	if err != nil {
		log.Errorf("failed to check assignment: %v", err)
		return nil, apierror.InternalServerError
	}
	if existing != nil && existing.IsActive {
		return toAssignmentResponse(existing), nil
	}

	role := entity.ProfessionalRole(req.Role)
	if role == "" {
		role = entity.ProfessionalRolePrimary
	}

	now := utils.NowUTC()
	assignment := &entity.ProfessionalAssignment{
		ID:             uuid.NewString(),
		ProfessionalID: req.ProfessionalID,
		EntityID:       req.EntityID,
		EntityType:     entity.EntityType(req.EntityType),
		Role:           role,
		AssignedDate:   req.AssignedDate,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := e.AssignmentRepo.Save(assignment); err != nil {
		log.Errorf("failed to save assignment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAssignmentResponse(assignment), nil
}

func (e *DefaultEntityService) ListAssignmentsForProfessional(professionalID string) ([]*contract.AssignmentResponse, apierror.ErrorResponse) {
	assignments, err := e.AssignmentRepo.FindAllByProfessional(professionalID)
	if err != nil {
		log.Errorf("failed to fetch assignments: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.AssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		resp[i] = toAssignmentResponse(assignment)
	}
	return resp, nil
}

func checkCompanyInvariants(req *contract.CompanyRequest) apierror.ErrorResponse {
	structured := apierror.NewStructured(400)
	if req.NumberOfDirectors != 0 && req.NumberOfDirectors < 2 {
		structured.Add("number_of_directors", "A company must have a minimum of 2 directors")
	}
	if req.AuthorizedCapital > 0 && req.PaidUpCapital > req.AuthorizedCapital {
		structured.Add("paid_up_capital", "Paid up capital cannot exceed authorized capital")
	}
	if len(structured.Errors) > 0 {
		return structured
	}
	return nil
}

func defaultEntityStatus(s string) entity.EntityStatus {
	if s == "" {
		return entity.EntityStatusActive
	}
	return entity.EntityStatus(s)
}

func defaultCompanyType(t string) entity.CompanyType {
	if t == "" {
		return entity.CompanyTypePrivate
	}
	return entity.CompanyType(t)
}

func toCompanyResponse(company *entity.Company) *contract.CompanyResponse {
	return &contract.CompanyResponse{
		ID:                   company.ID,
		CINNumber:            company.CINNumber,
		CompanyName:          company.CompanyName,
		ROCName:              company.ROCName,
		DateOfIncorporation:  company.DateOfIncorporation,
		EmailID:              company.EmailID,
		RegisteredAddress:    company.RegisteredAddress,
		AuthorizedCapital:    company.AuthorizedCapital,
		PaidUpCapital:        company.PaidUpCapital,
		NumberOfDirectors:    company.NumberOfDirectors,
		CompanyStatus:        string(company.CompanyStatus),
		CompanyType:          string(company.CompanyType),
		LastAnnualFilingDate: company.LastAnnualFilingDate,
		FinancialYear:        company.FinancialYear,
		AGMDate:              company.AGMDate,
		CreatedAt:            utils.FormatEpoch(company.CreatedAt),
		UpdatedAt:            utils.FormatEpoch(company.UpdatedAt),
	}
}

func toLLPResponse(llp *entity.LLP) *contract.LLPResponse {
	return &contract.LLPResponse{
		ID:                            llp.ID,
		LLPIN:                         llp.LLPIN,
		LLPName:                       llp.LLPName,
		ROCName:                       llp.ROCName,
		DateOfIncorporation:           llp.DateOfIncorporation,
		EmailID:                       llp.EmailID,
		NumberOfPartners:              llp.NumberOfPartners,
		NumberOfDesignatedPartners:    llp.NumberOfDesignatedPartners,
		RegisteredAddress:             llp.RegisteredAddress,
		TotalObligationOfContribution: llp.TotalObligationOfContribution,
		LLPStatus:                     string(llp.LLPStatus),
		LastAnnualFilingDate:          llp.LastAnnualFilingDate,
		FinancialYear:                 llp.FinancialYear,
		CreatedAt:                     utils.FormatEpoch(llp.CreatedAt),
		UpdatedAt:                     utils.FormatEpoch(llp.UpdatedAt),
	}
}

func toAssociationResponse(assoc *entity.DirectorAssociation) *contract.AssociationResponse {
	return &contract.AssociationResponse{
		ID:                      assoc.ID,
		UserID:                  assoc.UserID,
		EntityID:                assoc.EntityID,
		EntityType:              string(assoc.EntityType),
		AssociationType:         string(assoc.AssociationType),
		DIN:                     assoc.DIN,
		OriginalAppointmentDate: assoc.OriginalAppointmentDate,
		AppointmentDate:         assoc.AppointmentDate,
		CessationDate:           assoc.CessationDate,
		IsActive:                assoc.IsActive,
		CreatedAt:               utils.FormatEpoch(assoc.CreatedAt),
		UpdatedAt:               utils.FormatEpoch(assoc.UpdatedAt),
	}
}

func toAssignmentResponse(assignment *entity.ProfessionalAssignment) *contract.AssignmentResponse {
	return &contract.AssignmentResponse{
		ID:             assignment.ID,
		ProfessionalID: assignment.ProfessionalID,
		EntityID:       assignment.EntityID,
		EntityType:     string(assignment.EntityType),
		Role:           string(assignment.Role),
		AssignedDate:   assignment.AssignedDate,
		IsActive:       assignment.IsActive,
		CreatedAt:      utils.FormatEpoch(assignment.CreatedAt),
		UpdatedAt:      utils.FormatEpoch(assignment.UpdatedAt),
	}
}
