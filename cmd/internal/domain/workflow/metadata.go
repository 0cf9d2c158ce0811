package workflow

import (
	"encoding/json"
	"fmt"

	"compliancedesk/cmd/internal/domain/entity"
)

// Task metadata kinds. The store keeps Task.Metadata as an opaque JSON
// string; these tags discriminate the payload so it is decoded exactly
// once at the boundary instead of re-parsed at every read site.
const (
	KindDirectorAppointment = "director-appointment"
	KindDINEmailAssociation = "din-email-association"
)

// AppointmentRequest is the originating director-appointment request,
// carried through every stage of the pipeline.
type AppointmentRequest struct {
	AuthorizerUserID string `json:"authorizerUserId"`
	AuthorizerDIN    string `json:"authorizerDin,omitempty"`
	AuthorizerName   string `json:"authorizerName,omitempty"`
	AuthorizerEmail  string `json:"authorizerEmail,omitempty"`

	AppointeeDIN    string `json:"appointeeDin"`
	AppointeeEmail  string `json:"appointeeEmail,omitempty"`
	AppointeeUserID string `json:"appointeeUserId,omitempty"`

	AppointmentDate string `json:"appointmentDate"`
	Designation     string `json:"designation"`
	Category        string `json:"category"`

	EntityID         string            `json:"entityId"`
	EntityType       entity.EntityType `json:"entityType"`
	EntityName       string            `json:"entityName"`
	EntityIdentifier string            `json:"entityIdentifier"`
}

// DisclosureCompany is one entry of the appointee's interest disclosure.
type DisclosureCompany struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	CIN              string  `json:"cin"`
	NatureOfInterest string  `json:"natureOfInterest,omitempty"`
	Shareholding     float64 `json:"shareholdingPercentage,omitempty"`
	DateOfInterest   string  `json:"dateOfInterest,omitempty"`
}

// DirectorInfo is the professional-filled record the form generator
// renders from.
type DirectorInfo struct {
	FullName    string `json:"fullName"`
	FatherName  string `json:"fatherName"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
	Gender      string `json:"gender"`

	DIN      string `json:"din"`
	PAN      string `json:"pan"`
	Aadhar   string `json:"aadhar"`
	Passport string `json:"passport,omitempty"`

	ResidentialAddress string `json:"residentialAddress"`
	City               string `json:"city"`
	State              string `json:"state"`
	Pincode            string `json:"pincode"`
	Country            string `json:"country"`

	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`

	Occupation             string `json:"occupation"`
	ProfessionalMembership string `json:"professionalMembership,omitempty"`
	ExistingDirectorships  string `json:"existingDirectorships,omitempty"`
	ExistingPositions      string `json:"existingPositions,omitempty"`

	AppointmentDate string `json:"appointmentDate"`
	Designation     string `json:"designation"`
	Category        string `json:"category"`

	CompanyName string            `json:"companyName,omitempty"`
	CIN         string            `json:"cin,omitempty"`
	EntityID    string            `json:"entityId,omitempty"`
	EntityType  entity.EntityType `json:"entityType,omitempty"`

	CompanyRegistration string `json:"companyRegistration,omitempty"`
	NominalCapital      string `json:"nominalCapital,omitempty"`
	PaidUpCapital       string `json:"paidUpCapital,omitempty"`
	PlaceOfSigning      string `json:"placeOfSigning"`

	OtherCompanyInterests []InterestEntry `json:"otherCompanyInterests"`
}

// InterestEntry is one line of the MBP-1 interest table.
type InterestEntry struct {
	CompanyName      string `json:"companyName"`
	NatureOfInterest string `json:"natureOfInterest"`
	Shareholding     string `json:"shareholding"`
	DateOfInterest   string `json:"dateOfInterest"`
}

// AppointmentMetadata is the full workflow state embedded in each
// pipeline task. The chain of tasks is tied together only by this blob;
// there is no separate persisted workflow record.
type AppointmentMetadata struct {
	Kind         string `json:"kind"`
	CurrentStage Stage  `json:"currentStage"`

	AppointmentRequest AppointmentRequest `json:"appointmentRequest"`

	DirectorInfo        *DirectorInfo       `json:"directorInfo,omitempty"`
	DisclosureCompanies []DisclosureCompany `json:"companiesForDisclosure,omitempty"`

	DocumentsUploaded bool     `json:"documentsUploaded,omitempty"`
	UploadedDocuments []string `json:"uploadedDocuments,omitempty"`

	AssignedProfessionalID string `json:"assignedProfessionalId,omitempty"`

	FormsGenerated   bool     `json:"formsGenerated,omitempty"`
	GeneratedFormIDs []string `json:"generatedFormIds,omitempty"`

	StageCompletedAt map[Stage]string `json:"stageCompletedAt,omitempty"`
}

// NewAppointmentMetadata builds the initial pipeline state.
func NewAppointmentMetadata(req AppointmentRequest, initial Stage, professionalID string) AppointmentMetadata {
	return AppointmentMetadata{
		Kind:                   KindDirectorAppointment,
		CurrentStage:           initial,
		AppointmentRequest:     req,
		AssignedProfessionalID: professionalID,
		StageCompletedAt:       map[Stage]string{},
	}
}

func (m AppointmentMetadata) Encode() (string, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode appointment metadata: %w", err)
	}
	return string(raw), nil
}

// DecodeAppointmentMetadata parses a task's metadata blob and checks the
// discriminator tag.
func DecodeAppointmentMetadata(raw string) (AppointmentMetadata, error) {
	var m AppointmentMetadata
	if raw == "" {
		return m, fmt.Errorf("empty task metadata")
	}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return m, fmt.Errorf("decode appointment metadata: %w", err)
	}
	if m.Kind != KindDirectorAppointment {
		return m, fmt.Errorf("unexpected metadata kind %q", m.Kind)
	}
	return m, nil
}

// DINAssociationMetadata tags tasks asking a professional to bind a DIN
// to an email before the appointment pipeline proper can start.
type DINAssociationMetadata struct {
	Kind             string             `json:"kind"`
	DirectorDIN      string             `json:"directorDin"`
	EntityName       string             `json:"entityName"`
	EntityIdentifier string             `json:"entityIdentifier"`
	AppointmentData  AppointmentRequest `json:"appointmentData"`
}

func (m DINAssociationMetadata) Encode() (string, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode din association metadata: %w", err)
	}
	return string(raw), nil
}

func DecodeDINAssociationMetadata(raw string) (DINAssociationMetadata, error) {
	var m DINAssociationMetadata
	if raw == "" {
		return m, fmt.Errorf("empty task metadata")
	}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return m, fmt.Errorf("decode din association metadata: %w", err)
	}
	if m.Kind != KindDINEmailAssociation {
		return m, fmt.Errorf("unexpected metadata kind %q", m.Kind)
	}
	return m, nil
}
