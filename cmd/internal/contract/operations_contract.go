package contract

import "encoding/json"

// OperationRequest is the envelope both operation endpoints accept: a
// named operation plus its untyped payload, decoded by the matching
// handler.
type OperationRequest struct {
	Operation string          `json:"operation" validate:"required,min=1,max=80"`
	Data      json.RawMessage `json:"data"`
}

// OperationResponse is the common result envelope for dispatched
// operations.
type OperationResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

type SubmitAppointmentData struct {
	DIN              string `json:"din" validate:"required,din"`
	AppointmentDate  string `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	Designation      string `json:"designation" validate:"required,max=100"`
	Category         string `json:"category" validate:"omitempty,max=100"`
	EntityID         string `json:"entity_id" validate:"required"`
	EntityType       string `json:"entity_type" validate:"required,oneof=COMPANY LLP"`
	EntityName       string `json:"entity_name" validate:"required,max=200"`
	EntityIdentifier string `json:"entity_identifier" validate:"required,max=30,nospaces"`
	AuthorizerDIN    string `json:"authorizer_din" validate:"omitempty,din"`
	AuthorizerName   string `json:"authorizer_name" validate:"omitempty,max=200"`
	AuthorizerEmail  string `json:"authorizer_email" validate:"omitempty,email"`
}

type AssociateDINEmailData struct {
	DIN          string `json:"din" validate:"required,din"`
	Email        string `json:"email" validate:"required,email"`
	DirectorName string `json:"director_name" validate:"omitempty,max=200"`
	EntityID     string `json:"entity_id" validate:"omitempty"`
	EntityType   string `json:"entity_type" validate:"omitempty,oneof=COMPANY LLP"`
}

type CompleteTaskData struct {
	TaskID string `json:"task_id" validate:"required"`
}

type CompleteDocumentUploadData struct {
	TaskID string `json:"task_id" validate:"required"`
}

type SubmitDirectorInfoData struct {
	TaskID       string          `json:"task_id" validate:"required"`
	DirectorInfo json.RawMessage `json:"director_info" validate:"required"`
}

type SubmitInterestDisclosureData struct {
	TaskID     string          `json:"task_id" validate:"required"`
	Disclosure json.RawMessage `json:"interest_disclosure" validate:"required"`
}

type GenerateFormsData struct {
	TaskID string `json:"task_id" validate:"required"`
}

type ProcessRequestData struct {
	RequestID string `json:"request_id" validate:"required"`
	Action    string `json:"action" validate:"required,oneof=start approve reject complete"`
	Comments  string `json:"comments" validate:"omitempty,max=2000"`
}

type GetTaskDetailsData struct {
	TaskID string `json:"task_id" validate:"required"`
}

type SubmitResignationData struct {
	DIN             string `json:"din" validate:"required,din"`
	EntityID        string `json:"entity_id" validate:"required"`
	EntityType      string `json:"entity_type" validate:"required,oneof=COMPANY LLP"`
	ResignationDate string `json:"resignation_date" validate:"required,datetime=2006-01-02"`
	Reason          string `json:"reason" validate:"omitempty,max=2000"`
}
