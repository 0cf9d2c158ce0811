package contract

type CreateServiceRequestRequest struct {
	ServiceType string `json:"service_type" validate:"required,oneof=DIRECTOR_APPOINTMENT DIRECTOR_RESIGNATION DIRECTOR_KYC COMPANY_ANNUAL_FILING LLP_ANNUAL_FILING BOARD_RESOLUTION BOARD_MEETING_MINUTES AGM_MINUTES EGM_MINUTES"`
	EntityID    string `json:"entity_id" validate:"omitempty"`
	EntityType  string `json:"entity_type" validate:"omitempty,oneof=COMPANY LLP"`
	Priority    string `json:"priority" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	Comments    string `json:"comments" validate:"omitempty,max=2000"`
	RequestData string `json:"request_data" validate:"omitempty,max=100000,json"`
}

type ProcessServiceRequestRequest struct {
	Action   string `json:"action" validate:"required,oneof=start approve reject complete"`
	Comments string `json:"comments" validate:"omitempty,max=2000"`
}

type ServiceRequestFilterQuery struct {
	DirectorID  string `query:"director_id"`
	ProcessedBy string `query:"processed_by"`
	Status      string `query:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS APPROVED REJECTED COMPLETED"`
	ServiceType string `query:"service_type" validate:"omitempty,oneof=DIRECTOR_APPOINTMENT DIRECTOR_RESIGNATION DIRECTOR_KYC COMPANY_ANNUAL_FILING LLP_ANNUAL_FILING BOARD_RESOLUTION BOARD_MEETING_MINUTES AGM_MINUTES EGM_MINUTES"`
}

type ServiceRequestResponse struct {
	ID          string `json:"id"`
	DirectorID  string `json:"director_id"`
	ServiceType string `json:"service_type"`
	EntityID    string `json:"entity_id,omitempty"`
	EntityType  string `json:"entity_type,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Comments    string `json:"comments,omitempty"`
	RequestData string `json:"request_data,omitempty"`
	ProcessedBy string `json:"processed_by,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type ServiceRequestListResponse struct {
	Requests []*ServiceRequestResponse `json:"requests"`
	Counts   ServiceRequestCounts      `json:"counts"`
}

type ServiceRequestCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Approved   int `json:"approved"`
	Rejected   int `json:"rejected"`
	Completed  int `json:"completed"`
}
