package entity

type ServiceType string

const (
	ServiceTypeDirectorAppointment ServiceType = "DIRECTOR_APPOINTMENT"
	ServiceTypeDirectorResignation ServiceType = "DIRECTOR_RESIGNATION"
	ServiceTypeDirectorKYC         ServiceType = "DIRECTOR_KYC"
	ServiceTypeCompanyAnnualFiling ServiceType = "COMPANY_ANNUAL_FILING"
	ServiceTypeLLPAnnualFiling     ServiceType = "LLP_ANNUAL_FILING"
	ServiceTypeBoardResolution     ServiceType = "BOARD_RESOLUTION"
	ServiceTypeBoardMeetingMinutes ServiceType = "BOARD_MEETING_MINUTES"
	ServiceTypeAGMMinutes          ServiceType = "AGM_MINUTES"
	ServiceTypeEGMMinutes          ServiceType = "EGM_MINUTES"
)

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "PENDING"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusApproved   RequestStatus = "APPROVED"
	RequestStatusRejected   RequestStatus = "REJECTED"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
)

type RequestPriority string

const (
	RequestPriorityLow    RequestPriority = "LOW"
	RequestPriorityMedium RequestPriority = "MEDIUM"
	RequestPriorityHigh   RequestPriority = "HIGH"
)

// ServiceRequest is a director's ask for a compliance action, driven to
// resolution by a professional. RequestData holds the per-serviceType
// payload as a JSON string; the workflow package decodes it once at the
// boundary.
type ServiceRequest struct {
	ID          string          `gorm:"primaryKey"`
	DirectorID  string          `gorm:"not null;index"`
	EntityID    string          `gorm:"index"`
	EntityType  EntityType
	ServiceType ServiceType     `gorm:"not null;index"`
	RequestData string
	Status      RequestStatus   `gorm:"not null;index"`
	Priority    RequestPriority `gorm:"not null"`
	ProcessedBy string          `gorm:"index"`
	Comments    string
	CreatedAt   int64 `gorm:"not null"`
	UpdatedAt   int64 `gorm:"not null;autoUpdateTime:false"`
}
