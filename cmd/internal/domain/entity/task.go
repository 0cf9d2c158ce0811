package entity

type TaskType string

const (
	TaskTypeDocumentUpload    TaskType = "DOCUMENT_UPLOAD"
	TaskTypeFormCompletion    TaskType = "FORM_COMPLETION"
	TaskTypeApprovalRequired  TaskType = "APPROVAL_REQUIRED"
	TaskTypeReviewNeeded      TaskType = "REVIEW_NEEDED"
	TaskTypeSignatureRequired TaskType = "SIGNATURE_REQUIRED"
	TaskTypeInformationUpdate TaskType = "INFORMATION_UPDATE"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

type RelatedEntityType string

const (
	RelatedEntityServiceRequest      RelatedEntityType = "SERVICE_REQUEST"
	RelatedEntityTask                RelatedEntityType = "TASK"
	RelatedEntityCompany             RelatedEntityType = "COMPANY"
	RelatedEntityLLP                 RelatedEntityType = "LLP"
	RelatedEntityDocument            RelatedEntityType = "DOCUMENT"
	RelatedEntityDirectorAssociation RelatedEntityType = "DIRECTOR_ASSOCIATION"
)

// Task is a to-do assigned to exactly one user. Metadata carries the
// per-taskType payload as a JSON string; for the director-appointment
// pipeline it embeds the accumulated workflow state.
type Task struct {
	ID                string       `gorm:"primaryKey"`
	AssignedTo        string       `gorm:"not null;index"`
	AssignedBy        string
	TaskType          TaskType     `gorm:"not null;index"`
	Title             string       `gorm:"not null"`
	Description       string
	Priority          TaskPriority `gorm:"not null"`
	Status            TaskStatus   `gorm:"not null;index"`
	DueDate           int64
	CompletedAt       int64
	RelatedEntityID   string
	RelatedEntityType RelatedEntityType
	Metadata          string
	CreatedAt         int64 `gorm:"not null"`
	UpdatedAt         int64 `gorm:"not null;autoUpdateTime:false"`
}
