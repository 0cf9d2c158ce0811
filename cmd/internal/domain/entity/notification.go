package entity

type NotificationType string

const (
	NotificationTaskAssignment   NotificationType = "TASK_ASSIGNMENT"
	NotificationServiceRequest   NotificationType = "SERVICE_REQUEST"
	NotificationDocumentRequired NotificationType = "DOCUMENT_REQUIRED"
	NotificationApprovalNeeded   NotificationType = "APPROVAL_NEEDED"
	NotificationDeadlineReminder NotificationType = "DEADLINE_REMINDER"
	NotificationStatusUpdate     NotificationType = "STATUS_UPDATE"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusRead    NotificationStatus = "READ"
)

type Notification struct {
	ID                string             `gorm:"primaryKey"`
	RecipientID       string             `gorm:"not null;index"`
	RecipientEmail    string
	RecipientRole     Role
	NotificationType  NotificationType   `gorm:"not null"`
	Title             string             `gorm:"not null"`
	Message           string
	RelatedEntityID   string
	RelatedEntityType RelatedEntityType
	Priority          TaskPriority       `gorm:"not null"`
	Status            NotificationStatus `gorm:"not null;index"`
	ScheduledAt       int64
	ReadAt            int64
	Metadata          string
	CreatedAt         int64 `gorm:"not null"`
	UpdatedAt         int64 `gorm:"not null;autoUpdateTime:false"`
}
