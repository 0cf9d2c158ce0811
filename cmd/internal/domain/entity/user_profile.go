package entity

type Role string

const (
	RoleDirectors     Role = "DIRECTORS"
	RoleProfessionals Role = "PROFESSIONALS"
	RoleAdmin         Role = "ADMIN"
)

type DINStatus string

const (
	DINStatusActive    DINStatus = "ACTIVE"
	DINStatusInactive  DINStatus = "INACTIVE"
	DINStatusSuspended DINStatus = "SUSPENDED"
	DINStatusPending   DINStatus = "PENDING"
)

type DSCStatus string

const (
	DSCStatusActive       DSCStatus = "ACTIVE"
	DSCStatusExpired      DSCStatus = "EXPIRED"
	DSCStatusRevoked      DSCStatus = "REVOKED"
	DSCStatusNotAvailable DSCStatus = "NOT_AVAILABLE"
)

// UserProfile is the application-side record for a Cognito account.
// UserID holds the Cognito sub; profiles created by a professional ahead
// of signup carry a placeholder UserID until the account is claimed.
type UserProfile struct {
	ID             string    `gorm:"primaryKey"`
	UserID         string    `gorm:"not null;index"`
	Email          string    `gorm:"not null;index"`
	Role           Role      `gorm:"not null"`
	DisplayName    string
	DIN            string    `gorm:"column:din;index"`
	DINStatus      DINStatus `gorm:"column:din_status"`
	DSCStatus      DSCStatus `gorm:"column:dsc_status"`
	PAN            string    `gorm:"column:pan"`
	PANDocumentKey string    `gorm:"column:pan_document_key"`
	ESignImageKey  string
	CreatedAt      int64 `gorm:"not null"`
	UpdatedAt      int64 `gorm:"not null;autoUpdateTime:false"`
}
