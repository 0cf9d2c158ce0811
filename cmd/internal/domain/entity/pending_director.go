package entity

type PendingDirectorStatus string

const (
	PendingDirectorStatusPending PendingDirectorStatus = "PENDING"
	PendingDirectorStatusClaimed PendingDirectorStatus = "CLAIMED"
	PendingDirectorStatusExpired PendingDirectorStatus = "EXPIRED"
)

// PendingDirector pre-associates a DIN with an email before the director
// has an account. When someone signs up with the email the association is
// claimed and the DIN copied onto their profile.
type PendingDirector struct {
	ID             string                `gorm:"primaryKey"`
	DIN            string                `gorm:"column:din;not null;index"`
	Email          string                `gorm:"not null;index"`
	DirectorName   string
	AssociatedBy   string                `gorm:"not null"`
	EntityID       string
	EntityType     EntityType
	Status         PendingDirectorStatus `gorm:"not null;index"`
	RequestContext string
	ExpiresAt      int64 `gorm:"not null"`
	CreatedAt      int64 `gorm:"not null"`
	UpdatedAt      int64 `gorm:"not null;autoUpdateTime:false"`
}
