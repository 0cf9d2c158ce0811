package entity

// EntityType discriminates which table an entityId points at. The store
// keeps these links as plain string foreign keys resolved by follow-up
// queries, so both association tables carry the discriminator themselves.
type EntityType string

const (
	EntityTypeCompany EntityType = "COMPANY"
	EntityTypeLLP     EntityType = "LLP"
)

type AssociationType string

const (
	AssociationTypeDirector          AssociationType = "DIRECTOR"
	AssociationTypeDesignatedPartner AssociationType = "DESIGNATED_PARTNER"
	AssociationTypePartner           AssociationType = "PARTNER"
)

// DirectorAssociation links a director to an entity. Associations are
// soft-deactivated via IsActive, never deleted, to preserve appointment
// history.
type DirectorAssociation struct {
	ID                      string          `gorm:"primaryKey"`
	UserID                  string          `gorm:"not null;index"`
	EntityID                string          `gorm:"not null;index"`
	EntityType              EntityType      `gorm:"not null"`
	AssociationType         AssociationType `gorm:"not null"`
	DIN                     string          `gorm:"column:din"`
	OriginalAppointmentDate string
	AppointmentDate         string
	CessationDate           string
	IsActive                bool  `gorm:"not null;default:true"`
	CreatedAt               int64 `gorm:"not null"`
	UpdatedAt               int64 `gorm:"not null;autoUpdateTime:false"`
}

type ProfessionalRole string

const (
	ProfessionalRolePrimary   ProfessionalRole = "PRIMARY"
	ProfessionalRoleSecondary ProfessionalRole = "SECONDARY"
	ProfessionalRoleReviewer  ProfessionalRole = "REVIEWER"
)

// ProfessionalAssignment links a professional to an entity they manage.
// Soft-deactivated like DirectorAssociation.
type ProfessionalAssignment struct {
	ID             string           `gorm:"primaryKey"`
	ProfessionalID string           `gorm:"not null;index"`
	EntityID       string           `gorm:"not null;index"`
	EntityType     EntityType       `gorm:"not null"`
	Role           ProfessionalRole `gorm:"not null;default:PRIMARY"`
	AssignedDate   string
	IsActive       bool  `gorm:"not null;default:true"`
	CreatedAt      int64 `gorm:"not null"`
	UpdatedAt      int64 `gorm:"not null;autoUpdateTime:false"`
}
