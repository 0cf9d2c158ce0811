package entity

type DocumentType string

const (
	DocumentTypeIdentity              DocumentType = "IDENTITY"
	DocumentTypeAddressProof          DocumentType = "ADDRESS_PROOF"
	DocumentTypeBoardResolution       DocumentType = "BOARD_RESOLUTION"
	DocumentTypeFinancialStatement    DocumentType = "FINANCIAL_STATEMENT"
	DocumentTypeComplianceCertificate DocumentType = "COMPLIANCE_CERTIFICATE"
	DocumentTypeOther                 DocumentType = "OTHER"
)

// Document is metadata only; the binary payload lives in S3 under FileKey.
// An upload that succeeds against S3 but fails the record insert leaves an
// orphaned object behind (known limitation, see document_service).
type Document struct {
	ID               string       `gorm:"primaryKey"`
	FileName         string       `gorm:"not null"`
	DocumentName     string       `gorm:"not null"`
	FileKey          string       `gorm:"not null;index"`
	FileSize         int64
	MimeType         string
	UploadedBy       string       `gorm:"not null;index"`
	UploadedAt       int64        `gorm:"not null"`
	DocumentType     DocumentType `gorm:"not null"`
	EntityID         string       `gorm:"index"`
	EntityType       EntityType
	ServiceRequestID string       `gorm:"index"`
	IsPublic         bool         `gorm:"not null;default:false"`
	CreatedAt        int64        `gorm:"not null"`
	UpdatedAt        int64        `gorm:"not null;autoUpdateTime:false"`
}
