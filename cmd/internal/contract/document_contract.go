package contract

const MaxDocumentFileSizeBytes = 10 * 1024 * 1024

var ValidDocumentFileTypes = []string{"pdf", "png", "jpg", "jpeg", "doc", "docx", "xls", "xlsx", "txt"}

type UploadDocumentRequest struct {
	DocumentName     string `form:"document_name" validate:"required,min=2,max=200"`
	DocumentType     string `form:"document_type" validate:"required,oneof=IDENTITY ADDRESS_PROOF BOARD_RESOLUTION FINANCIAL_STATEMENT COMPLIANCE_CERTIFICATE OTHER"`
	EntityID         string `form:"entity_id" validate:"omitempty"`
	EntityType       string `form:"entity_type" validate:"omitempty,oneof=COMPANY LLP"`
	ServiceRequestID string `form:"service_request_id" validate:"omitempty"`
	IsPublic         bool   `form:"is_public"`
}

type DocumentResponse struct {
	ID               string `json:"id"`
	FileName         string `json:"file_name"`
	DocumentName     string `json:"document_name"`
	FileSize         int64  `json:"file_size"`
	MimeType         string `json:"mime_type,omitempty"`
	UploadedBy       string `json:"uploaded_by"`
	UploadedAt       string `json:"uploaded_at"`
	DocumentType     string `json:"document_type"`
	EntityID         string `json:"entity_id,omitempty"`
	EntityType       string `json:"entity_type,omitempty"`
	ServiceRequestID string `json:"service_request_id,omitempty"`
	IsPublic         bool   `json:"is_public"`
	DownloadURL      string `json:"download_url,omitempty"`
	CreatedAt        string `json:"created_at"`
}
