package contract

const MaxProfileAttachmentSizeBytes = 5 * 1024 * 1024

var (
	ValidPANDocumentFileTypes = []string{"pdf", "png", "jpg", "jpeg"}
	ValidESignFileTypes       = []string{"png", "jpg", "jpeg"}
)

type CreateProfileRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"required,oneof=DIRECTORS PROFESSIONALS ADMIN"`
	DisplayName string `json:"display_name" validate:"omitempty,min=2,max=120"`
	DIN         string `json:"din" validate:"omitempty,din"`
	PAN         string `json:"pan" validate:"omitempty,pan"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,min=2,max=120"`
	DIN         *string `json:"din" validate:"omitempty,din"`
	DINStatus   *string `json:"din_status" validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED PENDING"`
	DSCStatus   *string `json:"dsc_status" validate:"omitempty,oneof=ACTIVE EXPIRED REVOKED NOT_AVAILABLE"`
	PAN         *string `json:"pan" validate:"omitempty,pan"`
}

type ProfileResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	DisplayName    string `json:"display_name,omitempty"`
	DIN            string `json:"din,omitempty"`
	DINStatus      string `json:"din_status,omitempty"`
	DSCStatus      string `json:"dsc_status,omitempty"`
	PAN            string `json:"pan,omitempty"`
	PANDocumentURL string `json:"pan_document_url,omitempty"`
	ESignImageURL  string `json:"esign_image_url,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
