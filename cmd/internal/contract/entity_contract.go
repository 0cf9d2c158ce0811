package contract

type CompanyRequest struct {
	CINNumber            string  `json:"cin_number" validate:"required,cin"`
	CompanyName          string  `json:"company_name" validate:"required,min=2,max=200"`
	ROCName              string  `json:"roc_name" validate:"omitempty,max=120"`
	DateOfIncorporation  string  `json:"date_of_incorporation" validate:"omitempty,datetime=2006-01-02"`
	EmailID              string  `json:"email_id" validate:"omitempty,email"`
	RegisteredAddress    string  `json:"registered_address" validate:"omitempty,max=500"`
	AuthorizedCapital    float64 `json:"authorized_capital" validate:"omitempty,min=0"`
	PaidUpCapital        float64 `json:"paid_up_capital" validate:"omitempty,min=0"`
	NumberOfDirectors    int     `json:"number_of_directors" validate:"omitempty,min=0"`
	CompanyStatus        string  `json:"company_status" validate:"omitempty,oneof=ACTIVE INACTIVE UNDER_PROCESS STRUCK_OFF AMALGAMATED"`
	CompanyType          string  `json:"company_type" validate:"omitempty,oneof=PRIVATE PUBLIC ONE_PERSON SECTION_8 GOVERNMENT NBFC NIDHI IFSC"`
	LastAnnualFilingDate string  `json:"last_annual_filing_date" validate:"omitempty,datetime=2006-01-02"`
	FinancialYear        string  `json:"financial_year" validate:"omitempty,max=20"`
	AGMDate              string  `json:"agm_date" validate:"omitempty,datetime=2006-01-02"`
}

type CompanyResponse struct {
	ID                   string  `json:"id"`
	CINNumber            string  `json:"cin_number"`
	CompanyName          string  `json:"company_name"`
	ROCName              string  `json:"roc_name,omitempty"`
	DateOfIncorporation  string  `json:"date_of_incorporation,omitempty"`
	EmailID              string  `json:"email_id,omitempty"`
	RegisteredAddress    string  `json:"registered_address,omitempty"`
	AuthorizedCapital    float64 `json:"authorized_capital"`
	PaidUpCapital        float64 `json:"paid_up_capital"`
	NumberOfDirectors    int     `json:"number_of_directors"`
	CompanyStatus        string  `json:"company_status,omitempty"`
	CompanyType          string  `json:"company_type,omitempty"`
	LastAnnualFilingDate string  `json:"last_annual_filing_date,omitempty"`
	FinancialYear        string  `json:"financial_year,omitempty"`
	AGMDate              string  `json:"agm_date,omitempty"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

type LLPRequest struct {
	LLPIN                         string  `json:"llpin" validate:"required,llpin"`
	LLPName                       string  `json:"llp_name" validate:"required,min=2,max=200"`
	ROCName                       string  `json:"roc_name" validate:"omitempty,max=120"`
	DateOfIncorporation           string  `json:"date_of_incorporation" validate:"omitempty,datetime=2006-01-02"`
	EmailID                       string  `json:"email_id" validate:"omitempty,email"`
	NumberOfPartners              int     `json:"number_of_partners" validate:"omitempty,min=0"`
	NumberOfDesignatedPartners    int     `json:"number_of_designated_partners" validate:"omitempty,min=0"`
	RegisteredAddress             string  `json:"registered_address" validate:"omitempty,max=500"`
	TotalObligationOfContribution float64 `json:"total_obligation_of_contribution" validate:"omitempty,min=0"`
	LLPStatus                     string  `json:"llp_status" validate:"omitempty,oneof=ACTIVE INACTIVE UNDER_PROCESS STRUCK_OFF AMALGAMATED"`
	LastAnnualFilingDate          string  `json:"last_annual_filing_date" validate:"omitempty,datetime=2006-01-02"`
	FinancialYear                 string  `json:"financial_year" validate:"omitempty,max=20"`
}

type LLPResponse struct {
	ID                            string  `json:"id"`
	LLPIN                         string  `json:"llpin"`
	LLPName                       string  `json:"llp_name"`
	ROCName                       string  `json:"roc_name,omitempty"`
	DateOfIncorporation           string  `json:"date_of_incorporation,omitempty"`
	EmailID                       string  `json:"email_id,omitempty"`
	NumberOfPartners              int     `json:"number_of_partners"`
	NumberOfDesignatedPartners    int     `json:"number_of_designated_partners"`
	RegisteredAddress             string  `json:"registered_address,omitempty"`
	TotalObligationOfContribution float64 `json:"total_obligation_of_contribution"`
	LLPStatus                     string  `json:"llp_status,omitempty"`
	LastAnnualFilingDate          string  `json:"last_annual_filing_date,omitempty"`
	FinancialYear                 string  `json:"financial_year,omitempty"`
	CreatedAt                     string  `json:"created_at"`
	UpdatedAt                     string  `json:"updated_at"`
}

type AssociationRequest struct {
	UserID          string `json:"user_id" validate:"required"`
	EntityID        string `json:"entity_id" validate:"required"`
	EntityType      string `json:"entity_type" validate:"required,oneof=COMPANY LLP"`
	AssociationType string `json:"association_type" validate:"required,oneof=DIRECTOR DESIGNATED_PARTNER PARTNER"`
	DIN             string `json:"din" validate:"omitempty,din"`
	AppointmentDate string `json:"appointment_date" validate:"omitempty,datetime=2006-01-02"`
}

type AssociationResponse struct {
	ID                      string `json:"id"`
	UserID                  string `json:"user_id"`
	EntityID                string `json:"entity_id"`
	EntityType              string `json:"entity_type"`
	AssociationType         string `json:"association_type"`
	DIN                     string `json:"din,omitempty"`
	OriginalAppointmentDate string `json:"original_appointment_date,omitempty"`
	AppointmentDate         string `json:"appointment_date,omitempty"`
	CessationDate           string `json:"cessation_date,omitempty"`
	IsActive                bool   `json:"is_active"`
	CreatedAt               string `json:"created_at"`
	UpdatedAt               string `json:"updated_at"`
}

type AssignmentRequest struct {
	ProfessionalID string `json:"professional_id" validate:"required"`
	EntityID       string `json:"entity_id" validate:"required"`
	EntityType     string `json:"entity_type" validate:"required,oneof=COMPANY LLP"`
	Role           string `json:"role" validate:"omitempty,oneof=PRIMARY SECONDARY REVIEWER"`
	AssignedDate   string `json:"assigned_date" validate:"omitempty,datetime=2006-01-02"`
}

type AssignmentResponse struct {
	ID             string `json:"id"`
	ProfessionalID string `json:"professional_id"`
	EntityID       string `json:"entity_id"`
	EntityType     string `json:"entity_type"`
	Role           string `json:"role"`
	AssignedDate   string `json:"assigned_date,omitempty"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
