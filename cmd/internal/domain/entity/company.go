package entity

type EntityStatus string

const (
	EntityStatusActive       EntityStatus = "ACTIVE"
	EntityStatusInactive     EntityStatus = "INACTIVE"
	EntityStatusUnderProcess EntityStatus = "UNDER_PROCESS"
	EntityStatusStruckOff    EntityStatus = "STRUCK_OFF"
	EntityStatusAmalgamated  EntityStatus = "AMALGAMATED"
)

type CompanyType string

const (
	CompanyTypePrivate    CompanyType = "PRIVATE"
	CompanyTypePublic     CompanyType = "PUBLIC"
	CompanyTypeOnePerson  CompanyType = "ONE_PERSON"
	CompanyTypeSection8   CompanyType = "SECTION_8"
	CompanyTypeGovernment CompanyType = "GOVERNMENT"
	CompanyTypeNBFC       CompanyType = "NBFC"
	CompanyTypeNidhi      CompanyType = "NIDHI"
	CompanyTypeIFSC       CompanyType = "IFSC"
)

type Company struct {
	ID                   string `gorm:"primaryKey"`
	CINNumber            string `gorm:"column:cin_number;not null;uniqueIndex"`
	CompanyName          string `gorm:"not null"`
	ROCName              string `gorm:"column:roc_name"`
	DateOfIncorporation  string
	EmailID              string `gorm:"column:email_id"`
	RegisteredAddress    string
	AuthorizedCapital    float64
	PaidUpCapital        float64
	NumberOfDirectors    int
	CompanyStatus        EntityStatus
	CompanyType          CompanyType
	LastAnnualFilingDate string
	FinancialYear        string
	AGMDate              string `gorm:"column:agm_date"`
	CreatedAt            int64  `gorm:"not null"`
	UpdatedAt            int64  `gorm:"not null;autoUpdateTime:false"`
}
