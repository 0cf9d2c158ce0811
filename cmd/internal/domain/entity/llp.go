package entity

type LLP struct {
	ID                            string `gorm:"primaryKey"`
	LLPIN                         string `gorm:"column:llpin;not null;uniqueIndex"`
	LLPName                       string `gorm:"column:llp_name;not null"`
	ROCName                       string `gorm:"column:roc_name"`
	DateOfIncorporation           string
	EmailID                       string `gorm:"column:email_id"`
	NumberOfPartners              int
	NumberOfDesignatedPartners    int
	RegisteredAddress             string
	TotalObligationOfContribution float64
	LLPStatus                     EntityStatus `gorm:"column:llp_status"`
	LastAnnualFilingDate          string
	FinancialYear                 string
	CreatedAt                     int64 `gorm:"not null"`
	UpdatedAt                     int64 `gorm:"not null;autoUpdateTime:false"`
}
