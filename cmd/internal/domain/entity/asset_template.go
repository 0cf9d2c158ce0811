package entity

// AssetTemplate is an admin-managed template asset (form boilerplate,
// checklist, letterhead) served to the dashboards.
type AssetTemplate struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Category    string `gorm:"index"`
	FileKey     string
	IsActive    bool  `gorm:"not null;default:true"`
	CreatedBy   string
	CreatedAt   int64 `gorm:"not null"`
	UpdatedAt   int64 `gorm:"not null;autoUpdateTime:false"`
}
