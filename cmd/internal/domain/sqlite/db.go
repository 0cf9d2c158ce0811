package sqlite

import (
	"os"
	"path/filepath"
	"time"

	"compliancedesk/cmd/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func Init() (*gorm.DB, error) {
	dbPath := os.Getenv("SQLITE_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(".", "compliancedesk.db")
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.UserProfile{},
		&entity.Company{},
		&entity.LLP{},
		&entity.DirectorAssociation{},
		&entity.ProfessionalAssignment{},
		&entity.ServiceRequest{},
		&entity.Task{},
		&entity.Document{},
		&entity.Notification{},
		&entity.PendingDirector{},
		&entity.AssetTemplate{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
