package repository

import (
	"errors"

	"compliancedesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPendingDirectorRepository struct {
	db *gorm.DB
}

func NewPendingDirectorRepository(db *gorm.DB) *DefaultPendingDirectorRepository {
	return &DefaultPendingDirectorRepository{db: db}
}

func (r *DefaultPendingDirectorRepository) FindByID(id string) (*entity.PendingDirector, error) {
	var pd entity.PendingDirector
	err := r.db.First(&pd, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &pd, nil
}

func (r *DefaultPendingDirectorRepository) FindPendingByDIN(din string) (*entity.PendingDirector, error) {
	var pd entity.PendingDirector
	err := r.db.First(&pd, "din = ? AND status = ?", din, entity.PendingDirectorStatusPending).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &pd, nil
}

func (r *DefaultPendingDirectorRepository) FindPendingByEmail(email string) (*entity.PendingDirector, error) {
	var pd entity.PendingDirector
	err := r.db.First(&pd, "email = ? AND status = ?", email, entity.PendingDirectorStatusPending).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &pd, nil
}

// FindExpired returns PENDING associations whose expiry is at or before the
// given epoch-millis instant.
func (r *DefaultPendingDirectorRepository) FindExpired(now int64) ([]*entity.PendingDirector, error) {
	var pds []*entity.PendingDirector
	err := r.db.
		Find(&pds, "status = ? AND expires_at <= ?", entity.PendingDirectorStatusPending, now).Error
	if err != nil {
		return nil, err
	}
	return pds, nil
}

func (r *DefaultPendingDirectorRepository) Save(pd *entity.PendingDirector) error {
	return r.db.Save(pd).Error
}
