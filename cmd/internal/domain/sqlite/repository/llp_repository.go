package repository

import (
	"errors"

	"compliancedesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultLLPRepository struct {
	db *gorm.DB
}

func NewLLPRepository(db *gorm.DB) *DefaultLLPRepository {
	return &DefaultLLPRepository{db: db}
}

func (r *DefaultLLPRepository) FindAll() ([]*entity.LLP, error) {
	var llps []*entity.LLP
	err := r.db.Find(&llps).Error
	if err != nil {
		return nil, err
	}
	return llps, nil
}

func (r *DefaultLLPRepository) FindByID(id string) (*entity.LLP, error) {
	var llp entity.LLP
	err := r.db.First(&llp, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &llp, nil
}

func (r *DefaultLLPRepository) FindByLLPIN(llpin string) (*entity.LLP, error) {
	var llp entity.LLP
	err := r.db.Where("llpin = ?", llpin).First(&llp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &llp, nil
}

func (r *DefaultLLPRepository) Save(llp *entity.LLP) error {
	return r.db.Save(llp).Error
}

func (r *DefaultLLPRepository) Delete(llp *entity.LLP) error {
	return r.db.Delete(llp).Error
}
