package repository

import (
	"errors"

	"compliancedesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAssetTemplateRepository struct {
	db *gorm.DB
}

func NewAssetTemplateRepository(db *gorm.DB) *DefaultAssetTemplateRepository {
	return &DefaultAssetTemplateRepository{db: db}
}

func (r *DefaultAssetTemplateRepository) FindByID(id string) (*entity.AssetTemplate, error) {
	var tpl entity.AssetTemplate
	err := r.db.First(&tpl, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *DefaultAssetTemplateRepository) FindAllActive() ([]*entity.AssetTemplate, error) {
	var tpls []*entity.AssetTemplate
	err := r.db.Order("name ASC").Find(&tpls, "is_active = ?", true).Error
	if err != nil {
		return nil, err
	}
	return tpls, nil
}

func (r *DefaultAssetTemplateRepository) FindAll() ([]*entity.AssetTemplate, error) {
	var tpls []*entity.AssetTemplate
	err := r.db.Order("name ASC").Find(&tpls).Error
	if err != nil {
		return nil, err
	}
	return tpls, nil
}

func (r *DefaultAssetTemplateRepository) Save(tpl *entity.AssetTemplate) error {
	return r.db.Save(tpl).Error
}

func (r *DefaultAssetTemplateRepository) Delete(tpl *entity.AssetTemplate) error {
	return r.db.Delete(tpl).Error
}
