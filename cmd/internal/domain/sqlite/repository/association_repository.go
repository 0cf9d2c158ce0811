package repository

import (
	"errors"

	"compliancedesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAssociationRepository struct {
	db *gorm.DB
}

func NewAssociationRepository(db *gorm.DB) *DefaultAssociationRepository {
	return &DefaultAssociationRepository{db: db}
}

func (r *DefaultAssociationRepository) FindByID(id string) (*entity.DirectorAssociation, error) {
	var assoc entity.DirectorAssociation
	err := r.db.First(&assoc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &assoc, nil
}

func (r *DefaultAssociationRepository) FindAllByUser(userID string) ([]*entity.DirectorAssociation, error) {
	var assocs []*entity.DirectorAssociation
	err := r.db.Where("user_id = ?", userID).Find(&assocs).Error
	if err != nil {
		return nil, err
	}
	return assocs, nil
}

func (r *DefaultAssociationRepository) FindActiveByUser(userID string) ([]*entity.DirectorAssociation, error) {
	var assocs []*entity.DirectorAssociation
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&assocs).Error
	if err != nil {
		return nil, err
	}
	return assocs, nil
}

func (r *DefaultAssociationRepository) FindAllByEntity(entityID string) ([]*entity.DirectorAssociation, error) {
	var assocs []*entity.DirectorAssociation
	err := r.db.Where("entity_id = ?", entityID).Find(&assocs).Error
	if err != nil {
		return nil, err
	}
	return assocs, nil
}

func (r *DefaultAssociationRepository) FindByUserAndEntity(userID, entityID string) (*entity.DirectorAssociation, error) {
	var assoc entity.DirectorAssociation
	err := r.db.Where("user_id = ? AND entity_id = ?", userID, entityID).First(&assoc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &assoc, nil
}

func (r *DefaultAssociationRepository) Save(assoc *entity.DirectorAssociation) error {
	return r.db.Save(assoc).Error
}
