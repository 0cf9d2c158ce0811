package repository

import (
	"errors"

	"compliancedesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *DefaultAssignmentRepository {
	return &DefaultAssignmentRepository{db: db}
}

func (r *DefaultAssignmentRepository) FindAllByProfessional(professionalID string) ([]*entity.ProfessionalAssignment, error) {
	var assignments []*entity.ProfessionalAssignment
	err := r.db.Where("professional_id = ?", professionalID).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *DefaultAssignmentRepository) FindActiveByProfessional(professionalID string) ([]*entity.ProfessionalAssignment, error) {
	var assignments []*entity.ProfessionalAssignment
	err := r.db.Where("professional_id = ? AND is_active = ?", professionalID, true).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *DefaultAssignmentRepository) FindActiveByEntity(entityID string) ([]*entity.ProfessionalAssignment, error) {
	var assignments []*entity.ProfessionalAssignment
	err := r.db.Where("entity_id = ? AND is_active = ?", entityID, true).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *DefaultAssignmentRepository) FindByProfessionalAndEntity(professionalID, entityID string) (*entity.ProfessionalAssignment, error) {
	var assignment entity.ProfessionalAssignment
	err := r.db.Where("professional_id = ? AND entity_id = ?", professionalID, entityID).First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *DefaultAssignmentRepository) Save(assignment *entity.ProfessionalAssignment) error {
	return r.db.Save(assignment).Error
}
