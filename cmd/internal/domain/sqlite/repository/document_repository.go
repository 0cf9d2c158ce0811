package repository

import (
	"errors"

	"compliancedesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultDocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DefaultDocumentRepository {
	return &DefaultDocumentRepository{db: db}
}

func (r *DefaultDocumentRepository) FindByID(id string) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DefaultDocumentRepository) FindAll() ([]*entity.Document, error) {
	var docs []*entity.Document
	err := r.db.Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DefaultDocumentRepository) FindByServiceRequest(requestID string) ([]*entity.Document, error) {
	var docs []*entity.Document
	err := r.db.Find(&docs, "service_request_id = ?", requestID).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DefaultDocumentRepository) FindByEntity(entityID string) ([]*entity.Document, error) {
	var docs []*entity.Document
	err := r.db.Find(&docs, "entity_id = ?", entityID).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// FindVisibleTo returns documents uploaded by any of the given users plus
// those flagged public.
func (r *DefaultDocumentRepository) FindVisibleTo(uploaderIDs []string) ([]*entity.Document, error) {
	var docs []*entity.Document
	err := r.db.
		Where("uploaded_by IN ?", uploaderIDs).
		Or("is_public = ?", true).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DefaultDocumentRepository) Save(doc *entity.Document) error {
	return r.db.Save(doc).Error
}

func (r *DefaultDocumentRepository) Delete(doc *entity.Document) error {
	return r.db.Delete(doc).Error
}
