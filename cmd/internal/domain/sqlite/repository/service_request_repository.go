package repository

import (
	"errors"

	"compliancedesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// ServiceRequestFilter holds the equality predicates a listing may apply.
// Set fields are AND-combined; a zero filter lists everything.
type ServiceRequestFilter struct {
	DirectorID  string
	ProcessedBy string
	Status      entity.RequestStatus
	ServiceType entity.ServiceType
}

type DefaultServiceRequestRepository struct {
	db *gorm.DB
}

func NewServiceRequestRepository(db *gorm.DB) *DefaultServiceRequestRepository {
	return &DefaultServiceRequestRepository{db: db}
}

func (r *DefaultServiceRequestRepository) FindAll(filter ServiceRequestFilter) ([]*entity.ServiceRequest, error) {
	q := r.db
	if filter.DirectorID != "" {
		q = q.Where("director_id = ?", filter.DirectorID)
	}
	if filter.ProcessedBy != "" {
		q = q.Where("processed_by = ?", filter.ProcessedBy)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ServiceType != "" {
		q = q.Where("service_type = ?", filter.ServiceType)
	}

	var reqs []*entity.ServiceRequest
	err := q.Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *DefaultServiceRequestRepository) FindByID(id string) (*entity.ServiceRequest, error) {
	var req entity.ServiceRequest
	err := r.db.First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *DefaultServiceRequestRepository) Save(req *entity.ServiceRequest) error {
	return r.db.Save(req).Error
}

func (r *DefaultServiceRequestRepository) Delete(req *entity.ServiceRequest) error {
	return r.db.Delete(req).Error
}
