package repository

import (
	"errors"

	"compliancedesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *DefaultProfileRepository {
	return &DefaultProfileRepository{db: db}
}

func (r *DefaultProfileRepository) FindByID(id string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *DefaultProfileRepository) FindByUserID(userID string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *DefaultProfileRepository) FindByEmail(email string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.db.Where("email = ?", email).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *DefaultProfileRepository) FindByDIN(din string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.db.Where("din = ?", din).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *DefaultProfileRepository) FindAllByRole(role entity.Role) ([]*entity.UserProfile, error) {
	var profiles []*entity.UserProfile
	err := r.db.Where("role = ?", role).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *DefaultProfileRepository) FindAllInUserIDs(userIDs []string) ([]*entity.UserProfile, error) {
	if len(userIDs) == 0 {
		return []*entity.UserProfile{}, nil
	}

	var profiles []*entity.UserProfile
	err := r.db.Where("user_id IN ?", userIDs).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *DefaultProfileRepository) Save(profile *entity.UserProfile) error {
	return r.db.Save(profile).Error
}
