package repository

import (
	"errors"

	"compliancedesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{db: db}
}

func (r *DefaultNotificationRepository) FindByID(id string) (*entity.Notification, error) {
	var notif entity.Notification
	err := r.db.First(&notif, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &notif, nil
}

func (r *DefaultNotificationRepository) FindAllByRecipient(userID string) ([]*entity.Notification, error) {
	var notifs []*entity.Notification
	err := r.db.Order("created_at DESC").Find(&notifs, "recipient_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return notifs, nil
}

func (r *DefaultNotificationRepository) FindPendingByRecipient(userID string) ([]*entity.Notification, error) {
	var notifs []*entity.Notification
	err := r.db.Order("created_at DESC").
		Find(&notifs, "recipient_id = ? AND status = ?", userID, entity.NotificationStatusPending).Error
	if err != nil {
		return nil, err
	}
	return notifs, nil
}

// FindByTaskAndType is used by the reminder sweep to avoid notifying twice
// about the same overdue task.
func (r *DefaultNotificationRepository) FindByTaskAndType(taskID string, nType entity.NotificationType) (*entity.Notification, error) {
	var notif entity.Notification
	err := r.db.First(&notif,
		"related_entity_id = ? AND related_entity_type = ? AND notification_type = ?",
		taskID, entity.RelatedEntityTask, nType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &notif, nil
}

func (r *DefaultNotificationRepository) Save(notif *entity.Notification) error {
	return r.db.Save(notif).Error
}

func (r *DefaultNotificationRepository) Delete(notif *entity.Notification) error {
	return r.db.Delete(notif).Error
}
