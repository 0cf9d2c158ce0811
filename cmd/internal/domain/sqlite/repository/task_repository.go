package repository

import (
	"errors"

	"compliancedesk/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// TaskFilter holds the equality predicates a task listing may apply.
// Set fields are AND-combined; a zero filter lists everything.
type TaskFilter struct {
	AssignedTo string
	Status     entity.TaskStatus
	TaskType   entity.TaskType
}

type DefaultTaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *DefaultTaskRepository {
	return &DefaultTaskRepository{db: db}
}

func (r *DefaultTaskRepository) FindAll(filter TaskFilter) ([]*entity.Task, error) {
	q := r.db
	if filter.AssignedTo != "" {
		q = q.Where("assigned_to = ?", filter.AssignedTo)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.TaskType != "" {
		q = q.Where("task_type = ?", filter.TaskType)
	}

	var tasks []*entity.Task
	err := q.Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *DefaultTaskRepository) FindByID(id string) (*entity.Task, error) {
	var task entity.Task
	err := r.db.First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindOverdue returns tasks still open whose due date is at or before the
// given epoch-millis instant.
func (r *DefaultTaskRepository) FindOverdue(now int64) ([]*entity.Task, error) {
	var tasks []*entity.Task
	err := r.db.
		Where("due_date > 0 AND due_date <= ?", now).
		Where("status IN ?", []entity.TaskStatus{entity.TaskStatusPending, entity.TaskStatusInProgress}).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *DefaultTaskRepository) Save(task *entity.Task) error {
	return r.db.Save(task).Error
}

func (r *DefaultTaskRepository) Delete(task *entity.Task) error {
	return r.db.Delete(task).Error
}
