package service

import (
	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/domain/sqlite/repository"
	"compliancedesk/cmd/internal/domain/workflow"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type TaskRepository interface {
	FindAll(filter repository.TaskFilter) ([]*entity.Task, error)
	FindByID(id string) (*entity.Task, error)
	FindOverdue(now int64) ([]*entity.Task, error)
	Save(task *entity.Task) error
	Delete(task *entity.Task) error
}

type DefaultTaskService struct {
	TaskRepo TaskRepository
	Notifier *DefaultNotificationService
	Validate *validator.Validate
}

func NewTaskService(taskRepo TaskRepository, notifier *DefaultNotificationService, validate *validator.Validate) *DefaultTaskService {
	return &DefaultTaskService{
		TaskRepo: taskRepo,
		Notifier: notifier,
		Validate: validate,
	}
}

// ListTasks applies the AND-combined filter, sorts by priority rank with
// createdAt-descending ties, and tallies statuses in one pass.
func (t *DefaultTaskService) ListTasks(query *contract.TaskFilterQuery) (*contract.TaskListResponse, apierror.ErrorResponse) {
	if valerr := t.Validate.Struct(query); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	tasks, err := t.TaskRepo.FindAll(repository.TaskFilter{
		AssignedTo: query.AssignedTo,
		Status:     entity.TaskStatus(query.Status),
		TaskType:   entity.TaskType(query.TaskType),
	})
	if err != nil {
		log.Errorf("failed to fetch tasks: %v", err)
		return nil, apierror.InternalServerError
	}

	workflow.SortTasks(tasks)
	counts := workflow.CountTasks(tasks)

	resp := make([]*contract.TaskResponse, len(tasks))
	for i, task := range tasks {
		resp[i] = toTaskResponse(task)
	}
	return &contract.TaskListResponse{
		Tasks: resp,
		Counts: contract.TaskCounts{
			Total:      counts.Total,
			Pending:    counts.Pending,
			InProgress: counts.InProgress,
			Completed:  counts.Completed,
			Cancelled:  counts.Cancelled,
		},
	}, nil
}

func (t *DefaultTaskService) GetTask(actor *entity.UserProfile, taskID string) (*contract.TaskResponse, apierror.ErrorResponse) {
	task, apierr := t.findAssignedTask(actor, taskID)
	if apierr != nil {
		return nil, apierr
	}
	return toTaskResponse(task), nil
}

func (t *DefaultTaskService) CreateTask(actor *entity.UserProfile, req *contract.CreateTaskRequest) (*contract.TaskResponse, apierror.ErrorResponse) {
	if actor.Role != entity.RoleProfessionals && actor.Role != entity.RoleAdmin {
		return nil, apierror.ForbiddenError
	}

	utils.Sanitize(req)
	if valerr := t.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	priority := entity.TaskPriority(req.Priority)
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}

	now := utils.NowUTC()
	task := &entity.Task{
		ID:                uuid.NewString(),
		AssignedTo:        req.AssignedTo,
		AssignedBy:        actor.UserID,
		TaskType:          entity.TaskType(req.TaskType),
		Title:             req.Title,
		Description:       req.Description,
		Priority:          priority,
		Status:            entity.TaskStatusPending,
		DueDate:           req.DueDate,
		RelatedEntityID:   req.RelatedEntityID,
		RelatedEntityType: entity.RelatedEntityType(req.RelatedEntityType),
		Metadata:          req.Metadata,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := t.TaskRepo.Save(task); err != nil {
		log.Errorf("failed to save task: %v", err)
		return nil, apierror.InternalServerError
	}

	t.Notifier.NotifyTaskAssigned(task)
	return toTaskResponse(task), nil
}

// UpdateStatus moves the task to the requested status. Only COMPLETED
// stamps completedAt; every other transition touches updatedAt alone.
func (t *DefaultTaskService) UpdateStatus(actor *entity.UserProfile, taskID string, req *contract.UpdateTaskStatusRequest) (*contract.TaskResponse, apierror.ErrorResponse) {
	if valerr := t.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	task, apierr := t.findAssignedTask(actor, taskID)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	task.Status = entity.TaskStatus(req.Status)
	task.UpdatedAt = now
	if task.Status == entity.TaskStatusCompleted {
		task.CompletedAt = now
	}

	if err := t.TaskRepo.Save(task); err != nil {
		log.Errorf("failed to update task: %v", err)
		return nil, apierror.InternalServerError
	}
	return toTaskResponse(task), nil
}

// CompleteTask is the plain completion path for tasks outside the
// appointment pipeline.
func (t *DefaultTaskService) CompleteTask(actor *entity.UserProfile, taskID string) (*contract.TaskResponse, apierror.ErrorResponse) {
	return t.UpdateStatus(actor, taskID, &contract.UpdateTaskStatusRequest{Status: string(entity.TaskStatusCompleted)})
}

func (t *DefaultTaskService) DeleteTask(actor *entity.UserProfile, taskID string) apierror.ErrorResponse {
	if actor.Role != entity.RoleProfessionals && actor.Role != entity.RoleAdmin {
		return apierror.ForbiddenError
	}

	task, err := t.TaskRepo.FindByID(taskID)
	if err != nil {
		log.Errorf("failed to fetch task: %v", err)
		return apierror.InternalServerError
	}

	if task == nil {
		return apierror.NotFoundError
	}

	if err := t.TaskRepo.Delete(task); err != nil {
		log.Errorf("failed to delete task: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// findAssignedTask loads a task and checks the actor may see it. A
// professional or admin may read any task; directors only their own.
func (t *DefaultTaskService) findAssignedTask(actor *entity.UserProfile, taskID string) (*entity.Task, apierror.ErrorResponse) {
	task, err := t.TaskRepo.FindByID(taskID)
	if err != nil {
		log.Errorf("failed to fetch task: %v", err)
		return nil, apierror.InternalServerError
	}

	if task == nil {
		return nil, apierror.NotFoundError
	}

	if actor.Role == entity.RoleDirectors && task.AssignedTo != actor.UserID {
		return nil, apierror.ForbiddenError
	}
	return task, nil
}

func toTaskResponse(task *entity.Task) *contract.TaskResponse {
	resp := &contract.TaskResponse{
		ID:                task.ID,
		AssignedTo:        task.AssignedTo,
		AssignedBy:        task.AssignedBy,
		TaskType:          string(task.TaskType),
		Title:             task.Title,
		Description:       task.Description,
		Priority:          string(task.Priority),
		Status:            string(task.Status),
		RelatedEntityID:   task.RelatedEntityID,
		RelatedEntityType: string(task.RelatedEntityType),
		Metadata:          task.Metadata,
		CreatedAt:         utils.FormatEpoch(task.CreatedAt),
		UpdatedAt:         utils.FormatEpoch(task.UpdatedAt),
	}
	if task.DueDate > 0 {
		resp.DueDate = utils.FormatEpoch(task.DueDate)
	}
	if task.CompletedAt > 0 {
		resp.CompletedAt = utils.FormatEpoch(task.CompletedAt)
	}
	return resp
}
