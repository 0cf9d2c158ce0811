package service

import (
	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/domain/workflow"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type NotificationRepository interface {
	FindByID(id string) (*entity.Notification, error)
	FindAllByRecipient(userID string) ([]*entity.Notification, error)
	FindPendingByRecipient(userID string) ([]*entity.Notification, error)
	FindByTaskAndType(taskID string, nType entity.NotificationType) (*entity.Notification, error)
	Save(notif *entity.Notification) error
	Delete(notif *entity.Notification) error
}

type DefaultNotificationService struct {
	NotifRepo NotificationRepository
}

func NewNotificationService(notifRepo NotificationRepository) *DefaultNotificationService {
	return &DefaultNotificationService{NotifRepo: notifRepo}
}

func (n *DefaultNotificationService) ListForUser(actor *entity.UserProfile) ([]*contract.NotificationResponse, apierror.ErrorResponse) {
	notifs, err := n.NotifRepo.FindAllByRecipient(actor.UserID)
	if err != nil {
		log.Errorf("failed to fetch notifications: %v", err)
		return nil, apierror.InternalServerError
	}

	workflow.SortNotifications(notifs)

	resp := make([]*contract.NotificationResponse, len(notifs))
	for i, notif := range notifs {
		resp[i] = toNotificationResponse(notif)
	}
	return resp, nil
}

func (n *DefaultNotificationService) UnreadCount(actor *entity.UserProfile) (int, apierror.ErrorResponse) {
	notifs, err := n.NotifRepo.FindPendingByRecipient(actor.UserID)
	if err != nil {
		log.Errorf("failed to fetch notifications: %v", err)
		return 0, apierror.InternalServerError
	}
	return len(notifs), nil
}

// MarkRead flips a notification to READ and stamps readAt. Re-reading an
// already read notification is a no-op.
func (n *DefaultNotificationService) MarkRead(actor *entity.UserProfile, id string) (*contract.NotificationResponse, apierror.ErrorResponse) {
	notif, err := n.NotifRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch notification: %v", err)
		return nil, apierror.InternalServerError
	}

	if notif == nil || notif.RecipientID != actor.UserID {
		return nil, apierror.NotFoundError
	}

	if notif.Status != entity.NotificationStatusRead {
		now := utils.NowUTC()
		notif.Status = entity.NotificationStatusRead
		notif.ReadAt = now
		notif.UpdatedAt = now
		if err := n.NotifRepo.Save(notif); err != nil {
			log.Errorf("failed to update notification: %v", err)
			return nil, apierror.InternalServerError
		}
	}
	return toNotificationResponse(notif), nil
}

// NotifyTaskAssigned writes a TASK_ASSIGNMENT notification for the task's
// assignee. Failures are logged, never surfaced; notifications are best
// effort alongside the primary write.
func (n *DefaultNotificationService) NotifyTaskAssigned(task *entity.Task) {
	n.create(&entity.Notification{
		RecipientID:       task.AssignedTo,
		NotificationType:  entity.NotificationTaskAssignment,
		Title:             "New task assigned: " + task.Title,
		Message:           task.Description,
		RelatedEntityID:   task.ID,
		RelatedEntityType: entity.RelatedEntityTask,
		Priority:          task.Priority,
	})
}

// NotifyStageHandoff tells the next assignee their pipeline stage is ready.
func (n *DefaultNotificationService) NotifyStageHandoff(task *entity.Task) {
	n.create(&entity.Notification{
		RecipientID:       task.AssignedTo,
		NotificationType:  entity.NotificationApprovalNeeded,
		Title:             task.Title,
		Message:           task.Description,
		RelatedEntityID:   task.ID,
		RelatedEntityType: entity.RelatedEntityTask,
		Priority:          task.Priority,
	})
}

// NotifyRequestUpdate tells a director their service request moved.
func (n *DefaultNotificationService) NotifyRequestUpdate(req *entity.ServiceRequest) {
	n.create(&entity.Notification{
		RecipientID:       req.DirectorID,
		NotificationType:  entity.NotificationStatusUpdate,
		Title:             "Service request " + string(req.Status),
		Message:           req.Comments,
		RelatedEntityID:   req.ID,
		RelatedEntityType: entity.RelatedEntityServiceRequest,
		Priority:          entity.TaskPriority(req.Priority),
	})
}

// NotifyDeadline writes a DEADLINE_REMINDER for an overdue task, at most
// once per task.
func (n *DefaultNotificationService) NotifyDeadline(task *entity.Task) error {
	existing, err := n.NotifRepo.FindByTaskAndType(task.ID, entity.NotificationDeadlineReminder)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	now := utils.NowUTC()
	return n.NotifRepo.Save(&entity.Notification{
		ID:                uuid.NewString(),
		RecipientID:       task.AssignedTo,
		NotificationType:  entity.NotificationDeadlineReminder,
		Title:             "Task overdue: " + task.Title,
		Message:           "The due date for this task has passed. Please complete it as soon as possible.",
		RelatedEntityID:   task.ID,
		RelatedEntityType: entity.RelatedEntityTask,
		Priority:          entity.TaskPriorityUrgent,
		Status:            entity.NotificationStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}

func (n *DefaultNotificationService) create(notif *entity.Notification) {
	now := utils.NowUTC()
	notif.ID = uuid.NewString()
	notif.Status = entity.NotificationStatusPending
	if notif.Priority == "" {
		notif.Priority = entity.TaskPriorityMedium
	}
	notif.CreatedAt = now
	notif.UpdatedAt = now

	if err := n.NotifRepo.Save(notif); err != nil {
		log.Errorf("failed to save notification: %v", err)
	}
}

func toNotificationResponse(notif *entity.Notification) *contract.NotificationResponse {
	resp := &contract.NotificationResponse{
		ID:                notif.ID,
		RecipientID:       notif.RecipientID,
		NotificationType:  string(notif.NotificationType),
		Title:             notif.Title,
		Message:           notif.Message,
		RelatedEntityID:   notif.RelatedEntityID,
		RelatedEntityType: string(notif.RelatedEntityType),
		Priority:          string(notif.Priority),
		Status:            string(notif.Status),
		CreatedAt:         utils.FormatEpoch(notif.CreatedAt),
	}
	if notif.ReadAt > 0 {
		resp.ReadAt = utils.FormatEpoch(notif.ReadAt)
	}
	return resp
}
