package jobs

import (
	"context"
	"time"

	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/service"
	"compliancedesk/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

// DeadlineReminder sweeps open tasks past their due date and raises an
// urgent notification for each, and expires unclaimed DIN-email
// pre-associations.
type DeadlineReminder struct {
	taskService    *service.DefaultTaskService
	profileService *service.DefaultProfileService
	notifier       *service.DefaultNotificationService
}

func NewDeadlineReminder(
	taskService *service.DefaultTaskService,
	profileService *service.DefaultProfileService,
	notifier *service.DefaultNotificationService,
) *DeadlineReminder {
	return &DeadlineReminder{
		taskService:    taskService,
		profileService: profileService,
		notifier:       notifier,
	}
}

func (r *DeadlineReminder) Start(ctx context.Context) {
	// Poll every hour
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	log.Info("Deadline reminder cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping deadline reminder...")
			return
		case <-ticker.C:
			r.remindOverdue()
			r.expirePending()
		}
	}
}

func (r *DeadlineReminder) remindOverdue() {
	now := utils.NowUTC()
	tasks, err := r.taskService.TaskRepo.FindOverdue(now)
	if err != nil {
		log.Errorf("Reminder: failed to fetch overdue tasks: %v", err)
		return
	}

	if len(tasks) == 0 {
		return
	}

	log.Infof("Reminder: found %d overdue tasks", len(tasks))

	for _, task := range tasks {
		// NotifyDeadline dedups: a task already reminded is skipped.
		if err := r.notifier.NotifyDeadline(task); err != nil {
			log.Errorf("Reminder: failed to notify task %s: %v", task.ID, err)
		}
	}
}

func (r *DeadlineReminder) expirePending() {
	now := utils.NowUTC()
	pending, err := r.profileService.PendingRepo.FindExpired(now)
	if err != nil {
		log.Errorf("Reminder: failed to fetch expired pending directors: %v", err)
		return
	}

	for _, pd := range pending {
		pd.Status = entity.PendingDirectorStatusExpired
		pd.UpdatedAt = now
		if err := r.profileService.PendingRepo.Save(pd); err != nil {
			log.Errorf("Reminder: failed to expire pending director %s: %v", pd.ID, err)
		}
	}
}
