package service

import (
	"testing"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/utils/apierror"
)

func newTaskFixture() (*DefaultTaskService, *fakeTaskRepo, *fakeNotifRepo) {
	taskRepo := newFakeTaskRepo()
	notifRepo := &fakeNotifRepo{}
	svc := NewTaskService(taskRepo, NewNotificationService(notifRepo), newTestValidator())
	return svc, taskRepo, notifRepo
}

func professional(userID string) *entity.UserProfile {
	return &entity.UserProfile{ID: userID, UserID: userID, Role: entity.RoleProfessionals}
}

func director(userID string) *entity.UserProfile {
	return &entity.UserProfile{ID: userID, UserID: userID, Role: entity.RoleDirectors}
}

func TestCompleteTaskStampsCompletedAt(t *testing.T) {
	svc, taskRepo, _ := newTaskFixture()
	actor := professional("pro-1")
	taskRepo.tasks["t-1"] = &entity.Task{
		ID:         "t-1",
		AssignedTo: "pro-1",
		TaskType:   entity.TaskTypeDocumentUpload,
		Title:      "Upload incorporation deed",
		Priority:   entity.TaskPriorityMedium,
		Status:     entity.TaskStatusInProgress,
	}

	resp, apierr := svc.CompleteTask(actor, "t-1")
	if apierr != nil {
		t.Fatalf("CompleteTask: %v", apierr)
	}
	if resp.Status != string(entity.TaskStatusCompleted) {
		t.Errorf("response status = %q, want COMPLETED", resp.Status)
	}

	saved := taskRepo.tasks["t-1"]
	if saved.Status != entity.TaskStatusCompleted {
		t.Errorf("saved status = %q, want COMPLETED", saved.Status)
	}
	if saved.CompletedAt == 0 {
		t.Error("completedAt not stamped")
	}
	if saved.UpdatedAt != saved.CompletedAt {
		t.Errorf("updatedAt = %d, completedAt = %d, want equal", saved.UpdatedAt, saved.CompletedAt)
	}
}

func TestUpdateStatusOnlyCompletionStampsCompletedAt(t *testing.T) {
	svc, taskRepo, _ := newTaskFixture()
	actor := professional("pro-1")
	taskRepo.tasks["t-1"] = &entity.Task{
		ID:         "t-1",
		AssignedTo: "pro-1",
		TaskType:   entity.TaskTypeReviewNeeded,
		Title:      "Review annual filing",
		Priority:   entity.TaskPriorityLow,
		Status:     entity.TaskStatusPending,
	}

	_, apierr := svc.UpdateStatus(actor, "t-1", &contract.UpdateTaskStatusRequest{Status: "IN_PROGRESS"})
	if apierr != nil {
		t.Fatalf("UpdateStatus: %v", apierr)
	}

	saved := taskRepo.tasks["t-1"]
	if saved.Status != entity.TaskStatusInProgress {
		t.Errorf("status = %q, want IN_PROGRESS", saved.Status)
	}
	if saved.CompletedAt != 0 {
		t.Errorf("completedAt = %d, want 0 for non-completion transition", saved.CompletedAt)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, taskRepo, _ := newTaskFixture()
	taskRepo.tasks["t-1"] = &entity.Task{ID: "t-1", AssignedTo: "pro-1", Status: entity.TaskStatusPending}

	_, apierr := svc.UpdateStatus(professional("pro-1"), "t-1", &contract.UpdateTaskStatusRequest{Status: "DONE"})
	if apierr == nil {
		t.Fatal("expected validation error for unknown status")
	}
	if apierr.Code() != 400 {
		t.Errorf("code = %d, want 400", apierr.Code())
	}
}

func TestGetTaskDirectorCannotReadOthers(t *testing.T) {
	svc, taskRepo, _ := newTaskFixture()
	taskRepo.tasks["t-1"] = &entity.Task{ID: "t-1", AssignedTo: "dir-2", Status: entity.TaskStatusPending}

	_, apierr := svc.GetTask(director("dir-1"), "t-1")
	if apierr != apierror.ForbiddenError {
		t.Fatalf("apierr = %v, want ForbiddenError", apierr)
	}

	// Professionals are not restricted to their own tasks.
	if _, apierr := svc.GetTask(professional("pro-1"), "t-1"); apierr != nil {
		t.Fatalf("professional read: %v", apierr)
	}
}

func TestGetTaskMissing(t *testing.T) {
	svc, _, _ := newTaskFixture()
	_, apierr := svc.GetTask(professional("pro-1"), "nope")
	if apierr != apierror.NotFoundError {
		t.Fatalf("apierr = %v, want NotFoundError", apierr)
	}
}

func TestCreateTaskForbiddenForDirectors(t *testing.T) {
	svc, _, _ := newTaskFixture()
	_, apierr := svc.CreateTask(director("dir-1"), &contract.CreateTaskRequest{
		AssignedTo: "dir-2",
		TaskType:   "DOCUMENT_UPLOAD",
		Title:      "Upload PAN card",
	})
	if apierr != apierror.ForbiddenError {
		t.Fatalf("apierr = %v, want ForbiddenError", apierr)
	}
}

func TestCreateTaskDefaultsAndNotifies(t *testing.T) {
	svc, taskRepo, notifRepo := newTaskFixture()
	actor := professional("pro-1")

	resp, apierr := svc.CreateTask(actor, &contract.CreateTaskRequest{
		AssignedTo: "dir-1",
		TaskType:   "DOCUMENT_UPLOAD",
		Title:      "Upload PAN card",
	})
	if apierr != nil {
		t.Fatalf("CreateTask: %v", apierr)
	}

	saved := taskRepo.tasks[resp.ID]
	if saved == nil {
		t.Fatal("task not persisted")
	}
	if saved.Priority != entity.TaskPriorityMedium {
		t.Errorf("priority = %q, want MEDIUM default", saved.Priority)
	}
	if saved.Status != entity.TaskStatusPending {
		t.Errorf("status = %q, want PENDING", saved.Status)
	}
	if saved.AssignedBy != "pro-1" {
		t.Errorf("assignedBy = %q, want pro-1", saved.AssignedBy)
	}

	if len(notifRepo.notifs) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifRepo.notifs))
	}
	notif := notifRepo.notifs[0]
	if notif.RecipientID != "dir-1" {
		t.Errorf("notification recipient = %q, want dir-1", notif.RecipientID)
	}
	if notif.NotificationType != entity.NotificationTaskAssignment {
		t.Errorf("notification type = %q, want TASK_ASSIGNMENT", notif.NotificationType)
	}
}

func TestListTasksFiltersAndCounts(t *testing.T) {
	svc, taskRepo, _ := newTaskFixture()
	taskRepo.tasks["t-1"] = &entity.Task{ID: "t-1", AssignedTo: "dir-1", Status: entity.TaskStatusPending, Priority: entity.TaskPriorityHigh}
	taskRepo.tasks["t-2"] = &entity.Task{ID: "t-2", AssignedTo: "dir-1", Status: entity.TaskStatusCompleted, Priority: entity.TaskPriorityLow}
	taskRepo.tasks["t-3"] = &entity.Task{ID: "t-3", AssignedTo: "dir-2", Status: entity.TaskStatusPending, Priority: entity.TaskPriorityMedium}

	resp, apierr := svc.ListTasks(&contract.TaskFilterQuery{AssignedTo: "dir-1"})
	if apierr != nil {
		t.Fatalf("ListTasks: %v", apierr)
	}
	if len(resp.Tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(resp.Tasks))
	}
	if resp.Counts.Total != 2 || resp.Counts.Pending != 1 || resp.Counts.Completed != 1 {
		t.Errorf("counts = %+v, want total 2, pending 1, completed 1", resp.Counts)
	}
}

func TestDeleteTaskForbiddenForDirectors(t *testing.T) {
	svc, taskRepo, _ := newTaskFixture()
	taskRepo.tasks["t-1"] = &entity.Task{ID: "t-1", AssignedTo: "dir-1", Status: entity.TaskStatusPending}

	if apierr := svc.DeleteTask(director("dir-1"), "t-1"); apierr != apierror.ForbiddenError {
		t.Fatalf("apierr = %v, want ForbiddenError", apierr)
	}
	if apierr := svc.DeleteTask(professional("pro-1"), "t-1"); apierr != nil {
		t.Fatalf("professional delete: %v", apierr)
	}
	if _, ok := taskRepo.tasks["t-1"]; ok {
		t.Error("task still present after delete")
	}
}
