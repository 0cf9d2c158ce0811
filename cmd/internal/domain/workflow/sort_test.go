package workflow

import (
	"testing"

	"compliancedesk/cmd/internal/domain/entity"
)

func TestSortServiceRequests(t *testing.T) {
	reqs := []*entity.ServiceRequest{
		{ID: "low", Priority: entity.RequestPriorityLow, CreatedAt: 500},
		{ID: "unknown", Priority: entity.RequestPriority(""), CreatedAt: 900},
		{ID: "high-old", Priority: entity.RequestPriorityHigh, CreatedAt: 100},
		{ID: "medium", Priority: entity.RequestPriorityMedium, CreatedAt: 300},
		{ID: "high-new", Priority: entity.RequestPriorityHigh, CreatedAt: 200},
	}

	SortServiceRequests(reqs)

	want := []string{"high-new", "high-old", "medium", "low", "unknown"}
	for i, id := range want {
		if reqs[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, reqs[i].ID, id)
		}
	}
}

func TestSortTasks(t *testing.T) {
	tasks := []*entity.Task{
		{ID: "medium", Priority: entity.TaskPriorityMedium, CreatedAt: 10},
		{ID: "urgent", Priority: entity.TaskPriorityUrgent, CreatedAt: 5},
		{ID: "low", Priority: entity.TaskPriorityLow, CreatedAt: 50},
		{ID: "high-new", Priority: entity.TaskPriorityHigh, CreatedAt: 40},
		{ID: "high-old", Priority: entity.TaskPriorityHigh, CreatedAt: 30},
	}

	SortTasks(tasks)

	want := []string{"urgent", "high-new", "high-old", "medium", "low"}
	for i, id := range want {
		if tasks[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, tasks[i].ID, id)
		}
	}
}

func TestSortNotifications(t *testing.T) {
	notifs := []*entity.Notification{
		{ID: "medium", Priority: entity.TaskPriorityMedium, CreatedAt: 10},
		{ID: "urgent", Priority: entity.TaskPriorityUrgent, CreatedAt: 5},
		{ID: "high-new", Priority: entity.TaskPriorityHigh, CreatedAt: 40},
		{ID: "high-old", Priority: entity.TaskPriorityHigh, CreatedAt: 30},
	}

	SortNotifications(notifs)

	want := []string{"urgent", "high-new", "high-old", "medium"}
	for i, id := range want {
		if notifs[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, notifs[i].ID, id)
		}
	}
}

func TestCountServiceRequests(t *testing.T) {
	reqs := []*entity.ServiceRequest{
		{Status: entity.RequestStatusPending},
		{Status: entity.RequestStatusPending},
		{Status: entity.RequestStatusInProgress},
		{Status: entity.RequestStatusApproved},
		{Status: entity.RequestStatusRejected},
		{Status: entity.RequestStatusCompleted},
	}

	counts := CountServiceRequests(reqs)
	if counts.Total != 6 || counts.Pending != 2 || counts.InProgress != 1 ||
		counts.Approved != 1 || counts.Rejected != 1 || counts.Completed != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestCountTasks(t *testing.T) {
	tasks := []*entity.Task{
		{Status: entity.TaskStatusPending},
		{Status: entity.TaskStatusInProgress},
		{Status: entity.TaskStatusInProgress},
		{Status: entity.TaskStatusCompleted},
		{Status: entity.TaskStatusCancelled},
	}

	counts := CountTasks(tasks)
	if counts.Total != 5 || counts.Pending != 1 || counts.InProgress != 2 ||
		counts.Completed != 1 || counts.Cancelled != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}
