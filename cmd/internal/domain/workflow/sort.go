package workflow

import (
	"sort"

	"compliancedesk/cmd/internal/domain/entity"
)

// Priority ranks. Lower rank sorts first; unknown values rank last so a
// record with a blank or unrecognized priority never outranks a real one.

func requestPriorityRank(p entity.RequestPriority) int {
	switch p {
	case entity.RequestPriorityHigh:
		return 0
	case entity.RequestPriorityMedium:
		return 1
	case entity.RequestPriorityLow:
		return 2
	}
	return 3
}

func taskPriorityRank(p entity.TaskPriority) int {
	switch p {
	case entity.TaskPriorityUrgent:
		return 0
	case entity.TaskPriorityHigh:
		return 1
	case entity.TaskPriorityMedium:
		return 2
	case entity.TaskPriorityLow:
		return 3
	}
	return 4
}

// SortServiceRequests orders by priority rank, ties broken by createdAt
// descending (newest first). In place, stable.
func SortServiceRequests(reqs []*entity.ServiceRequest) {
	sort.SliceStable(reqs, func(i, j int) bool {
		ri, rj := requestPriorityRank(reqs[i].Priority), requestPriorityRank(reqs[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return reqs[i].CreatedAt > reqs[j].CreatedAt
	})
}

// SortTasks orders by the four-level task priority scale, ties broken by
// createdAt descending.
func SortTasks(tasks []*entity.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := taskPriorityRank(tasks[i].Priority), taskPriorityRank(tasks[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return tasks[i].CreatedAt > tasks[j].CreatedAt
	})
}

// SortNotifications orders by the task priority scale, ties broken by
// createdAt descending.
func SortNotifications(notifs []*entity.Notification) {
	sort.SliceStable(notifs, func(i, j int) bool {
		ri, rj := taskPriorityRank(notifs[i].Priority), taskPriorityRank(notifs[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return notifs[i].CreatedAt > notifs[j].CreatedAt
	})
}

// RequestCounts is the per-status tally for a service-request result set.
type RequestCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Approved   int `json:"approved"`
	Rejected   int `json:"rejected"`
	Completed  int `json:"completed"`
}

// CountServiceRequests tallies a result set in one pass.
func CountServiceRequests(reqs []*entity.ServiceRequest) RequestCounts {
	counts := RequestCounts{Total: len(reqs)}
	for _, r := range reqs {
		switch r.Status {
		case entity.RequestStatusPending:
			counts.Pending++
		case entity.RequestStatusInProgress:
			counts.InProgress++
		case entity.RequestStatusApproved:
			counts.Approved++
		case entity.RequestStatusRejected:
			counts.Rejected++
		case entity.RequestStatusCompleted:
			counts.Completed++
		}
	}
	return counts
}

// TaskCounts is the per-status tally for a user's tasks.
type TaskCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

func CountTasks(tasks []*entity.Task) TaskCounts {
	counts := TaskCounts{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case entity.TaskStatusPending:
			counts.Pending++
		case entity.TaskStatusInProgress:
			counts.InProgress++
		case entity.TaskStatusCompleted:
			counts.Completed++
		case entity.TaskStatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}
