package workflow

import (
	"fmt"

	"compliancedesk/cmd/internal/domain/entity"
)

// RequestAction is what a professional does to a service request.
type RequestAction string

const (
	ActionStart    RequestAction = "start"
	ActionApprove  RequestAction = "approve"
	ActionReject   RequestAction = "reject"
	ActionComplete RequestAction = "complete"
)

// ErrIllegalTransition reports a status/action pair the transition table
// does not allow.
type ErrIllegalTransition struct {
	From   entity.RequestStatus
	Action RequestAction
}

func (e *ErrIllegalTransition) Error() string {
	return fmt.Sprintf("cannot %s a %s service request", e.Action, e.From)
}

// requestTransitions is the explicit state machine for service requests.
// Historically these transitions were enforced only by which buttons the
// UI rendered; here every update goes through this table so illegal
// transitions are rejected regardless of client. COMPLETED and REJECTED
// are terminal. Completing straight from PENDING is deliberately absent.
var requestTransitions = map[entity.RequestStatus]map[RequestAction]entity.RequestStatus{
	entity.RequestStatusPending: {
		ActionStart:   entity.RequestStatusInProgress,
		ActionApprove: entity.RequestStatusApproved,
		ActionReject:  entity.RequestStatusRejected,
	},
	entity.RequestStatusInProgress: {
		ActionApprove:  entity.RequestStatusApproved,
		ActionReject:   entity.RequestStatusRejected,
		ActionComplete: entity.RequestStatusCompleted,
	},
}

// NextRequestStatus resolves the status an action moves a request to, or
// an *ErrIllegalTransition.
func NextRequestStatus(from entity.RequestStatus, action RequestAction) (entity.RequestStatus, error) {
	if next, ok := requestTransitions[from][action]; ok {
		return next, nil
	}
	return "", &ErrIllegalTransition{From: from, Action: action}
}
