package workflow

import (
	"errors"
	"testing"

	"compliancedesk/cmd/internal/domain/entity"
)

func TestNextRequestStatus(t *testing.T) {
	cases := []struct {
		from   entity.RequestStatus
		action RequestAction
		want   entity.RequestStatus
	}{
		{entity.RequestStatusPending, ActionStart, entity.RequestStatusInProgress},
		{entity.RequestStatusPending, ActionApprove, entity.RequestStatusApproved},
		{entity.RequestStatusPending, ActionReject, entity.RequestStatusRejected},
		{entity.RequestStatusInProgress, ActionApprove, entity.RequestStatusApproved},
		{entity.RequestStatusInProgress, ActionReject, entity.RequestStatusRejected},
		{entity.RequestStatusInProgress, ActionComplete, entity.RequestStatusCompleted},
	}

	for _, c := range cases {
		got, err := NextRequestStatus(c.from, c.action)
		if err != nil {
			t.Fatalf("NextRequestStatus(%s, %s): unexpected error %v", c.from, c.action, err)
		}
		if got != c.want {
			t.Errorf("NextRequestStatus(%s, %s) = %s, want %s", c.from, c.action, got, c.want)
		}
	}
}

func TestNextRequestStatusIllegal(t *testing.T) {
	cases := []struct {
		from   entity.RequestStatus
		action RequestAction
	}{
		// A request must be started before it can be completed.
		{entity.RequestStatusPending, ActionComplete},
		{entity.RequestStatusInProgress, ActionStart},
		{entity.RequestStatusApproved, ActionStart},
		{entity.RequestStatusApproved, ActionComplete},
		{entity.RequestStatusRejected, ActionApprove},
		{entity.RequestStatusCompleted, ActionReject},
		{entity.RequestStatus("BOGUS"), ActionStart},
	}

	for _, c := range cases {
		_, err := NextRequestStatus(c.from, c.action)
		if err == nil {
			t.Errorf("NextRequestStatus(%s, %s): expected error, got none", c.from, c.action)
			continue
		}

		var illegal *ErrIllegalTransition
		if !errors.As(err, &illegal) {
			t.Errorf("NextRequestStatus(%s, %s): error is not *ErrIllegalTransition", c.from, c.action)
			continue
		}
		if illegal.From != c.from || illegal.Action != c.action {
			t.Errorf("error carries (%s, %s), want (%s, %s)", illegal.From, illegal.Action, c.from, c.action)
		}
	}
}
