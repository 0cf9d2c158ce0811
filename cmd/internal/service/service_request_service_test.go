package service

import (
	"testing"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/utils/apierror"
)

func newRequestFixture() (*DefaultServiceRequestService, *fakeRequestRepo, *fakeNotifRepo) {
	requestRepo := newFakeRequestRepo()
	notifRepo := &fakeNotifRepo{}
	svc := NewServiceRequestService(
		requestRepo,
		&fakeAssociationRepo{},
		&fakeAssignmentRepo{},
		NewNotificationService(notifRepo),
		newTestValidator(),
	)
	return svc, requestRepo, notifRepo
}

func TestCreateRequestDefaultsPriorityMedium(t *testing.T) {
	svc, requestRepo, _ := newRequestFixture()

	resp, apierr := svc.CreateRequest(director("dir-1"), &contract.CreateServiceRequestRequest{
		ServiceType: "DIRECTOR_KYC",
		EntityID:    "ent-1",
		EntityType:  "COMPANY",
	})
	if apierr != nil {
		t.Fatalf("CreateRequest: %v", apierr)
	}

	saved := requestRepo.requests[resp.ID]
	if saved.Priority != entity.RequestPriorityMedium {
		t.Errorf("priority = %q, want MEDIUM default", saved.Priority)
	}
	if saved.Status != entity.RequestStatusPending {
		t.Errorf("status = %q, want PENDING", saved.Status)
	}
	if saved.DirectorID != "dir-1" {
		t.Errorf("directorID = %q, want the creating director", saved.DirectorID)
	}
}

func TestCreateRequestForbiddenForProfessionals(t *testing.T) {
	svc, _, _ := newRequestFixture()
	_, apierr := svc.CreateRequest(professional("pro-1"), &contract.CreateServiceRequestRequest{
		ServiceType: "DIRECTOR_KYC",
	})
	if apierr != apierror.ForbiddenRoleError {
		t.Fatalf("apierr = %v, want ForbiddenRoleError", apierr)
	}
}

func TestProcessRequestStartStampsProcessor(t *testing.T) {
	svc, requestRepo, notifRepo := newRequestFixture()
	requestRepo.requests["r-1"] = &entity.ServiceRequest{
		ID:         "r-1",
		DirectorID: "dir-1",
		Status:     entity.RequestStatusPending,
		Priority:   entity.RequestPriorityMedium,
	}

	resp, apierr := svc.ProcessRequest(professional("pro-1"), "r-1", &contract.ProcessServiceRequestRequest{Action: "start"})
	if apierr != nil {
		t.Fatalf("ProcessRequest: %v", apierr)
	}
	if resp.Status != string(entity.RequestStatusInProgress) {
		t.Errorf("status = %q, want IN_PROGRESS", resp.Status)
	}

	saved := requestRepo.requests["r-1"]
	if saved.ProcessedBy != "pro-1" {
		t.Errorf("processedBy = %q, want pro-1", saved.ProcessedBy)
	}

	if len(notifRepo.notifs) != 1 || notifRepo.notifs[0].RecipientID != "dir-1" {
		t.Errorf("notifications = %+v, want one status update for dir-1", notifRepo.notifs)
	}
}

func TestProcessRequestRejectRequiresComment(t *testing.T) {
	svc, requestRepo, _ := newRequestFixture()
	requestRepo.requests["r-1"] = &entity.ServiceRequest{
		ID:     "r-1",
		Status: entity.RequestStatusPending,
	}

	_, apierr := svc.ProcessRequest(professional("pro-1"), "r-1", &contract.ProcessServiceRequestRequest{Action: "reject"})
	structured, ok := apierr.(*apierror.StructuredError)
	if !ok {
		t.Fatalf("apierr = %T, want *StructuredError", apierr)
	}
	if len(structured.Errors["comments"]) == 0 {
		t.Error("missing comments problem not reported")
	}

	// With a comment the rejection goes through.
	resp, apierr := svc.ProcessRequest(professional("pro-1"), "r-1", &contract.ProcessServiceRequestRequest{
		Action:   "reject",
		Comments: "Documents are illegible",
	})
	if apierr != nil {
		t.Fatalf("reject with comment: %v", apierr)
	}
	if resp.Status != string(entity.RequestStatusRejected) {
		t.Errorf("status = %q, want REJECTED", resp.Status)
	}
	if resp.Comments != "Documents are illegible" {
		t.Errorf("comments = %q, want the rejection comment recorded", resp.Comments)
	}
}

func TestProcessRequestIllegalTransition(t *testing.T) {
	svc, requestRepo, _ := newRequestFixture()
	requestRepo.requests["r-1"] = &entity.ServiceRequest{
		ID:     "r-1",
		Status: entity.RequestStatusPending,
	}

	// Completion requires the request to be in progress first.
	_, apierr := svc.ProcessRequest(professional("pro-1"), "r-1", &contract.ProcessServiceRequestRequest{Action: "complete"})
	if apierr == nil {
		t.Fatal("expected a transition error")
	}
	if apierr.Code() != 409 {
		t.Errorf("code = %d, want 409", apierr.Code())
	}
	if requestRepo.requests["r-1"].Status != entity.RequestStatusPending {
		t.Errorf("status = %q, want unchanged PENDING", requestRepo.requests["r-1"].Status)
	}
}

func TestProcessRequestMissing(t *testing.T) {
	svc, _, _ := newRequestFixture()
	_, apierr := svc.ProcessRequest(professional("pro-1"), "nope", &contract.ProcessServiceRequestRequest{Action: "start"})
	if apierr != apierror.NotFoundError {
		t.Fatalf("apierr = %v, want NotFoundError", apierr)
	}
}

func TestListRequestsDirectorScopedToOwn(t *testing.T) {
	svc, requestRepo, _ := newRequestFixture()
	requestRepo.requests["r-1"] = &entity.ServiceRequest{ID: "r-1", DirectorID: "dir-1", Status: entity.RequestStatusPending, Priority: entity.RequestPriorityMedium}
	requestRepo.requests["r-2"] = &entity.ServiceRequest{ID: "r-2", DirectorID: "dir-2", Status: entity.RequestStatusPending, Priority: entity.RequestPriorityMedium}

	// The filter asks for another director's requests; the scope wins.
	resp, apierr := svc.ListRequests(director("dir-1"), &contract.ServiceRequestFilterQuery{DirectorID: "dir-2"})
	if apierr != nil {
		t.Fatalf("ListRequests: %v", apierr)
	}
	if len(resp.Requests) != 1 || resp.Requests[0].ID != "r-1" {
		t.Fatalf("requests = %+v, want only dir-1's own", resp.Requests)
	}
}

func TestGetRequestHiddenFromOtherDirectors(t *testing.T) {
	svc, requestRepo, _ := newRequestFixture()
	requestRepo.requests["r-1"] = &entity.ServiceRequest{ID: "r-1", DirectorID: "dir-1", Status: entity.RequestStatusPending}

	if _, apierr := svc.GetRequest(director("dir-2"), "r-1"); apierr != apierror.NotFoundError {
		t.Fatalf("apierr = %v, want NotFoundError", apierr)
	}
	if _, apierr := svc.GetRequest(director("dir-1"), "r-1"); apierr != nil {
		t.Fatalf("owner read: %v", apierr)
	}
}
