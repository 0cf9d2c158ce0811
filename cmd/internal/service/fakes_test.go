package service

import (
	"context"
	"errors"
	"strings"

	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/domain/sqlite/repository"
	"compliancedesk/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
)

func newTestValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("din", validators.DIN)
	_ = v.RegisterValidation("pan", validators.PAN)
	_ = v.RegisterValidation("cin", validators.CIN)
	_ = v.RegisterValidation("llpin", validators.LLPIN)
	_ = v.RegisterValidation("nodupes", validators.NoDupes)
	_ = v.RegisterValidation("nospaces", validators.NoWhiteSpaces)
	return v
}

// fakeTaskRepo keeps tasks in memory. failOnSave is the 1-based save
// call that errors, so tests can break the second write of a two-write
// sequence.
type fakeTaskRepo struct {
	tasks      map[string]*entity.Task
	saves      int
	failOnSave int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entity.Task{}}
}

func (f *fakeTaskRepo) FindAll(filter repository.TaskFilter) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range f.tasks {
		if filter.AssignedTo != "" && t.AssignedTo != filter.AssignedTo {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.TaskType != "" && t.TaskType != filter.TaskType {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTaskRepo) FindByID(id string) (*entity.Task, error) {
	return f.tasks[id], nil
}

func (f *fakeTaskRepo) FindOverdue(now int64) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range f.tasks {
		if t.Status == entity.TaskStatusCompleted || t.Status == entity.TaskStatusCancelled {
			continue
		}
		if t.DueDate > 0 && t.DueDate < now {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Save(t *entity.Task) error {
	f.saves++
	if f.failOnSave > 0 && f.saves == f.failOnSave {
		return errors.New("save failed")
	}
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Delete(t *entity.Task) error {
	delete(f.tasks, t.ID)
	return nil
}

type fakeNotifRepo struct {
	notifs []*entity.Notification
}

func (f *fakeNotifRepo) FindByID(id string) (*entity.Notification, error) {
	for _, n := range f.notifs {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNotifRepo) FindAllByRecipient(userID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.notifs {
		if n.RecipientID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifRepo) FindPendingByRecipient(userID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.notifs {
		if n.RecipientID == userID && n.Status == entity.NotificationStatusPending {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifRepo) FindByTaskAndType(taskID string, nType entity.NotificationType) (*entity.Notification, error) {
	for _, n := range f.notifs {
		if n.RelatedEntityID == taskID && n.NotificationType == nType {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNotifRepo) Save(notif *entity.Notification) error {
	for i, n := range f.notifs {
		if n.ID == notif.ID {
			f.notifs[i] = notif
			return nil
		}
	}
	f.notifs = append(f.notifs, notif)
	return nil
}

func (f *fakeNotifRepo) Delete(notif *entity.Notification) error {
	for i, n := range f.notifs {
		if n.ID == notif.ID {
			f.notifs = append(f.notifs[:i], f.notifs[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProfileRepo struct {
	profiles []*entity.UserProfile
}

func (f *fakeProfileRepo) FindByID(id string) (*entity.UserProfile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) FindByUserID(userID string) (*entity.UserProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) FindByEmail(email string) (*entity.UserProfile, error) {
	for _, p := range f.profiles {
		if strings.EqualFold(p.Email, email) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) FindByDIN(din string) (*entity.UserProfile, error) {
	for _, p := range f.profiles {
		if p.DIN != "" && p.DIN == din {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) FindAllByRole(role entity.Role) ([]*entity.UserProfile, error) {
	var out []*entity.UserProfile
	for _, p := range f.profiles {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) FindAllInUserIDs(userIDs []string) ([]*entity.UserProfile, error) {
	want := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		want[id] = true
	}
	var out []*entity.UserProfile
	for _, p := range f.profiles {
		if want[p.UserID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) Save(profile *entity.UserProfile) error {
	for i, p := range f.profiles {
		if p.ID == profile.ID {
			f.profiles[i] = profile
			return nil
		}
	}
	f.profiles = append(f.profiles, profile)
	return nil
}

type fakePendingRepo struct {
	pending []*entity.PendingDirector
}

func (f *fakePendingRepo) FindByID(id string) (*entity.PendingDirector, error) {
	for _, pd := range f.pending {
		if pd.ID == id {
			return pd, nil
		}
	}
	return nil, nil
}

func (f *fakePendingRepo) FindPendingByDIN(din string) (*entity.PendingDirector, error) {
	for _, pd := range f.pending {
		if pd.DIN == din && pd.Status == entity.PendingDirectorStatusPending {
			return pd, nil
		}
	}
	return nil, nil
}

func (f *fakePendingRepo) FindPendingByEmail(email string) (*entity.PendingDirector, error) {
	for _, pd := range f.pending {
		if strings.EqualFold(pd.Email, email) && pd.Status == entity.PendingDirectorStatusPending {
			return pd, nil
		}
	}
	return nil, nil
}

func (f *fakePendingRepo) FindExpired(now int64) ([]*entity.PendingDirector, error) {
	var out []*entity.PendingDirector
	for _, pd := range f.pending {
		if pd.Status == entity.PendingDirectorStatusPending && pd.ExpiresAt < now {
			out = append(out, pd)
		}
	}
	return out, nil
}

func (f *fakePendingRepo) Save(pd *entity.PendingDirector) error {
	for i, existing := range f.pending {
		if existing.ID == pd.ID {
			f.pending[i] = pd
			return nil
		}
	}
	f.pending = append(f.pending, pd)
	return nil
}

type fakeAssociationRepo struct {
	assocs []*entity.DirectorAssociation
}

func (f *fakeAssociationRepo) FindByID(id string) (*entity.DirectorAssociation, error) {
	for _, a := range f.assocs {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAssociationRepo) FindAllByUser(userID string) ([]*entity.DirectorAssociation, error) {
	var out []*entity.DirectorAssociation
	for _, a := range f.assocs {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssociationRepo) FindActiveByUser(userID string) ([]*entity.DirectorAssociation, error) {
	var out []*entity.DirectorAssociation
	for _, a := range f.assocs {
		if a.UserID == userID && a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssociationRepo) FindAllByEntity(entityID string) ([]*entity.DirectorAssociation, error) {
	var out []*entity.DirectorAssociation
	for _, a := range f.assocs {
		if a.EntityID == entityID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssociationRepo) FindByUserAndEntity(userID, entityID string) (*entity.DirectorAssociation, error) {
	for _, a := range f.assocs {
		if a.UserID == userID && a.EntityID == entityID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAssociationRepo) Save(assoc *entity.DirectorAssociation) error {
	for i, a := range f.assocs {
		if a.ID == assoc.ID {
			f.assocs[i] = assoc
			return nil
		}
	}
	f.assocs = append(f.assocs, assoc)
	return nil
}

type fakeAssignmentRepo struct {
	assignments []*entity.ProfessionalAssignment
}

func (f *fakeAssignmentRepo) FindAllByProfessional(professionalID string) ([]*entity.ProfessionalAssignment, error) {
	var out []*entity.ProfessionalAssignment
	for _, a := range f.assignments {
		if a.ProfessionalID == professionalID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) FindActiveByProfessional(professionalID string) ([]*entity.ProfessionalAssignment, error) {
	var out []*entity.ProfessionalAssignment
	for _, a := range f.assignments {
		if a.ProfessionalID == professionalID && a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) FindActiveByEntity(entityID string) ([]*entity.ProfessionalAssignment, error) {
	var out []*entity.ProfessionalAssignment
	for _, a := range f.assignments {
		if a.EntityID == entityID && a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) FindByProfessionalAndEntity(professionalID, entityID string) (*entity.ProfessionalAssignment, error) {
	for _, a := range f.assignments {
		if a.ProfessionalID == professionalID && a.EntityID == entityID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAssignmentRepo) Save(assignment *entity.ProfessionalAssignment) error {
	for i, a := range f.assignments {
		if a.ID == assignment.ID {
			f.assignments[i] = assignment
			return nil
		}
	}
	f.assignments = append(f.assignments, assignment)
	return nil
}

type fakeDocumentRepo struct {
	docs []*entity.Document
}

func (f *fakeDocumentRepo) FindByID(id string) (*entity.Document, error) {
	for _, d := range f.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDocumentRepo) FindAll() ([]*entity.Document, error) {
	return f.docs, nil
}

func (f *fakeDocumentRepo) FindByServiceRequest(requestID string) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range f.docs {
		if d.ServiceRequestID == requestID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) FindByEntity(entityID string) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range f.docs {
		if d.EntityID == entityID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) FindVisibleTo(uploaderIDs []string) ([]*entity.Document, error) {
	want := make(map[string]bool, len(uploaderIDs))
	for _, id := range uploaderIDs {
		want[id] = true
	}
	var out []*entity.Document
	for _, d := range f.docs {
		if d.IsPublic || want[d.UploadedBy] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) Save(doc *entity.Document) error {
	for i, d := range f.docs {
		if d.ID == doc.ID {
			f.docs[i] = doc
			return nil
		}
	}
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeDocumentRepo) Delete(doc *entity.Document) error {
	for i, d := range f.docs {
		if d.ID == doc.ID {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeS3 keeps uploaded objects in memory and presigns with a stable
// fake host so tests can assert on the returned URL.
type fakeS3 struct {
	objects   map[string][]byte
	deleted   []string
	uploadErr error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) UploadFile(_ context.Context, data []byte, key string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.objects[key] = data
	return nil
}

func (f *fakeS3) DeleteFile(_ context.Context, key string) error {
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeS3) PresignGet(_ context.Context, key string) (string, error) {
	return "https://files.local/" + key, nil
}

type fakeRequestRepo struct {
	requests map[string]*entity.ServiceRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]*entity.ServiceRequest{}}
}

func (f *fakeRequestRepo) FindAll(filter repository.ServiceRequestFilter) ([]*entity.ServiceRequest, error) {
	var out []*entity.ServiceRequest
	for _, r := range f.requests {
		if filter.DirectorID != "" && r.DirectorID != filter.DirectorID {
			continue
		}
		if filter.ProcessedBy != "" && r.ProcessedBy != filter.ProcessedBy {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.ServiceType != "" && r.ServiceType != filter.ServiceType {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRequestRepo) FindByID(id string) (*entity.ServiceRequest, error) {
	return f.requests[id], nil
}

func (f *fakeRequestRepo) Save(req *entity.ServiceRequest) error {
	f.requests[req.ID] = req
	return nil
}

func (f *fakeRequestRepo) Delete(req *entity.ServiceRequest) error {
	delete(f.requests, req.ID)
	return nil
}
