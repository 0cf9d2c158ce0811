package service

import (
	"context"
	"testing"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/infrastructure/mca"
	"compliancedesk/cmd/internal/utils/apierror"
)

type fakeCompanyRepo struct {
	companies []*entity.Company
}

func (f *fakeCompanyRepo) FindAll() ([]*entity.Company, error) {
	return f.companies, nil
}

func (f *fakeCompanyRepo) FindByID(id string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) FindByCIN(cin string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.CINNumber == cin {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) Save(company *entity.Company) error {
	for i, c := range f.companies {
		if c.ID == company.ID {
			f.companies[i] = company
			return nil
		}
	}
	f.companies = append(f.companies, company)
	return nil
}

func (f *fakeCompanyRepo) Delete(company *entity.Company) error {
	for i, c := range f.companies {
		if c.ID == company.ID {
			f.companies = append(f.companies[:i], f.companies[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeLLPRepo struct {
	llps []*entity.LLP
}

func (f *fakeLLPRepo) FindAll() ([]*entity.LLP, error) {
	return f.llps, nil
}

func (f *fakeLLPRepo) FindByID(id string) (*entity.LLP, error) {
	for _, l := range f.llps {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLLPRepo) FindByLLPIN(llpin string) (*entity.LLP, error) {
	for _, l := range f.llps {
		if l.LLPIN == llpin {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLLPRepo) Save(llp *entity.LLP) error {
	f.llps = append(f.llps, llp)
	return nil
}

func (f *fakeLLPRepo) Delete(llp *entity.LLP) error {
	return nil
}

type fakeRegistry struct {
	company *entity.Company
	err     error
	calls   int
}

func (f *fakeRegistry) GetByCIN(_ context.Context, _ string) (*entity.Company, error) {
	f.calls++
	return f.company, f.err
}

func newEntityFixture() (*DefaultEntityService, *fakeCompanyRepo, *fakeAssociationRepo, *fakeRegistry) {
	companyRepo := &fakeCompanyRepo{}
	assocRepo := &fakeAssociationRepo{}
	registry := &fakeRegistry{}
	svc := NewEntityService(companyRepo, &fakeLLPRepo{}, assocRepo, &fakeAssignmentRepo{}, registry, newTestValidator())
	return svc, companyRepo, assocRepo, registry
}

func sampleCompany() *contract.CompanyRequest {
	return &contract.CompanyRequest{
		CINNumber:         "U12345MH2020PTC123456",
		CompanyName:       "Acme Industries Pvt Ltd",
		NumberOfDirectors: 3,
		AuthorizedCapital: 1000000,
		PaidUpCapital:     500000,
	}
}

func TestCreateCompanyRejectsDuplicateCIN(t *testing.T) {
	svc, _, _, _ := newEntityFixture()
	actor := professional("pro-1")

	if _, apierr := svc.CreateCompany(actor, sampleCompany()); apierr != nil {
		t.Fatalf("first CreateCompany: %v", apierr)
	}
	if _, apierr := svc.CreateCompany(actor, sampleCompany()); apierr != apierror.DuplicateCINError {
		t.Fatalf("apierr = %v, want DuplicateCINError", apierr)
	}
}

func TestCreateCompanyInvariants(t *testing.T) {
	svc, _, _, _ := newEntityFixture()
	actor := professional("pro-1")

	req := sampleCompany()
	req.NumberOfDirectors = 1
	req.PaidUpCapital = 2000000

	_, apierr := svc.CreateCompany(actor, req)
	structured, ok := apierr.(*apierror.StructuredError)
	if !ok {
		t.Fatalf("apierr = %T, want *StructuredError", apierr)
	}
	if len(structured.Errors["number_of_directors"]) == 0 {
		t.Error("minimum director count not enforced")
	}
	if len(structured.Errors["paid_up_capital"]) == 0 {
		t.Error("paid-up vs authorized capital not enforced")
	}
}

func TestCreateCompanyForbiddenForDirectors(t *testing.T) {
	svc, _, _, _ := newEntityFixture()
	if _, apierr := svc.CreateCompany(director("dir-1"), sampleCompany()); apierr != apierror.ForbiddenRoleError {
		t.Fatalf("apierr = %v, want ForbiddenRoleError", apierr)
	}
}

func TestCreateCompanyDefaultsStatus(t *testing.T) {
	svc, companyRepo, _, _ := newEntityFixture()

	resp, apierr := svc.CreateCompany(professional("pro-1"), sampleCompany())
	if apierr != nil {
		t.Fatalf("CreateCompany: %v", apierr)
	}
	saved, _ := companyRepo.FindByID(resp.ID)
	if saved.CompanyStatus != entity.EntityStatusActive {
		t.Errorf("status = %q, want ACTIVE default", saved.CompanyStatus)
	}
}

func TestLookupCompanyPrefersLocalRecord(t *testing.T) {
	svc, companyRepo, _, registry := newEntityFixture()
	companyRepo.companies = []*entity.Company{
		{ID: "c-1", CINNumber: "U12345MH2020PTC123456", CompanyName: "Acme Industries Pvt Ltd"},
	}

	resp, apierr := svc.LookupCompanyByCIN(context.Background(), "U12345MH2020PTC123456")
	if apierr != nil {
		t.Fatalf("LookupCompanyByCIN: %v", apierr)
	}
	if resp.ID != "c-1" {
		t.Errorf("id = %q, want the local record", resp.ID)
	}
	if registry.calls != 0 {
		t.Errorf("registry calls = %d, want 0 when the record exists locally", registry.calls)
	}
}

func TestLookupCompanyFallsBackToRegistry(t *testing.T) {
	svc, _, _, registry := newEntityFixture()
	registry.company = &entity.Company{CINNumber: "U12345MH2020PTC123456", CompanyName: "Acme Industries Pvt Ltd"}

	resp, apierr := svc.LookupCompanyByCIN(context.Background(), "U12345MH2020PTC123456")
	if apierr != nil {
		t.Fatalf("LookupCompanyByCIN: %v", apierr)
	}
	if resp.CompanyName != "Acme Industries Pvt Ltd" {
		t.Errorf("companyName = %q, want the registry record", resp.CompanyName)
	}
	if registry.calls != 1 {
		t.Errorf("registry calls = %d, want 1", registry.calls)
	}
}

func TestLookupCompanyRegistryMiss(t *testing.T) {
	svc, _, _, registry := newEntityFixture()
	registry.err = mca.ErrNotFound

	if _, apierr := svc.LookupCompanyByCIN(context.Background(), "U12345MH2020PTC123456"); apierr != apierror.NotFoundError {
		t.Fatalf("apierr = %v, want NotFoundError", apierr)
	}
}

func TestCreateLLPRequiresTwoDesignatedPartners(t *testing.T) {
	svc, _, _, _ := newEntityFixture()

	_, apierr := svc.CreateLLP(professional("pro-1"), &contract.LLPRequest{
		LLPIN:                      "AAB-1234",
		LLPName:                    "Acme Associates LLP",
		NumberOfDesignatedPartners: 1,
	})
	structured, ok := apierr.(*apierror.StructuredError)
	if !ok {
		t.Fatalf("apierr = %T, want *StructuredError", apierr)
	}
	if len(structured.Errors["number_of_designated_partners"]) == 0 {
		t.Error("minimum designated partner count not enforced")
	}
}

func TestCreateAssociationIdempotentWhileActive(t *testing.T) {
	svc, _, assocRepo, _ := newEntityFixture()
	actor := professional("pro-1")
	req := &contract.AssociationRequest{
		UserID:          "dir-1",
		EntityID:        "ent-1",
		EntityType:      "COMPANY",
		AssociationType: "DIRECTOR",
		DIN:             "12345678",
		AppointmentDate: "2026-09-01",
	}

	first, apierr := svc.CreateAssociation(actor, req)
	if apierr != nil {
		t.Fatalf("first CreateAssociation: %v", apierr)
	}
	second, apierr := svc.CreateAssociation(actor, req)
	if apierr != nil {
		t.Fatalf("second CreateAssociation: %v", apierr)
	}
	if first.ID != second.ID {
		t.Error("active association duplicated instead of returned")
	}
	if len(assocRepo.assocs) != 1 {
		t.Errorf("associations = %d, want 1", len(assocRepo.assocs))
	}
}

func TestDeactivateAssociationKeepsRow(t *testing.T) {
	svc, _, assocRepo, _ := newEntityFixture()
	assocRepo.assocs = []*entity.DirectorAssociation{
		{ID: "as-1", UserID: "dir-1", EntityID: "ent-1", IsActive: true},
	}

	resp, apierr := svc.DeactivateAssociation(professional("pro-1"), "as-1", "2026-09-30")
	if apierr != nil {
		t.Fatalf("DeactivateAssociation: %v", apierr)
	}
	if resp.IsActive {
		t.Error("association still active")
	}
	if len(assocRepo.assocs) != 1 {
		t.Error("association row deleted instead of deactivated")
	}
	if assocRepo.assocs[0].CessationDate != "2026-09-30" {
		t.Errorf("cessationDate = %q, want stamped", assocRepo.assocs[0].CessationDate)
	}
}
