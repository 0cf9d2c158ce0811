package forms

import (
	"strings"
	"testing"

	"compliancedesk/cmd/internal/domain/workflow"
)

func sampleInfo() workflow.DirectorInfo {
	return workflow.DirectorInfo{
		FullName:           "Jane Doe",
		FatherName:         "John Doe",
		DIN:                "12345678",
		PAN:                "ABCDE1234F",
		ResidentialAddress: "12 Marine Drive",
		City:               "Mumbai",
		Email:              "jane@example.com",
		MobileNumber:       "9999999999",
		Occupation:         "Consultant",
		DateOfBirth:        "1980-05-01",
		Nationality:        "Indian",
		PlaceOfSigning:     "Mumbai",
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	info := sampleInfo()

	for _, form := range RequiredForms {
		first, err := Render(form, info, "Acme Ltd", "2026-08-28")
		if err != nil {
			t.Fatalf("Render(%s): %v", form, err)
		}
		second, err := Render(form, info, "Acme Ltd", "2026-08-28")
		if err != nil {
			t.Fatalf("Render(%s): %v", form, err)
		}
		if first != second {
			t.Errorf("Render(%s) is not deterministic", form)
		}
	}
}

func TestRenderDIR2(t *testing.T) {
	out, err := Render(FormDIR2, sampleInfo(), "Acme Ltd", "2026-08-28")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"FORM DIR-2",
		"Jane Doe",
		"DIN: 12345678",
		"Income Tax PAN: ABCDE1234F",
		"Acme Ltd",
		"Date: 2026-08-28",
		"Place: Mumbai",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DIR-2 output missing %q", want)
		}
	}
}

func TestRenderMBP1WithInterests(t *testing.T) {
	info := sampleInfo()
	info.OtherCompanyInterests = []workflow.InterestEntry{
		{CompanyName: "Beta Pvt Ltd", NatureOfInterest: "Shareholder", Shareholding: "12.50%", DateOfInterest: "2024-01-15"},
	}

	out, err := Render(FormMBP1, info, "Acme Ltd", "2026-08-28")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(out, "1. Beta Pvt Ltd - Shareholder - 12.50% - 2024-01-15") {
		t.Errorf("MBP-1 output missing interest line:\n%s", out)
	}
	if strings.Contains(out, NoInterestsPlaceholder) {
		t.Error("MBP-1 with interests should not contain the placeholder")
	}
}

func TestRenderMBP1WithoutInterests(t *testing.T) {
	out, err := Render(FormMBP1, sampleInfo(), "Acme Ltd", "2026-08-28")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(out, NoInterestsPlaceholder) {
		t.Errorf("MBP-1 without interests should contain %q", NoInterestsPlaceholder)
	}
}

func TestRenderUnknownForm(t *testing.T) {
	if _, err := Render(FormType("DIR-99"), sampleInfo(), "Acme Ltd", "2026-08-28"); err == nil {
		t.Error("expected error for unknown form type")
	}
}
