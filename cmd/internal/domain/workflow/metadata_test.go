package workflow

import (
	"testing"
)

func TestAppointmentMetadataRoundTrip(t *testing.T) {
	md := NewAppointmentMetadata(AppointmentRequest{
		AuthorizerUserID: "auth-1",
		AppointeeDIN:     "12345678",
		AppointeeUserID:  "dir-1",
		EntityID:         "ent-1",
		EntityName:       "Acme Ltd",
	}, StageUploadDocuments, "prof-1")
	md.DocumentsUploaded = true
	md.DirectorInfo = &DirectorInfo{FullName: "Jane Doe", DIN: "12345678"}

	raw, err := md.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := DecodeAppointmentMetadata(raw)
	if err != nil {
		t.Fatalf("DecodeAppointmentMetadata: %v", err)
	}

	if decoded.CurrentStage != StageUploadDocuments {
		t.Errorf("CurrentStage = %s, want %s", decoded.CurrentStage, StageUploadDocuments)
	}
	if decoded.AssignedProfessionalID != "prof-1" {
		t.Errorf("AssignedProfessionalID = %s, want prof-1", decoded.AssignedProfessionalID)
	}
	if !decoded.DocumentsUploaded {
		t.Error("DocumentsUploaded lost in round trip")
	}
	if decoded.DirectorInfo == nil || decoded.DirectorInfo.FullName != "Jane Doe" {
		t.Error("DirectorInfo lost in round trip")
	}
}

func TestDecodeAppointmentMetadataRejectsWrongKind(t *testing.T) {
	md := DINAssociationMetadata{
		Kind:        KindDINEmailAssociation,
		DirectorDIN: "12345678",
	}
	raw, err := md.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if _, err := DecodeAppointmentMetadata(raw); err == nil {
		t.Error("expected kind mismatch error, got none")
	}
	if _, err := DecodeAppointmentMetadata(""); err == nil {
		t.Error("expected empty metadata error, got none")
	}

	decoded, err := DecodeDINAssociationMetadata(raw)
	if err != nil {
		t.Fatalf("DecodeDINAssociationMetadata: %v", err)
	}
	if decoded.DirectorDIN != "12345678" {
		t.Errorf("DirectorDIN = %s, want 12345678", decoded.DirectorDIN)
	}
}
