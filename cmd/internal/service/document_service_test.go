package service

import (
	"context"
	"testing"

	"compliancedesk/cmd/internal/contract"
)

func newDocumentFixture() (*DefaultDocumentService, *fakeDocumentRepo, *fakeS3) {
	docRepo := &fakeDocumentRepo{}
	s3 := newFakeS3()
	svc := NewDocumentService(docRepo, &fakeAssociationRepo{}, &fakeAssignmentRepo{}, s3, newTestValidator())
	return svc, docRepo, s3
}

func uploadRequest() *contract.UploadDocumentRequest {
	return &contract.UploadDocumentRequest{
		DocumentName: "PAN card scan",
		DocumentType: "IDENTITY",
	}
}

func TestUploadDocumentDerivesMimeType(t *testing.T) {
	svc, docRepo, s3 := newDocumentFixture()
	actor := director("dir-1")

	resp, apierr := svc.Upload(context.Background(), actor, uploadRequest(), "scan.pdf", []byte("%PDF-1.4"))
	if apierr != nil {
		t.Fatalf("Upload: %v", apierr)
	}
	if resp.MimeType != "application/pdf" {
		t.Errorf("mimeType = %q, want application/pdf", resp.MimeType)
	}
	if len(docRepo.docs) != 1 || docRepo.docs[0].MimeType != "application/pdf" {
		t.Error("stored record missing the derived mime type")
	}
	if _, ok := s3.objects[docRepo.docs[0].FileKey]; !ok {
		t.Error("uploaded object missing from storage")
	}

	resp, apierr = svc.Upload(context.Background(), actor, uploadRequest(), "photo.png", []byte("png-bytes"))
	if apierr != nil {
		t.Fatalf("Upload png: %v", apierr)
	}
	if resp.MimeType != "image/png" {
		t.Errorf("mimeType = %q, want image/png", resp.MimeType)
	}
}

func TestUploadDocumentRejectsUnsupportedExtension(t *testing.T) {
	svc, docRepo, s3 := newDocumentFixture()

	_, apierr := svc.Upload(context.Background(), director("dir-1"), uploadRequest(), "payload.exe", []byte("MZ"))
	if apierr == nil || apierr.Code() != 400 {
		t.Fatalf("apierr = %v, want 400 for unsupported type", apierr)
	}
	if len(docRepo.docs) != 0 || len(s3.objects) != 0 {
		t.Error("rejected upload left a record or object behind")
	}
}
