package workflow

import (
	"testing"

	"compliancedesk/cmd/internal/domain/entity"
)

func TestNextStage(t *testing.T) {
	cases := []struct {
		current Stage
		want    Stage
	}{
		{StageAssociateDINEmail, StageUploadDocuments},
		{StageUploadDocuments, StageFillDirectorInfo},
		{StageFillDirectorInfo, StageFillInterestDisclosure},
		{StageFillInterestDisclosure, StageGenerateForms},
		{StageGenerateForms, ""},
		{Stage("BOGUS"), ""},
	}

	for _, c := range cases {
		if got := NextStage(c.current); got != c.want {
			t.Errorf("NextStage(%s) = %q, want %q", c.current, got, c.want)
		}
	}
}

func TestAssigneeForStageAlternation(t *testing.T) {
	md := AppointmentMetadata{
		AssignedProfessionalID: "prof-1",
		AppointmentRequest:     AppointmentRequest{AppointeeUserID: "dir-1"},
	}

	cases := []struct {
		stage Stage
		want  string
	}{
		{StageAssociateDINEmail, "prof-1"},
		{StageUploadDocuments, "dir-1"},
		{StageFillDirectorInfo, "prof-1"},
		{StageFillInterestDisclosure, "dir-1"},
		{StageGenerateForms, "prof-1"},
	}

	for _, c := range cases {
		if got := AssigneeForStage(c.stage, md); got != c.want {
			t.Errorf("AssigneeForStage(%s) = %q, want %q", c.stage, got, c.want)
		}
	}
}

func TestTaskTypeForStage(t *testing.T) {
	cases := []struct {
		stage Stage
		want  entity.TaskType
	}{
		{StageAssociateDINEmail, entity.TaskTypeInformationUpdate},
		{StageUploadDocuments, entity.TaskTypeDocumentUpload},
		{StageFillDirectorInfo, entity.TaskTypeFormCompletion},
		{StageFillInterestDisclosure, entity.TaskTypeFormCompletion},
		{StageGenerateForms, entity.TaskTypeApprovalRequired},
	}

	for _, c := range cases {
		if got := TaskTypeForStage(c.stage); got != c.want {
			t.Errorf("TaskTypeForStage(%s) = %s, want %s", c.stage, got, c.want)
		}
	}
}

func TestStageTitlesNonEmpty(t *testing.T) {
	for _, stage := range []Stage{
		StageAssociateDINEmail,
		StageUploadDocuments,
		StageFillDirectorInfo,
		StageFillInterestDisclosure,
		StageGenerateForms,
	} {
		if TitleForStage(stage) == "" {
			t.Errorf("TitleForStage(%s) is empty", stage)
		}
		if DescriptionForStage(stage, AppointmentRequest{AppointeeDIN: "12345678", EntityName: "Acme Ltd"}) == "" {
			t.Errorf("DescriptionForStage(%s) is empty", stage)
		}
	}
}
