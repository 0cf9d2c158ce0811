package workflow

import (
	"fmt"

	"compliancedesk/cmd/internal/domain/entity"
)

// Stage is one step of the director-appointment pipeline. Each stage is
// owned by exactly one actor: the professional or the appointee.
type Stage string

const (
	StageAssociateDINEmail      Stage = "ASSOCIATE_DIN_EMAIL"
	StageUploadDocuments        Stage = "UPLOAD_DOCUMENTS"
	StageFillDirectorInfo       Stage = "FILL_DIRECTOR_INFO"
	StageFillInterestDisclosure Stage = "FILL_INTEREST_DISCLOSURE"
	StageGenerateForms          Stage = "GENERATE_FORMS"
)

var stageOrder = []Stage{
	StageAssociateDINEmail,
	StageUploadDocuments,
	StageFillDirectorInfo,
	StageFillInterestDisclosure,
	StageGenerateForms,
}

// NextStage returns the stage after current, or "" when current is the
// last stage or unknown.
func NextStage(current Stage) Stage {
	for i, s := range stageOrder {
		if s == current && i < len(stageOrder)-1 {
			return stageOrder[i+1]
		}
	}
	return ""
}

func TitleForStage(stage Stage) string {
	switch stage {
	case StageAssociateDINEmail:
		return "Associate DIN with Email for New Director"
	case StageUploadDocuments:
		return "Upload Documents for Director Appointment"
	case StageFillDirectorInfo:
		return "Complete Director Information Form"
	case StageFillInterestDisclosure:
		return "Disclose Interest in Other Companies"
	case StageGenerateForms:
		return "Generate Director Appointment Forms"
	}
	return ""
}

func DescriptionForStage(stage Stage, req AppointmentRequest) string {
	switch stage {
	case StageAssociateDINEmail:
		return fmt.Sprintf("A director appointment request has been submitted for DIN %s at %s. Please associate this DIN with the director's email address.",
			req.AppointeeDIN, req.EntityName)
	case StageUploadDocuments:
		return fmt.Sprintf("You have been appointed as a director at %s. Please upload PAN, Aadhar, and passport (if foreign national), then complete this task.",
			req.EntityName)
	case StageFillDirectorInfo:
		return "Please complete the director information form and select companies for interest disclosure."
	case StageFillInterestDisclosure:
		return "Please provide details about your interest in the following companies."
	case StageGenerateForms:
		return "All information has been collected. Please generate the required forms (DIR-2, DIR-8, MBP-1)."
	}
	return ""
}

// AssigneeForStage returns the user that owns the given stage. The
// professional drives DIN association, the information form, and form
// generation; the appointee handles uploads and the interest disclosure.
func AssigneeForStage(stage Stage, md AppointmentMetadata) string {
	switch stage {
	case StageAssociateDINEmail, StageFillDirectorInfo, StageGenerateForms:
		return md.AssignedProfessionalID
	case StageUploadDocuments, StageFillInterestDisclosure:
		return md.AppointmentRequest.AppointeeUserID
	}
	return ""
}

// TaskTypeForStage maps each pipeline stage to the plain task type its
// synthesized Task row carries.
func TaskTypeForStage(stage Stage) entity.TaskType {
	switch stage {
	case StageAssociateDINEmail:
		return entity.TaskTypeInformationUpdate
	case StageUploadDocuments:
		return entity.TaskTypeDocumentUpload
	case StageFillDirectorInfo, StageFillInterestDisclosure:
		return entity.TaskTypeFormCompletion
	case StageGenerateForms:
		return entity.TaskTypeApprovalRequired
	}
	return entity.TaskTypeInformationUpdate
}
