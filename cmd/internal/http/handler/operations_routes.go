package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	SubmitAppointment(actor *entity.UserProfile, data *contract.SubmitAppointmentData) (*contract.TaskResponse, apierror.ErrorResponse)
	AssociateDINEmail(actor *entity.UserProfile, data *contract.AssociateDINEmailData) (string, apierror.ErrorResponse)
	CompleteDocumentUpload(actor *entity.UserProfile, taskID string) (*contract.TaskResponse, apierror.ErrorResponse)
	SubmitDirectorInfo(actor *entity.UserProfile, data *contract.SubmitDirectorInfoData) (*contract.TaskResponse, apierror.ErrorResponse)
	SubmitInterestDisclosure(actor *entity.UserProfile, data *contract.SubmitInterestDisclosureData) (*contract.TaskResponse, apierror.ErrorResponse)
	GenerateForms(ctx context.Context, actor *entity.UserProfile, taskID string) (*contract.TaskResponse, apierror.ErrorResponse)
	SubmitResignation(actor *entity.UserProfile, data *contract.SubmitResignationData) (*contract.ServiceRequestResponse, apierror.ErrorResponse)
}

// DefaultOperationRoute dispatches the {operation, data} envelope the
// dashboards post. The fast path serves everything except form
// generation, which runs on a separate route with a larger timeout.
type DefaultOperationRoute struct {
	Appointments AppointmentService
	Tasks        TaskService
	Requests     ServiceRequestService
}

func NewOperationRoute(appointments AppointmentService, tasks TaskService, requests ServiceRequestService) *DefaultOperationRoute {
	return &DefaultOperationRoute{
		Appointments: appointments,
		Tasks:        tasks,
		Requests:     requests,
	}
}

func (o *DefaultOperationRoute) HandleOperation(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return operationError(c, cerr)
	}

	var req contract.OperationRequest
	if err := c.Bind(&req); err != nil {
		return operationError(c, apierror.MalformedJSONError)
	}

	switch req.Operation {
	case "submitDirectorAppointment":
		return dispatch(c, req.Data, func(data *contract.SubmitAppointmentData) (any, apierror.ErrorResponse) {
			resp, apierr := o.Appointments.SubmitAppointment(profile, data)
			return resp, apierr
		})
	case "associateDINEmail":
		return dispatch(c, req.Data, func(data *contract.AssociateDINEmailData) (any, apierror.ErrorResponse) {
			msg, apierr := o.Appointments.AssociateDINEmail(profile, data)
			if apierr != nil {
				return nil, apierr
			}
			return echo.Map{"message": msg}, nil
		})
	case "completeTask":
		return dispatch(c, req.Data, func(data *contract.CompleteTaskData) (any, apierror.ErrorResponse) {
			resp, apierr := o.Tasks.CompleteTask(profile, data.TaskID)
			return resp, apierr
		})
	case "completeDirectorDocumentUpload":
		return dispatch(c, req.Data, func(data *contract.CompleteDocumentUploadData) (any, apierror.ErrorResponse) {
			resp, apierr := o.Appointments.CompleteDocumentUpload(profile, data.TaskID)
			return resp, apierr
		})
	case "submitDirectorInfoByProfessional":
		return dispatch(c, req.Data, func(data *contract.SubmitDirectorInfoData) (any, apierror.ErrorResponse) {
			resp, apierr := o.Appointments.SubmitDirectorInfo(profile, data)
			return resp, apierr
		})
	case "submitInterestDisclosureByAppointee":
		return dispatch(c, req.Data, func(data *contract.SubmitInterestDisclosureData) (any, apierror.ErrorResponse) {
			resp, apierr := o.Appointments.SubmitInterestDisclosure(profile, data)
			return resp, apierr
		})
	case "submitDirectorResignation":
		return dispatch(c, req.Data, func(data *contract.SubmitResignationData) (any, apierror.ErrorResponse) {
			resp, apierr := o.Appointments.SubmitResignation(profile, data)
			return resp, apierr
		})
	case "processServiceRequest":
		return dispatch(c, req.Data, func(data *contract.ProcessRequestData) (any, apierror.ErrorResponse) {
			resp, apierr := o.Requests.ProcessRequest(profile, data.RequestID, &contract.ProcessServiceRequestRequest{
				Action:   data.Action,
				Comments: data.Comments,
			})
			return resp, apierr
		})
	case "getTaskDetails":
		return dispatch(c, req.Data, func(data *contract.GetTaskDetailsData) (any, apierror.ErrorResponse) {
			resp, apierr := o.Tasks.GetTask(profile, data.TaskID)
			return resp, apierr
		})
	}
	return operationError(c, apierror.NewUnknownOperationError(req.Operation))
}

// HandleHeavyOperation serves form generation, the only operation whose
// runtime warrants its own route.
func (o *DefaultOperationRoute) HandleHeavyOperation(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return operationError(c, cerr)
	}

	var req contract.OperationRequest
	if err := c.Bind(&req); err != nil {
		return operationError(c, apierror.MalformedJSONError)
	}

	if req.Operation != "generateDirectorForms" {
		return operationError(c, apierror.NewUnknownOperationError(req.Operation))
	}

	return dispatch(c, req.Data, func(data *contract.GenerateFormsData) (any, apierror.ErrorResponse) {
		resp, apierr := o.Appointments.GenerateForms(c.Request().Context(), profile, data.TaskID)
		return resp, apierr
	})
}

// dispatch decodes the operation payload into T and wraps the handler
// result in the common envelope.
func dispatch[T any](c echo.Context, raw json.RawMessage, fn func(*T) (any, apierror.ErrorResponse)) error {
	var data T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return operationError(c, apierror.MalformedJSONError)
		}
	}

	result, apierr := fn(&data)
	if apierr != nil {
		return operationError(c, apierr)
	}

	return c.JSON(http.StatusOK, &contract.OperationResponse{
		Success: true,
		Data:    result,
	})
}

func operationError(c echo.Context, apierr apierror.ErrorResponse) error {
	resp := contract.OperationResponse{Success: false}

	switch e := apierr.(type) {
	case *apierror.APIError:
		resp.Message = e.Message
	case *apierror.StructuredError:
		resp.Message = "Validation failed"
		for field, msgs := range e.Errors {
			for _, msg := range msgs {
				resp.Errors = append(resp.Errors, field+": "+msg)
			}
		}
	default:
		resp.Message = "Request failed"
	}
	return c.JSON(apierr.Code(), &resp)
}
