package handler

import (
	"net/http"
	"strings"

	"compliancedesk/cmd/internal/contract"
	"compliancedesk/cmd/internal/domain/entity"
	"compliancedesk/cmd/internal/utils"
	"compliancedesk/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type TaskService interface {
	ListTasks(query *contract.TaskFilterQuery) (*contract.TaskListResponse, apierror.ErrorResponse)
	GetTask(actor *entity.UserProfile, taskID string) (*contract.TaskResponse, apierror.ErrorResponse)
	CreateTask(actor *entity.UserProfile, req *contract.CreateTaskRequest) (*contract.TaskResponse, apierror.ErrorResponse)
	UpdateStatus(actor *entity.UserProfile, taskID string, req *contract.UpdateTaskStatusRequest) (*contract.TaskResponse, apierror.ErrorResponse)
	CompleteTask(actor *entity.UserProfile, taskID string) (*contract.TaskResponse, apierror.ErrorResponse)
	DeleteTask(actor *entity.UserProfile, taskID string) apierror.ErrorResponse
}

type DefaultTaskRoute struct {
	TaskService TaskService
}

func NewTaskRoute(taskService TaskService) *DefaultTaskRoute {
	return &DefaultTaskRoute{TaskService: taskService}
}

func (t *DefaultTaskRoute) GetTasks(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var query contract.TaskFilterQuery
	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	// Directors only ever see their own tasks.
	if profile.Role == entity.RoleDirectors {
		query.AssignedTo = profile.UserID
	}

	resp, apierr := t.TaskService.ListTasks(&query)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (t *DefaultTaskRoute) GetTask(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	task, apierr := t.TaskService.GetTask(profile, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, task)
}

func (t *DefaultTaskRoute) CreateTask(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	task, apierr := t.TaskService.CreateTask(profile, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, task)
}

func (t *DefaultTaskRoute) UpdateTaskStatus(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	var req contract.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	task, apierr := t.TaskService.UpdateStatus(profile, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, task)
}

func (t *DefaultTaskRoute) DeleteTask(c echo.Context) error {
	profile, cerr := utils.GetProfileFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	if apierr := t.TaskService.DeleteTask(profile, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
