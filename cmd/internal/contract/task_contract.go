package contract

type CreateTaskRequest struct {
	AssignedTo        string `json:"assigned_to" validate:"required"`
	TaskType          string `json:"task_type" validate:"required,oneof=DOCUMENT_UPLOAD FORM_COMPLETION APPROVAL_REQUIRED REVIEW_NEEDED SIGNATURE_REQUIRED INFORMATION_UPDATE"`
	Title             string `json:"title" validate:"required,min=2,max=200"`
	Description       string `json:"description" validate:"omitempty,max=2000"`
	Priority          string `json:"priority" validate:"omitempty,oneof=URGENT HIGH MEDIUM LOW"`
	DueDate           int64  `json:"due_date" validate:"omitempty,min=0"`
	RelatedEntityID   string `json:"related_entity_id" validate:"omitempty"`
	RelatedEntityType string `json:"related_entity_type" validate:"omitempty,oneof=SERVICE_REQUEST TASK COMPANY LLP DOCUMENT DIRECTOR_ASSOCIATION"`
	Metadata          string `json:"metadata" validate:"omitempty,max=100000,json"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
}

type TaskFilterQuery struct {
	AssignedTo string `query:"assigned_to"`
	Status     string `query:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	TaskType   string `query:"task_type" validate:"omitempty,oneof=DOCUMENT_UPLOAD FORM_COMPLETION APPROVAL_REQUIRED REVIEW_NEEDED SIGNATURE_REQUIRED INFORMATION_UPDATE"`
}

type TaskResponse struct {
	ID                string `json:"id"`
	AssignedTo        string `json:"assigned_to"`
	AssignedBy        string `json:"assigned_by,omitempty"`
	TaskType          string `json:"task_type"`
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`
	Priority          string `json:"priority"`
	Status            string `json:"status"`
	DueDate           string `json:"due_date,omitempty"`
	CompletedAt       string `json:"completed_at,omitempty"`
	RelatedEntityID   string `json:"related_entity_id,omitempty"`
	RelatedEntityType string `json:"related_entity_type,omitempty"`
	Metadata          string `json:"metadata,omitempty"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

type TaskListResponse struct {
	Tasks  []*TaskResponse `json:"tasks"`
	Counts TaskCounts      `json:"counts"`
}

type TaskCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}
