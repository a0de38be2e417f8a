package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apptask "github.com/taskhub/backend/internal/application/task"
	"github.com/taskhub/backend/internal/interfaces/http/dto"
)

// TaskHandler handles task, comment and task-activity HTTP requests
type TaskHandler struct {
	BaseHandler
	taskService *apptask.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *apptask.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create creates a task in a visible project
func (h *TaskHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.taskService.CreateTask(c.Request.Context(), apptask.CreateTaskInput{
		ActorID:        userID,
		ProjectID:      req.ProjectID,
		Title:          req.Title,
		Description:    req.Description,
		Priority:       req.Priority,
		AssigneeID:     req.AssigneeID,
		DueDate:        req.DueDate,
		EstimatedHours: decimal.NewFromFloat(req.EstimatedHours),
		Tags:           req.Tags,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newTaskResponse(*info))
}

// List returns tasks in projects visible to the caller
func (h *TaskHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	req := ListTasksRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	input := apptask.ListTasksInput{
		ActorID:  userID,
		Status:   req.Status,
		Priority: req.Priority,
		Keyword:  req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.ProjectID != "" {
		id, err := uuid.Parse(req.ProjectID)
		if err != nil {
			h.BadRequest(c, "Invalid project ID")
			return
		}
		input.ProjectID = &id
	}
	if req.AssigneeID != "" {
		id, err := uuid.Parse(req.AssigneeID)
		if err != nil {
			h.BadRequest(c, "Invalid assignee ID")
			return
		}
		input.AssigneeID = &id
	}

	tasks, total, err := h.taskService.ListTasks(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = newTaskResponse(t)
	}
	h.SuccessWithMeta(c, responses, total, req.Page, req.PageSize)
}

// GetByID returns a single visible task
func (h *TaskHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	info, err := h.taskService.GetTask(c.Request.Context(), apptask.GetTaskInput{
		ActorID: userID,
		TaskID:  taskID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newTaskResponse(*info))
}

// Update applies partial updates to a task
func (h *TaskHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	input := apptask.UpdateTaskInput{
		ActorID:     userID,
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if req.ClearDueDate {
		input.SetDueDate = true
	} else if req.DueDate != nil {
		input.SetDueDate = true
		input.DueDate = req.DueDate
	}
	if req.EstimatedHours != nil {
		d := decimal.NewFromFloat(*req.EstimatedHours)
		input.EstimatedHours = &d
	}
	if req.ActualHours != nil {
		d := decimal.NewFromFloat(*req.ActualHours)
		input.ActualHours = &d
	}
	if req.Tags != nil {
		input.SetTags = true
		input.Tags = req.Tags
	}

	info, err := h.taskService.UpdateTask(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newTaskResponse(*info))
}

// UpdateStatus changes a task's status
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.taskService.UpdateStatus(c.Request.Context(), apptask.UpdateStatusInput{
		ActorID: userID,
		TaskID:  taskID,
		Status:  req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newTaskResponse(*info))
}

// Assign sets or clears a task's assignee
func (h *TaskHandler) Assign(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	var req AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.taskService.AssignTask(c.Request.Context(), apptask.AssignTaskInput{
		ActorID:    userID,
		TaskID:     taskID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newTaskResponse(*info))
}

// Archive soft-deletes a task
func (h *TaskHandler) Archive(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.taskService.ArchiveTask(c.Request.Context(), apptask.ArchiveTaskInput{
		ActorID: userID,
		TaskID:  taskID,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddComment adds a comment to a visible task
func (h *TaskHandler) AddComment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.taskService.AddComment(c.Request.Context(), apptask.AddCommentInput{
		ActorID: userID,
		TaskID:  taskID,
		Content: req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newCommentResponse(*info))
}

// ListComments returns a task's comments, oldest first
func (h *TaskHandler) ListComments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	comments, err := h.taskService.ListComments(c.Request.Context(), apptask.GetTaskInput{
		ActorID: userID,
		TaskID:  taskID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]CommentResponse, len(comments))
	for i, cm := range comments {
		responses[i] = newCommentResponse(cm)
	}
	h.Success(c, responses)
}

// Activity returns a task's audit trail
func (h *TaskHandler) Activity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	entries, err := h.taskService.TaskActivity(c.Request.Context(), apptask.GetTaskInput{
		ActorID: userID,
		TaskID:  taskID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newActivityResponses(entries))
}
