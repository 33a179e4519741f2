package tasks

import (
	"context"
	"errors"
	"net/http"

	"github.com/daytask/server/daytask/tasks"
	"github.com/daytask/server/internal/auth"
	apierrors "github.com/daytask/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// the subset of the task directory the handlers need
type TaskStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]tasks.Task, error)
	Create(ctx context.Context, ownerID string, params tasks.TaskParams) (*tasks.Task, error)
	FindByID(ctx context.Context, id, ownerID string) (*tasks.Task, error)
	Update(ctx context.Context, id, ownerID string, params tasks.TaskParams) (*tasks.Task, error)
	SetCompleted(ctx context.Context, id, ownerID string, completed bool) (*tasks.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// MyTasksHandler godoc
// @Summary List my tasks
// @Description Return all tasks owned by the authenticated user, newest first
// @Tags tasks
// @Produce json
// @Success 200 {object} TasksResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/tasks/my [get]
// @Security BearerAuth
func MyTasksHandler(store TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := auth.UserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		owned, err := store.ListByOwner(c.Request.Context(), ownerID)
		if err != nil {
			apierrors.InternalError(c, "failed to list tasks", err)
			return
		}

		c.JSON(http.StatusOK, TasksResponse{Tasks: owned})
	}
}

// CreateTaskHandler godoc
// @Summary Create a task
// @Description Create a task owned by the authenticated user
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body TaskRequest true "New task"
// @Success 201 {object} TaskResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/tasks/create [post]
// @Security BearerAuth
func CreateTaskHandler(store TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := auth.UserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		var req TaskRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		task, err := store.Create(c.Request.Context(), ownerID, taskParams(req))
		if err != nil {
			apierrors.InternalError(c, "failed to create task", err)
			return
		}

		c.JSON(http.StatusCreated, TaskResponse{Task: task})
	}
}

// GetTaskHandler godoc
// @Summary Get a task
// @Description Return a single owned task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} TaskResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/tasks/{id} [get]
// @Security BearerAuth
func GetTaskHandler(store TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := auth.UserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		id, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		task, err := store.FindByID(c.Request.Context(), id, ownerID)
		if err != nil {
			respondTaskError(c, err, "failed to fetch task")
			return
		}

		c.JSON(http.StatusOK, TaskResponse{Task: task})
	}
}

// UpdateTaskHandler godoc
// @Summary Update a task
// @Description Replace the editable fields of an owned task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body TaskRequest true "Task update"
// @Success 200 {object} TaskResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/tasks/{id} [put]
// @Security BearerAuth
func UpdateTaskHandler(store TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := auth.UserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		id, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req TaskRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		task, err := store.Update(c.Request.Context(), id, ownerID, taskParams(req))
		if err != nil {
			respondTaskError(c, err, "failed to update task")
			return
		}

		c.JSON(http.StatusOK, TaskResponse{Task: task})
	}
}

// CompleteTaskHandler godoc
// @Summary Set task completion
// @Description Mark an owned task completed or not
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body CompleteRequest true "Completion flag"
// @Success 200 {object} TaskResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/tasks/{id}/complete [patch]
// @Security BearerAuth
func CompleteTaskHandler(store TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := auth.UserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		id, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req CompleteRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		task, err := store.SetCompleted(c.Request.Context(), id, ownerID, *req.IsCompleted)
		if err != nil {
			respondTaskError(c, err, "failed to update task")
			return
		}

		c.JSON(http.StatusOK, TaskResponse{Task: task})
	}
}

// DeleteTaskHandler godoc
// @Summary Delete a task
// @Description Delete an owned task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204 {string} string "No Content"
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/tasks/{id} [delete]
// @Security BearerAuth
func DeleteTaskHandler(store TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := auth.UserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		id, ok := apierrors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		if err := store.Delete(c.Request.Context(), id, ownerID); err != nil {
			respondTaskError(c, err, "failed to delete task")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func taskParams(req TaskRequest) tasks.TaskParams {
	members := req.TeamMembers
	if members == nil {
		members = []string{}
	}

	return tasks.TaskParams{
		Title:       req.Title,
		Details:     req.Details,
		TeamMembers: members,
		Date:        req.Date,
		Time:        req.Time,
	}
}

// ownership mismatches surface as not found, never as forbidden
func respondTaskError(c *gin.Context, err error, message string) {
	if errors.Is(err, tasks.ErrNotFound) {
		apierrors.NotFound(c, "task")
		return
	}

	apierrors.InternalError(c, message, err)
}
