package tasks

import "github.com/daytask/server/daytask/tasks"

// TaskRequest carries the client-editable task fields
type TaskRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Details     string   `json:"details" binding:"required"`
	TeamMembers []string `json:"team_members"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time" binding:"required"`
}

// CompleteRequest toggles a task's completion flag
type CompleteRequest struct {
	IsCompleted *bool `json:"is_completed" binding:"required"`
}

// TaskResponse wraps a single task
type TaskResponse struct {
	Task *tasks.Task `json:"task"`
}

// TasksResponse wraps a task list
type TasksResponse struct {
	Tasks []tasks.Task `json:"tasks"`
}
