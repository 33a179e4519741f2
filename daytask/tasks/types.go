package tasks

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles task database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a scheduled task owned by a user
type Task struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Details     string    `json:"details"`
	TeamMembers []string  `json:"team_members"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// fields a client may set when creating or updating a task
type TaskParams struct {
	Title       string
	Details     string
	TeamMembers []string
	Date        string
	Time        string
}
