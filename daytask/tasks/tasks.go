package tasks

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// no task matched the id for that owner. Ownership mismatches surface
// as this error too, so callers cannot probe other users' tasks.
var ErrNotFound = errors.New("task not found")

// creates a new task repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// lists all tasks owned by the user, newest first
func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]Task, error) {
	rows, err := r.db.Query(ctx, queryListByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []Task{}

	for rows.Next() {
		var task Task

		if err := rows.Scan(
			&task.ID,
			&task.OwnerID,
			&task.Title,
			&task.Details,
			&task.TeamMembers,
			&task.Date,
			&task.Time,
			&task.IsCompleted,
			&task.CreatedAt,
		); err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// inserts a new task for the owner
func (r *Repository) Create(ctx context.Context, ownerID string, params TaskParams) (*Task, error) {
	return r.scanOne(r.db.QueryRow(
		ctx,
		queryCreate,
		ownerID,
		params.Title,
		params.Details,
		params.TeamMembers,
		params.Date,
		params.Time,
	))
}

// finds a task by id, scoped to its owner
func (r *Repository) FindByID(ctx context.Context, id, ownerID string) (*Task, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByID, id, ownerID))
}

// replaces the editable fields of an owned task
func (r *Repository) Update(ctx context.Context, id, ownerID string, params TaskParams) (*Task, error) {
	return r.scanOne(r.db.QueryRow(
		ctx,
		queryUpdate,
		params.Title,
		params.Details,
		params.TeamMembers,
		params.Date,
		params.Time,
		id,
		ownerID,
	))
}

// marks an owned task completed or not
func (r *Repository) SetCompleted(ctx context.Context, id, ownerID string, completed bool) (*Task, error) {
	return r.scanOne(r.db.QueryRow(ctx, querySetCompleted, completed, id, ownerID))
}

// deletes an owned task
func (r *Repository) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, id, ownerID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*Task, error) {
	var task Task

	err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Details,
		&task.TeamMembers,
		&task.Date,
		&task.Time,
		&task.IsCompleted,
		&task.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &task, nil
}
