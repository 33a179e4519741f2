package tasks

const (
	queryListByOwner = `
		SELECT id, owner_id, title, details, team_members, date, time, is_completed, created_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	queryCreate = `
		INSERT INTO tasks (owner_id, title, details, team_members, date, time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, title, details, team_members, date, time, is_completed, created_at
	`

	queryFindByID = `
		SELECT id, owner_id, title, details, team_members, date, time, is_completed, created_at
		FROM tasks
		WHERE id = $1 AND owner_id = $2
	`

	queryUpdate = `
		UPDATE tasks
		SET title = $1, details = $2, team_members = $3, date = $4, time = $5
		WHERE id = $6 AND owner_id = $7
		RETURNING id, owner_id, title, details, team_members, date, time, is_completed, created_at
	`

	querySetCompleted = `
		UPDATE tasks
		SET is_completed = $1
		WHERE id = $2 AND owner_id = $3
		RETURNING id, owner_id, title, details, team_members, date, time, is_completed, created_at
	`

	queryDelete = `
		DELETE FROM tasks
		WHERE id = $1 AND owner_id = $2
	`
)
