package users

const (
	queryCreate = `
		INSERT INTO users (email, password, name, user_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, password, name, profile_img, user_type, created_at
	`

	queryFindByEmail = `
		SELECT id, email, password, name, profile_img, user_type, created_at
		FROM users
		WHERE lower(email) = lower($1)
	`

	queryFindByID = `
		SELECT id, email, password, name, profile_img, user_type, created_at
		FROM users
		WHERE id = $1
	`

	queryUpdateProfile = `
		UPDATE users
		SET name = $1, profile_img = $2, user_type = $3
		WHERE id = $4
		RETURNING id, email, password, name, profile_img, user_type, created_at
	`

	queryUpdatePassword = `
		UPDATE users
		SET password = $1
		WHERE lower(email) = lower($2)
		RETURNING id
	`

	queryFindOrCreateByEmail = `
		INSERT INTO users (email, password, name, profile_img, user_type)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (lower(email))
		DO UPDATE SET email = users.email
		RETURNING id, email, password, name, profile_img, user_type, created_at
	`
)
