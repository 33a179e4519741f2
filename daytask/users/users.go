package users

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts a new password-based account. Returns ErrDuplicateEmail when
// the email is already taken (case-insensitive).
func (r *Repository) Create(ctx context.Context, email, passwordHash, name string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryCreate, email, passwordHash, name, TypeEmail).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.ProfileImg,
		&user.UserType,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}

// finds a user by email, compared case-insensitively
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByEmail, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.ProfileImg,
		&user.UserType,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByID, id).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.ProfileImg,
		&user.UserType,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}

// updates a user's name, profile image and account-origin tag
func (r *Repository) UpdateProfile(ctx context.Context, id, name, profileImg, userType string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryUpdateProfile, name, profileImg, userType, id).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.ProfileImg,
		&user.UserType,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}

// replaces the stored credential hash for the account with that email
func (r *Repository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	var id string

	err := r.db.QueryRow(ctx, queryUpdatePassword, passwordHash, email).Scan(&id)
	if err != nil {
		return translateError(err)
	}

	return nil
}

// finds a user by email or creates one on first third-party login.
// An existing account is returned unchanged.
func (r *Repository) FindOrCreateByEmail(
	ctx context.Context,
	email, passwordHash, name, profileImg, userType string,
) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryFindOrCreateByEmail,
		email,
		passwordHash,
		name,
		profileImg,
		userType,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.ProfileImg,
		&user.UserType,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}
