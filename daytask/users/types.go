package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// account-origin tags
const (
	TypeEmail  = "email"
	TypeGoogle = "google"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a registered account
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Name       string    `json:"name"`
	ProfileImg string    `json:"profile_img"`
	UserType   string    `json:"user_type"`
	CreatedAt  time.Time `json:"created_at"`
}
