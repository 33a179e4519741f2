package users

import "github.com/daytask/server/daytask/users"

// UserResponse wraps user data
type UserResponse struct {
	User *users.User `json:"user"`
}

// EditUserRequest for updating the acting user's profile
type EditUserRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	ProfileImg string `json:"profile_img" binding:"max=500"`
	UserType   string `json:"user_type" binding:"required,max=32"`
}
