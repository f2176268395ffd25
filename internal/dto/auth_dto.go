package dto

import "github.com/google/uuid"

// LoginRequest authenticates a staff account
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	UserId      uuid.UUID `json:"user_id"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
}

// RegisterUserRequest creates a staff account (manager only)
type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=employee manager"`
}

// RegisterUserResponse after account creation
type RegisterUserResponse struct {
	Id uuid.UUID `json:"id"`
}
