package auth

import (
	user "github.com/rkhatri/vastra-backend/internal/users"
)

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the credential payload for session creation.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the freshly minted tokens and the public profile.
type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *user.UserDTO `json:"user"`
}

// VerifyEmailRequest carries the one-time verification token.
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// ForgotPasswordRequest asks for a reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest redeems a reset token for a new password.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is the introspection payload for an authenticated request.
type SessionResponse struct {
	User *user.UserDTO `json:"user"`
}
