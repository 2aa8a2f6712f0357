package rest

import "time"

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type credentialPatchRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=254"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

type profileRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=64"`
}

type profilePatchRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,min=1,max=64"`
}

type postRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required"`
}

type postPatchRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content"`
}

type sessionResponse struct {
	AuthID     string    `json:"auth_id"`
	UserID     *string   `json:"user_id,omitempty"`
	ValidUntil time.Time `json:"valid_until"`
}

type errorResponse struct {
	Error string `json:"error"`
}
