package response

import "github.com/linskybing/grant-tracker/internal/domain/user"

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries one message per offending field.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  user.UserDTO `json:"user"`
}
