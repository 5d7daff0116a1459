package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// Presence checks only: anything beyond `required` is out of contract.

type signupRequest struct {
	Phone    string `json:"phone"    validate:"required"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type signupResponse struct {
	Success bool `json:"success"`
}

type loginRequest struct {
	LoginInput string `json:"loginInput" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
}

type searchRequest struct {
	Query  string `json:"query"  validate:"required"`
	UserID string `json:"userId"`
}

type searchResponse struct {
	Response string `json:"response"`
}

type historyEntryResponse struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
}

type historyResponse struct {
	History []historyEntryResponse `json:"history"`
}
