package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidPassword = errors.New("invalid password")

// ErrUpstream marks any failure talking to the completion provider. The
// wrapped cause carries provider detail and must never reach an API response.
var ErrUpstream = errors.New("completion upstream failure")

// SearchEntry is one appended record in a user's search history.
// Entries are immutable once written.
type SearchEntry struct {
	Query     string    `json:"query" bson:"query"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// User models a registered account. Phone is the primary login identifier
// and is unique across users; email is optional and sparse-unique.
type User struct {
	ID            string        `json:"id"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email,omitempty"`
	PasswordHash  string        `json:"-"`
	CreatedAt     time.Time     `json:"created_at"`
	SearchHistory []SearchEntry `json:"search_history,omitempty"`
}
