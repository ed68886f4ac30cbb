package accounts

import (
	"strings"
	"time"
)

// Kind discriminates the two account roles
type Kind string

const (
	// KindStudent is a student account
	KindStudent Kind = "student"
	// KindTeacher is a teacher account
	KindTeacher Kind = "teacher"
)

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	return k == KindStudent || k == KindTeacher
}

// Account represents a registered identity record
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Kind     Kind   `json:"type"`

	// Role-specific attributes: Grade for students, Subject for teachers
	Grade   string `json:"grade,omitempty"`
	Subject string `json:"subject,omitempty"`

	School string `json:"school,omitempty"`
	State  string `json:"state,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// EmailEquals compares an email to the account's, case-insensitively
func (a *Account) EmailEquals(email string) bool {
	return strings.EqualFold(a.Email, email)
}

// Source represents a persisted source of directory data
type Source interface {
	// LoadAll loads every account in directory order. A source that has
	// never been written returns an empty slice, not an error.
	LoadAll() ([]Account, error)

	// SaveAll replaces the persisted directory with the given accounts
	SaveAll(accounts []Account) error
}
