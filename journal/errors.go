package journal

import "fmt"

type (
	// MissingField indicates a required field was empty on a create call.
	MissingField struct {
		Field string
	}

	// DuplicateUsername indicates the username is already taken.
	DuplicateUsername struct {
		Username string
	}

	UserNotFound struct {
		Username string
	}

	PostNotFound struct {
		ID int64
	}

	ReadOnlyJournal struct{}
)

func (m MissingField) Error() string {
	return fmt.Sprintf("required field %v is missing or empty", m.Field)
}

func (d DuplicateUsername) Error() string {
	return fmt.Sprintf("username %v is already registered", d.Username)
}

func (u UserNotFound) Error() string {
	return fmt.Sprintf("user %v not found", u.Username)
}

func (p PostNotFound) Error() string {
	return fmt.Sprintf("post %v not found", p.ID)
}

func (ReadOnlyJournal) Error() string {
	return "journal is open in read-only mode"
}
