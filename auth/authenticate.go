package auth

import (
	"context"
	"errors"

	"github.com/gatepost/gatepost/journal"
)

// ErrInvalidCredentials is the only failure the boundary sees for bad
// logins. Unknown usernames and wrong passwords are indistinguishable so
// the login form cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Authenticate resolves username+password to a user id. Journal failures
// other than a missing user propagate unchanged.
func Authenticate(ctx context.Context, store *journal.J, username, password string) (int64, error) {
	user, err := store.LookupUser(ctx, username)
	if err != nil {
		var notFound journal.UserNotFound
		if errors.As(err, &notFound) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return 0, ErrInvalidCredentials
	}
	return user.ID, nil
}
