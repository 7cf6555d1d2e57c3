package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/mattn/go-sqlite3"
)

type (
	User struct {
		ID           int64
		Username     string
		PasswordHash string
		LastActivity sql.NullTime
	}
)

// username lookups always go through the hash64 column,
// the text comparison only disambiguates collisions.
func usernameHash64(username string) int64 {
	return int64(xxhash.Sum64String(username))
}

// CreateUser stores a new user record. passwordHash must already be the
// output of the password hasher, CreateUser never sees plaintext.
func (j *J) CreateUser(ctx context.Context, username string, passwordHash string) (int64, error) {
	if !j.writeable {
		return 0, ReadOnlyJournal{}
	}
	if len(username) == 0 {
		return 0, MissingField{Field: "username"}
	}
	if len(passwordHash) == 0 {
		return 0, MissingField{Field: "password"}
	}
	res, err := j.db.ExecContext(ctx, `insert into users(username, username_hash64, password_hash) values (?, ?, ?)`,
		username, usernameHash64(username), passwordHash)
	if err != nil {
		var sqlite3Err sqlite3.Error
		if errors.As(err, &sqlite3Err) && sqlite3Err.Code == sqlite3.ErrConstraint {
			return 0, DuplicateUsername{Username: username}
		}
		return 0, fmt.Errorf("unable to store user %v in journal, cause %w", username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("unable to read id of user %v, cause %w", username, err)
	}
	return id, nil
}

// LookupUser finds a user by exact username match.
func (j *J) LookupUser(ctx context.Context, username string) (User, error) {
	var u User
	err := j.db.QueryRowContext(ctx, `select user_id, username, password_hash, last_activity from users where username_hash64 = ? and username = ?`,
		usernameHash64(username), username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.LastActivity)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, UserNotFound{Username: username}
	} else if err != nil {
		return User{}, fmt.Errorf("unable to load user %v from journal, cause %w", username, err)
	}
	return u, nil
}

// TouchUser records the last activity of the given user.
func (j *J) TouchUser(ctx context.Context, id int64) error {
	if !j.writeable {
		return ReadOnlyJournal{}
	}
	_, err := j.db.ExecContext(ctx, `update users set last_activity = ? where user_id = ?`, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("unable to touch user %v, cause %w", id, err)
	}
	return nil
}
