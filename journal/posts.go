package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type (
	Post struct {
		ID      int64
		Title   string
		Content string
		// CreatedAt is a display string, not a point in time.
		// The journal never sorts or filters on it.
		CreatedAt string
	}
)

// DisplayTimeLayout is the format used for the created_at column.
const DisplayTimeLayout = "Mon Jan 2 2006"

// CreatePost stores a new post stamped with the current date.
func (j *J) CreatePost(ctx context.Context, title, content string) (int64, error) {
	if !j.writeable {
		return 0, ReadOnlyJournal{}
	}
	if len(title) == 0 {
		return 0, MissingField{Field: "title"}
	}
	if len(content) == 0 {
		return 0, MissingField{Field: "content"}
	}
	res, err := j.db.ExecContext(ctx, `insert into posts(title, content, created_at) values (?, ?, ?)`,
		title, content, time.Now().Format(DisplayTimeLayout))
	if err != nil {
		return 0, fmt.Errorf("unable to store post in journal, cause %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("unable to read id of new post, cause %w", err)
	}
	return id, nil
}

func (j *J) GetPost(ctx context.Context, id int64) (Post, error) {
	var p Post
	err := j.db.QueryRowContext(ctx, `select post_id, title, content, created_at from posts where post_id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Post{}, PostNotFound{ID: id}
	} else if err != nil {
		return Post{}, fmt.Errorf("unable to load post %v from journal, cause %w", id, err)
	}
	return p, nil
}

// ListPosts returns all posts, newest first.
func (j *J) ListPosts(ctx context.Context) ([]Post, error) {
	rows, err := j.db.QueryContext(ctx, `select post_id, title, content, created_at from posts order by post_id desc`)
	if err != nil {
		return nil, fmt.Errorf("unable to list posts, cause %w", err)
	}
	defer rows.Close()
	var out []Post
	for rows.Next() {
		var p Post
		err = rows.Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unable to scan post to output, cause %v", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to list posts, cause %w", err)
	}
	return out, nil
}

// DeletePost removes the given post, returning PostNotFound when the id
// does not exist. Callers that only care about the post being gone may
// treat PostNotFound as success.
func (j *J) DeletePost(ctx context.Context, id int64) error {
	if !j.writeable {
		return ReadOnlyJournal{}
	}
	res, err := j.db.ExecContext(ctx, `delete from posts where post_id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete post %v, cause %w", id, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unable to confirm delete of post %v, cause %w", id, err)
	}
	if count == 0 {
		return PostNotFound{ID: id}
	}
	return nil
}
