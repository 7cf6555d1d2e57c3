package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type (
	// J is the journal: a single sqlite file holding the user records
	// and the blog posts. Mutations require a journal opened read-write.
	J struct {
		db        *sql.DB
		writeable bool
	}
)

func openJournalDatabase(ctx context.Context, dir string, readwrite bool) (*sql.DB, error) {
	file := filepath.Join(dir, "journal.db")
	if readwrite {
		err := os.MkdirAll(filepath.Dir(file), 0755)
		if err != nil {
			return nil, fmt.Errorf("unable to create directory %v to store journal, cause %w", dir, err)
		}
	}
	var connstr string
	if readwrite {
		connstr = fmt.Sprintf("file:%v?_writable_schema=false&_journal=wal&_fk=true&mode=rwc", file)
	} else {
		connstr = fmt.Sprintf("file:%v?_writable_schema=false&mode=r", file)
	}
	conn, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("unable to open %v, cause %v", file, err)
	}
	err = conn.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to ping journal %v, cause %v", file, err)
	}
	return conn, nil
}

// LoadJournal opens the journal stored in dir, creating the directory and
// the schema when readwrite is set.
func LoadJournal(ctx context.Context, dir string, readwrite bool) (*J, error) {
	conn, err := openJournalDatabase(ctx, dir, readwrite)
	if err != nil {
		return nil, err
	}
	j := &J{db: conn, writeable: readwrite}
	if readwrite {
		err = j.init(ctx)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("unable to init journal %v, cause %v", dir, err)
		}
	}
	return j, nil
}

func (j *J) init(ctx context.Context) error {
	_, err := j.db.ExecContext(ctx, `create table if not exists users(
		user_id integer primary key autoincrement,
		username text not null unique,
		username_hash64 integer not null,
		password_hash text not null,
		last_activity timestamp)`)
	if err != nil {
		return fmt.Errorf("unable to create users table, cause %w", err)
	}
	_, err = j.db.ExecContext(ctx, `create index if not exists idx_users_hash64 on users(username_hash64)`)
	if err != nil {
		return fmt.Errorf("unable to index users table, cause %w", err)
	}
	_, err = j.db.ExecContext(ctx, `create table if not exists posts(
		post_id integer primary key autoincrement,
		title text not null,
		content text not null,
		created_at text not null)`)
	if err != nil {
		return fmt.Errorf("unable to create posts table, cause %w", err)
	}
	return nil
}

// Writeable indicates if mutations are allowed on this journal.
func (j *J) Writeable() bool { return j.writeable }

func (j *J) Close() error {
	return j.db.Close()
}
