// Package search provides the case-insensitive title search behind the
// "search videos" operation, backed by an in-memory SQLite database.
//
// WHY SQLITE FOR AN IN-PROCESS INDEX?
// modernc.org/sqlite is pure Go (no CGo), and an in-memory database costs a
// single open. Pushing the substring match into SQL keeps the Go side to one
// query, and if the catalog ever grows indexes and ranking live here, not in
// a hand-rolled scan. The DSN is always ":memory:" — nothing in this system
// survives a restart, so no file path is ever accepted.
package search

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Blank import registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// Index is the id+title catalog queried by search. It stores rows, not
// entities: resolving an id back to a live video is the caller's job, via
// the video registry.
type Index struct {
	conn *sql.DB
}

// Open creates the in-memory index and its schema.
func Open() (*Index, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("search: opening index: %w", err)
	}

	// An in-memory database evaporates if the pool closes its only
	// connection, so pin the pool to exactly one.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("search: pinging index: %w", err)
	}

	if _, err := conn.Exec(
		`CREATE TABLE IF NOT EXISTS videos (
			id      INTEGER PRIMARY KEY,
			title   TEXT NOT NULL,
			channel TEXT NOT NULL
		)`,
	); err != nil {
		conn.Close()
		return nil, fmt.Errorf("search: creating schema: %w", err)
	}

	return &Index{conn: conn}, nil
}

// Close releases the index. The data goes with it.
func (ix *Index) Close() error {
	return ix.conn.Close()
}

// Add registers a video's id and title. Ids are unique by construction, so
// a primary-key conflict here is a programming error and surfaces as one.
func (ix *Index) Add(ctx context.Context, id int64, title, channel string) error {
	_, err := ix.conn.ExecContext(ctx,
		`INSERT INTO videos (id, title, channel) VALUES (?, ?, ?)`,
		id, title, channel,
	)
	if err != nil {
		return fmt.Errorf("search: indexing video %d: %w", id, err)
	}
	return nil
}

// Search returns the ids of videos whose title contains the query,
// case-insensitively, in ascending id order. An empty query matches every
// video, same as an empty needle matches every title.
//
// instr() rather than LIKE: the query is user input, and LIKE would treat
// "%" and "_" in it as wildcards.
func (ix *Index) Search(ctx context.Context, query string) ([]int64, error) {
	query = strings.ToLower(query)

	var (
		rows *sql.Rows
		err  error
	)
	if query == "" {
		rows, err = ix.conn.QueryContext(ctx, `SELECT id FROM videos ORDER BY id`)
	} else {
		rows, err = ix.conn.QueryContext(ctx,
			`SELECT id FROM videos WHERE instr(lower(title), ?) > 0 ORDER BY id`,
			query,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("search: querying %q: %w", query, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("search: scanning row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search: reading rows: %w", err)
	}
	return ids, nil
}
