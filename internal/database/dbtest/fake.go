// Package dbtest provides an in-memory database.DB for tests.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"career-compass/internal/database"
)

// Exec is one recorded statement.
type Exec struct {
	Query string
	Args  []any
}

// FakeDB answers Query with canned rows picked by the first registered
// substring found in the statement, and records every Exec.
type FakeDB struct {
	mu sync.Mutex

	results []result
	// ExecErr, when set, fails the Exec whose query contains the key.
	ExecErr map[string]error
	// QueryErr, when set, fails the Query whose query contains the key.
	QueryErr map[string]error

	Execs      []Exec
	Committed  bool
	RolledBack bool
	Closed     bool
}

type result struct {
	match string
	rows  [][]any
}

// On registers rows returned for any query containing match.
func (f *FakeDB) On(match string, rows ...[]any) *FakeDB {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, result{match: match, rows: rows})
	return f
}

func (f *FakeDB) Ping(context.Context) error { return nil }

func (f *FakeDB) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return nil
}

func (f *FakeDB) SQLDB() *sql.DB { return nil }

func (f *FakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, err := range f.ExecErr {
		if strings.Contains(query, k) {
			return 0, err
		}
	}
	f.Execs = append(f.Execs, Exec{Query: query, Args: args})
	return 1, nil
}

func (f *FakeDB) Query(_ context.Context, query string, _ ...any) (database.Rows, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, err := range f.QueryErr {
		if strings.Contains(query, k) {
			return nil, err
		}
	}
	for _, r := range f.results {
		if strings.Contains(query, r.match) {
			return &Rows{data: r.rows}, nil
		}
	}
	return &Rows{}, nil
}

func (f *FakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	rows, err := f.Query(ctx, query, args...)
	if err != nil {
		return errRow{err}
	}
	if !rows.Next() {
		return errRow{sql.ErrNoRows}
	}
	return rows
}

func (f *FakeDB) Begin(context.Context) (database.Tx, error) {
	return &tx{db: f}, nil
}

// ExecsMatching returns the recorded statements containing match.
func (f *FakeDB) ExecsMatching(match string) []Exec {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Exec
	for _, e := range f.Execs {
		if strings.Contains(e.Query, match) {
			out = append(out, e)
		}
	}
	return out
}

type tx struct {
	db   *FakeDB
	done bool
}

func (t *tx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return t.db.Exec(ctx, query, args...)
}

func (t *tx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, query, args...)
}

func (t *tx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.db.QueryRow(ctx, query, args...)
}

func (t *tx) Commit(context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	t.done = true
	t.db.Committed = true
	return nil
}

func (t *tx) Rollback(context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true
	t.db.RolledBack = true
	return nil
}

// Rows iterates canned values, assigning them to Scan destinations by reflection.
type Rows struct {
	data [][]any
	idx  int
}

func (r *Rows) Close() {}

func (r *Rows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *Rows) Err() error { return nil }

func (r *Rows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.data) {
		return fmt.Errorf("scan called without a current row")
	}
	row := r.data[r.idx-1]
	if len(row) != len(dest) {
		return fmt.Errorf("scan: row has %d values, got %d destinations", len(row), len(dest))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("scan: destination %d is not a pointer", i)
		}
		sv := reflect.ValueOf(row[i])
		if !sv.Type().AssignableTo(dv.Elem().Type()) {
			return fmt.Errorf("scan: cannot assign %T to %s", row[i], dv.Elem().Type())
		}
		dv.Elem().Set(sv)
	}
	return nil
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
