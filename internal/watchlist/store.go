// Package watchlist stores the user's local lists in SQLite and exposes
// them as a sync provider.
package watchlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/couchtv/pkg/provider"
)

// Entry is one item on one list.
type Entry struct {
	ID           string
	List         string
	Category     provider.ListCategory
	Provider     string
	URL          string
	Name         string
	Kind         provider.SearchKind
	PosterURL    string
	Year         *int
	EpisodeCount *int
	Score        *float64 // 0-10
	Plot         string
	AddedAt      time.Time
	UpdatedAt    time.Time
}

// Filter narrows List results. Zero fields match everything.
type Filter struct {
	List     *string
	Provider *string
}

// Store provides access to watchlist entries.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore creates a watchlist store. The watchlist_entries table must
// exist.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// mapSQLiteError converts SQLite errors to package errors.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	// modernc.org/sqlite only exposes constraint kinds through the message
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	if strings.Contains(msg, "CHECK constraint failed") {
		return ErrConstraint
	}
	return err
}

// Add inserts e, assigning ID, AddedAt and UpdatedAt. Adding the same
// provider url to the same list twice returns ErrDuplicate.
func (s *Store) Add(ctx context.Context, e *Entry) error {
	if strings.TrimSpace(e.List) == "" {
		return fmt.Errorf("add entry: empty list name: %w", ErrConstraint)
	}
	now := s.now().UTC()
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO watchlist_entries (id, list, category, provider, url, name, kind, poster_url,
			year, episode_count, score, plot, added_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, e.List, e.Category.String(), e.Provider, e.URL, e.Name, e.Kind.String(), e.PosterURL,
		e.Year, e.EpisodeCount, e.Score, e.Plot, now, now,
	)
	if err != nil {
		return fmt.Errorf("add entry %q to %s: %w", e.Name, e.List, mapSQLiteError(err))
	}
	e.ID = id
	e.AddedAt = now
	e.UpdatedAt = now
	return nil
}

const entryColumns = `id, list, category, provider, url, name, kind, poster_url,
	year, episode_count, score, plot, added_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var (
		e        Entry
		category string
		kind     string
		year     sql.NullInt64
		episodes sql.NullInt64
		score    sql.NullFloat64
	)
	err := row.Scan(&e.ID, &e.List, &category, &e.Provider, &e.URL, &e.Name, &kind, &e.PosterURL,
		&year, &episodes, &score, &e.Plot, &e.AddedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Category = provider.ParseListCategory(category)
	e.Kind = provider.ParseSearchKind(kind)
	if year.Valid {
		v := int(year.Int64)
		e.Year = &v
	}
	if episodes.Valid {
		v := int(episodes.Int64)
		e.EpisodeCount = &v
	}
	if score.Valid {
		v := score.Float64
		e.Score = &v
	}
	return &e, nil
}

// Get retrieves an entry by ID.
// Returns ErrNotFound if the entry does not exist.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM watchlist_entries WHERE id = ?", id)
	e, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("get entry %s: %w", id, mapSQLiteError(err))
	}
	return e, nil
}

// List returns matching entries in insertion order.
func (s *Store) List(ctx context.Context, f Filter) ([]*Entry, error) {
	var (
		conditions []string
		args       []any
	)
	if f.List != nil {
		conditions = append(conditions, "list = ?")
		args = append(args, *f.List)
	}
	if f.Provider != nil {
		conditions = append(conditions, "provider = ?")
		args = append(args, *f.Provider)
	}

	query := "SELECT " + entryColumns + " FROM watchlist_entries"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY added_at, rowid"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// SetScore records the user's rating for an entry. A nil score clears it.
func (s *Store) SetScore(ctx context.Context, id string, score *float64) error {
	return s.update(ctx, id, "score = ?", score)
}

// Move transfers an entry to another list.
func (s *Store) Move(ctx context.Context, id, list string, category provider.ListCategory) error {
	if strings.TrimSpace(list) == "" {
		return fmt.Errorf("move entry %s: empty list name: %w", id, ErrConstraint)
	}
	return s.update(ctx, id, "list = ?, category = ?", list, category.String())
}

func (s *Store) update(ctx context.Context, id, set string, args ...any) error {
	args = append(args, s.now().UTC(), id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE watchlist_entries SET "+set+", updated_at = ? WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update entry %s: %w", id, mapSQLiteError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update entry %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("update entry %s: %w", id, ErrNotFound)
	}
	return nil
}

// Remove deletes an entry.
// Returns ErrNotFound if the entry does not exist.
func (s *Store) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM watchlist_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("remove entry %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove entry %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("remove entry %s: %w", id, ErrNotFound)
	}
	return nil
}
