/*
Package sqlite persists operator-defined holidays in SQLite.

PURPOSE:
  The rule tables in package calendar cover statutory bank holidays. Company
  shutdown days, regional one-offs, and corrections are stored here and merged
  in by calendar.Layered through the calendar.Source interface.

KEY TABLES:
  holidays: id, region ('' = every region), date, name, recurring, created_at

RECURRING HOLIDAYS:
  A recurring row matches its month/day in every year. A non-recurring row
  only matches its own year.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. SQLite is opened in WAL mode so
  readers do not block each other.

USAGE:
  store, err := sqlite.New("./data/holidays.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  provider := calendar.NewLayered(calendar.NewStatic(), logger, store)

SEE ALSO:
  - calendar/provider.go: Source interface and Layered provider
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/generic"
)

// Store implements calendar.Source using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ calendar.Source = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Each new connection to ":memory:" would get its own empty database.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		region TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		name TEXT NOT NULL,
		recurring BOOLEAN DEFAULT FALSE,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_holidays_region_date
		ON holidays(region, date);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_unique
		ON holidays(region, date, name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record is a stored holiday row.
type Record struct {
	ID        string
	Region    string // resolved region code, or "" for every region
	Date      generic.TimePoint
	Name      string
	Recurring bool
	CreatedAt time.Time
}

// =============================================================================
// HOLIDAY CRUD
// =============================================================================

// SaveHoliday inserts a holiday and returns its ID. Saving the same
// (region, date, name) again only updates the recurring flag and returns the
// existing ID.
func (s *Store) SaveHoliday(ctx context.Context, r Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO holidays (id, region, date, name, recurring, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(region, date, name) DO UPDATE SET
			recurring = excluded.recurring
		RETURNING id
	`

	var id string
	err := s.db.QueryRowContext(ctx, query,
		r.ID,
		r.Region,
		r.Date.String(),
		r.Name,
		r.Recurring,
		time.Now().UTC().Format(time.RFC3339),
	).Scan(&id)
	return id, err
}

// DeleteHoliday deletes a holiday by ID.
func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM holidays WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, generic.ErrHolidayNotFound)
	}
	return nil
}

// ListHolidays returns every stored holiday for a region, including
// holidays stored for all regions.
func (s *Store) ListHolidays(ctx context.Context, region string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, region, date, name, recurring, created_at
		FROM holidays
		WHERE region = ? OR region = ''
		ORDER BY date ASC, name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, region)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var dateStr, createdStr string
		if err := rows.Scan(&r.ID, &r.Region, &dateStr, &r.Name, &r.Recurring, &createdStr); err != nil {
			return nil, err
		}
		if r.Date, err = generic.ParseDate(dateStr); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		records = append(records, r)
	}
	return records, rows.Err()
}

// =============================================================================
// CALENDAR SOURCE
// =============================================================================

// CustomHolidays returns the stored holidays that fall in year for region.
func (s *Store) CustomHolidays(year int, region string) ([]calendar.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, region, date, name, recurring
		FROM holidays
		WHERE (region = ? OR region = '')
		  AND (recurring = TRUE OR strftime('%Y', date) = ?)
		ORDER BY date ASC
	`

	rows, err := s.db.Query(query, region, strconv.Itoa(year))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var (
			h         calendar.Holiday
			dateStr   string
			recurring bool
		)
		if err := rows.Scan(&h.ID, &h.Region, &dateStr, &h.Name, &recurring); err != nil {
			return nil, err
		}
		d, err := generic.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		if recurring {
			d = generic.NewTimePoint(year, d.Month(), d.Day())
		}
		h.Date = d
		h.Custom = true
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
