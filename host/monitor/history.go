package monitor

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS samples (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	at INTEGER NOT NULL, -- unix milliseconds
	hz INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS samples_at ON samples(at);
`

// History is the sqlite store of received frequency reports.
type History struct {
	db *sql.DB
}

// Stats summarises the stored samples for one window.
type Stats struct {
	Count int64
	MinHz uint16
	MaxHz uint16
	AvgHz float64
}

// OpenHistory opens (and if needed creates) the store at path.
func OpenHistory(path string) (*History, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	// SQLite prefers a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	if _, err := db.Exec(historySchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: migrate: %w", err)
	}
	return &History{db: db}, nil
}

func (h *History) Close() error {
	if h == nil || h.db == nil {
		return nil
	}
	return h.db.Close()
}

// Record stores one report.
func (h *History) Record(ctx context.Context, at time.Time, hz uint16) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO samples(at, hz) VALUES(?, ?)`, at.UnixMilli(), hz)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Prune removes samples older than keep and reports how many went.
func (h *History) Prune(ctx context.Context, keep time.Duration) (int64, error) {
	cutoff := time.Now().Add(-keep).UnixMilli()
	res, err := h.db.ExecContext(ctx, `DELETE FROM samples WHERE at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("history: prune: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("history: prune: %w", err)
	}
	return n, nil
}

// StatsSince summarises the samples received at or after since.
func (h *History) StatsSince(ctx context.Context, since time.Time) (Stats, error) {
	var s Stats
	var min, max, avg sql.NullFloat64
	err := h.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MIN(hz), MAX(hz), AVG(hz) FROM samples WHERE at >= ?`,
		since.UnixMilli(),
	).Scan(&s.Count, &min, &max, &avg)
	if err != nil {
		return Stats{}, fmt.Errorf("history: stats: %w", err)
	}
	if min.Valid {
		s.MinHz = uint16(min.Float64)
	}
	if max.Valid {
		s.MaxHz = uint16(max.Float64)
	}
	if avg.Valid {
		s.AvgHz = avg.Float64
	}
	return s, nil
}
