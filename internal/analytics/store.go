// Package analytics records privacy-conscious visit and interaction counts
// for the admin dashboard. IP addresses and session ids are only ever stored
// as salted hashes, and rows older than the retention window are removed.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/guna-thota/portfolio/internal/pipeline"
)

// Retention is how long visitor rows are kept.
const Retention = 365 * 24 * time.Hour

const timeLayout = "2006-01-02 15:04:05"

type Kind string

const (
	KindSelectStage      Kind = "select_stage"
	KindToggleMode       Kind = "toggle_mode"
	KindSetMode          Kind = "set_mode"
	KindOpenArchitecture Kind = "open_architecture"
	KindCopyEmail        Kind = "copy_email"
	KindContact          Kind = "contact"
)

type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type StageCount struct {
	Stage string `json:"stage"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type Stats struct {
	TotalVisitors     int64            `json:"total_visitors"`
	UniqueVisitors    int64            `json:"unique_visitors"`
	VisitorsToday     int64            `json:"visitors_today"`
	VisitorsThisWeek  int64            `json:"visitors_this_week"`
	TotalInteractions int64            `json:"total_interactions"`
	ByKind            map[string]int64 `json:"by_kind"`
	StageSelections   []StageCount     `json:"stage_selections"`
	DetailModeViews   int64            `json:"detail_mode_views"`
	RecentVisitors    []Visitor        `json:"recent_visitors"`
}

type Store struct {
	db   *sql.DB
	salt string
	log  *zap.Logger
	now  func() time.Time
}

// Open creates or migrates the database at path.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening analytics db: %w", err)
	}
	// One writer at a time; sqlite serializes writes anyway.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s := &Store{db: db, salt: randomHex(32), log: log, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,
			user_agent TEXT,
			path TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_visitors_created_at ON visitors(created_at)`,
		`CREATE TABLE IF NOT EXISTS interactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_session TEXT NOT NULL,
			kind TEXT NOT NULL,
			stage TEXT,
			mode TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_kind ON interactions(kind)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrating analytics db: %w", err)
		}
	}
	return nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Hash returns a salted, truncated digest of v. The salt lives only in
// memory, so hashes cannot be linked across restarts.
func (s *Store) Hash(v string) string {
	sum := sha256.Sum256([]byte(v + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Store) stamp(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, created_at) VALUES (?, ?, ?, ?)`,
		s.Hash(ip), userAgent, path, s.stamp(s.now()))
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// RecordInteraction stores one user action together with the view state it
// produced.
func (s *Store) RecordInteraction(ctx context.Context, sessionID string, kind Kind, v pipeline.ViewState) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO interactions (hashed_session, kind, stage, mode, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.Hash(sessionID), string(kind), v.Stage.ID(), v.Mode.ID(), s.stamp(s.now()))
	if err != nil {
		return fmt.Errorf("recording interaction: %w", err)
	}
	return nil
}

// Cleanup deletes rows older than Retention and returns how many went.
func (s *Store) Cleanup(ctx context.Context) (int64, error) {
	cutoff := s.stamp(s.now().Add(-Retention))

	var total int64
	for _, table := range []string{"visitors", "interactions"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE created_at < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("cleaning %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	if total > 0 {
		s.log.Info("privacy cleanup removed old rows", zap.Int64("rows", total))
	}
	return total, nil
}

// Stats aggregates everything the admin dashboard shows.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	startOfDay := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)

	stats := &Stats{ByKind: map[string]int64{}}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{s.stamp(startOfDay)}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{s.stamp(now.Add(-7 * 24 * time.Hour))}},
		{&stats.TotalInteractions, `SELECT COUNT(*) FROM interactions`, nil},
		{&stats.DetailModeViews, `SELECT COUNT(*) FROM interactions WHERE mode = ?`, []any{pipeline.ModeDetail.ID()}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("loading stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM interactions GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("loading interaction counts: %w", err)
	}
	for rows.Next() {
		var kind string
		var n int64
		if err := rows.Scan(&kind, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning interaction count: %w", err)
		}
		stats.ByKind[kind] = n
	}
	rows.Close()

	perStage := map[string]int64{}
	rows, err = s.db.QueryContext(ctx,
		`SELECT stage, COUNT(*) FROM interactions WHERE kind = ? GROUP BY stage`, string(KindSelectStage))
	if err != nil {
		return nil, fmt.Errorf("loading stage counts: %w", err)
	}
	for rows.Next() {
		var stage string
		var n int64
		if err := rows.Scan(&stage, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning stage count: %w", err)
		}
		perStage[stage] = n
	}
	rows.Close()
	for _, st := range pipeline.Stages() {
		stats.StageSelections = append(stats.StageSelections, StageCount{
			Stage: st.ID(),
			Label: st.Label(),
			Count: perStage[st.ID()],
		})
	}

	stats.RecentVisitors, err = s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), created_at
		FROM visitors
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("loading visitors: %w", err)
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		var ts string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		v.Timestamp, _ = time.Parse(timeLayout, ts)
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}
