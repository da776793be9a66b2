package trace

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store persists recorded sessions in a local SQLite database so live demo
// runs can be replayed and diffed later
type Store struct {
	db *sql.DB
}

// OpenStore opens (and if needed creates) the database at path
func OpenStore(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// Single writer keeps sample appends strictly ordered
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// SessionInfo is a summary row for listing recorded sessions
type SessionInfo struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	Viewport  float64
	Samples   int
}

// CreateSession registers a new recording and returns its identifier
func (s *Store) CreateSession(ctx context.Context, name string, viewport float64, cfg ConfigSpec) (uuid.UUID, error) {
	id := uuid.New()
	hasContainer := 0
	if cfg.HasContainer {
		hasContainer = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, name, viewport, offset_top, overflow, has_container)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), name, viewport, cfg.OffsetTop, cfg.Overflow.String(), hasContainer)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

// AppendSample stores one measured cycle under a session
func (s *Store) AppendSample(ctx context.Context, id uuid.UUID, seq int, sample Sample) error {
	st, sb, sh := rectColumns(sample.Sticky)
	ct, cb, ch := rectColumns(sample.Container)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO samples (session_id, seq, y,
		                      sticky_top, sticky_bottom, sticky_height,
		                      container_top, container_bottom, container_height)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), seq, sample.Y, st, sb, sh, ct, cb, ch)
	if err != nil {
		return fmt.Errorf("append sample %d: %w", seq, err)
	}
	return nil
}

// rectColumns maps an absent rect to NULL columns
func rectColumns(r *RectSpec) (top, bottom, height any) {
	if r == nil {
		return nil, nil, nil
	}
	return r.Top, r.Bottom, r.Height
}

// Sessions lists recorded sessions, newest first
func (s *Store) Sessions(ctx context.Context) ([]SessionInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.name, s.created_at, s.viewport, COUNT(p.seq)
		 FROM sessions s LEFT JOIN samples p ON p.session_id = s.id
		 GROUP BY s.id ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionInfo
	for rows.Next() {
		var info SessionInfo
		var id, created string
		if err := rows.Scan(&id, &info.Name, &created, &info.Viewport, &info.Samples); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if info.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("session id %q: %w", id, err)
		}
		if info.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("session %s created_at: %w", id, err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// LoadTrace reassembles a recorded session into a replayable trace
func (s *Store) LoadTrace(ctx context.Context, id uuid.UUID) (*Trace, error) {
	tr := &Trace{}
	var overflow string
	var hasContainer int
	err := s.db.QueryRowContext(ctx,
		`SELECT name, viewport, offset_top, overflow, has_container
		 FROM sessions WHERE id = ?`, id.String()).
		Scan(&tr.Name, &tr.Viewport, &tr.Config.OffsetTop, &overflow, &hasContainer)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if err := tr.Config.Overflow.UnmarshalText([]byte(overflow)); err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	tr.Config.HasContainer = hasContainer != 0

	rows, err := s.db.QueryContext(ctx,
		`SELECT y, sticky_top, sticky_bottom, sticky_height,
		        container_top, container_bottom, container_height
		 FROM samples WHERE session_id = ? ORDER BY seq`, id.String())
	if err != nil {
		return nil, fmt.Errorf("load samples: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sample Sample
		var st, sb, sh, ct, cb, ch sql.NullFloat64
		if err := rows.Scan(&sample.Y, &st, &sb, &sh, &ct, &cb, &ch); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		if st.Valid {
			sample.Sticky = &RectSpec{Top: st.Float64, Bottom: sb.Float64, Height: sh.Float64}
		}
		if ct.Valid {
			sample.Container = &RectSpec{Top: ct.Float64, Bottom: cb.Float64, Height: ch.Float64}
		}
		tr.Samples = append(tr.Samples, sample)
	}
	return tr, rows.Err()
}

// SaveTrace stores a complete trace as a new session
func (s *Store) SaveTrace(ctx context.Context, tr *Trace) (uuid.UUID, error) {
	id, err := s.CreateSession(ctx, tr.Name, tr.Viewport, tr.Config)
	if err != nil {
		return uuid.Nil, err
	}
	for i, sample := range tr.Samples {
		if err := s.AppendSample(ctx, id, i, sample); err != nil {
			return uuid.Nil, err
		}
	}
	return id, nil
}
