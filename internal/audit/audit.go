package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	_ "github.com/lib/pq"
)

// Action names recorded in api_audit.
const (
	ActionSubmitPlaytest = "submit_playtest"
)

// Entry is one row of api_audit.
type Entry struct {
	ID           int64          `db:"id" json:"id"`
	RequestID    string         `db:"request_id" json:"request_id"`
	Action       string         `db:"action" json:"action"`
	Route        string         `db:"route" json:"route"`
	IP           string         `db:"ip" json:"ip"`
	UserRecordID string         `db:"user_record_id" json:"user_record_id"`
	Target       string         `db:"target" json:"target"`
	Details      types.JSONText `db:"details" json:"details"`
	Success      bool           `db:"success" json:"success"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// Connect opens the Postgres pool used for the audit trail.
func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Logger writes audit rows. A nil Logger, or one without a database,
// accepts every call and records nothing.
type Logger struct {
	db *sqlx.DB
}

func NewLogger(db *sqlx.DB) *Logger {
	return &Logger{db: db}
}

// Enabled reports whether entries are persisted.
func (l *Logger) Enabled() bool {
	return l != nil && l.db != nil
}

// Details marshals v for Entry.Details, falling back to {}.
func Details(v interface{}) types.JSONText {
	b, err := json.Marshal(v)
	if err != nil || len(b) == 0 || string(b) == "null" {
		return types.JSONText("{}")
	}
	return types.JSONText(b)
}

// Record inserts e. Failures are logged and returned; callers treat the
// audit trail as best effort.
func (l *Logger) Record(ctx context.Context, e Entry) error {
	if !l.Enabled() {
		return nil
	}
	if len(e.Details) == 0 {
		e.Details = types.JSONText("{}")
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO api_audit (request_id, action, route, ip, user_record_id, target, details, success, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`, e.RequestID, e.Action, e.Route, e.IP, e.UserRecordID, e.Target, e.Details, e.Success)
	if err != nil {
		log.Printf("[AUDIT] Failed to record %s: %v", e.Action, err)
		return fmt.Errorf("record audit entry: %w", err)
	}
	return nil
}

// Recent returns entries newest first along with the total row count.
func (l *Logger) Recent(ctx context.Context, action string, limit, offset int) ([]Entry, int, error) {
	if !l.Enabled() {
		return []Entry{}, 0, nil
	}

	type row struct {
		Entry
		TotalCount int `db:"total_count"`
	}
	var rows []row
	err := l.db.SelectContext(ctx, &rows, `
		SELECT id, request_id, action, route, ip, user_record_id, target, details, success, created_at,
			COUNT(*) OVER() AS total_count
		FROM api_audit
		WHERE ($1 = '' OR action = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, action, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]Entry, 0, len(rows))
	total := 0
	for _, r := range rows {
		entries = append(entries, r.Entry)
		total = r.TotalCount
	}

	// An offset past the end returns no rows to carry the window count.
	if len(rows) == 0 && offset > 0 {
		if err := l.db.GetContext(ctx, &total, `
			SELECT COUNT(*) FROM api_audit WHERE ($1 = '' OR action = $1)
		`, action); err != nil {
			return nil, 0, err
		}
	}
	return entries, total, nil
}
