package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/wricardo/mcp-training/fifteenpuzzle/game/service"
)

// MemoryDSN keeps the records for the lifetime of the process only
const MemoryDSN = ":memory:"

// ErrRecordNotFound is returned by GetRecord for unknown IDs
var ErrRecordNotFound = errors.New("record not found")

// SQLiteStore implements service.RecordStore on SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at dbPath and runs migrations.
// Pass MemoryDSN for a store that disappears with the process.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&cache=shared", dbPath)
	if dbPath == MemoryDSN {
		dsn = "file::memory:?_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: SQLite serialises writes, and an in-memory database lives on a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStore{db: db}
	if err := s.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// Migrate creates the schema if it is missing
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS solve_records (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			config_name TEXT NOT NULL,
			seed TEXT NOT NULL,
			round INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			solved_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_solve_records_session ON solve_records(session_id, solved_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_solve_records_config ON solve_records(config_name, moves);`,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			tx.Rollback()
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return tx.Commit()
}

// SaveRecord inserts record, assigning an ID and a solve time when they are empty
func (s *SQLiteStore) SaveRecord(ctx context.Context, record *service.SolveRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.SolvedAt.IsZero() {
		record.SolvedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO solve_records(id, session_id, config_name, seed, round, moves, attempts, duration_ns, solved_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.SessionID, record.ConfigName, record.Seed, record.Round,
		record.Moves, record.Attempts, int64(record.Duration), record.SolvedAt.UTC().UnixNano())
	if err != nil {
		return fmt.Errorf("save record %s: %w", record.ID, err)
	}
	return nil
}

// GetRecord returns one record by ID
func (s *SQLiteStore) GetRecord(ctx context.Context, id string) (*service.SolveRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, session_id, config_name, seed, round, moves, attempts, duration_ns, solved_at
		FROM solve_records WHERE id=?`, id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return record, err
}

// ListRecords returns records matching query. OrderBy "moves" and "duration"
// rank the best solves first; anything else lists the newest first.
func (s *SQLiteStore) ListRecords(ctx context.Context, query service.RecordQuery) ([]*service.SolveRecord, error) {
	limit := query.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	order := "solved_at DESC"
	switch query.OrderBy {
	case "moves":
		order = "moves ASC, duration_ns ASC"
	case "duration":
		order = "duration_ns ASC, moves ASC"
	}

	q := `SELECT id, session_id, config_name, seed, round, moves, attempts, duration_ns, solved_at
		FROM solve_records
		WHERE (?1 = '' OR session_id = ?1) AND (?2 = '' OR config_name = ?2)
		ORDER BY ` + order + ` LIMIT ?3`
	rows, err := s.db.QueryContext(ctx, q, query.SessionID, query.ConfigName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*service.SolveRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*service.SolveRecord, error) {
	var (
		r          service.SolveRecord
		durationNs int64
		solvedAtNs int64
	)
	if err := row.Scan(&r.ID, &r.SessionID, &r.ConfigName, &r.Seed, &r.Round,
		&r.Moves, &r.Attempts, &durationNs, &solvedAtNs); err != nil {
		return nil, err
	}
	r.Duration = time.Duration(durationNs)
	r.SolvedAt = time.Unix(0, solvedAtNs).UTC()
	return &r, nil
}
