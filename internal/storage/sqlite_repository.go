package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	sqliteTimeLayout = time.RFC3339Nano

	// Every connection to ":memory:" gets its own database, so the pool is
	// pinned to one connection.
	memoryDSN = ":memory:"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenMemorySQLite opens a migrated SQLite database that lives only as long
// as the returned repository.
func OpenMemorySQLite() (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, text, completed, created_at)
		VALUES (?, ?, ?, ?)`,
		in.ID, in.Text, boolInt(in.Completed), in.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	return err
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, text, completed, created_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET text = ?, completed = ?
		WHERE id = ?`,
		in.Text, boolInt(in.Completed), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error) {
	query := `SELECT id, text, completed, created_at FROM tasks`
	args := make([]any, 0, 3)
	if filter.Completed != nil {
		query += ` WHERE completed = ?`
		args = append(args, boolInt(*filter.Completed))
	}
	query += ` ORDER BY id ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (Task, error) {
	var out Task
	var completed int
	var created string
	if err := s.Scan(&out.ID, &out.Text, &completed, &created); err != nil {
		return Task{}, err
	}
	createdAt, err := time.Parse(sqliteTimeLayout, created)
	if err != nil {
		return Task{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	out.Completed = completed == 1
	out.CreatedAt = createdAt
	return out, nil
}

func applyPagination(args *[]any, limit, offset int) string {
	if limit <= 0 && offset <= 0 {
		return ""
	}
	if limit <= 0 {
		// SQLite requires a LIMIT before OFFSET.
		limit = -1
	}
	*args = append(*args, limit, offset)
	return ` LIMIT ? OFFSET ?`
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

