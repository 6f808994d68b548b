package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	"tally/internal/domain"
	apperrors "tally/internal/errors"
)

// SQLiteStore keeps the template catalog in a local SQLite file. Unlike the
// read paths elsewhere in this package, the store owns its database
// exclusively, so one connection is opened up front and reused.
type SQLiteStore struct {
	dbPath string
	db     *sql.DB
}

// NewSQLiteStore opens (creating if needed) the catalog database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	trimmed := strings.TrimSpace(dbPath)
	if trimmed == "" {
		return nil, apperrors.New(apperrors.CodeConfigurationError, "catalog path is empty", nil)
	}
	db, err := sql.Open("sqlite", buildSQLiteDSN(trimmed))
	if err != nil {
		return nil, apperrors.New(apperrors.CodeStoreUnavailable, fmt.Sprintf("open catalog db %s", trimmed), err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, apperrors.New(apperrors.CodeStoreUnavailable, fmt.Sprintf("ping catalog db %s", trimmed), err)
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{dbPath: trimmed, db: db}, nil
}

// buildSQLiteDSN creates a WAL DSN for the given path.
func buildSQLiteDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	q.Set("_foreign_keys", "on")
	u.RawQuery = q.Encode()
	return u.String()
}

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS templates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT NOT NULL,
			default_quantity REAL,
			default_amount REAL
		)
	`)
	if err != nil {
		return apperrors.New(apperrors.CodeStoreFailed, "create templates table", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// List returns all templates in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Template, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, default_quantity, default_amount
		FROM templates
		ORDER BY id
	`)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeStoreFailed, "query templates", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var templates []domain.Template
	for rows.Next() {
		var (
			t   domain.Template
			qty sql.NullFloat64
			amt sql.NullFloat64
		)
		if err := rows.Scan(&t.ID, &t.Description, &qty, &amt); err != nil {
			return nil, apperrors.New(apperrors.CodeParseFailed, "scan template row", err)
		}
		if qty.Valid {
			t.DefaultQuantity = domain.Float(qty.Float64)
		}
		if amt.Valid {
			t.DefaultAmount = domain.Float(amt.Float64)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.New(apperrors.CodeStoreFailed, "iterate templates", err)
	}
	return templates, nil
}

// Create inserts a template and returns it with its assigned id.
func (s *SQLiteStore) Create(ctx context.Context, t domain.Template) (domain.Template, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO templates (description, default_quantity, default_amount)
		VALUES (?, ?, ?)
	`, t.Description, nullableFloat(t.DefaultQuantity), nullableFloat(t.DefaultAmount))
	if err != nil {
		return domain.Template{}, apperrors.New(apperrors.CodeStoreFailed, fmt.Sprintf("insert template %q", t.Description), err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Template{}, apperrors.New(apperrors.CodeStoreFailed, "read inserted template id", err)
	}
	t.ID = id
	return t, nil
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
