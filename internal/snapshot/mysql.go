package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore keeps the blob in a single-row table keyed by StorageKey, for
// deployments that already run MySQL and want the snapshot to survive the
// host. The table is created on open.
type MySQLStore struct {
	db *sql.DB
}

// OpenMySQL connects to MySQL, verifies the connection and ensures the
// snapshots table exists.
func OpenMySQL(user, pass, host, port, name string) (*MySQLStore, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	const ddl = `CREATE TABLE IF NOT EXISTS snapshots (
		storage_key VARCHAR(191) NOT NULL PRIMARY KEY,
		data        LONGBLOB     NOT NULL,
		updated_at  DATETIME     NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		db.Close()
		return nil, err
	}
	return &MySQLStore{db: db}, nil
}

// Load selects the blob row. No row maps to ErrNotFound.
func (m *MySQLStore) Load(ctx context.Context) ([]byte, error) {
	const q = `SELECT data FROM snapshots WHERE storage_key = ?`
	var blob []byte
	err := m.db.QueryRowContext(ctx, q, StorageKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// Save upserts the blob row.
func (m *MySQLStore) Save(ctx context.Context, blob []byte) error {
	const q = `INSERT INTO snapshots (storage_key, data, updated_at) VALUES (?, ?, UTC_TIMESTAMP())
		ON DUPLICATE KEY UPDATE data = VALUES(data), updated_at = UTC_TIMESTAMP()`
	_, err := m.db.ExecContext(ctx, q, StorageKey, blob)
	return err
}

// Close releases the underlying connection pool.
func (m *MySQLStore) Close() error { return m.db.Close() }
