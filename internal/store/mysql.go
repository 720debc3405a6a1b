package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore persists collections in a two-column key/value table.  Change
// signals are process-local only: a second process against the same database
// will not see them and must poll or restart.  The Redis store is preferred
// when cross-process synchronization matters.
type MySQLStore struct {
	db *sql.DB
	bc *broadcaster
}

// OpenMySQL connects to MySQL, verifies the connection and makes sure the
// kv table exists.
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

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	const schema = `CREATE TABLE IF NOT EXISTS kv_entries (
		k VARCHAR(191) NOT NULL PRIMARY KEY,
		v LONGTEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &MySQLStore{db: db, bc: newBroadcaster()}, nil
}

func (s *MySQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const q = "SELECT v FROM kv_entries WHERE k = ?"
	var v []byte
	if err := s.db.QueryRowContext(ctx, q, key).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *MySQLStore) Put(ctx context.Context, key string, value []byte) error {
	const q = "INSERT INTO kv_entries (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)"
	if _, err := s.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("kv put %s: %w", key, err)
	}
	return nil
}

func (s *MySQLStore) Notify(_ context.Context, channel string) error {
	s.bc.notify(channel)
	return nil
}

func (s *MySQLStore) Watch(ctx context.Context, channel string) (<-chan struct{}, error) {
	return s.bc.watch(ctx, channel), nil
}

func (s *MySQLStore) Close() error {
	return s.db.Close()
}
