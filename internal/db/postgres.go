package db

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens a Postgres connection using the given DSN. Caller must call Close when done.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenUserDataset opens the user dataset and wraps it for sqlx-based repositories.
// The pgx driver name is kept so sqlx binds $n placeholders.
func OpenUserDataset(dsn string) (*sqlx.DB, error) {
	conn, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	return sqlx.NewDb(conn, "pgx"), nil
}

// OpenFeatureDataset opens the feature dataset and wraps the same pgx pool in a gorm session.
// Gorm's own logger is silenced; repositories log failures themselves.
func OpenFeatureDataset(dsn string) (*gorm.DB, *sql.DB, error) {
	conn, err := Open(dsn)
	if err != nil {
		return nil, nil, err
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return gdb, conn, nil
}
