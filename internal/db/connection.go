package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Service represents a service that interacts with the database.
type Service struct {
	DB *sql.DB
}

// NewService opens a PostgreSQL connection, verifies it and runs the
// embedded schema migrations.
func NewService(connStr string) (*Service, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %w", err)
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not connect to the database: %w", err)
	}

	if err := RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	return &Service{DB: db}, nil
}

// Health checks the health of the database connection by pinging the database.
func (s *Service) Health() map[string]string {
	stats := make(map[string]string)

	err := s.DB.Ping()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	return stats
}

// Close closes the database connection.
func (s *Service) Close() error {
	slog.Info("closing database connection")
	return s.DB.Close()
}
