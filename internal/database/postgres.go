package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"hobby-discovery-service/internal/config"
)

func NewPostgres(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	slog.Info("connected to PostgreSQL", "db", cfg.DBName)

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(100) NOT NULL DEFAULT 'User',
		created_at TIMESTAMP DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		motivations TEXT[] NOT NULL DEFAULT '{}',
		time_availability_minutes INTEGER NOT NULL,
		schedule_preference VARCHAR(20) NOT NULL,
		skill_level VARCHAR(20) NOT NULL,
		learning_style VARCHAR(20) NOT NULL,
		budget VARCHAR(20) NOT NULL,
		environment VARCHAR(30) NOT NULL,
		location VARCHAR(255),
		social_preference VARCHAR(20) NOT NULL,
		intensity VARCHAR(20) NOT NULL,
		commitment_horizon VARCHAR(20) NOT NULL,
		updated_at TIMESTAMP DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS hobbies (
		id TEXT PRIMARY KEY,
		slug VARCHAR(100) UNIQUE NOT NULL,
		name VARCHAR(100) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		icon VARCHAR(16) NOT NULL DEFAULT '',
		color VARCHAR(16) NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS hobby_meta (
		hobby_id TEXT PRIMARY KEY REFERENCES hobbies(id) ON DELETE CASCADE,
		supported_motivations TEXT[] NOT NULL DEFAULT '{}',
		min_time_minutes INTEGER NOT NULL,
		learning_styles TEXT[] NOT NULL DEFAULT '{}',
		cost_level VARCHAR(20) NOT NULL,
		environment_needs VARCHAR(20) NOT NULL,
		social_nature VARCHAR(20) NOT NULL,
		intensity_level VARCHAR(20) NOT NULL,
		beginner_friendly BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS resources (
		id TEXT PRIMARY KEY,
		hobby_id TEXT NOT NULL REFERENCES hobbies(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type VARCHAR(20) NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		source VARCHAR(100) NOT NULL DEFAULT '',
		level VARCHAR(20) NOT NULL,
		time_minutes INTEGER,
		free_paid VARCHAR(20) NOT NULL,
		popularity_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id TEXT PRIMARY KEY,
		name VARCHAR(100) UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS resource_tags (
		resource_id TEXT REFERENCES resources(id) ON DELETE CASCADE,
		tag_id TEXT REFERENCES tags(id) ON DELETE CASCADE,
		PRIMARY KEY (resource_id, tag_id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_hobbies (
		id SERIAL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		hobby_id TEXT NOT NULL REFERENCES hobbies(id) ON DELETE CASCADE,
		level VARCHAR(20) NOT NULL DEFAULT 'beginner',
		goals TEXT,
		created_at TIMESTAMP DEFAULT NOW(),
		UNIQUE(user_id, hobby_id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_resources (
		id SERIAL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		resource_id TEXT NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
		saved BOOLEAN NOT NULL DEFAULT FALSE,
		status VARCHAR(20) NOT NULL DEFAULT 'not-started',
		feedback VARCHAR(10),
		updated_at TIMESTAMP DEFAULT NOW(),
		UNIQUE(user_id, resource_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_resources_hobby_id ON resources(hobby_id)`,
	`CREATE INDEX IF NOT EXISTS idx_user_resources_user_id ON user_resources(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_user_hobbies_user_id ON user_hobbies(user_id)`,
}

func runMigrations(db *sql.DB) error {
	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	slog.Info("database migrations completed")
	return nil
}
