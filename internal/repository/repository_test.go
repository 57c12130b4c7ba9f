package repository

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
)

// setupTestDB opens an in-memory SQLite database with the full schema. The
// tables are created with raw DDL for SQLite compatibility (the production
// schema uses postgres column defaults).
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	statements := []string{
		`CREATE TABLE accounts (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			display_name TEXT,
			profile_image TEXT,
			role TEXT NOT NULL DEFAULT 'user'
		)`,
		`CREATE TABLE customers (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			account_id TEXT NOT NULL UNIQUE,
			type TEXT NOT NULL DEFAULT 'free'
		)`,
		`CREATE TABLE boards (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			icon TEXT NOT NULL DEFAULT 'default',
			public BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE board_editors (
			board_id TEXT NOT NULL,
			account_id TEXT NOT NULL,
			PRIMARY KEY (board_id, account_id)
		)`,
		`CREATE TABLE items (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			board_id TEXT NOT NULL,
			type TEXT NOT NULL,
			position TEXT,
			list_id TEXT,
			list_index INTEGER,
			text TEXT,
			size TEXT,
			title TEXT,
			url TEXT
		)`,
		`CREATE TABLE todo_items (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			item_id TEXT NOT NULL,
			text TEXT NOT NULL,
			link TEXT,
			done BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE pins (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			board_id TEXT NOT NULL,
			item_id TEXT NOT NULL UNIQUE,
			label TEXT,
			compass BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE pin_connections (
			pin_id TEXT NOT NULL,
			connected_id TEXT NOT NULL,
			PRIMARY KEY (pin_id, connected_id)
		)`,
		`CREATE TABLE reports (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			account_id TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			entity_type TEXT NOT NULL,
			report_text TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'fresh',
			moderator_id TEXT,
			resolved_at DATETIME
		)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}
	return db
}

func createTestAccount(t *testing.T, db *gorm.DB, username string) *domain.Account {
	t.Helper()
	account := &domain.Account{
		Username: username,
		Email:    username + "@example.com",
		Role:     domain.RoleUser,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	return account
}

func createTestBoard(t *testing.T, db *gorm.DB, ownerID uuid.UUID) *domain.Board {
	t.Helper()
	board := &domain.Board{OwnerID: ownerID, Name: "test board", Icon: "default"}
	if err := db.Create(board).Error; err != nil {
		t.Fatalf("failed to create board: %v", err)
	}
	return board
}
