package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tiffin-hq/tiffin/internal/shared/logger"
)

// Generator handles creation of new migration files
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGenerator creates a new migration generator
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration creates a new timestamped migration file
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	// Generate timestamp
	timestamp := time.Now().Format("20060102150405")

	fileName := fmt.Sprintf("%s_%s.sql", timestamp, name)
	filePath := filepath.Join(g.scriptsPath, fileName)

	// Ensure scripts directory exists
	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if err := g.writeFile(filePath, g.generateMigrationTemplate(name)); err != nil {
		return fmt.Errorf("failed to create migration file: %w", err)
	}

	g.logger.Infow("migration file created successfully", "file", filePath)

	return nil
}

// writeFile writes content to a file
func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

// generateMigrationTemplate generates a template for a new migration
func (g *Generator) generateMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- +goose Up
-- Add your SQL statements here
-- Example:
-- CREATE TABLE example_table (
--     id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
--     name VARCHAR(255) NOT NULL,
--     created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
--     updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
-- );

-- +goose Down
-- Add your rollback SQL statements here
-- Example:
-- DROP TABLE IF EXISTS example_table;

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// CreateBaselineMigration creates the initial schema migration covering
// employees, benefits, benefit_orders and business_configs.
func (g *Generator) CreateBaselineMigration() error {
	g.logger.Infow("creating baseline schema migration")

	// Use a fixed version so the baseline always sorts first
	fileName := "00001_create_baseline_schema.sql"
	filePath := filepath.Join(g.scriptsPath, fileName)

	// Ensure scripts directory exists
	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if err := g.writeFile(filePath, g.generateBaselineMigration()); err != nil {
		return fmt.Errorf("failed to create baseline migration: %w", err)
	}

	g.logger.Infow("baseline migration created successfully", "file", filePath)

	return nil
}

// generateBaselineMigration generates the schema migration for the core tables
func (g *Generator) generateBaselineMigration() string {
	return `-- Migration: Create baseline schema
-- Description: Core tables for the meal benefit engine

-- +goose Up
CREATE TABLE IF NOT EXISTS employees (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    eid VARCHAR(50) NOT NULL UNIQUE,
    company_id BIGINT UNSIGNED NOT NULL,
    name VARCHAR(100) NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    invite_status VARCHAR(20) NOT NULL DEFAULT 'pending',
    service_type VARCHAR(20) NOT NULL DEFAULT '',
    shift_type VARCHAR(20) NOT NULL DEFAULT 'day',
    working_days TINYINT UNSIGNED NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
    deleted_at TIMESTAMP NULL,
    INDEX idx_company_employee (company_id),
    INDEX idx_is_active (is_active),
    INDEX idx_employees_deleted_at (deleted_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS benefits (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    bid VARCHAR(50) NOT NULL UNIQUE,
    employee_id BIGINT UNSIGNED NOT NULL,
    kind VARCHAR(20) NOT NULL,
    active_key VARCHAR(32) NULL,
    status VARCHAR(20) NOT NULL,
    start_date TIMESTAMP NOT NULL,
    end_date TIMESTAMP NOT NULL,
    recurrence_kind VARCHAR(20) NOT NULL,
    custom_dates JSON NULL,
    working_days TINYINT UNSIGNED NOT NULL,
    combo_type VARCHAR(20) NOT NULL DEFAULT '',
    daily_rate_cents BIGINT NOT NULL,
    total_price_cents BIGINT NOT NULL,
    currency VARCHAR(3) NOT NULL,
    carry_over BOOLEAN NOT NULL DEFAULT FALSE,
    auto_renew BOOLEAN NOT NULL DEFAULT FALSE,
    cancelled_at TIMESTAMP NULL,
    cancel_reason VARCHAR(500) NULL,
    version INT NOT NULL DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
    deleted_at TIMESTAMP NULL,
    UNIQUE INDEX idx_active_slot (kind, active_key),
    INDEX idx_employee_benefit (employee_id),
    INDEX idx_status (status),
    INDEX idx_end_date (end_date),
    INDEX idx_benefits_deleted_at (deleted_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS benefit_orders (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    oid VARCHAR(50) NOT NULL UNIQUE,
    benefit_id BIGINT UNSIGNED NULL,
    employee_id BIGINT UNSIGNED NULL,
    guest_name VARCHAR(100) NULL,
    kind VARCHAR(20) NOT NULL,
    date TIMESTAMP NOT NULL,
    status VARCHAR(20) NOT NULL,
    price_cents BIGINT NOT NULL,
    currency VARCHAR(3) NOT NULL,
    combo_type VARCHAR(20) NOT NULL DEFAULT '',
    frozen_at TIMESTAMP NULL,
    freeze_reason VARCHAR(500) NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
    deleted_at TIMESTAMP NULL,
    INDEX idx_benefit_date (benefit_id, date),
    INDEX idx_employee_order (employee_id),
    INDEX idx_order_status (status),
    INDEX idx_frozen_at (frozen_at),
    INDEX idx_orders_deleted_at (deleted_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

CREATE TABLE IF NOT EXISTS business_configs (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    min_subscription_days INT NOT NULL,
    max_freezes_per_week INT NOT NULL,
    cutoff_offset_hours INT NOT NULL,
    night_cutoff_offset_hours INT NOT NULL,
    default_working_days TINYINT UNSIGNED NOT NULL,
    combo_prices JSON NOT NULL,
    default_daily_limit_cents BIGINT NOT NULL,
    currency VARCHAR(3) NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;

-- +goose Down
DROP TABLE IF EXISTS business_configs;
DROP TABLE IF EXISTS benefit_orders;
DROP TABLE IF EXISTS benefits;
DROP TABLE IF EXISTS employees;
`
}
