package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateCatalogTables, downCreateCatalogTables)
}

func upCreateCatalogTables(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE IF NOT EXISTS yoga_courses (
	  id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	  capacity INTEGER NOT NULL DEFAULT 0,
	  day_of_week TEXT NOT NULL,
	  description TEXT NOT NULL DEFAULT '',
	  duration_minutes INTEGER NOT NULL DEFAULT 0,
	  price NUMERIC(10, 2) NOT NULL DEFAULT 0,
	  time TEXT NOT NULL,
	  type TEXT NOT NULL CHECK (type IN ('AERIAL', 'FLOW', 'FAMILY')),
	  total_classes INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS yoga_classes (
	  id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	  comments TEXT NOT NULL DEFAULT '',
	  course_id TEXT NOT NULL DEFAULT '',
	  date DATE NOT NULL,
	  teacher_name TEXT NOT NULL,
	  day_of_week TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_yoga_classes_teacher_name ON yoga_classes (teacher_name);
	CREATE INDEX IF NOT EXISTS idx_yoga_classes_day_of_week ON yoga_classes (day_of_week);
	CREATE INDEX IF NOT EXISTS idx_yoga_classes_date ON yoga_classes (date);

	CREATE TABLE IF NOT EXISTS instructors (
	  id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	  name TEXT NOT NULL,
	  bio TEXT NOT NULL DEFAULT '',
	  specialties TEXT[] NOT NULL DEFAULT '{}',
	  experience_years INTEGER NOT NULL DEFAULT 0,
	  certifications TEXT[] NOT NULL DEFAULT '{}',
	  rating NUMERIC(3, 2) NOT NULL DEFAULT 0,
	  total_students INTEGER NOT NULL DEFAULT 0,
	  is_active BOOLEAN NOT NULL DEFAULT TRUE,
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateCatalogTables(ctx context.Context, tx *sql.Tx) error {
	query := `
	DROP TABLE IF EXISTS instructors;
	DROP TABLE IF EXISTS yoga_classes;
	DROP TABLE IF EXISTS yoga_courses;
	`
	_, err := tx.ExecContext(ctx, query)
	return err
}
