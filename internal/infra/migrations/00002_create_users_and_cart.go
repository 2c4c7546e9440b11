package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUsersAndCart, downCreateUsersAndCart)
}

func upCreateUsersAndCart(ctx context.Context, tx *sql.Tx) error {
	// email намеренно не уникален: поиск берёт самую раннюю запись
	query := `
	CREATE TABLE IF NOT EXISTS users (
	  id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	  email TEXT NOT NULL,
	  name TEXT,
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users (email);

	CREATE TABLE IF NOT EXISTS cart (
	  id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	  owner_id TEXT NOT NULL,
	  yoga_class_id TEXT NOT NULL,
	  yoga_class JSONB NOT NULL,
	  added_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_cart_owner_id ON cart (owner_id);
	`

	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateUsersAndCart(ctx context.Context, tx *sql.Tx) error {
	query := `
	DROP TABLE IF EXISTS cart;
	DROP TABLE IF EXISTS users;
	`
	_, err := tx.ExecContext(ctx, query)
	return err
}
