package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateBookings, downCreateBookings)
}

func upCreateBookings(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE IF NOT EXISTS bookings (
	  id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	  user_id TEXT NOT NULL REFERENCES users (id),
	  user_email TEXT NOT NULL,
	  classes JSONB NOT NULL DEFAULT '[]',
	  total_classes INTEGER NOT NULL,
	  status TEXT NOT NULL CHECK (status IN ('pending', 'confirmed', 'cancelled')),
	  checkout_key TEXT NOT NULL,
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  CONSTRAINT bookings_checkout_key_key UNIQUE (checkout_key)
	);

	CREATE INDEX IF NOT EXISTS idx_bookings_user_email ON bookings (user_email);

	CREATE TABLE IF NOT EXISTS user_bookings (
	  id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	  booking_id TEXT NOT NULL REFERENCES bookings (id),
	  yoga_class_id TEXT NOT NULL,
	  yoga_class JSONB NOT NULL,
	  user_email TEXT NOT NULL,
	  status TEXT NOT NULL CHECK (status IN ('booked', 'attended', 'cancelled')),
	  booked_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  attended_at TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX IF NOT EXISTS idx_user_bookings_user_email ON user_bookings (user_email, booked_at DESC);
	CREATE INDEX IF NOT EXISTS idx_user_bookings_booking_id ON user_bookings (booking_id);
	`

	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateBookings(ctx context.Context, tx *sql.Tx) error {
	query := `
	DROP TABLE IF EXISTS user_bookings;
	DROP TABLE IF EXISTS bookings;
	`
	_, err := tx.ExecContext(ctx, query)
	return err
}
