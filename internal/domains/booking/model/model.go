package model

import (
	"database/sql"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldFullName  = "full_name"
	FieldEmail     = "email"
	FieldRoomSlug  = "room_slug"
	FieldCheckin   = "checkin"
	FieldCheckout  = "checkout"
	FieldNotes     = "notes"
	FieldCreatedAt = "created_at"
)

// Booking is append-only: once the store assigns an ID and creation timestamp
// the record is never updated or deleted through this service.
type Booking struct {
	ID        int64          `db:"id"`
	FullName  string         `db:"full_name"`
	Email     string         `db:"email"`
	RoomSlug  string         `db:"room_slug"`
	Checkin   time.Time      `db:"checkin"`
	Checkout  time.Time      `db:"checkout"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt time.Time      `db:"created_at"`
}
