package model

import "database/sql"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldSlug        = "slug"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPriceNZD    = "price_nzd"
	FieldImage       = "image"
)

// Room is seed/reference data: created out-of-band by migrations, only ever
// read through the API. The slug is the stable identifier bookings reference.
type Room struct {
	ID          int64          `db:"id"`
	Slug        string         `db:"slug"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	PriceNZD    float64        `db:"price_nzd"`
	Image       sql.NullString `db:"image"`
}
