package dto

import (
	"database/sql"
	"strings"
	"time"

	"github.com/minhquach8/hotel-booking/internal/domains/booking/model"
	"github.com/minhquach8/hotel-booking/shared/constant"
	"github.com/minhquach8/hotel-booking/shared/failure"
)

// CreateBookingRequest carries a raw reservation submission. Length caps match
// the column widths; presence and date rules are applied by Validate so each
// rejection carries its own reason code.
type CreateBookingRequest struct {
	FullName string `json:"full_name" validate:"omitempty,max=255"`
	Email    string `json:"email"     validate:"omitempty,max=255"`
	RoomSlug string `json:"room_slug" validate:"omitempty,max=100"`
	Checkin  string `json:"checkin"   validate:"omitempty,max=10"`
	Checkout string `json:"checkout"  validate:"omitempty,max=10"`
	Notes    string `json:"notes"     validate:"omitempty,max=2000"`
}

// Validate applies the reservation rules in fixed precedence and returns the
// booking ready for persistence. It is a pure function of the request and the
// given date: the first failing rule determines the reported reason.
//
// Precedence: presence of the required fields, then date parseability, then
// strict checkin < checkout ordering, then checkin not before today. Notes are
// only trimmed; a blank value becomes an explicit NULL, never an empty string.
func (c *CreateBookingRequest) Validate(today time.Time) (model.Booking, error) {
	fullName := strings.TrimSpace(c.FullName)
	email := strings.TrimSpace(c.Email)
	roomSlug := strings.TrimSpace(c.RoomSlug)
	checkinRaw := strings.TrimSpace(c.Checkin)
	checkoutRaw := strings.TrimSpace(c.Checkout)

	missing := []string{}
	if fullName == constant.Empty {
		missing = append(missing, model.FieldFullName)
	}
	if email == constant.Empty {
		missing = append(missing, model.FieldEmail)
	}
	if roomSlug == constant.Empty {
		missing = append(missing, model.FieldRoomSlug)
	}
	if checkinRaw == constant.Empty {
		missing = append(missing, model.FieldCheckin)
	}
	if checkoutRaw == constant.Empty {
		missing = append(missing, model.FieldCheckout)
	}

	if len(missing) > 0 {
		return model.Booking{}, failure.MissingFields(missing) //nolint:wrapcheck
	}

	checkin, err := time.Parse(constant.DateOnlyFormat, checkinRaw)
	if err != nil {
		return model.Booking{}, failure.InvalidDate(model.FieldCheckin) //nolint:wrapcheck
	}

	checkout, err := time.Parse(constant.DateOnlyFormat, checkoutRaw)
	if err != nil {
		return model.Booking{}, failure.InvalidDate(model.FieldCheckout) //nolint:wrapcheck
	}

	if !checkin.Before(checkout) {
		return model.Booking{}, failure.CheckoutBeforeCheckin() //nolint:wrapcheck
	}

	if checkin.Before(today) {
		return model.Booking{}, failure.CheckinInPast() //nolint:wrapcheck
	}

	notes := sql.NullString{}
	if trimmed := strings.TrimSpace(c.Notes); trimmed != constant.Empty {
		notes = sql.NullString{String: trimmed, Valid: true}
	}

	return model.Booking{
		FullName: fullName,
		Email:    email,
		RoomSlug: roomSlug,
		Checkin:  checkin,
		Checkout: checkout,
		Notes:    notes,
	}, nil
}

type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
}

type BookingResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	RoomSlug  string    `json:"room_slug"`
	Checkin   string    `json:"checkin"`
	Checkout  string    `json:"checkout"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.RoomSlug = model.RoomSlug
	r.Checkin = model.Checkin.Format(constant.DateOnlyFormat)
	r.Checkout = model.Checkout.Format(constant.DateOnlyFormat)
	r.CreatedAt = model.CreatedAt

	if model.Notes.Valid {
		notes := model.Notes.String
		r.Notes = &notes
	}
}

type GetBookingsResponse struct {
	Count    int               `json:"count"`
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Count = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
