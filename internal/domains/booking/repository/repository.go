package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minhquach8/hotel-booking/infras/otel"
	"github.com/minhquach8/hotel-booking/infras/postgres"
	"github.com/minhquach8/hotel-booking/internal/domains/booking/model"
	"github.com/minhquach8/hotel-booking/shared/constant"
	"github.com/minhquach8/hotel-booking/shared/failure"
	"github.com/minhquach8/hotel-booking/shared/logger"

	"github.com/lib/pq"
)

// The identifier and creation timestamp are assigned atomically by the
// database sequence and default, so concurrent inserts never collide.
const insertQuery = `INSERT INTO bookings (full_name, email, room_slug, checkin, checkout, notes)
	VALUES (:full_name, :email, :room_slug, :checkin, :checkout, :notes)
	RETURNING id, created_at`

// Newest first; the id tiebreaker keeps same-timestamp rows in a stable order.
const getAllQuery = `SELECT id, full_name, email, room_slug, checkin, checkout, notes, created_at
	FROM bookings
	ORDER BY created_at DESC, id DESC
	LIMIT $1`

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) (model.Booking, error)
	GetAll(ctx context.Context, limit int) ([]model.Booking, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// Insert appends the booking and returns it with the generated identifier and
// creation timestamp filled in. Failures are never retried here.
func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, insertQuery)

	stmt, err := repo.db.Write.PrepareNamedContext(ctx, insertQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Booking{}, failure.InsertFailed(err) //nolint:wrapcheck
	}
	defer stmt.Close()

	var generated struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}

	if err = stmt.GetContext(ctx, &generated, booking); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return model.Booking{}, failure.InsertFailedFromString(fmt.Sprintf("room_slug %q does not reference a known room", booking.RoomSlug)) //nolint:wrapcheck
		}

		return model.Booking{}, failure.InsertFailed(err) //nolint:wrapcheck
	}

	booking.ID = generated.ID
	booking.CreatedAt = generated.CreatedAt

	return booking, nil
}

// GetAll reads the most recent bookings, newest first, truncated at limit.
func (repo *repositoryImpl) GetAll(ctx context.Context, limit int) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getAllQuery)

	bookings := []model.Booking{}

	if err := repo.db.Read.SelectContext(ctx, &bookings, getAllQuery, limit); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, failure.QueryFailed(err) //nolint:wrapcheck
	}

	return bookings, nil
}
