package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/minhquach8/hotel-booking/infras/otel"
	"github.com/minhquach8/hotel-booking/infras/postgres"
	"github.com/minhquach8/hotel-booking/internal/domains/room/model"
	"github.com/minhquach8/hotel-booking/shared/constant"
	"github.com/minhquach8/hotel-booking/shared/failure"
	"github.com/minhquach8/hotel-booking/shared/logger"
)

// Rooms are listed cheapest first; equal prices keep their seed order via the
// id tiebreaker.
const getAllQuery = `SELECT id, slug, name, description, price_nzd, image
	FROM rooms
	ORDER BY price_nzd ASC, id ASC`

type Room interface {
	GetAll(ctx context.Context) ([]model.Room, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getAllQuery)

	rooms := []model.Room{}

	if err := repo.db.Read.SelectContext(ctx, &rooms, getAllQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, failure.QueryFailed(err) //nolint:wrapcheck
	}

	return rooms, nil
}
