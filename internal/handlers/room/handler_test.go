package room_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "github.com/minhquach8/hotel-booking/infras/otel/mocks"
	"github.com/minhquach8/hotel-booking/internal/domains/room/model/dto"
	"github.com/minhquach8/hotel-booking/internal/handlers/room"
	"github.com/minhquach8/hotel-booking/shared/failure"
	"github.com/minhquach8/hotel-booking/transport/http/response"
)

type stubService struct {
	getAllFn func(ctx context.Context) (dto.GetRoomsResponse, error)
}

func (s *stubService) GetAll(ctx context.Context) (dto.GetRoomsResponse, error) {
	return s.getAllFn(ctx)
}

func newRouter(svc *stubService) chi.Router {
	handler := room.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_GetRooms(t *testing.T) {
	t.Run("catalog carries count and null images", func(t *testing.T) {
		image := "https://cdn.example.com/ocean-view.jpg"

		svc := &stubService{
			getAllFn: func(_ context.Context) (dto.GetRoomsResponse, error) {
				return dto.GetRoomsResponse{
					Count: 2,
					Rooms: []dto.RoomResponse{
						{ID: 1, Slug: "standard", Name: "Standard Room", PriceNZD: 120},
						{ID: 2, Slug: "ocean-view", Name: "Ocean View Suite", PriceNZD: 280, Image: &image},
					},
				}, nil
			},
		}

		request := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		recorder := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.JSONEq(t, `2`, string(body["count"]))

		var rooms []map[string]any
		require.NoError(t, json.Unmarshal(body["rooms"], &rooms))
		require.Len(t, rooms, 2)
		assert.Nil(t, rooms[0]["image"])
		assert.Equal(t, image, rooms[1]["image"])
	})

	t.Run("query failure returns 500", func(t *testing.T) {
		svc := &stubService{
			getAllFn: func(_ context.Context) (dto.GetRoomsResponse, error) {
				return dto.GetRoomsResponse{}, failure.QueryFailed(assert.AnError)
			},
		}

		request := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		recorder := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var body response.Error
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, failure.CodeQueryFailed, body.Error)
	})
}
