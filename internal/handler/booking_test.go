package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/classroom-booking/internal/handler"
	"github.com/iliyamo/classroom-booking/internal/model"
	"github.com/iliyamo/classroom-booking/internal/queue"
	"github.com/iliyamo/classroom-booking/internal/repository"
	"github.com/iliyamo/classroom-booking/internal/store"
)

// newTestHandler wires the handler to an in-memory store and records
// published events instead of talking to a broker.
func newTestHandler() (*handler.Handler, *[]queue.BookingEvent) {
	kv := store.NewMemoryStore()
	events := &[]queue.BookingEvent{}
	h := handler.New(repository.NewBookingRepo(kv), repository.NewClassroomRepo(kv))
	h.Publish = func(_ context.Context, ev queue.BookingEvent) error {
		*events = append(*events, ev)
		return nil
	}
	return h, events
}

func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validBooking = `{
	"block": "Block A", "room": "A101",
	"name": "Alice", "department": "Physics",
	"date": "2024-06-01", "startTime": "09:00", "endTime": "10:00",
	"purpose": "Lecture"
}`

func TestCreateBooking(t *testing.T) {
	h, events := newTestHandler()
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings", validBooking)
	require.NoError(t, h.CreateBooking(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "A101", created.Room)

	require.Len(t, *events, 1)
	assert.Equal(t, queue.ActionCreated, (*events)[0].Action)
	assert.Equal(t, created.ID, (*events)[0].BookingID)
}

func TestCreateBookingConflictRejected(t *testing.T) {
	h, events := newTestHandler()
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings", validBooking)
	require.NoError(t, h.CreateBooking(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	overlapping := strings.Replace(validBooking, `"09:00"`, `"09:30"`, 1)
	overlapping = strings.Replace(overlapping, `"10:00"`, `"10:30"`, 1)
	c, rec = doJSON(e, http.MethodPost, "/v1/bookings", overlapping)
	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, *events, 1, "no event for a rejected booking")
}

func TestCreateBookingTouchingWindowAllowed(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings", validBooking)
	require.NoError(t, h.CreateBooking(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	adjacent := strings.Replace(validBooking, `"09:00"`, `"10:00"`, 1)
	adjacent = strings.Replace(adjacent, `"endTime": "10:00"`, `"endTime": "11:00"`, 1)
	c, rec = doJSON(e, http.MethodPost, "/v1/bookings", adjacent)
	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusCreated, rec.Code, "back-to-back windows do not conflict")
}

func TestCreateBookingValidation(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	cases := []struct {
		name string
		body string
	}{
		{"missing name", strings.Replace(validBooking, `"Alice"`, `""`, 1)},
		{"bad date", strings.Replace(validBooking, `"2024-06-01"`, `"01/06/2024"`, 1)},
		{"inverted times", strings.Replace(validBooking, `"endTime": "10:00"`, `"endTime": "08:00"`, 1)},
		{"equal times", strings.Replace(validBooking, `"endTime": "10:00"`, `"endTime": "09:00"`, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := doJSON(e, http.MethodPost, "/v1/bookings", tc.body)
			require.NoError(t, h.CreateBooking(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateBookingExcludesItself(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings", validBooking)
	require.NoError(t, h.CreateBooking(c))
	var created model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Re-submitting the identical window against itself must not conflict.
	c, rec = doJSON(e, http.MethodPut, "/v1/bookings/"+created.ID, validBooking)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.UpdateBooking(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateBookingUnknownID(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	c, rec := doJSON(e, http.MethodPut, "/v1/bookings/missing", validBooking)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, h.UpdateBooking(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteBookingIdempotent(t *testing.T) {
	h, events := newTestHandler()
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings", validBooking)
	require.NoError(t, h.CreateBooking(c))
	var created model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	for i := 0; i < 2; i++ {
		c, rec = doJSON(e, http.MethodDelete, "/v1/bookings/"+created.ID, "")
		c.SetParamNames("id")
		c.SetParamValues(created.ID)
		require.NoError(t, h.DeleteBooking(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	// created + one cancelled; the second delete found nothing to announce.
	require.Len(t, *events, 2)
	assert.Equal(t, queue.ActionCancelled, (*events)[1].Action)
}

func TestListBookingsFiltering(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/bookings", validBooking)
	require.NoError(t, h.CreateBooking(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = doJSON(e, http.MethodGet, "/v1/bookings?q=physics", "")
	require.NoError(t, h.ListBookings(c))
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Items []model.Booking `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Items, 1)

	c, rec = doJSON(e, http.MethodGet, "/v1/bookings?date=2024-06-02", "")
	require.NoError(t, h.ListBookings(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Items)
}
