package bookings

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trasferte/models"
	"trasferte/store"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func seedDeleteFixture() {
	store.App.ReplaceAll(
		[]models.Event{{EventID: "ev1", Name: "Roma - Parma", Date: "2026-09-20", Time: "15:00"}},
		map[string][]models.Booking{
			"ev1": {
				{
					BookingID:       "b1",
					EventID:         "ev1",
					BookingPassword: "segreta",
					Participants:    []models.Participant{{Surname: "Rossi", Name: "Mario"}},
				},
			},
		},
	)
}

func TestDeleteBookingMemberCredentialsInBody(t *testing.T) {
	seedDeleteFixture()
	params := httprouter.Params{{Key: "bookingid", Value: "b1"}}

	t.Run("wrong credentials are rejected", func(t *testing.T) {
		body := strings.NewReader(`{"surname":"Rossi","password":"sbagliata"}`)
		req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b1", body)
		rec := httptest.NewRecorder()
		DeleteBooking(rec, req, params)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("query-string credentials do not authorize", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete,
			"/api/bookings/b1?surname=Rossi&password=segreta", nil)
		rec := httptest.NewRecorder()
		DeleteBooking(rec, req, params)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "credentials belong in the body")
	})

	t.Run("body credentials pass the ownership check", func(t *testing.T) {
		body := strings.NewReader(`{"surname":"rossi","password":"segreta"}`)
		req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b1", body)
		rec := httptest.NewRecorder()
		DeleteBooking(rec, req, params)
		// authorization succeeded; only the unavailable database stops it
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("unknown booking", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/bookings/ghost", nil)
		rec := httptest.NewRecorder()
		DeleteBooking(rec, req, httprouter.Params{{Key: "bookingid", Value: "ghost"}})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
