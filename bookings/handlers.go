package bookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"trasferte/gateway"
	"trasferte/middleware"
	"trasferte/models"
	"trasferte/store"
	"trasferte/utils"

	"github.com/julienschmidt/httprouter"
)

// editRequest extends a booking request with the member's search
// credentials, so an unauthenticated caller can prove ownership.
type editRequest struct {
	BookingRequest
	SearchSurname  string `json:"searchSurname"`
	SearchPassword string `json:"searchPassword"`
}

// SubmitBooking handles POST /api/bookings. All violations are aggregated
// into a single message; nothing is written unless everything passes.
func SubmitBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Richiesta non valida")
		return
	}

	if msg := ValidateBookingRequest(req); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	if _, ok := store.App.EventByID(req.EventID); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Evento non trovato")
		return
	}

	participants := make([]models.Participant, 0, len(req.Participants))
	for _, p := range req.Participants {
		participants = append(participants, p.ToModel(req.BookingType))
	}

	booking := models.Booking{
		EventID:         req.EventID,
		Participants:    participants,
		BookingPassword: strings.TrimSpace(req.BookingPassword),
	}

	created, err := gateway.CreateBooking(r.Context(), booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Errore salvataggio prenotazione")
		return
	}
	utils.SendResponse(w, http.StatusCreated, created, "Prenotazione salvata", nil)
}

// UpdateBooking handles PUT /api/bookings/:bookingid. Admins may edit any
// booking; members must present the credentials that located it. The
// returnView hint tells the caller which screen to go back to.
func UpdateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Richiesta non valida")
		return
	}

	if msg := ValidateBookingRequest(req.BookingRequest); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	bookingID := ps.ByName("bookingid")
	existing, ok := store.App.BookingByID(bookingID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Prenotazione non trovata")
		return
	}
	if _, ok := store.App.EventByID(req.EventID); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Evento non trovato")
		return
	}

	returnView := "adminBookings"
	if !middleware.IsAdmin(r) {
		match, _ := MatchesCredentials(existing, req.SearchSurname, req.SearchPassword)
		if !match {
			utils.RespondWithError(w, http.StatusForbidden, "Non autorizzato a modificare questa prenotazione")
			return
		}
		returnView = "myBookingsResults"
	}

	participants := make([]models.Participant, 0, len(req.Participants))
	for _, p := range req.Participants {
		participants = append(participants, p.ToModel(req.BookingType))
	}

	updated, err := gateway.UpdateBooking(r.Context(), bookingID, gateway.BookingUpdate{
		EventID:         req.EventID,
		Participants:    participants,
		BookingPassword: strings.TrimSpace(req.BookingPassword),
	})
	if errors.Is(err, gateway.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Prenotazione non trovata")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Errore salvataggio prenotazione")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"booking":    updated,
		"message":    "Prenotazione aggiornata",
		"returnView": returnView,
	})
}

// DeleteBooking handles DELETE /api/bookings/:bookingid. Same ownership
// rules as UpdateBooking; members pass credentials in the JSON body, never
// in the URL, so they cannot end up in request logs.
func DeleteBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("bookingid")
	existing, ok := store.App.BookingByID(bookingID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Prenotazione non trovata")
		return
	}

	if !middleware.IsAdmin(r) {
		var creds struct {
			Surname  string `json:"surname"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Richiesta non valida")
			return
		}
		match, _ := MatchesCredentials(existing, creds.Surname, creds.Password)
		if !match {
			utils.RespondWithError(w, http.StatusForbidden, "Non autorizzato a cancellare questa prenotazione")
			return
		}
	}

	err := gateway.DeleteBooking(r.Context(), bookingID)
	if errors.Is(err, gateway.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Prenotazione non trovata")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Errore cancellazione prenotazione")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Prenotazione cancellata", nil)
}

// SearchUserBookings handles POST /api/bookings/search: a member locates
// their bookings by surname plus booking password.
func SearchUserBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		Surname  string `json:"surname"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Richiesta non valida")
		return
	}

	surname := strings.TrimSpace(req.Surname)
	password := strings.TrimSpace(req.Password)
	if surname == "" || password == "" {
		utils.RespondWithError(w, http.StatusBadRequest,
			"Compila cognome e password per cercare le prenotazioni")
		return
	}

	results := FindUserBookings(store.App.Events(), store.App.Bookings(), surname, password)
	if len(results) == 0 {
		utils.RespondWithError(w, http.StatusNotFound,
			"Nessuna prenotazione trovata con questi dati")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"user":     surname + " (password: " + MaskPassword(password) + ")",
		"bookings": results,
	})
}

// participantView is one row of the public participant list.
type participantView struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	BookingType string `json:"bookingType"`
}

// GetParticipants handles GET /api/events/:eventid/participants: the public
// numbered participant list plus per-type totals.
func GetParticipants(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	event, ok := store.App.EventByID(eventID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Evento non trovato")
		return
	}

	list := store.App.EventBookings(eventID)
	var views []participantView
	n := 0
	for _, b := range list {
		for _, p := range b.Participants {
			n++
			views = append(views, participantView{
				Number:      n,
				Name:        p.Name,
				Surname:     p.Surname,
				BookingType: p.BookingType,
			})
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"event":        event,
		"date":         utils.FormatDate(event.Date),
		"participants": views,
		"stats":        ComputeStats(list),
	})
}

// GetEventBookings handles GET /api/admin/events/:eventid/bookings: the full
// booking records of one event, admin only.
func GetEventBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	event, ok := store.App.EventByID(eventID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Evento non trovato")
		return
	}

	list := store.App.EventBookings(eventID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"event":    event,
		"bookings": list,
		"stats":    ComputeStats(list),
	})
}
