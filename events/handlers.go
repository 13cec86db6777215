package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"trasferte/gateway"
	"trasferte/models"
	"trasferte/store"
	"trasferte/utils"

	"github.com/julienschmidt/httprouter"
)

// eventView is an event plus its aggregate participant count, for lists.
type eventView struct {
	models.Event
	Participants int `json:"participants"`
}

func participantCount(eventID string) int {
	n := 0
	for _, b := range store.App.EventBookings(eventID) {
		n += len(b.Participants)
	}
	return n
}

func toViews(list []models.Event) []eventView {
	views := make([]eventView, 0, len(list))
	for _, ev := range list {
		views = append(views, eventView{Event: ev, Participants: participantCount(ev.EventID)})
	}
	return views
}

// GetEvents handles GET /api/events: upcoming events, optionally filtered by
// ?month=N and ?competition=label, sorted by date. Served from the cache.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	month := 0
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			utils.RespondWithError(w, http.StatusBadRequest, "Mese non valido")
			return
		}
		month = parsed
	}

	now := time.Now()
	var upcoming []models.Event
	for _, ev := range store.App.Events() {
		if !IsEventPast(ev, now) {
			upcoming = append(upcoming, ev)
		}
	}

	filtered := FilterEvents(upcoming, month, r.URL.Query().Get("competition"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"events": toViews(SortEventsByDate(filtered)),
	})
}

// GetAdminEvents handles GET /api/admin/events: every event, upcoming block
// first, past block after, each sorted by date.
func GetAdminEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	now := time.Now()
	var upcoming, past []models.Event
	for _, ev := range store.App.Events() {
		if IsEventPast(ev, now) {
			past = append(past, ev)
		} else {
			upcoming = append(upcoming, ev)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"upcoming": toViews(SortEventsByDate(upcoming)),
		"past":     toViews(SortEventsByDate(past)),
	})
}

// GetCompetitions handles GET /api/competitions for the filter dropdown.
func GetCompetitions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"competitions": Competitions(store.App.Events()),
	})
}

func decodeEvent(r *http.Request) (models.Event, string) {
	var ev models.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		return ev, "Richiesta non valida"
	}
	if ev.Name == "" || ev.Date == "" || ev.Time == "" || ev.Location == "" {
		return ev, "Nome, data, orario e luogo sono obbligatori"
	}
	if _, err := EventInstant(ev); err != nil {
		return ev, "Data o orario non validi"
	}
	return ev, ""
}

// CreateEvent handles POST /api/events (admin).
func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ev, msg := decodeEvent(r)
	if msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := gateway.CreateEvent(r.Context(), ev)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Errore salvataggio evento")
		return
	}
	utils.SendResponse(w, http.StatusCreated, created, "Evento salvato", nil)
}

// EditEvent handles PUT /api/events/:eventid (admin).
func EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ev, msg := decodeEvent(r)
	if msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := gateway.UpdateEvent(r.Context(), ps.ByName("eventid"), ev)
	if errors.Is(err, gateway.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Evento non trovato")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Errore salvataggio evento")
		return
	}
	utils.SendResponse(w, http.StatusOK, updated, "Evento aggiornato", nil)
}

// DeleteEvent handles DELETE /api/events/:eventid?confirm=true (admin). The
// delete cascades to every booking of the event, so it refuses to run
// without the explicit confirmation flag.
func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if r.URL.Query().Get("confirm") != "true" {
		utils.RespondWithError(w, http.StatusBadRequest,
			"Cancellazione non confermata: aggiungere confirm=true")
		return
	}

	err := gateway.DeleteEvent(r.Context(), ps.ByName("eventid"))
	if errors.Is(err, gateway.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Evento non trovato")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Errore cancellazione evento")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Evento cancellato", nil)
}
