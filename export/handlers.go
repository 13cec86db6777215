package export

import (
	"net/http"
	"time"

	"trasferte/store"
	"trasferte/utils"

	"github.com/julienschmidt/httprouter"
)

// DownloadCSV handles GET /api/events/:eventid/export/csv as an attachment.
func DownloadCSV(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	event, ok := store.App.EventByID(eventID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Evento non trovato")
		return
	}

	list := store.App.EventBookings(eventID)
	hasParticipants := false
	for _, b := range list {
		if len(b.Participants) > 0 {
			hasParticipants = true
			break
		}
	}
	if !hasParticipants {
		utils.RespondWithError(w, http.StatusNotFound, "Nessun partecipante da esportare")
		return
	}

	filename := "partecipanti_" + utils.SanitizeFilename(event.Name) + "_" +
		time.Now().Format("2006-01-02") + ".csv"

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(BuildCSV(list)))
}

// DownloadPDF handles GET /api/events/:eventid/export/pdf.
func DownloadPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	event, ok := store.App.EventByID(eventID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Evento non trovato")
		return
	}

	data, err := BuildPDF(event, store.App.EventBookings(eventID))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Errore generazione PDF")
		return
	}

	filename := "partecipanti_" + utils.SanitizeFilename(event.Name) + "_" +
		time.Now().Format("2006-01-02") + ".pdf"

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// GetWhatsAppShare handles GET /api/events/:eventid/export/whatsapp: the
// share text plus the wa.me link.
func GetWhatsAppShare(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	event, ok := store.App.EventByID(eventID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Evento non trovato")
		return
	}

	list := store.App.EventBookings(eventID)
	if len(list) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Nessuna prenotazione da condividere")
		return
	}

	text := BuildShareText(event, list)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"text": text,
		"url":  ShareURL(text),
	})
}
