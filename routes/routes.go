package routes

import (
	"trasferte/auth"
	"trasferte/bookings"
	"trasferte/events"
	"trasferte/export"
	"trasferte/middleware"
	"trasferte/monitoring"
	"trasferte/ratelim"
	"trasferte/realtime"
	"trasferte/utils"

	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddEventRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/events", events.GetEvents)
	router.GET("/api/competitions", events.GetCompetitions)
	router.GET("/api/admin/events", middleware.Authenticate(events.GetAdminEvents))
	router.POST("/api/events", rl.Limit(middleware.Authenticate(events.CreateEvent)))
	router.PUT("/api/events/:eventid", rl.Limit(middleware.Authenticate(events.EditEvent)))
	router.DELETE("/api/events/:eventid", rl.Limit(middleware.Authenticate(events.DeleteEvent)))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/bookings", rl.Limit(bookings.SubmitBooking))
	router.PUT("/api/bookings/:bookingid", rl.Limit(middleware.OptionalAuth(bookings.UpdateBooking)))
	router.DELETE("/api/bookings/:bookingid", rl.Limit(middleware.OptionalAuth(bookings.DeleteBooking)))
	router.POST("/api/bookings/search", rl.Limit(bookings.SearchUserBookings))
	router.GET("/api/events/:eventid/participants", bookings.GetParticipants)
	router.GET("/api/admin/events/:eventid/bookings", middleware.Authenticate(bookings.GetEventBookings))
}

func AddExportRoutes(router *httprouter.Router) {
	router.GET("/api/events/:eventid/export/csv", middleware.Authenticate(export.DownloadCSV))
	router.GET("/api/events/:eventid/export/pdf", middleware.Authenticate(export.DownloadPDF))
	router.GET("/api/events/:eventid/export/whatsapp", middleware.Authenticate(export.GetWhatsAppShare))
}

func AddRealtimeRoutes(router *httprouter.Router, hub *realtime.Hub) {
	router.GET("/ws/updates", realtime.ServeWS(hub))
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/api/provinces", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"provinces": utils.Provinces})
	})
	router.GET("/api/status", monitoring.GetStatus)
	router.Handler("GET", "/metrics", promhttp.Handler())
}
