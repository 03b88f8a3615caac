package http

import (
	"net/http"

	"hospital-kiosk/internal/delivery/http/handler"
	"hospital-kiosk/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router            *mux.Router
	sessionHandler    *handler.SessionHandler
	specialtyHandler  *handler.SpecialtyHandler
	doctorHandler     *handler.DoctorHandler
	scheduleHandler   *handler.ScheduleHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	gatherer          prometheus.Gatherer
}

func NewRouter(
	sessionHandler *handler.SessionHandler,
	specialtyHandler *handler.SpecialtyHandler,
	doctorHandler *handler.DoctorHandler,
	scheduleHandler *handler.ScheduleHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	gatherer prometheus.Gatherer,
) *Router {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Router{
		router:            mux.NewRouter(),
		sessionHandler:    sessionHandler,
		specialtyHandler:  specialtyHandler,
		doctorHandler:     doctorHandler,
		scheduleHandler:   scheduleHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
		gatherer:          gatherer,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// Kiosk session
	api.HandleFunc("/session", r.sessionHandler.StartSession).Methods(http.MethodPost)
	api.Handle("/session", r.protect(r.sessionHandler.EndSession)).Methods(http.MethodDelete)

	// Specialties
	api.Handle("/specialties", r.protect(r.specialtyHandler.ListSpecialties)).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{id}/doctors", r.specialtyHandler.ListDoctorsBySpecialty).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{idOrSlug}", r.specialtyHandler.GetSpecialty).Methods(http.MethodGet)

	// Doctors
	api.Handle("/doctors", r.protect(r.doctorHandler.ListDoctors)).Methods(http.MethodGet)
	api.Handle("/doctors/refresh", r.protect(r.doctorHandler.RefreshDoctors)).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{code}/schedules", r.scheduleHandler.GetDetailedSchedules).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{code}/weekly-schedule", r.scheduleHandler.GetWeeklySchedule).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) protect(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
