package handler

import (
	"errors"
	"net/http"

	"hospital-kiosk/internal/delivery/http/middleware"
	"hospital-kiosk/internal/usecase"
	"hospital-kiosk/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorDirectoryUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorDirectoryUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionIDFromContext(r.Context())

	doctors, err := h.doctorUsecase.LoadDoctors(r.Context(), sessionID)
	if err != nil {
		writeUpstreamError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) RefreshDoctors(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionIDFromContext(r.Context())

	doctors, err := h.doctorUsecase.RefreshDoctors(r.Context(), sessionID)
	if err != nil {
		writeUpstreamError(w, err, "Failed to refresh doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors refreshed successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		writeUpstreamError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func writeUpstreamError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, usecase.ErrUpstreamUnavailable) {
		response.BadGateway(w, err.Error())
		return
	}
	response.InternalServerError(w, fallback)
}
