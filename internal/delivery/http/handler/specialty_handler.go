package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-kiosk/internal/delivery/http/middleware"
	"hospital-kiosk/internal/usecase"
	"hospital-kiosk/pkg/response"

	"github.com/gorilla/mux"
)

type SpecialtyHandler struct {
	specialtyUsecase usecase.SpecialtyUsecase
}

func NewSpecialtyHandler(specialtyUsecase usecase.SpecialtyUsecase) *SpecialtyHandler {
	return &SpecialtyHandler{
		specialtyUsecase: specialtyUsecase,
	}
}

func (h *SpecialtyHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionIDFromContext(r.Context())

	specialties, err := h.specialtyUsecase.ListSpecialties(r.Context(), sessionID)
	if err != nil {
		writeUpstreamError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *SpecialtyHandler) GetSpecialty(w http.ResponseWriter, r *http.Request) {
	specialty, err := h.specialtyUsecase.GetSpecialty(r.Context(), mux.Vars(r)["idOrSlug"])
	if err != nil {
		if errors.Is(err, usecase.ErrSpecialtyNotFound) {
			response.NotFound(w, "Specialty not found")
			return
		}
		writeUpstreamError(w, err, "Failed to get specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty retrieved successfully", specialty)
}

func (h *SpecialtyHandler) ListDoctorsBySpecialty(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := strconv.Atoi(id); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
		return
	}

	doctors, err := h.specialtyUsecase.ListDoctorsBySpecialty(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
