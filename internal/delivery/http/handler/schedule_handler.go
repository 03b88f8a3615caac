package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"hospital-kiosk/internal/converter"
	"hospital-kiosk/internal/delivery/dto"
	"hospital-kiosk/internal/usecase"
	"hospital-kiosk/pkg/response"
	"hospital-kiosk/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
	log             *logrus.Logger
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator, log *logrus.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
		log:             log,
	}
}

func (h *ScheduleHandler) GetDetailedSchedules(w http.ResponseWriter, r *http.Request) {
	query, ok := h.scheduleQuery(w, r)
	if !ok {
		return
	}

	result, err := h.scheduleUsecase.GetDetailedSchedulesByDoctor(r.Context(), query.ProviderCode, query.SpecialtyIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	data := converter.DetailedSchedulesToResponse(result)
	if !result.Success {
		response.Degraded(w, result.Message, data)
		return
	}
	response.Success(w, http.StatusOK, "Schedules retrieved successfully", data)
}

func (h *ScheduleHandler) GetWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	query, ok := h.scheduleQuery(w, r)
	if !ok {
		return
	}

	week, err := h.scheduleUsecase.GetWeeklySchedule(r.Context(), query.ProviderCode, query.SpecialtyIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if !week.Success {
		response.Degraded(w, week.Message, week)
		return
	}
	response.Success(w, http.StatusOK, "Weekly schedule retrieved successfully", week)
}

// scheduleQuery accepts the specialty filter repeated, comma separated, or both.
func (h *ScheduleHandler) scheduleQuery(w http.ResponseWriter, r *http.Request) (*dto.ScheduleQuery, bool) {
	query := &dto.ScheduleQuery{ProviderCode: strings.TrimSpace(mux.Vars(r)["code"])}
	for _, raw := range r.URL.Query()["specialty"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				query.SpecialtyIDs = append(query.SpecialtyIDs, id)
			}
		}
	}

	if err := h.validator.Validate(query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return query, true
}

func (h *ScheduleHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, context.Canceled):
		// The kiosk moved on; nobody is reading the answer.
		h.log.WithField("path", r.URL.Path).Debug("Schedule request canceled")
	case errors.Is(err, usecase.ErrProviderCodeRequired):
		response.Error(w, http.StatusBadRequest, "Provider code is required", nil)
	case errors.Is(err, context.DeadlineExceeded):
		response.Error(w, http.StatusGatewayTimeout, "Request timeout", nil)
	default:
		h.log.Warnf("Failed to build schedules: %+v", err)
		response.InternalServerError(w, "Failed to get schedules")
	}
}
