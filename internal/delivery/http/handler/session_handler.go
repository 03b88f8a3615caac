package handler

import (
	"net/http"

	"hospital-kiosk/internal/delivery/http/middleware"
	"hospital-kiosk/internal/usecase"
	"hospital-kiosk/pkg/response"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
	}
}

func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionUsecase.StartSession(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to start session")
		return
	}

	response.Success(w, http.StatusCreated, "Session started", session)
}

func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Session not found")
		return
	}

	if err := h.sessionUsecase.EndSession(r.Context(), sessionID); err != nil {
		response.InternalServerError(w, "Failed to end session")
		return
	}

	response.Success(w, http.StatusOK, "Session ended", nil)
}
