package http

import (
	"net/http"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/service"

	"github.com/gorilla/mux"
)

type ConnectionHandler struct {
	connectionSvc service.ConnectionService
}

func NewConnectionHandler(connectionSvc service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connectionSvc: connectionSvc}
}

type connectionRequest struct {
	ConnectedUserID string `json:"connected_user_id"`
}

func (h *ConnectionHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req connectionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.connectionSvc.RequestConnection(r.Context(), AccountID(r.Context()), req.ConnectedUserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": string(domain.ConnectionStatusPending)})
}

func (h *ConnectionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req connectionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.connectionSvc.AcceptConnection(r.Context(), AccountID(r.Context()), req.ConnectedUserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(domain.ConnectionStatusAccepted)})
}

func (h *ConnectionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	otherID := mux.Vars(r)["otherId"]

	if err := h.connectionSvc.RemoveConnection(r.Context(), AccountID(r.Context()), otherID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *ConnectionHandler) List(w http.ResponseWriter, r *http.Request) {
	conns, err := h.connectionSvc.ListConnections(r.Context(), AccountID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if conns == nil {
		conns = []domain.Connection{}
	}
	writeJSON(w, http.StatusOK, conns)
}
