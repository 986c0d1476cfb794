package http

import (
	"net/http"
	"strconv"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/service"

	"github.com/gorilla/mux"
)

type MessageHandler struct {
	messagingSvc service.MessagingService
}

func NewMessageHandler(messagingSvc service.MessagingService) *MessageHandler {
	return &MessageHandler{messagingSvc: messagingSvc}
}

type sendMessageRequest struct {
	SenderID    int32  `json:"sender_id"`
	ReceiverID  int32  `json:"receiver_id"`
	SenderName  string `json:"sender_name"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	msg, err := h.messagingSvc.SendMessage(r.Context(), req.SenderID, req.ReceiverID, req.SenderName, req.Content, req.MessageType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt32(w, r, "userId")
	if !ok {
		return
	}

	convs, err := h.messagingSvc.ListConversations(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if convs == nil {
		convs = []domain.Conversation{}
	}
	writeJSON(w, http.StatusOK, convs)
}

func (h *MessageHandler) Thread(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt32(w, r, "userId")
	if !ok {
		return
	}
	otherID, ok := pathInt32(w, r, "otherId")
	if !ok {
		return
	}

	msgs, err := h.messagingSvc.GetConversation(r.Context(), userID, otherID)
	if err != nil {
		writeError(w, err)
		return
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt32(w, r, "userId")
	if !ok {
		return
	}
	otherID, ok := pathInt32(w, r, "otherId")
	if !ok {
		return
	}

	readerID := userID
	if raw := r.URL.Query().Get("reader_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Detail: "invalid reader_id"})
			return
		}
		readerID = int32(parsed)
	}

	if err := h.messagingSvc.MarkConversationRead(r.Context(), userID, otherID, readerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func pathInt32(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "invalid " + name})
		return 0, false
	}
	return int32(parsed), true
}
