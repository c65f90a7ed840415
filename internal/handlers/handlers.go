package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-term/internal/records"
)

const maxLimit = 100

type Handler struct {
	log   logrus.FieldLogger
	store records.Store
	dec   *schema.Decoder
}

func New(log logrus.FieldLogger, store records.Store) *Handler {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return &Handler{log: log, store: store, dec: dec}
}

func (h *Handler) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/records", h.handleGetRecords)
	mux.HandleFunc("GET /v1/status", h.handleStatus)
	return mux
}

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func (h *Handler) sendJSONOrLog(w http.ResponseWriter, v any) {
	if _, err := SendJSON(w, v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).WithField("response", v).Error("unable to send response")
	}
}

func (h *Handler) sendError(w http.ResponseWriter, status int, e error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": e.Error()}); err != nil {
		h.log.WithError(err).WithField("sent error", e).Error("unable to send error message")
	}
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	h.sendJSONOrLog(w, map[string]string{"status": "ok"})
}
