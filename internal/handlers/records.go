package handlers

import (
	"errors"
	"net/http"

	"github.com/vancomm/minesweeper-term/internal/records"
)

type RecordsParams struct {
	Player string `schema:"player"`
	Size   int    `schema:"size"`
	Limit  int    `schema:"limit"`
}

func (p RecordsParams) Filter() (records.Filter, error) {
	var f records.Filter
	if p.Size < 0 {
		return f, errors.New("size must not be negative")
	}
	if p.Limit < 0 || p.Limit > maxLimit {
		return f, errors.New("limit must be between 0 and 100")
	}
	if p.Player != "" {
		f.Player = &p.Player
	}
	if p.Size > 0 {
		f.Size = &p.Size
	}
	f.Limit = p.Limit
	if f.Limit == 0 {
		f.Limit = maxLimit
	}
	return f, nil
}

func (h *Handler) handleGetRecords(w http.ResponseWriter, r *http.Request) {
	var params RecordsParams
	if err := h.dec.Decode(&params, r.URL.Query()); err != nil {
		h.sendError(w, http.StatusBadRequest, err)
		return
	}
	filter, err := params.Filter()
	if err != nil {
		h.sendError(w, http.StatusBadRequest, err)
		return
	}

	rs, err := h.store.Highscores(r.Context(), filter)
	if err != nil {
		h.log.WithError(err).WithField("params", params).Error("failed to fetch highscores")
		h.sendError(w, http.StatusInternalServerError, errors.New("internal error"))
		return
	}
	if rs == nil {
		rs = []records.Record{}
	}
	h.sendJSONOrLog(w, rs)
}
