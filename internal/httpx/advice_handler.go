package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"

	"github.com/nstore-core/server/internal/advisor"
	"github.com/nstore-core/server/internal/catalog"
	errx "github.com/nstore-core/server/internal/core/error"
	logx "github.com/nstore-core/server/pkg/logger"
)

type AdviceHandler struct {
	Advisor *advisor.Advisor
	Catalog *catalog.Catalog
	History advisor.History
}

func (h *AdviceHandler) Register(r *chi.Mux) {
	r.Post("/advice", h.advise)
	r.Get("/advice/history/{session}", h.history)
	r.Delete("/advice/history/{session}", h.clearHistory)
}

type adviceRequest struct {
	SessionID string `json:"sessionId"`
	Query     string `json:"query"`
}

type adviceResponse struct {
	Text string `json:"text"`
}

// advise answers one chat message. A request arriving while another is in
// flight gets 429; the widget drops the send just like its disabled input
// would. Advisor failures never reach here as errors: the response text is
// always usable.
func (h *AdviceHandler) advise(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	text, err := h.Advisor.Advise(r.Context(), req.Query, h.Catalog.Products())
	if err != nil {
		if errors.Is(err, advisor.ErrBusy) {
			writeError(w, http.StatusTooManyRequests, "a request is already in flight")
			return
		}
		writeError(w, http.StatusBadGateway, "advice unavailable")
		return
	}

	if req.SessionID != "" {
		h.record(r, req.SessionID, schema.UserMessage(req.Query))
		h.record(r, req.SessionID, schema.AssistantMessage(text, nil))
	}
	writeJSON(w, http.StatusOK, adviceResponse{Text: text})
}

// record appends to the display transcript. Transcript failures are logged
// and swallowed so they never break an answered request.
func (h *AdviceHandler) record(r *http.Request, sessionID string, msg *schema.Message) {
	if err := h.History.Append(r.Context(), sessionID, msg); err != nil {
		logx.Error().Err(err).Str("sessionID", sessionID).Msg("failed to record transcript message")
	}
}

func (h *AdviceHandler) history(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.History.Load(r.Context(), chi.URLParam(r, "session"))
	if err != nil {
		writeError(w, errx.StatusOf(err), "transcript unavailable")
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *AdviceHandler) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.History.Clear(r.Context(), chi.URLParam(r, "session")); err != nil {
		writeError(w, errx.StatusOf(err), "transcript unavailable")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
