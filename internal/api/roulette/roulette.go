package roulette

import (
	"context"
	"errors"
	"net/http"

	dto "roulette_bot/internal/api/dto/roulette"
	"roulette_bot/internal/converter"
	"roulette_bot/internal/middleware"
	"roulette_bot/internal/model"
	"roulette_bot/internal/service"
	"roulette_bot/pkg/req"
	"roulette_bot/pkg/resp"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

type HandlerDeps struct {
	Serv    service.RouletteService
	Spinner *Spinner
	Logger  *log.Logger
}

type Handler struct {
	serv     service.RouletteService
	spinner  *Spinner
	logger   *log.Logger
	upgrader websocket.Upgrader
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:    deps.Serv,
		spinner: deps.Spinner,
		logger:  deps.Logger.WithPrefix("api"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Мост может жить на другом origin, доступ и так закрыт токеном
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Event принимает событие от чат-моста и возвращает следующую подсказку
func (h *Handler) Event(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized", "no session")
		return
	}

	payload, err := req.Decode[dto.EventRequest](r.Body)
	if err != nil {
		resp.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: codeMalformed})
		return
	}

	directive, err := h.serv.Handle(r.Context(), converter.ToEvent(sessionID, payload))
	if err != nil {
		status, body := h.errorResponse(r.Context(), sessionID, err)
		resp.WriteJSONResponse(w, status, body)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDirectiveResponse(directive))
}

// Prompt возвращает подсказку текущего этапа (например, на команду /start)
func (h *Handler) Prompt(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized", "no session")
		return
	}

	directive, err := h.serv.Prompt(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to build prompt", "session", sessionID, "error", err)
		resp.WriteError(w, http.StatusInternalServerError, codeInternal, "internal error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDirectiveResponse(directive))
}

// Session возвращает текущее состояние сессии
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized", "no session")
		return
	}

	s, err := h.serv.Session(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to read session", "session", sessionID, "error", err)
		resp.WriteError(w, http.StatusInternalServerError, codeInternal, "internal error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(s))
}

// Stats отдаёт статистику RTP
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

const (
	codeOutOfOrder  = "out_of_order"
	codeMissingData = "missing_session_data"
	codeInvalid     = "invalid_payload"
	codeMalformed   = "malformed"
	codeInternal    = "internal"
)

// errorResponse переводит ошибку сервиса в статус и тело.
// Для ошибок игрока прикладывается подсказка текущего этапа.
func (h *Handler) errorResponse(ctx context.Context, sessionID string, err error) (int, dto.ErrorResponse) {
	var (
		status int
		body   = dto.ErrorResponse{Error: err.Error()}
	)

	switch {
	case errors.Is(err, model.ErrMissingSessionData):
		status, body.Code = http.StatusConflict, codeMissingData
	case errors.Is(err, model.ErrOutOfOrderEvent):
		status, body.Code = http.StatusConflict, codeOutOfOrder
	case errors.Is(err, model.ErrInvalidPayload):
		status, body.Code = http.StatusUnprocessableEntity, codeInvalid
		var perr *model.PayloadError
		if errors.As(err, &perr) {
			body.Message = perr.Message
		}
	default:
		h.logger.Error("failed to handle event", "session", sessionID, "error", err)
		return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error", Code: codeInternal}
	}

	if prompt, perr := h.serv.Prompt(ctx, sessionID); perr == nil {
		body.Prompt = converter.ToDirectiveResponse(prompt)
	}
	return status, body
}
