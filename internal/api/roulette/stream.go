package roulette

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	dto "roulette_bot/internal/api/dto/roulette"
	"roulette_bot/internal/converter"
	"roulette_bot/internal/middleware"
	"roulette_bot/internal/model"
	"roulette_bot/pkg/req"
	"roulette_bot/pkg/resp"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Stream ведёт диалог по websocket. В отличие от Event, спин здесь
// сопровождается кадрами анимации перед результатом.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized", "no session")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "session", sessionID, "error", err)
		return
	}
	defer conn.Close()
	out := &streamConn{conn: conn}

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	incoming := make(chan []byte)
	go h.readLoop(ctx, cancel, conn, incoming)

	logger := h.logger.With("session", sessionID)
	logger.Debug("stream opened")
	defer logger.Debug("stream closed")

	if prompt, err := h.serv.Prompt(ctx, sessionID); err == nil {
		if err := out.write(dto.StreamMessage{Type: dto.MessageDirective, Directive: converter.ToDirectiveResponse(prompt)}); err != nil {
			return
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case raw := <-incoming:
			if err := h.handleMessage(ctx, out, sessionID, raw, incoming); err != nil {
				logger.Debug("stream write failed", "error", err)
				return
			}
		}
	}
}

// readLoop единственный читатель соединения. Закрытие соединения отменяет ctx.
func (h *Handler) readLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, out chan<- []byte) {
	defer cancel()
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		select {
		case out <- raw:
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) handleMessage(ctx context.Context, out *streamConn, sessionID string, raw []byte, incoming <-chan []byte) error {
	payload, err := decodeMessage(raw)
	if err != nil {
		return out.writeError(dto.ErrorResponse{Error: err.Error(), Code: codeMalformed})
	}

	ev := converter.ToEvent(sessionID, payload)
	if ev.Kind == model.EventSpin {
		if err := h.animate(ctx, out, sessionID, incoming); err != nil {
			if errors.Is(err, errSpinAbandoned) {
				return h.writePrompt(ctx, out, sessionID)
			}
			return err
		}
	}

	directive, err := h.serv.Handle(ctx, ev)
	if err != nil {
		_, body := h.errorResponse(ctx, sessionID, err)
		return out.writeError(body)
	}
	return out.write(dto.StreamMessage{Type: dto.MessageDirective, Directive: converter.ToDirectiveResponse(directive)})
}

var errSpinAbandoned = errors.New("spin abandoned")

// animate проигрывает кадры перед спином. Если игрок прислал cancel
// или отключился, сессия сбрасывается без выплаты. Остальные события
// во время анимации отклоняются как out_of_order.
// Спин вне этапа ReadyToSpin не анимируется, его отклонит Handle.
func (h *Handler) animate(ctx context.Context, out *streamConn, sessionID string, incoming <-chan []byte) error {
	if h.spinner == nil {
		return nil
	}
	accepts, err := h.serv.Accepts(ctx, sessionID, model.EventSpin)
	if err != nil || !accepts {
		return nil
	}

	spinCtx, stop := context.WithCancel(ctx)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- h.spinner.Run(spinCtx, func(f dto.FrameResponse) error {
			return out.write(dto.StreamMessage{Type: dto.MessageFrame, Frame: &f})
		})
	}()

	for {
		select {
		case err := <-done:
			if err == nil {
				return nil
			}
			if abandonErr := h.serv.Abandon(context.WithoutCancel(ctx), sessionID); abandonErr != nil {
				h.logger.Error("failed to abandon spin", "session", sessionID, "error", abandonErr)
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, context.Canceled) {
				return errSpinAbandoned
			}
			return err
		case raw := <-incoming:
			payload, err := decodeMessage(raw)
			switch {
			case err != nil:
				err = out.writeError(dto.ErrorResponse{Error: err.Error(), Code: codeMalformed})
			case payload.Kind == model.EventCancel.String():
				stop()
			default:
				rejected := fmt.Errorf("%s while spinning: %w", payload.Kind, model.ErrOutOfOrderEvent)
				err = out.writeError(dto.ErrorResponse{Error: rejected.Error(), Code: codeOutOfOrder})
			}
			if err != nil {
				// Соединение сломано, кадры тоже не уйдут
				stop()
			}
		}
	}
}

func (h *Handler) writePrompt(ctx context.Context, out *streamConn, sessionID string) error {
	prompt, err := h.serv.Prompt(ctx, sessionID)
	if err != nil {
		return err
	}
	return out.write(dto.StreamMessage{Type: dto.MessageDirective, Directive: converter.ToDirectiveResponse(prompt)})
}

func decodeMessage(raw []byte) (dto.EventRequest, error) {
	var payload dto.EventRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, err
	}
	if err := req.Validate(payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// streamConn сериализует запись: кадры анимации пишутся из горутины спиннера,
// а ответы на события во время анимации из основного цикла.
type streamConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *streamConn) write(msg dto.StreamMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(msg)
}

func (c *streamConn) writeError(body dto.ErrorResponse) error {
	return c.write(dto.StreamMessage{Type: dto.MessageError, Error: &body})
}
