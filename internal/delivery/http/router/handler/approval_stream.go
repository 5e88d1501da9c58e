package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/domain/entity"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = 25 * time.Second
	streamGrace      = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Native apps send no Origin header.
	CheckOrigin: func(*http.Request) bool { return true },
}

// ApprovalMessage is pushed on every approval change
type ApprovalMessage struct {
	Type          string               `json:"type"`
	ApprovalState entity.ApprovalState `json:"approval_state"`
}

// StreamApproval upgrades to a websocket and pushes approval changes until
// the state is decided, the client leaves or the handshake window ends.
func (h *PairingHandler) StreamApproval(c echo.Context) error {
	id, ok := parseFamilyID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	// Fail before upgrading so the client gets a normal error response.
	if _, err := h.pairingUC.GetApproval(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		return nil
	}
	defer conn.Close()

	logger := h.logger.With(slog.String("family_id", id.String()))

	// The request context is not canceled on hijacked connections.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), h.handshakeTimeout+streamGrace)
	defer cancel()

	go readUntilClosed(conn, cancel)

	states := make(chan entity.ApprovalState, 1)
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- h.pairingUC.WatchApproval(ctx, id, func(state entity.ApprovalState) {
			select {
			case states <- state:
			case <-ctx.Done():
			}
		})
	}()

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case state := <-states:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(ApprovalMessage{Type: "approval", ApprovalState: state}); err != nil {
				logger.Debug("Approval stream write failed", slog.Any("error", err))

				return nil
			}
			if state.Decided() {
				closeStream(conn, websocket.CloseNormalClosure, "decided")

				return nil
			}
		case err := <-watchErr:
			if err != nil {
				logger.Warn("Approval watch ended", slog.Any("error", err))
				closeStream(conn, websocket.CloseInternalServerErr, "watch failed")

				return nil
			}
			closeStream(conn, websocket.CloseNormalClosure, "timeout")

			return nil
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}

// readUntilClosed drains client frames so pongs and close frames are seen.
func readUntilClosed(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func closeStream(conn *websocket.Conn, code int, text string) {
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(streamWriteWait))
}
