package handler

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"

	adapterwebsocket "contagion/server/adapter/websocket"
	"contagion/server/domain"
)

// AcceptHandler はWebSocket接続を受け付け、ビューアエンドポイントを起動します。
type AcceptHandler struct {
	sim domain.Simulator
}

func NewAcceptHandler(sim domain.Simulator) *AcceptHandler {
	return &AcceptHandler{sim: sim}
}

func (h *AcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // 開発用: Origin チェックをスキップ
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to accept", "err", err)
		return
	}

	session := domain.NewSession()
	transport := adapterwebsocket.NewTransportFrom(conn)
	endpoint, err := domain.NewViewerEndpoint(session, transport, h.sim)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create viewer endpoint", "err", err)
		_ = transport.Close(1011, "init failed")
		return
	}

	slog.DebugContext(ctx, "viewer connected", "sessionID", session.ID())
	if err := endpoint.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "viewer endpoint failed", "sessionID", session.ID(), "err", err)
		return
	}
	slog.DebugContext(ctx, "viewer disconnected", "sessionID", session.ID())
}
