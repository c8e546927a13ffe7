package domain

import (
	"context"
	"log/slog"
	"time"
)

const (
	defaultPingInterval = 15 * time.Second
	defaultIdleTimeout  = 2 * time.Minute
)

// HeartbeatService は接続の死活監視を行うサービスです。
// pingInterval間隔でpingを送り、idleTimeoutを超えて読み書きが
// 途絶えたセッションを打ち切ります。
type HeartbeatService struct {
	pingInterval time.Duration
	idleTimeout  time.Duration
	session      *Session
	transport    Transport
}

// NewHeartbeatService は新しいHeartbeatServiceを生成します。
func NewHeartbeatService(session *Session, transport Transport) *HeartbeatService {
	return &HeartbeatService{
		pingInterval: defaultPingInterval,
		idleTimeout:  defaultIdleTimeout,
		session:      session,
		transport:    transport,
	}
}

// WithIntervals はping間隔とアイドル判定の閾値を変更します。Run 開始前にのみ呼び出せます。
func (h *HeartbeatService) WithIntervals(ping, idle time.Duration) *HeartbeatService {
	if ping > 0 {
		h.pingInterval = ping
	}
	if idle > 0 {
		h.idleTimeout = idle
	}
	return h
}

// Run はpingInterval間隔で死活を確認し、接続が失われたら終了します。
// 切断・アイドル超過はどちらも通常終了として context.Canceled を返します。
func (h *HeartbeatService) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if h.session.IsIdle(h.idleTimeout) {
				slog.WarnContext(ctx, "heartbeat: idle session cut", "sessionID", h.session.ID())
				return context.Canceled
			}
			if err := h.transport.Ping(ctx); err != nil {
				slog.WarnContext(ctx, "heartbeat: ping failed", "sessionID", h.session.ID(), "err", err)
				return context.Canceled
			}
			slog.DebugContext(ctx, "heartbeat: pong received", "sessionID", h.session.ID())
		}
	}
}
