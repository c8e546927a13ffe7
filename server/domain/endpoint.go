package domain

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrInitializationFailed = errors.New("failed to initialize viewer endpoint")

const defaultFrameInterval = time.Second / 30

// ViewerEndpoint は1ビューア接続にフレームを配信し、
// 実行時コントロールのコマンドを受け付けるエンドポイントです。
type ViewerEndpoint struct {
	session   *Session
	transport Transport
	sim       Simulator
	heartbeat *HeartbeatService

	frameInterval time.Duration
}

func NewViewerEndpoint(session *Session, transport Transport, sim Simulator) (*ViewerEndpoint, error) {
	if session == nil || transport == nil || sim == nil {
		return nil, ErrInitializationFailed
	}
	return &ViewerEndpoint{
		session:       session,
		transport:     transport,
		sim:           sim,
		heartbeat:     NewHeartbeatService(session, transport),
		frameInterval: defaultFrameInterval,
	}, nil
}

// WithFrameInterval は配信周期を変更します。Run 開始前にのみ呼び出せます。
func (e *ViewerEndpoint) WithFrameInterval(d time.Duration) *ViewerEndpoint {
	if d > 0 {
		e.frameInterval = d
	}
	return e
}

// Run は読み書きのループを起動し、どちらかが終わるまでブロックします。
// 接続の切断は通常終了として nil を返します。
func (e *ViewerEndpoint) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return e.readLoop(ctx) })
	eg.Go(func() error { return e.writeLoop(ctx) })
	eg.Go(func() error { return e.heartbeat.Run(ctx) })

	err := eg.Wait()
	e.session.Close()
	_ = e.transport.Close(1000, "bye")

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (e *ViewerEndpoint) readLoop(ctx context.Context) error {
	for {
		data, err := e.transport.Read(ctx)
		if err != nil {
			// 切断・キャンセルはここに現れ、グループ全体を終了させる
			return context.Canceled
		}
		e.session.TouchRead()

		cmd, err := ParseCommand(data)
		if err != nil {
			slog.WarnContext(ctx, "viewer command rejected", "sessionID", e.session.ID(), "err", err)
			continue
		}
		e.apply(ctx, cmd)
	}
}

func (e *ViewerEndpoint) apply(ctx context.Context, cmd Command) {
	switch cmd.Op {
	case OpTogglePause:
		paused := e.sim.TogglePause()
		slog.InfoContext(ctx, "pause toggled", "sessionID", e.session.ID(), "paused", paused)
	case OpSpeedUp:
		c := e.sim.SpeedUp()
		slog.InfoContext(ctx, "time compression raised", "sessionID", e.session.ID(), "compression", c)
	case OpSlowDown:
		c := e.sim.SlowDown()
		slog.InfoContext(ctx, "time compression lowered", "sessionID", e.session.ID(), "compression", c)
	}
}

func (e *ViewerEndpoint) writeLoop(ctx context.Context) error {
	ticker := time.NewTicker(e.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			frame := NewFrame(e.sim.Snapshot(), e.sim.Paused(), e.sim.Compression())
			data, err := json.Marshal(frame)
			if err != nil {
				return err
			}
			if err := e.transport.Write(ctx, data); err != nil {
				return context.Canceled
			}
			e.session.TouchWrite()
		}
	}
}
