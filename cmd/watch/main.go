package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/coder/websocket"

	"contagion/server/domain"
	"contagion/utils"
)

// フレームは全エージェントを含むため既定の読み取り上限では足りない
const readLimit = 1 << 24

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := utils.GetEnvDefault("ADDR", "localhost")
	port := utils.GetEnvDefault("PORT", "8080")
	serverURL := fmt.Sprintf("ws://%s:%s/ws", addr, port)
	slog.Info("watching simulation", "server", serverURL)

	for {
		if ctx.Err() != nil {
			return
		}
		err := watchSession(ctx, serverURL)
		if err != nil && ctx.Err() == nil {
			slog.Warn("session ended, reconnecting", "err", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func watchSession(ctx context.Context, serverURL string) error {
	conn, _, err := websocket.Dial(ctx, serverURL, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.CloseNow()
	conn.SetReadLimit(readLimit)

	slog.Info("connected")

	// 最新フレームを保持
	var mu sync.Mutex
	var latest *domain.Frame

	readDone := make(chan error, 1)
	go func() {
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				readDone <- err
				return
			}
			var frame domain.Frame
			if err := json.Unmarshal(data, &frame); err != nil {
				slog.Warn("frame decode failed", "err", err)
				continue
			}
			mu.Lock()
			latest = &frame
			mu.Unlock()
		}
	}()

	// 表示ループ (1秒間隔)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "shutdown")
			return nil
		case err := <-readDone:
			return err
		case <-ticker.C:
			mu.Lock()
			frame := latest
			mu.Unlock()
			if frame == nil {
				continue
			}
			slog.Info("frame",
				"time", fmt.Sprintf("%.1f", frame.Time),
				"population", frame.Stats.Population,
				"infected", frame.Stats.Infected,
				"healed", frame.Stats.Healed,
				"dead", frame.Stats.Dead,
				"compression", frame.Compression,
				"paused", frame.Paused)
		}
	}
}
