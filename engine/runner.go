// Package engine はシミュレーションを実時間で駆動するループと、
// 読み手向けスナップショットの公開を担います。
package engine

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"contagion/simulation"
)

// Snapshot は1フレーム分の読み取り専用コピーです。
// ステップ実行と競合しない独立したデータを持ちます。
type Snapshot struct {
	Time   float64
	Agents []simulation.Agent
	Stats  simulation.Statistics
}

// 時間圧縮は2の冪で調整し、指数をこの範囲に制限する
const (
	minCompressionExp = -10
	maxCompressionExp = 10
)

const defaultTickInterval = time.Second / 60

// Runner はステッピングループです。Run 実行中は Simulation を占有し、
// 外部には RWMutex 越しのスナップショットと atomic な実行時コントロールだけを見せます。
type Runner struct {
	sim *simulation.Simulation

	mu   sync.RWMutex
	snap Snapshot

	paused         atomic.Bool
	compressionExp atomic.Int64

	tickInterval time.Duration
	history      *StatsBuffer
}

// NewRunner は停止状態の Runner を作り、初期状態のスナップショットを公開します。
func NewRunner(sim *simulation.Simulation) *Runner {
	r := &Runner{
		sim:          sim,
		tickInterval: defaultTickInterval,
		history:      NewStatsBuffer(4096),
	}
	r.publish()
	return r
}

// WithTickInterval はループ周期を変更します。Run 開始前にのみ呼び出せます。
func (r *Runner) WithTickInterval(d time.Duration) *Runner {
	if d > 0 {
		r.tickInterval = d
	}
	return r
}

// Run は実時間の経過からdtを計算してステップを繰り返します。
// pause と時間圧縮は毎イテレーションの先頭で読み直されます。
// ctx のキャンセルで終了します。
func (r *Runner) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "runner started",
		"tickInterval", r.tickInterval,
		"population", r.snap.Stats.Population,
	)

	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "runner stopped", "simTime", r.Snapshot().Time)
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if r.paused.Load() {
				continue
			}
			r.sim.Step(dt * r.Compression())
			r.publish()
		}
	}
}

func (r *Runner) publish() {
	snap := Snapshot{
		Time:   r.sim.Time(),
		Agents: r.sim.Agents(),
		Stats:  r.sim.Stats(),
	}
	r.mu.Lock()
	r.snap = snap
	r.mu.Unlock()
	r.history.Record(snap.Time, snap.Stats)
}

// Snapshot は最新フレームの独立したコピーを返します。
func (r *Runner) Snapshot() Snapshot {
	r.mu.RLock()
	snap := r.snap
	r.mu.RUnlock()

	agents := make([]simulation.Agent, len(snap.Agents))
	copy(agents, snap.Agents)
	snap.Agents = agents
	return snap
}

// History は統計の時系列のコピーを返します。
func (r *Runner) History() []Sample {
	return r.history.Samples()
}

// TogglePause は一時停止を反転し、反転後の状態を返します。
// 次のイテレーションから効果が現れます。
func (r *Runner) TogglePause() bool {
	for {
		old := r.paused.Load()
		if r.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused は現在の一時停止状態を返します。
func (r *Runner) Paused() bool {
	return r.paused.Load()
}

// SpeedUp は時間圧縮率を2倍にし、適用後の倍率を返します。
func (r *Runner) SpeedUp() float64 {
	return float64FromExp(r.shiftCompression(1))
}

// SlowDown は時間圧縮率を半分にし、適用後の倍率を返します。
func (r *Runner) SlowDown() float64 {
	return float64FromExp(r.shiftCompression(-1))
}

// Compression は現在の時間圧縮倍率を返します。
func (r *Runner) Compression() float64 {
	return float64FromExp(r.compressionExp.Load())
}

func (r *Runner) shiftCompression(delta int64) int64 {
	for {
		old := r.compressionExp.Load()
		next := old + delta
		if next > maxCompressionExp {
			next = maxCompressionExp
		}
		if next < minCompressionExp {
			next = minCompressionExp
		}
		if r.compressionExp.CompareAndSwap(old, next) {
			return next
		}
	}
}

func float64FromExp(exp int64) float64 {
	return math.Pow(2, float64(exp))
}
