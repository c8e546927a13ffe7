package domain

import "contagion/engine"

//go:generate go tool mockgen -destination=./mocks/simulator_mock.go -package=mocks . Simulator

// Simulator はビューア境界から見たシミュレーション側の読み取りと実行時コントロールです。
// engine.Runner が実装します。
type Simulator interface {
	Snapshot() engine.Snapshot
	History() []engine.Sample
	TogglePause() bool
	Paused() bool
	SpeedUp() float64
	SlowDown() float64
	Compression() float64
}
