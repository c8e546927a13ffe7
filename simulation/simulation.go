// Package simulation は有界2次元空間を運動するエージェント集団の
// 衝突と感染症伝播を離散時間で再現するコアエンジンです。
package simulation

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrPlacementExhausted = errors.New("simulation: initial placement did not converge")
	ErrSelectionOverflow  = errors.New("simulation: selection exceeds population")
)

// MaxStepDuration は1回の Step が進められるシミュレーション時間の上限（秒）です。
// 呼び出し側の実時間デルタが大きくても積分誤差を抑えるために切り詰めます。
const MaxStepDuration = 0.05

// 棄却サンプリングの試行予算（1エージェントあたりの平均試行回数）
const placementAttemptsPerAgent = 1000

// Simulation はエージェント集団・シミュレーション時刻・設定を所有するオーケストレータです。
// 並行アクセスは保護しません。Step 実行中は単一ゴルーチンの占有を前提とします。
type Simulation struct {
	params Params
	topo   topology
	time   float64
	agents []Agent
	dead   int
	rng    *rand.Rand
}

// New は初期配置の重なりがないエージェント集団を棄却サンプリングで生成します。
// 密度が高く試行予算内に収束しない場合は ErrPlacementExhausted を返します。
func New(params Params, rng *rand.Rand) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		params: params,
		topo:   newTopology(params),
		rng:    rng,
		agents: make([]Agent, 0, params.NumAgents),
	}

	budget := params.NumAgents * placementAttemptsPerAgent
	for len(s.agents) < params.NumAgents {
		if budget <= 0 {
			return nil, fmt.Errorf("%w: placed %d of %d agents", ErrPlacementExhausted, len(s.agents), params.NumAgents)
		}
		budget--
		cand := s.randomAgent()
		if s.fits(cand.Pos) {
			s.agents = append(s.agents, cand)
		}
	}
	return s, nil
}

func (s *Simulation) randomAgent() Agent {
	p := s.params
	return Agent{
		Pos: Vec2{
			X: Radius + s.rng.Float64()*(p.SizeX-2*Radius),
			Y: Radius + s.rng.Float64()*(p.SizeY-2*Radius),
		},
		Vel: Vec2{
			X: s.rng.NormFloat64() * p.SpeedStdev,
			Y: s.rng.NormFloat64() * p.SpeedStdev,
		},
	}
}

func (s *Simulation) fits(pos Vec2) bool {
	for i := range s.agents {
		if s.topo.displacement(s.agents[i].Pos, pos).Norm() < 2*Radius {
			return false
		}
	}
	return true
}

// Infect は重複なしにランダム選択した n 体を現在時刻で感染状態にします。
// n が現在の個体数を超える場合は ErrSelectionOverflow を返し、何も変更しません。
func (s *Simulation) Infect(n int) error {
	indices, err := s.selectRandom(n)
	if err != nil {
		return err
	}
	for _, i := range indices {
		s.agents[i].infect(s.time)
	}
	return nil
}

// Vaccinate は重複なしにランダム選択した n 体をワクチン接種済みにします。
func (s *Simulation) Vaccinate(n int) error {
	indices, err := s.selectRandom(n)
	if err != nil {
		return err
	}
	for _, i := range indices {
		s.agents[i].vaccinate()
	}
	return nil
}

func (s *Simulation) selectRandom(n int) ([]int, error) {
	if n < 0 || n > len(s.agents) {
		return nil, fmt.Errorf("%w: n = %d with %d agents", ErrSelectionOverflow, n, len(s.agents))
	}
	return s.rng.Perm(len(s.agents))[:n], nil
}

// Step はシミュレーションを dt 秒（上限 MaxStepDuration）だけ進めます。
// 処理順は固定で、移動 → 衝突検出 → 衝突解決 → 時刻前進 → 感染進行 → 死亡除去 です。
func (s *Simulation) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	dt = min(dt, MaxStepDuration)

	s.moveAgents(dt)
	pairs, walls := s.findCollisions()
	s.resolvePairs(pairs)
	s.resolveWalls(walls)

	s.time += dt

	s.updateHealth(dt)
}

func (s *Simulation) moveAgents(dt float64) {
	for i := range s.agents {
		a := &s.agents[i]
		a.Pos = s.topo.wrap(a.Pos.Add(a.Vel.Scale(dt)))
	}
}

// Time は現在のシミュレーション時刻を返します。
func (s *Simulation) Time() float64 {
	return s.time
}

// Agents は現在のエージェント列の独立したコピーを返します。
// 並び順に意味はなく、ステップをまたいだ安定性も保証しません。
func (s *Simulation) Agents() []Agent {
	out := make([]Agent, len(s.agents))
	copy(out, s.agents)
	return out
}

// Params は構築時の設定を返します。
func (s *Simulation) Params() Params {
	return s.params
}
