package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"contagion/engine"
	"contagion/simulation"
)

var ErrInvalidCommand = errors.New("view: invalid command")

// AgentView は描画用に縮約した1エージェントの状態です。
type AgentView struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	VX         float64 `json:"vx"`
	VY         float64 `json:"vy"`
	Infected   bool    `json:"infected"`
	Healed     bool    `json:"healed"`
	Vaccinated bool    `json:"vaccinated"`
}

// StatsView は集計値のワイヤ表現です。
type StatsView struct {
	Population         int `json:"population"`
	Infected           int `json:"infected"`
	Vaccinated         int `json:"vaccinated"`
	VaccinatedInfected int `json:"vaccinated_infected"`
	Healed             int `json:"healed"`
	Dead               int `json:"dead"`
}

// Frame は1フレーム分の配信ペイロードです。
type Frame struct {
	Time        float64     `json:"time"`
	Paused      bool        `json:"paused"`
	Compression float64     `json:"compression"`
	Stats       StatsView   `json:"stats"`
	Agents      []AgentView `json:"agents"`
}

// HistoryPoint は統計時系列の1点のワイヤ表現です。
type HistoryPoint struct {
	Time  float64   `json:"time"`
	Stats StatsView `json:"stats"`
}

func statsView(st simulation.Statistics) StatsView {
	return StatsView{
		Population:         st.Population,
		Infected:           st.Infected,
		Vaccinated:         st.Vaccinated,
		VaccinatedInfected: st.VaccinatedInfected,
		Healed:             st.Healed,
		Dead:               st.Dead,
	}
}

// NewFrame はスナップショットを配信ペイロードに変換します。
func NewFrame(snap engine.Snapshot, paused bool, compression float64) Frame {
	agents := make([]AgentView, len(snap.Agents))
	for i, a := range snap.Agents {
		agents[i] = AgentView{
			X:          a.Pos.X,
			Y:          a.Pos.Y,
			VX:         a.Vel.X,
			VY:         a.Vel.Y,
			Infected:   a.Status.Infected,
			Healed:     a.Status.PastInfected,
			Vaccinated: a.Status.Vaccinated,
		}
	}
	return Frame{
		Time:        snap.Time,
		Paused:      paused,
		Compression: compression,
		Stats:       statsView(snap.Stats),
		Agents:      agents,
	}
}

// NewHistory は統計時系列をワイヤ表現に変換します。
func NewHistory(samples []engine.Sample) []HistoryPoint {
	points := make([]HistoryPoint, len(samples))
	for i, s := range samples {
		points[i] = HistoryPoint{Time: s.Time, Stats: statsView(s.Stats)}
	}
	return points
}

// CommandOp はビューアからの実行時コントロールの種別です。
type CommandOp string

const (
	OpTogglePause CommandOp = "toggle_pause"
	OpSpeedUp     CommandOp = "speed_up"
	OpSlowDown    CommandOp = "slow_down"
)

// Command はビューアから受信する1コマンドです。
type Command struct {
	Op CommandOp `json:"op"`
}

// ParseCommand はJSONのコマンドを検証つきでデコードします。
func ParseCommand(data []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
	}
	switch cmd.Op {
	case OpTogglePause, OpSpeedUp, OpSlowDown:
		return cmd, nil
	default:
		return Command{}, fmt.Errorf("%w: unknown op %q", ErrInvalidCommand, cmd.Op)
	}
}
