package domain_test

import (
	"errors"
	"testing"

	"contagion/engine"
	domain "contagion/server/domain"
	"contagion/simulation"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    domain.CommandOp
		wantErr bool
	}{
		{"toggle pause", `{"op":"toggle_pause"}`, domain.OpTogglePause, false},
		{"speed up", `{"op":"speed_up"}`, domain.OpSpeedUp, false},
		{"slow down", `{"op":"slow_down"}`, domain.OpSlowDown, false},
		{"unknown op", `{"op":"explode"}`, "", true},
		{"empty op", `{}`, "", true},
		{"broken json", `{`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := domain.ParseCommand([]byte(tt.data))
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidCommand) {
					t.Errorf("err = %v, want ErrInvalidCommand", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Op != tt.want {
				t.Errorf("op = %q, want %q", cmd.Op, tt.want)
			}
		})
	}
}

func TestNewFrameMapsStatus(t *testing.T) {
	snap := engine.Snapshot{
		Time: 12.5,
		Agents: []simulation.Agent{
			{
				Pos:    simulation.Vec2{X: 1, Y: 2},
				Vel:    simulation.Vec2{X: -3, Y: 4},
				Status: simulation.Status{Infected: true, PastInfected: true, Vaccinated: true},
			},
			{},
		},
		Stats: simulation.Statistics{Population: 2, Infected: 1, Dead: 5},
	}

	frame := domain.NewFrame(snap, true, 4)

	if frame.Time != 12.5 || !frame.Paused || frame.Compression != 4 {
		t.Errorf("frame header = %+v", frame)
	}
	a := frame.Agents[0]
	if a.X != 1 || a.Y != 2 || a.VX != -3 || a.VY != 4 {
		t.Errorf("agent kinematics = %+v", a)
	}
	if !a.Infected || !a.Healed || !a.Vaccinated {
		t.Errorf("agent status flags = %+v", a)
	}
	if frame.Agents[1].Infected {
		t.Errorf("healthy agent flagged: %+v", frame.Agents[1])
	}
	if frame.Stats.Dead != 5 {
		t.Errorf("stats = %+v", frame.Stats)
	}
}

func TestNewHistory(t *testing.T) {
	points := domain.NewHistory([]engine.Sample{
		{Time: 0, Stats: simulation.Statistics{Population: 10}},
		{Time: 1, Stats: simulation.Statistics{Population: 9, Dead: 1}},
	})
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2", len(points))
	}
	if points[1].Time != 1 || points[1].Stats.Dead != 1 {
		t.Errorf("points[1] = %+v", points[1])
	}
}
