package domain_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"contagion/engine"
	domain "contagion/server/domain"
	"contagion/server/domain/mocks"
	"contagion/simulation"
)

func blockingRead(tr *mocks.MockTransport) {
	tr.EXPECT().Read(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}).AnyTimes()
}

func TestNewViewerEndpointRequiresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr := mocks.NewMockTransport(ctrl)
	sim := mocks.NewMockSimulator(ctrl)

	if _, err := domain.NewViewerEndpoint(nil, tr, sim); err != domain.ErrInitializationFailed {
		t.Errorf("nil session: err = %v", err)
	}
	if _, err := domain.NewViewerEndpoint(domain.NewSession(), nil, sim); err != domain.ErrInitializationFailed {
		t.Errorf("nil transport: err = %v", err)
	}
	if _, err := domain.NewViewerEndpoint(domain.NewSession(), tr, nil); err != domain.ErrInitializationFailed {
		t.Errorf("nil simulator: err = %v", err)
	}
}

func TestViewerEndpointStreamsFrames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sim := mocks.NewMockSimulator(ctrl)
	snap := engine.Snapshot{
		Time: 1.5,
		Agents: []simulation.Agent{
			{Pos: simulation.Vec2{X: 1, Y: 2}, Status: simulation.Status{Infected: true}},
		},
		Stats: simulation.Statistics{Population: 1, Infected: 1},
	}
	sim.EXPECT().Snapshot().Return(snap).AnyTimes()
	sim.EXPECT().Paused().Return(false).AnyTimes()
	sim.EXPECT().Compression().Return(1.0).AnyTimes()

	tr := mocks.NewMockTransport(ctrl)
	blockingRead(tr)
	frames := make(chan []byte, 16)
	tr.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, data []byte) error {
		select {
		case frames <- data:
		default:
		}
		return nil
	}).AnyTimes()
	tr.EXPECT().Close(gomock.Any(), gomock.Any()).Return(nil)

	ep, err := domain.NewViewerEndpoint(domain.NewSession(), tr, sim)
	if err != nil {
		t.Fatalf("NewViewerEndpoint: %v", err)
	}
	ep.WithFrameInterval(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ep.Run(ctx) }()

	var data []byte
	select {
	case data = <-frames:
	case <-time.After(time.Second):
		t.Fatal("no frame delivered within 1s")
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var frame domain.Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatalf("frame is not valid JSON: %v", err)
	}
	if frame.Time != 1.5 {
		t.Errorf("frame time = %g, want 1.5", frame.Time)
	}
	if len(frame.Agents) != 1 || !frame.Agents[0].Infected {
		t.Errorf("frame agents = %+v", frame.Agents)
	}
	if frame.Stats.Population != 1 {
		t.Errorf("frame stats = %+v", frame.Stats)
	}
}

func TestViewerEndpointAppliesCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sim := mocks.NewMockSimulator(ctrl)
	sim.EXPECT().Snapshot().Return(engine.Snapshot{}).AnyTimes()
	sim.EXPECT().Paused().Return(false).AnyTimes()
	sim.EXPECT().Compression().Return(1.0).AnyTimes()

	applied := make(chan struct{})
	sim.EXPECT().TogglePause().DoAndReturn(func() bool {
		close(applied)
		return true
	})

	cmds := make(chan []byte, 2)
	cmds <- []byte(`not json`) // 不正なコマンドは無視される
	cmds <- []byte(`{"op":"toggle_pause"}`)

	tr := mocks.NewMockTransport(ctrl)
	tr.EXPECT().Read(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]byte, error) {
		select {
		case d := <-cmds:
			return d, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}).AnyTimes()
	tr.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	tr.EXPECT().Close(gomock.Any(), gomock.Any()).Return(nil)

	ep, err := domain.NewViewerEndpoint(domain.NewSession(), tr, sim)
	if err != nil {
		t.Fatalf("NewViewerEndpoint: %v", err)
	}
	ep.WithFrameInterval(time.Hour) // フレーム配信は今回は関係ない

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ep.Run(ctx) }()

	select {
	case <-applied:
	case <-time.After(time.Second):
		t.Fatal("toggle_pause not applied within 1s")
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

// 接続が切れたらRunは通常終了する。
func TestViewerEndpointEndsOnDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sim := mocks.NewMockSimulator(ctrl)
	sim.EXPECT().Snapshot().Return(engine.Snapshot{}).AnyTimes()
	sim.EXPECT().Paused().Return(false).AnyTimes()
	sim.EXPECT().Compression().Return(1.0).AnyTimes()

	tr := mocks.NewMockTransport(ctrl)
	tr.EXPECT().Read(gomock.Any()).Return(nil, context.Canceled)
	tr.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	tr.EXPECT().Close(gomock.Any(), gomock.Any()).Return(nil)

	ep, err := domain.NewViewerEndpoint(domain.NewSession(), tr, sim)
	if err != nil {
		t.Fatalf("NewViewerEndpoint: %v", err)
	}
	ep.WithFrameInterval(time.Hour)

	done := make(chan error, 1)
	go func() { done <- ep.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on disconnect: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not end after disconnect")
	}
}
