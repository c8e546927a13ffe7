package simulation

import "testing"

// 感染期間の7割に達するまで回復確率は負なので、回復は一切起きない。
// death_rate の項も 0 にしてあるため死亡も起きない。
func TestNoRecoveryBeforeThreshold(t *testing.T) {
	p := DefaultParams()
	p.SizeX, p.SizeY = 50, 50
	p.InfectionAvgDuration = 30
	p.DeathRate = 0

	for seed := uint64(0); seed < 20; seed++ {
		s := testSim(p, []Agent{
			{Pos: Vec2{X: 25, Y: 25}, Status: Status{Infected: true, InfectedSince: 0}},
		}, seed)

		// dt合計 = 21 の直前まで進める: heal_prob = t/30 - 0.7 < 0
		for s.time < 20.95 {
			s.Step(0.05)
		}
		if s.agents[0].Status.PastInfected {
			t.Fatalf("seed %d: recovery fired at t=%g < 21", seed, s.time)
		}
		if !s.agents[0].Status.Infected {
			t.Fatalf("seed %d: infection cleared without recovery", seed)
		}
	}
}

// 経過が平均感染期間の1.7倍を超えると回復確率が1を超え、必ず回復する。
func TestRecoveryCertainAfterFullDuration(t *testing.T) {
	p := DefaultParams()
	p.SizeX, p.SizeY = 50, 50
	p.InfectionAvgDuration = 30
	p.DeathRate = 0

	s := testSim(p, []Agent{
		{Pos: Vec2{X: 25, Y: 25}, Status: Status{Infected: true, InfectedSince: 0}},
	}, 1)
	s.time = 52 // t/30 - 0.7 > 1

	s.updateHealth(0.05)

	st := s.agents[0].Status
	if st.Infected {
		t.Fatal("agent still infected past certain-recovery horizon")
	}
	if !st.PastInfected {
		t.Fatal("recovered agent not marked past-infected")
	}
	if st.InfectedSince != 0 {
		t.Errorf("InfectedSince = %g, want cleared", st.InfectedSince)
	}
}

// 死亡確率が1以上なら感染者は必ず死亡し、回復判定より優先される。
func TestDeathPrecedesRecovery(t *testing.T) {
	p := DefaultParams()
	p.SizeX, p.SizeY = 50, 50
	p.InfectionAvgDuration = 30
	p.DeathRate = 30 / 0.05 // rate*dt/duration = 1

	s := testSim(p, []Agent{
		{Pos: Vec2{X: 25, Y: 25}, Status: Status{Infected: true, InfectedSince: 0}},
		{Pos: Vec2{X: 40, Y: 40}}, // 非感染者は影響を受けない
	}, 1)
	s.time = 100 // 回復確率も1を超えているが死亡が先に評価される

	s.updateHealth(0.05)

	if len(s.agents) != 1 {
		t.Fatalf("agents = %d, want 1 survivor", len(s.agents))
	}
	if s.dead != 1 {
		t.Errorf("dead counter = %d, want 1", s.dead)
	}
	if s.agents[0].Status.Infected || s.agents[0].Status.PastInfected {
		t.Errorf("healthy survivor status changed: %+v", s.agents[0].Status)
	}
}

func TestHealthyAgentsUnaffected(t *testing.T) {
	p := DefaultParams()
	p.SizeX, p.SizeY = 50, 50
	p.DeathRate = 30 / 0.05

	s := testSim(p, []Agent{
		{Pos: Vec2{X: 10, Y: 10}, Status: Status{PastInfected: true}},
		{Pos: Vec2{X: 20, Y: 20}, Status: Status{Vaccinated: true}},
	}, 1)

	s.updateHealth(0.05)

	if len(s.agents) != 2 {
		t.Fatalf("non-infected agents removed: %d left", len(s.agents))
	}
	if !s.agents[0].Status.PastInfected || !s.agents[1].Status.Vaccinated {
		t.Error("non-infected status mutated")
	}
}

// 回復歴は再感染しても消えない。
func TestPastInfectedPersistsThroughReinfection(t *testing.T) {
	p := DefaultParams()
	p.SizeX, p.SizeY = 50, 50
	p.DeathRate = 0

	s := testSim(p, []Agent{
		{Pos: Vec2{X: 25, Y: 25}, Status: Status{Infected: true, InfectedSince: 0, PastInfected: true}},
	}, 1)
	s.time = 52

	s.updateHealth(0.05)

	if !s.agents[0].Status.PastInfected {
		t.Fatal("past-infected flag lost")
	}
}
