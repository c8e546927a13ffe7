package simulation

// updateHealth は全エージェントの感染進行を評価し、評価が終わってから死亡者を除去します。
// 同一ステップ内で、あるエージェントの死亡が他のエージェントの評価に影響しないためです。
func (s *Simulation) updateHealth(dt float64) {
	dead := make([]bool, len(s.agents))
	for i := range s.agents {
		dead[i] = s.advanceStatus(&s.agents[i], dt)
	}

	alive := s.agents[:0]
	for i := range s.agents {
		if dead[i] {
			s.dead++
			continue
		}
		alive = append(alive, s.agents[i])
	}
	s.agents = alive
}

// advanceStatus は1エージェントの状態遷移を評価し、死亡した場合に true を返します。
// 死亡判定が回復判定より優先されます。感染していないエージェントは変化しません。
func (s *Simulation) advanceStatus(a *Agent, dt float64) bool {
	st := &a.Status
	if !st.Infected {
		return false
	}

	if s.rng.Float64() < s.params.DeathRate*dt/s.params.InfectionAvgDuration {
		return true
	}

	// 経過が平均感染期間の7割を超えてから回復確率が立ち上がる
	healProb := (s.time-st.InfectedSince)/s.params.InfectionAvgDuration - 0.7
	if s.rng.Float64() < healProb {
		st.Infected = false
		st.InfectedSince = 0
		st.PastInfected = true
	}
	return false
}
