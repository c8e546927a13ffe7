package simulation

// Statistics は1時点の集計値のスナップショットです。
// Dead のみ累積値で、それ以外は現在の生存集団に対する数え上げです。
type Statistics struct {
	Population         int
	Infected           int
	Vaccinated         int
	VaccinatedInfected int
	Healed             int
	Dead               int
}

// Stats は現在の集計値を返します。
func (s *Simulation) Stats() Statistics {
	st := Statistics{
		Population: len(s.agents),
		Dead:       s.dead,
	}
	for i := range s.agents {
		a := &s.agents[i]
		if a.Status.Infected {
			st.Infected++
			if a.Status.Vaccinated {
				st.VaccinatedInfected++
			}
		}
		if a.Status.Vaccinated {
			st.Vaccinated++
		}
		if a.Status.PastInfected {
			st.Healed++
		}
	}
	return st
}
