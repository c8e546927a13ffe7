package simulation

import (
	"cmp"
	"slices"
)

// resolvePairs は各衝突ペアに弾性衝突の撃力を適用し、双方向の感染判定を行います。
// ペア集合は重複排除済みなので、同一接触が二重に解決されることはありません。
// 乱数の消費順を固定するため、マップの反復順ではなく正規形の昇順で解決します。
func (s *Simulation) resolvePairs(pairs map[pair]struct{}) {
	ordered := make([]pair, 0, len(pairs))
	for p := range pairs {
		ordered = append(ordered, p)
	}
	slices.SortFunc(ordered, func(x, y pair) int {
		if c := cmp.Compare(x.a, y.a); c != 0 {
			return c
		}
		return cmp.Compare(x.b, y.b)
	})

	for _, p := range ordered {
		a1 := &s.agents[p.a]
		a2 := &s.agents[p.b]

		normal := s.topo.displacement(a1.Pos, a2.Pos).Normalize()
		closing := a1.Vel.Sub(a2.Vel).Dot(normal)
		if closing > 0 {
			a1.Vel = a1.Vel.Sub(normal.Scale(closing))
			a2.Vel = a2.Vel.Add(normal.Scale(closing))
		}

		// 感染判定は衝突前の状態スナップショットで対称に評価する
		st1 := a1.Status
		st2 := a2.Status
		s.expose(a1, st2)
		s.expose(a2, st1)
	}
}

// expose は感染源 source との接触による recipient への感染を1回分判定します。
// 既感染のエージェントへの再暴露も許容され、その場合は感染時刻が更新されます。
func (s *Simulation) expose(recipient *Agent, source Status) {
	if !source.Infected {
		return
	}
	prob := s.params.transmissionProb(recipient.Status.Category(), source.Vaccinated)
	if s.rng.Float64() < prob {
		recipient.infect(s.time)
	}
}

// resolveWalls は壁に向かう速度成分のみを反転します。
func (s *Simulation) resolveWalls(contacts []wallContact) {
	for _, c := range contacts {
		a := &s.agents[c.agent]
		switch c.side {
		case wallLeft:
			if a.Vel.X < 0 {
				a.Vel.X = -a.Vel.X
			}
		case wallRight:
			if a.Vel.X > 0 {
				a.Vel.X = -a.Vel.X
			}
		case wallBottom:
			if a.Vel.Y < 0 {
				a.Vel.Y = -a.Vel.Y
			}
		case wallTop:
			if a.Vel.Y > 0 {
				a.Vel.Y = -a.Vel.Y
			}
		}
	}
}
