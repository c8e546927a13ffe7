package simulation

import (
	"cmp"
	"slices"
)

// pair は衝突ペアの正規形です。常に a < b を保ちます。
type pair struct {
	a, b int
}

func makePair(i, j int) pair {
	if i < j {
		return pair{a: i, b: j}
	}
	return pair{a: j, b: i}
}

// wallSide は有界空間で接触した壁を表します。
type wallSide uint8

const (
	wallLeft wallSide = iota
	wallRight
	wallBottom
	wallTop
)

// wallContact は1エージェントと1壁面の接触イベントです。
type wallContact struct {
	agent int
	side  wallSide
}

// findCollisions は全エージェントの重なりペアと、有界空間では壁接触を列挙します。
// x軸・y軸それぞれのソート順を前方走査し、軸方向の距離だけで閾値を超えた時点で
// 内側の走査を打ち切ります。重なりの判定自体はユークリッド距離で行います。
func (s *Simulation) findCollisions() (map[pair]struct{}, []wallContact) {
	n := len(s.agents)
	sortedX := make([]int, n)
	sortedY := make([]int, n)
	for i := 0; i < n; i++ {
		sortedX[i] = i
		sortedY[i] = i
	}
	slices.SortFunc(sortedX, func(i, j int) int {
		return cmp.Compare(s.agents[i].Pos.X, s.agents[j].Pos.X)
	})
	slices.SortFunc(sortedY, func(i, j int) int {
		return cmp.Compare(s.agents[i].Pos.Y, s.agents[j].Pos.Y)
	})

	pairs := make(map[pair]struct{})
	s.sweepAxis(sortedX, false, pairs)
	s.sweepAxis(sortedY, true, pairs)

	var walls []wallContact
	if s.topo.hasWalls() {
		walls = s.wallContacts(sortedX, sortedY)
	}
	return pairs, walls
}

func (s *Simulation) sweepAxis(sorted []int, vertical bool, pairs map[pair]struct{}) {
	n := len(sorted)
	coord := func(p Vec2) float64 { return p.X }
	size := s.params.SizeX
	if vertical {
		coord = func(p Vec2) float64 { return p.Y }
		size = s.params.SizeY
	}
	wraps := !s.topo.hasWalls()

	for i, a := range sorted {
		for step := 1; step < n; step++ {
			jj := i + step
			if jj >= n {
				if !wraps {
					break
				}
				jj -= n
			}
			b := sorted[jj]
			gap := coord(s.agents[b].Pos) - coord(s.agents[a].Pos)
			if wraps {
				gap = wrapHalf(gap, size)
			}
			if gap > 2*Radius {
				break
			}
			d := s.topo.displacement(s.agents[a].Pos, s.agents[b].Pos)
			if d.Norm() < 2*Radius {
				pairs[makePair(a, b)] = struct{}{}
			}
		}
	}
}

// wallContacts はソート済みリストの両端から境界条件が続く間だけ走査します。
func (s *Simulation) wallContacts(sortedX, sortedY []int) []wallContact {
	var contacts []wallContact

	for _, i := range sortedX {
		if s.agents[i].Pos.X >= Radius {
			break
		}
		contacts = append(contacts, wallContact{agent: i, side: wallLeft})
	}
	for k := len(sortedX) - 1; k >= 0; k-- {
		i := sortedX[k]
		if s.agents[i].Pos.X <= s.params.SizeX-Radius {
			break
		}
		contacts = append(contacts, wallContact{agent: i, side: wallRight})
	}
	for _, i := range sortedY {
		if s.agents[i].Pos.Y >= Radius {
			break
		}
		contacts = append(contacts, wallContact{agent: i, side: wallBottom})
	}
	for k := len(sortedY) - 1; k >= 0; k-- {
		i := sortedY[k]
		if s.agents[i].Pos.Y <= s.params.SizeY-Radius {
			break
		}
		contacts = append(contacts, wallContact{agent: i, side: wallTop})
	}

	return contacts
}
